package qp

import (
	"math"
	"sort"
)

// Inf returns positive infinity, suitable for unbounded variable bounds.
func Inf() float64 {
	return math.Inf(1)
}

// NegInf returns negative infinity, suitable for unbounded variable bounds.
func NegInf() float64 {
	return math.Inf(-1)
}

// CSR is a matrix in compressed sparse row form: row i occupies
// Index[Start[i]:Start[i+1]] and Value[Start[i]:Start[i+1]].
// Start always has rows+1 entries, so empty rows are represented too.
type CSR struct {
	Start []int
	Index []int
	Value []float64
}

// Nonzeros returns the number of stored entries.
func (c *CSR) Nonzeros() int {
	return len(c.Value)
}

// Row returns the column indices and values of row i.
func (c *CSR) Row(i int) ([]int, []float64) {
	return c.Index[c.Start[i]:c.Start[i+1]], c.Value[c.Start[i]:c.Start[i+1]]
}

// CompressTriplets converts a slice of Nonzero entries into CSR form
// with the given number of rows. Entries are sorted by row then column;
// duplicate coordinates are merged keeping the last value. If triangular
// is true, entries below the diagonal are rejected.
func CompressTriplets(nz []Nonzero, rows int, triangular bool) (*CSR, error) {
	// Sort by row, then by column
	sorted := make([]Nonzero, len(nz))
	copy(sorted, nz)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Row != sorted[j].Row {
			return sorted[i].Row < sorted[j].Row
		}
		return sorted[i].Col < sorted[j].Col
	})

	// Validate and deduplicate
	filtered := make([]Nonzero, 0, len(sorted))
	for _, n := range sorted {
		if n.Row < 0 || n.Col < 0 {
			return nil, errorf("CompressTriplets", "negative row or column index")
		}
		if n.Row >= rows {
			return nil, errorf("CompressTriplets", "row %d outside %d rows", n.Row, rows)
		}
		if triangular && n.Row > n.Col {
			return nil, errorf("CompressTriplets", "matrix must be upper triangular")
		}
		// Merge duplicates (keep last value)
		if len(filtered) > 0 && filtered[len(filtered)-1].Row == n.Row && filtered[len(filtered)-1].Col == n.Col {
			filtered[len(filtered)-1].Val = n.Val
		} else {
			filtered = append(filtered, n)
		}
	}

	csr := &CSR{
		Start: make([]int, rows+1),
		Index: make([]int, len(filtered)),
		Value: make([]float64, len(filtered)),
	}
	for i, n := range filtered {
		csr.Start[n.Row+1]++
		csr.Index[i] = n.Col
		csr.Value[i] = n.Val
	}
	for i := 0; i < rows; i++ {
		csr.Start[i+1] += csr.Start[i]
	}
	return csr, nil
}

// UpperTriangle filters a symmetric triplet matrix down to its upper
// triangle, for backends whose Hessian format wants one triangle only.
func UpperTriangle(nz []Nonzero) []Nonzero {
	upper := make([]Nonzero, 0, len(nz))
	for _, n := range nz {
		if n.Row <= n.Col {
			upper = append(upper, n)
		}
	}
	return upper
}
