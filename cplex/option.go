package cplex

// CPLEX parameter numbers used by the built-in options.
const (
	paramScreenOutput = 1035 // CPX_PARAM_SCRIND
	paramTimeLimit    = 1039 // CPX_PARAM_TILIM
	paramThreads      = 1067 // CPX_PARAM_THREADS
)

// SolveOption configures the CPLEX environment before the solve.
type SolveOption func(*solveConfig)

type solveConfig struct {
	intParams map[int]int
	dblParams map[int]float64
}

func defaultSolveConfig() *solveConfig {
	return &solveConfig{
		intParams: map[int]int{paramScreenOutput: 0},
		dblParams: make(map[int]float64),
	}
}

// WithOutput enables or disables CPLEX screen output. Output is off by
// default.
func WithOutput(enabled bool) SolveOption {
	return func(c *solveConfig) {
		v := 0
		if enabled {
			v = 1
		}
		c.intParams[paramScreenOutput] = v
	}
}

// WithTimeLimit sets the solver time limit in seconds.
func WithTimeLimit(seconds float64) SolveOption {
	return func(c *solveConfig) {
		c.dblParams[paramTimeLimit] = seconds
	}
}

// WithThreads sets the number of threads CPLEX may use.
func WithThreads(n int) SolveOption {
	return func(c *solveConfig) {
		c.intParams[paramThreads] = n
	}
}

// WithIntParam sets an arbitrary integer CPLEX parameter by number.
func WithIntParam(param, value int) SolveOption {
	return func(c *solveConfig) {
		c.intParams[param] = value
	}
}

// WithFloatParam sets an arbitrary floating-point CPLEX parameter by
// number.
func WithFloatParam(param int, value float64) SolveOption {
	return func(c *solveConfig) {
		c.dblParams[param] = value
	}
}
