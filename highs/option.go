package highs

// SolveOption configures the HiGHS instance before the solve.
type SolveOption func(*solveConfig)

type solveConfig struct {
	boolOptions   map[string]bool
	intOptions    map[string]int
	doubleOptions map[string]float64
}

func defaultSolveConfig() *solveConfig {
	return &solveConfig{
		boolOptions:   map[string]bool{"output_flag": false},
		intOptions:    make(map[string]int),
		doubleOptions: make(map[string]float64),
	}
}

// WithOutput enables or disables HiGHS log output. Output is off by
// default.
func WithOutput(enabled bool) SolveOption {
	return func(c *solveConfig) {
		c.boolOptions["output_flag"] = enabled
	}
}

// WithTimeLimit sets the solver time limit in seconds.
func WithTimeLimit(seconds float64) SolveOption {
	return func(c *solveConfig) {
		c.doubleOptions["time_limit"] = seconds
	}
}

// WithThreads sets the number of threads HiGHS may use.
func WithThreads(n int) SolveOption {
	return func(c *solveConfig) {
		c.intOptions["threads"] = n
	}
}

// WithBoolOption sets an arbitrary boolean HiGHS option by name.
func WithBoolOption(name string, value bool) SolveOption {
	return func(c *solveConfig) {
		c.boolOptions[name] = value
	}
}

// WithIntOption sets an arbitrary integer HiGHS option by name.
func WithIntOption(name string, value int) SolveOption {
	return func(c *solveConfig) {
		c.intOptions[name] = value
	}
}

// WithFloatOption sets an arbitrary floating-point HiGHS option by name.
func WithFloatOption(name string, value float64) SolveOption {
	return func(c *solveConfig) {
		c.doubleOptions[name] = value
	}
}
