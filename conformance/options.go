package conformance

// DefaultTolerance is the absolute tolerance used for approximate comparisons.
const DefaultTolerance = 1e-10

type options struct {
	logger    *Logger
	tolerance float64
	cases     []string
}

// Option configures Verify.
type Option func(*options)

// WithLogger configures structured logging of case outcomes.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithTolerance sets the absolute tolerance for approximate comparisons.
// Literal scenarios such as dot([1 2 3],[4 5 6]) == 32 are always compared exactly.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		o.tolerance = tol
	}
}

// WithCases restricts the run to the named cases, in canonical order.
func WithCases(names ...string) Option {
	return func(o *options) {
		o.cases = names
	}
}
