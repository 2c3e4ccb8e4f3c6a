package conformance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/hupe1980/groundtruth"
	"github.com/hupe1980/groundtruth/similarity"
)

// Result is the outcome of a single case.
type Result struct {
	Case    string
	Op      Op
	Elapsed time.Duration
	// Err is nil if the case passed.
	Err error
}

// Report collects the results of a Verify run.
type Report struct {
	// Kernel is the accumulation kernel used by the reference implementation.
	Kernel  string
	Results []Result
}

// Passed returns the number of passed cases.
func (r *Report) Passed() int {
	n := 0
	for _, res := range r.Results {
		if res.Err == nil {
			n++
		}
	}
	return n
}

// Failures returns the failed cases.
func (r *Report) Failures() []Result {
	var failed []Result
	for _, res := range r.Results {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}
	return failed
}

// OK reports whether every case passed.
func (r *Report) OK() bool {
	return len(r.Failures()) == 0
}

// Err joins all failures into a single error, or returns nil.
func (r *Report) Err() error {
	var errs []error
	for _, res := range r.Failures() {
		errs = append(errs, fmt.Errorf("%s: %w", res.Case, res.Err))
	}
	return errors.Join(errs...)
}

// Verify runs the canonical cases against impl.
//
// Case failures are recorded in the report. The returned error is non-nil only
// if the options are invalid or ctx is done; in the latter case the partial
// report is returned alongside ctx.Err().
func Verify(ctx context.Context, impl Implementation, optFns ...Option) (*Report, error) {
	opts := options{tolerance: DefaultTolerance}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.logger == nil {
		opts.logger = NoopLogger()
	}
	if math.IsNaN(opts.tolerance) || opts.tolerance < 0 {
		return nil, fmt.Errorf("%w: invalid tolerance %v", groundtruth.ErrValidation, opts.tolerance)
	}

	cases, err := selectCases(Cases(), opts.cases)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Kernel:  similarity.Kernel(),
		Results: make([]Result, 0, len(cases)),
	}

	for _, c := range cases {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		start := time.Now()
		err := run(c, impl, opts.tolerance)
		elapsed := time.Since(start)

		opts.logger.WithCase(c).LogCase(ctx, elapsed, err)
		report.Results = append(report.Results, Result{Case: c.Name, Op: c.Op, Elapsed: elapsed, Err: err})
	}

	opts.logger.LogReport(ctx, report)

	return report, nil
}

func run(c Case, impl Implementation, tol float64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()

	return c.Check(impl, tol)
}

func selectCases(all []Case, names []string) ([]Case, error) {
	if len(names) == 0 {
		return all, nil
	}

	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}

	selected := make([]Case, 0, len(names))
	for _, c := range all {
		if want[c.Name] {
			selected = append(selected, c)
			delete(want, c.Name)
		}
	}
	for _, n := range names {
		if want[n] {
			return nil, fmt.Errorf("%w: unknown case %q", groundtruth.ErrValidation, n)
		}
	}

	return selected, nil
}
