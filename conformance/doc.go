// Package conformance checks ports of the reference utilities against the
// canonical scenarios.
//
// A port is wrapped in the Implementation interface (typically by calling into
// it through cgo, a subprocess or a test double) and passed to Verify:
//
//	report, err := conformance.Verify(ctx, myPort,
//		conformance.WithTolerance(1e-9),
//		conformance.WithLogger(conformance.NewTextLogger(slog.LevelDebug)),
//	)
//	if err != nil {
//		return err // canceled or misconfigured
//	}
//	if !report.OK() {
//		return report.Err()
//	}
//
// Reference returns the Go implementation itself, which passes every case.
package conformance
