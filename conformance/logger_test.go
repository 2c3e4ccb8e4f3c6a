package conformance

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c := Case{Name: "l2_norm/literal", Op: OpL2Norm}

	logger.WithCase(c).LogCase(context.Background(), time.Millisecond, nil)
	assert.Contains(t, buf.String(), `"msg":"case passed"`)
	assert.Contains(t, buf.String(), `"case":"l2_norm/literal"`)
	assert.Contains(t, buf.String(), `"op":"l2_norm"`)
	assert.Equal(t, 1, strings.Count(buf.String(), `"case":`))

	buf.Reset()
	logger.WithCase(c).LogCase(context.Background(), time.Millisecond, errors.New("boom"))
	assert.Contains(t, buf.String(), `"error":"boom"`)
	assert.Contains(t, buf.String(), `"case":"l2_norm/literal"`)

	buf.Reset()
	logger.LogReport(context.Background(), &Report{Kernel: "sequential", Results: []Result{{Case: c.Name}}})
	assert.Contains(t, buf.String(), `"msg":"conformance run completed"`)
	assert.Contains(t, buf.String(), `"kernel":"sequential"`)
}

func TestConstructors(t *testing.T) {
	assert.NotNil(t, NewLogger(nil))
	assert.NotNil(t, NewJSONLogger(slog.LevelInfo))
	assert.NotNil(t, NewTextLogger(slog.LevelInfo))
	assert.False(t, NoopLogger().Enabled(context.Background(), slog.LevelError))
}
