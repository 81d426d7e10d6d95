package rangeintern

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewJSONLogger(&buf, slog.LevelDebug).WithName("words")

	l.LogStats(context.Background(), Stats{Entries: 2, Size: 6, Hits: 1, Misses: 2})

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "arena stats", rec["msg"])
	assert.Equal(t, "words", rec["name"])
	assert.EqualValues(t, 2, rec["entries"])
	assert.EqualValues(t, 6, rec["size"])
}

func TestLogger_LogInput(t *testing.T) {
	var buf bytes.Buffer
	l := NewTextLogger(&buf, slog.LevelDebug)

	l.LogInput(context.Background(), "a.txt", 12, nil)
	assert.Contains(t, buf.String(), "input interned")
	assert.Contains(t, buf.String(), "tokens=12")

	buf.Reset()
	l.LogInput(context.Background(), "b.txt", 0, errors.New("boom"))
	assert.Contains(t, buf.String(), "input failed")
	assert.Contains(t, buf.String(), "error=boom")
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
}

func TestWithLogger_Nil(t *testing.T) {
	o := applyOptions([]Option{WithLogger(nil), WithMetricsCollector(nil)})
	require.NotNil(t, o.logger)
	assert.Equal(t, NoopMetricsCollector{}, o.metricsCollector)
}
