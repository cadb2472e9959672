package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testHandler captures log records for testing.
type testHandler struct {
	buf    *bytes.Buffer
	level  slog.Level
	attrs  []slog.Attr
	groups []string
}

func newTestHandler() *testHandler {
	return &testHandler{
		buf:   &bytes.Buffer{},
		level: slog.LevelDebug,
	}
}

func (h *testHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *testHandler) Handle(_ context.Context, r slog.Record) error {
	data := map[string]any{
		"level": r.Level.String(),
		"msg":   r.Message,
	}

	for _, attr := range h.attrs {
		data[attr.Key] = attr.Value.Any()
	}

	r.Attrs(func(a slog.Attr) bool {
		data[a.Key] = a.Value.Any()
		return true
	})

	enc := json.NewEncoder(h.buf)
	return enc.Encode(data)
}

func (h *testHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newH := &testHandler{
		buf:    h.buf,
		level:  h.level,
		attrs:  make([]slog.Attr, len(h.attrs)+len(attrs)),
		groups: h.groups,
	}
	copy(newH.attrs, h.attrs)
	copy(newH.attrs[len(h.attrs):], attrs)
	return newH
}

func (h *testHandler) WithGroup(name string) slog.Handler {
	return &testHandler{
		buf:    h.buf,
		level:  h.level,
		attrs:  h.attrs,
		groups: append(h.groups, name),
	}
}

func (h *testHandler) getLastRecord() map[string]any {
	lines := bytes.Split(h.buf.Bytes(), []byte("\n"))
	for i := len(lines) - 1; i >= 0; i-- {
		if len(lines[i]) > 0 {
			var m map[string]any
			if err := json.Unmarshal(lines[i], &m); err == nil {
				return m
			}
		}
	}
	return nil
}

func TestEnrichLogger(t *testing.T) {
	t.Run("adds session_id", func(t *testing.T) {
		h := newTestHandler()
		logger := slog.New(h)

		enriched := EnrichLogger(logger, "sess-123")
		enriched.Info("test message")

		record := h.getLastRecord()
		require.NotNil(t, record)
		assert.Equal(t, "sess-123", record["session_id"])
		assert.Equal(t, "test message", record["msg"])
	})

	t.Run("nil logger returns nil", func(t *testing.T) {
		assert.Nil(t, EnrichLogger(nil, "sess-123"))
	})
}

func TestLogEvaluation(t *testing.T) {
	t.Run("logs evaluation at DEBUG level", func(t *testing.T) {
		h := newTestHandler()
		logger := slog.New(h)

		LogEvaluation(logger, "sess-1", 2.5, 3, 5, 6)

		record := h.getLastRecord()
		require.NotNil(t, record)
		assert.Equal(t, "DEBUG", record["level"])
		assert.Equal(t, "flow evaluated", record["msg"])
		assert.Equal(t, "sess-1", record["session_id"])
		assert.Equal(t, 2.5, record["duration_ms"])
		assert.Equal(t, float64(3), record["reachable_nodes"]) // JSON decodes ints as float64
		assert.Equal(t, float64(5), record["total_nodes"])
		assert.Equal(t, float64(6), record["total_edges"])
	})

	t.Run("nil logger does not panic", func(t *testing.T) {
		LogEvaluation(nil, "sess-1", 1, 1, 1, 1)
	})
}

func TestLogTrace(t *testing.T) {
	t.Run("logs node_id and highlight count", func(t *testing.T) {
		h := newTestHandler()
		logger := slog.New(h)

		LogTrace(logger, "sess-1", "checkout", 4)

		record := h.getLastRecord()
		require.NotNil(t, record)
		assert.Equal(t, "ancestors traced", record["msg"])
		assert.Equal(t, "checkout", record["node_id"])
		assert.Equal(t, float64(4), record["highlighted_nodes"])
	})

	t.Run("nil logger does not panic", func(t *testing.T) {
		LogTrace(nil, "sess-1", "checkout", 0)
	})
}

func TestLogContextChange(t *testing.T) {
	t.Run("logs condition and direction", func(t *testing.T) {
		h := newTestHandler()
		logger := slog.New(h)

		LogContextChange(logger, "sess-1", "age", true)

		record := h.getLastRecord()
		require.NotNil(t, record)
		assert.Equal(t, "simulation context changed", record["msg"])
		assert.Equal(t, "age", record["condition"])
		assert.Equal(t, true, record["set"])
	})

	t.Run("nil logger does not panic", func(t *testing.T) {
		LogContextChange(nil, "sess-1", "age", false)
	})
}

func TestLogImport(t *testing.T) {
	t.Run("logs path and counts at INFO level", func(t *testing.T) {
		h := newTestHandler()
		logger := slog.New(h)

		LogImport(logger, "flows/onboarding.yaml", 7, 9)

		record := h.getLastRecord()
		require.NotNil(t, record)
		assert.Equal(t, "INFO", record["level"])
		assert.Equal(t, "document imported", record["msg"])
		assert.Equal(t, "flows/onboarding.yaml", record["path"])
		assert.Equal(t, float64(7), record["nodes"])
		assert.Equal(t, float64(9), record["edges"])
	})

	t.Run("nil logger does not panic", func(t *testing.T) {
		LogImport(nil, "x.json", 0, 0)
	})
}

func TestLogImportError(t *testing.T) {
	t.Run("logs error at ERROR level", func(t *testing.T) {
		h := newTestHandler()
		logger := slog.New(h)

		LogImportError(logger, "broken.json", errors.New("unexpected end of JSON input"))

		record := h.getLastRecord()
		require.NotNil(t, record)
		assert.Equal(t, "ERROR", record["level"])
		assert.Equal(t, "document import failed", record["msg"])
		assert.Equal(t, "broken.json", record["path"])
		assert.Equal(t, "unexpected end of JSON input", record["error"])
	})

	t.Run("nil logger does not panic", func(t *testing.T) {
		LogImportError(nil, "x", errors.New("boom"))
	})
}

func TestLogStoreError(t *testing.T) {
	t.Run("logs at WARN level", func(t *testing.T) {
		h := newTestHandler()
		logger := slog.New(h)

		LogStoreError(logger, "onboarding", "save", errors.New("disk full"))

		record := h.getLastRecord()
		require.NotNil(t, record)
		assert.Equal(t, "WARN", record["level"])
		assert.Equal(t, "flow store operation failed", record["msg"])
		assert.Equal(t, "onboarding", record["flow"])
		assert.Equal(t, "save", record["operation"])
		assert.Equal(t, "disk full", record["error"])
	})

	t.Run("nil logger does not panic", func(t *testing.T) {
		LogStoreError(nil, "x", "load", errors.New("boom"))
	})
}

func TestTimedOperation(t *testing.T) {
	done := TimedOperation()
	time.Sleep(5 * time.Millisecond)
	elapsed := done()
	assert.GreaterOrEqual(t, elapsed, float64(0))
}
