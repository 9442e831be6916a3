package monitoring_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/davidvella/fibheap"
	"github.com/davidvella/fibheap/monitoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level monitoring.LogLevel
		want  string
	}{
		{monitoring.DEBUG, "DEBUG"},
		{monitoring.INFO, "INFO"},
		{monitoring.WARN, "WARN"},
		{monitoring.ERROR, "ERROR"},
		{monitoring.LogLevel(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.level.String())
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := monitoring.NewLogger(&buf, "scheduler", monitoring.INFO)

	logger.Debug("dropped")
	logger.Info("queued", zap.Int("size", 3))
	require.NoError(t, logger.Sync())

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "queued", entry["message"])
	assert.Equal(t, "scheduler", entry["component"])
	assert.Equal(t, float64(3), entry["size"])
	assert.NotEmpty(t, entry["timestamp"])
}

func TestNewLoggerWithHeap(t *testing.T) {
	var buf bytes.Buffer
	logger := monitoring.NewLogger(&buf, "fibheap", monitoring.DEBUG)

	h := fibheap.New[int](fibheap.WithLogger(logger))
	_, _ = h.Enqueue(1, 1)
	_, _ = h.Enqueue(2, 2)
	_, _ = h.Enqueue(3, 3)
	_, err := h.ExtractMin()
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Equal(t, "consolidated root list", entry["message"])
	assert.Equal(t, "fibheap", entry["component"])
	assert.Equal(t, float64(1), entry["links"])
}
