package llm

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/alexanderramin/clientbuddy/internal/logger"
)

func TestPrometheusObserver_CountsCalls(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs, err := NewPrometheusObserver(reg)
	require.NoError(t, err)

	obs.OnCallComplete(LLMCallEvent{Task: TaskBrief, Success: true, LatencyMs: 1200})
	obs.OnCallComplete(LLMCallEvent{Task: TaskBrief, Success: false, ErrorCode: "TIMEOUT"})

	assert.Equal(t, 1.0, testutil.ToFloat64(obs.calls.WithLabelValues("brief", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(obs.calls.WithLabelValues("brief", "TIMEOUT")))
}

func TestPrometheusObserver_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewPrometheusObserver(reg)
	require.NoError(t, err)
	second, err := NewPrometheusObserver(reg)
	require.NoError(t, err)

	second.OnCallComplete(LLMCallEvent{Task: TaskReview, Success: true})
	assert.Equal(t, 1.0, testutil.ToFloat64(first.calls.WithLabelValues("review", "ok")))
}

func TestLogObserver_LevelsByOutcome(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := &logger.Logger{SugaredLogger: zap.New(core).Sugar()}

	obs := MultiObserver{NewLogObserver(log), nil, NoopObserver{}}
	obs.OnCallComplete(LLMCallEvent{Task: TaskFeedback, Model: "m", Success: true, Attempts: 1})
	obs.OnCallComplete(LLMCallEvent{Task: TaskFeedback, Model: "m", ErrorCode: "UNAVAILABLE", Attempts: 1})

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "llm_call", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "UNAVAILABLE", entries[1].ContextMap()["error_code"])
}
