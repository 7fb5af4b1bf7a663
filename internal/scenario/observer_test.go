package scenario

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/alexanderramin/clientbuddy/internal/logger"
)

func TestLogObserver(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	obs := NewLogObserver(&logger.Logger{SugaredLogger: zap.New(core).Sugar()})

	obs.OnTransition(TransitionEvent{Trigger: TriggerStart, From: StateGeneratingBrief, To: StateInProgress, Duration: 1500 * time.Millisecond, LogLen: 1})
	obs.OnTransition(TransitionEvent{Trigger: TriggerSubmit, From: StateSubmittingRevision, To: StateInProgress, Err: errAI, LogLen: 2})

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, "scenario_transition", entries[0].Message)
	assert.Equal(t, int64(1500), entries[0].ContextMap()["duration_ms"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "model unavailable", entries[1].ContextMap()["error"])
}
