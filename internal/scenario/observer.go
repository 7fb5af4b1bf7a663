package scenario

import (
	"time"

	"github.com/alexanderramin/clientbuddy/internal/logger"
)

// TransitionEvent describes one state change.
type TransitionEvent struct {
	Trigger Trigger
	From    State
	To      State
	// Duration is set when the transition ends an AI call.
	Duration time.Duration
	Err      error
	LogLen   int
}

// Observer receives every state change of a Machine. It is called with the
// machine's lock held and must not call back into the machine.
type Observer interface {
	OnTransition(event TransitionEvent)
}

type NoopObserver struct{}

func (NoopObserver) OnTransition(TransitionEvent) {}

// LogObserver writes transitions to a structured logger.
type LogObserver struct {
	log *logger.Logger
}

func NewLogObserver(log *logger.Logger) *LogObserver {
	return &LogObserver{log: log}
}

func (o *LogObserver) OnTransition(event TransitionEvent) {
	kv := []interface{}{
		"trigger", event.Trigger,
		"from", event.From,
		"to", event.To,
		"log_len", event.LogLen,
	}
	if event.Duration > 0 {
		kv = append(kv, "duration_ms", event.Duration.Milliseconds())
	}
	if event.Err != nil {
		o.log.Warn("scenario_transition failed", append(kv, "error", event.Err.Error())...)
		return
	}
	o.log.Debug("scenario_transition", kv...)
}
