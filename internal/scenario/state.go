// Package scenario drives one simulated client project: a generated brief,
// design revisions answered with client feedback, and a final review.
package scenario

import (
	"errors"
	"fmt"
)

type State string

const (
	StateIdle               State = "idle"
	StateGeneratingBrief    State = "generating_brief"
	StateInProgress         State = "in_progress"
	StateSubmittingRevision State = "submitting_revision"
	StateCompletingProject  State = "completing_project"
	StateCompleted          State = "completed"
)

// InFlight reports whether an AI call is running for this state.
func (s State) InFlight() bool {
	switch s {
	case StateGeneratingBrief, StateSubmittingRevision, StateCompletingProject:
		return true
	}
	return false
}

type Trigger string

const (
	TriggerStart    Trigger = "start"
	TriggerSubmit   Trigger = "submit_revision"
	TriggerComplete Trigger = "complete"
	TriggerReset    Trigger = "reset"
)

// ErrBusy is returned when a trigger arrives while an AI call is in flight.
var ErrBusy = errors.New("scenario is busy; wait for the current request to finish")

// InvalidTransitionError is returned when a trigger is not accepted from
// the current state.
type InvalidTransitionError struct {
	Trigger Trigger
	From    State
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s from state %s", e.Trigger, e.From)
}
