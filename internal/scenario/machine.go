package scenario

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/clientbuddy/internal/domain"
	"github.com/alexanderramin/clientbuddy/internal/imagecap"
	"github.com/alexanderramin/clientbuddy/internal/intelligence"
)

// BriefGenerator produces the brief a scenario starts from.
type BriefGenerator interface {
	Generate(ctx context.Context, req intelligence.BriefRequest) (domain.Brief, error)
}

// FeedbackProvider answers a design submission in the client's voice.
type FeedbackProvider interface {
	Feedback(ctx context.Context, req intelligence.FeedbackRequest) (string, error)
}

// Reviewer rates a finished project.
type Reviewer interface {
	FinalReview(ctx context.Context, b domain.Brief, log []domain.Interaction, lang domain.Language) (domain.FinalReview, error)
}

// Deps are the collaborators a Machine calls out to. Observer may be nil.
type Deps struct {
	Briefs   BriefGenerator
	Feedback FeedbackProvider
	Reviewer Reviewer
	Observer Observer
}

// Snapshot is a point-in-time copy of a Machine for rendering.
type Snapshot struct {
	State     State                `json:"state"`
	Lang      domain.Language      `json:"lang"`
	Brief     domain.Brief         `json:"brief,omitempty"`
	Log       []domain.Interaction `json:"log"`
	Review    *domain.FinalReview  `json:"review,omitempty"`
	LastError string               `json:"lastError,omitempty"`
}

// Machine is the state machine for one scenario. All methods are safe for
// concurrent use; triggers that arrive during an AI call get ErrBusy.
type Machine struct {
	deps Deps
	now  func() time.Time

	mu      sync.Mutex
	state   State
	lang    domain.Language
	brief   domain.Brief
	log     []domain.Interaction
	review  *domain.FinalReview
	lastErr error
}

func New(deps Deps) *Machine {
	if deps.Observer == nil {
		deps.Observer = NoopObserver{}
	}
	return &Machine{deps: deps, now: time.Now, state: StateIdle}
}

// State returns the current state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Start generates the scenario brief. On success the log holds exactly the
// brief; on failure the machine is back in idle.
func (m *Machine) Start(ctx context.Context, req intelligence.BriefRequest) (domain.Brief, error) {
	if req.Lang == "" {
		req.Lang = domain.LangEN
	}
	if err := m.begin(TriggerStart, StateGeneratingBrief, StateIdle); err != nil {
		return nil, err
	}

	started := m.now()
	b, err := m.deps.Briefs.Generate(ctx, req)

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.settle(TriggerStart, StateIdle, started, err)
		return nil, err
	}
	m.brief = b
	m.lang = req.Lang
	m.review = nil
	m.log = []domain.Interaction{m.entry(domain.InteractionInitialBrief, func(it *domain.Interaction) {
		it.Brief = b
	})}
	m.settle(TriggerStart, StateInProgress, started, nil)
	return b.Clone(), nil
}

// SubmitRevision records a design and asks the client for feedback. The
// submission stays in the log even when the feedback call fails.
func (m *Machine) SubmitRevision(ctx context.Context, img imagecap.Image, note string) (domain.Interaction, error) {
	if len(img.Data) == 0 {
		return domain.Interaction{}, &domain.ValidationError{Field: "image", Message: "Please upload a valid image file."}
	}
	if err := m.begin(TriggerSubmit, StateSubmittingRevision, StateInProgress); err != nil {
		return domain.Interaction{}, err
	}

	m.mu.Lock()
	m.log = append(m.log, m.entry(domain.InteractionSubmission, func(it *domain.Interaction) {
		it.Submission = &domain.Submission{MIMEType: img.MIMEType, Size: len(img.Data), Note: note}
	}))
	req := intelligence.FeedbackRequest{Image: img, Brief: m.brief, Lang: m.lang, Note: note}
	m.mu.Unlock()

	started := m.now()
	text, err := m.deps.Feedback.Feedback(ctx, req)

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.settle(TriggerSubmit, StateInProgress, started, err)
		return domain.Interaction{}, err
	}
	fb := m.entry(domain.InteractionFeedback, func(it *domain.Interaction) {
		it.Feedback = text
	})
	m.log = append(m.log, fb)
	m.settle(TriggerSubmit, StateInProgress, started, nil)
	return fb, nil
}

// Complete asks the client for a final review of the whole log.
func (m *Machine) Complete(ctx context.Context) (domain.FinalReview, error) {
	if err := m.begin(TriggerComplete, StateCompletingProject, StateInProgress); err != nil {
		return domain.FinalReview{}, err
	}

	m.mu.Lock()
	b, lang, log := m.brief, m.lang, slices.Clone(m.log)
	m.mu.Unlock()

	started := m.now()
	review, err := m.deps.Reviewer.FinalReview(ctx, b, log, lang)

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.settle(TriggerComplete, StateInProgress, started, err)
		return domain.FinalReview{}, err
	}
	m.review = &review
	m.settle(TriggerComplete, StateCompleted, started, nil)
	return review, nil
}

// Reset clears the brief, log and review. It is refused while a call is
// in flight.
func (m *Machine) Reset() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state.InFlight() {
		return ErrBusy
	}
	from := m.state
	m.state = StateIdle
	m.brief = nil
	m.log = nil
	m.review = nil
	m.lastErr = nil
	m.deps.Observer.OnTransition(TransitionEvent{Trigger: TriggerReset, From: from, To: StateIdle})
	return nil
}

// Snapshot returns a deep copy of the machine's current data.
func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := Snapshot{State: m.state, Lang: m.lang, Log: make([]domain.Interaction, len(m.log))}
	if m.brief != nil {
		s.Brief = m.brief.Clone()
	}
	for i, it := range m.log {
		if it.Brief != nil {
			it.Brief = it.Brief.Clone()
		}
		if it.Submission != nil {
			sub := *it.Submission
			it.Submission = &sub
		}
		s.Log[i] = it
	}
	if m.review != nil {
		r := *m.review
		s.Review = &r
	}
	if m.lastErr != nil {
		s.LastError = m.lastErr.Error()
	}
	return s
}

// begin moves from the required state into the in-flight state.
func (m *Machine) begin(trigger Trigger, to, required State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state.InFlight() {
		return ErrBusy
	}
	if m.state != required {
		return &InvalidTransitionError{Trigger: trigger, From: m.state}
	}
	from := m.state
	m.state = to
	m.lastErr = nil
	m.deps.Observer.OnTransition(TransitionEvent{Trigger: trigger, From: from, To: to, LogLen: len(m.log)})
	return nil
}

// settle ends an in-flight state. Callers hold m.mu.
func (m *Machine) settle(trigger Trigger, to State, started time.Time, err error) {
	from := m.state
	m.state = to
	m.lastErr = err
	m.deps.Observer.OnTransition(TransitionEvent{
		Trigger:  trigger,
		From:     from,
		To:       to,
		Duration: m.now().Sub(started),
		Err:      err,
		LogLen:   len(m.log),
	})
}

func (m *Machine) entry(kind domain.InteractionKind, fill func(*domain.Interaction)) domain.Interaction {
	it := domain.Interaction{ID: uuid.NewString(), Kind: kind, CreatedAt: m.now().UTC()}
	fill(&it)
	return it
}
