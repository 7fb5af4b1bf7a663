package domain

import "time"

// Submission is a design the user sent to the mock client. The image bytes
// go to the feedback call only; the log keeps their type and size.
type Submission struct {
	MIMEType string `json:"mimeType"`
	Size     int    `json:"size"`
	Note     string `json:"note,omitempty"`
}

// Interaction is one entry of a scenario's append-only log. Exactly one of
// Brief, Submission or Feedback is set, according to Kind.
type Interaction struct {
	ID         string          `json:"id"`
	Kind       InteractionKind `json:"kind"`
	Brief      Brief           `json:"brief,omitempty"`
	Submission *Submission     `json:"submission,omitempty"`
	Feedback   string          `json:"feedback,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

type FinalReview struct {
	Rating      int    `json:"rating"`
	Testimonial string `json:"testimonial"`
}

// DailyChallenge is a short prompt that can seed a full brief.
type DailyChallenge struct {
	Category    DesignCategory `json:"category"`
	Industry    string         `json:"industry"`
	ProjectName string         `json:"projectName"`
	Description string         `json:"description"`
	Keywords    []string       `json:"keywords"`
}
