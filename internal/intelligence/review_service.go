package intelligence

import (
	"context"
	"errors"
	"math"

	"github.com/alexanderramin/clientbuddy/internal/domain"
	"github.com/alexanderramin/clientbuddy/internal/llm"
)

// ReviewService produces the client's closing verdict on a scenario.
type ReviewService interface {
	// FinalReview rates the project from its whole interaction log.
	FinalReview(ctx context.Context, b domain.Brief, log []domain.Interaction, lang domain.Language) (domain.FinalReview, error)
}

type reviewService struct {
	client llm.LLMClient
}

// NewReviewService creates a ReviewService backed by an LLM client.
func NewReviewService(client llm.LLMClient) ReviewService {
	return &reviewService{client: client}
}

type historyEntry struct {
	Speaker string `json:"speaker"`
	Content string `json:"content"`
}

type submissionContent struct {
	Type           domain.InteractionKind `json:"type"`
	SubmissionNote string                 `json:"submissionNote"`
}

type feedbackContent struct {
	Type     domain.InteractionKind `json:"type"`
	Feedback string                 `json:"feedback"`
}

// reviewHistory serializes the log for the model. Speakers come from the
// entry kind; submissions leave out the image bytes.
func reviewHistory(log []domain.Interaction) ([]historyEntry, error) {
	out := make([]historyEntry, 0, len(log))
	for _, it := range log {
		var (
			speaker string
			content any
		)
		switch it.Kind {
		case domain.InteractionInitialBrief:
			speaker, content = "Initial Brief", it.Brief
		case domain.InteractionSubmission:
			note := ""
			if it.Submission != nil {
				note = it.Submission.Note
			}
			speaker, content = "Designer", submissionContent{Type: it.Kind, SubmissionNote: note}
		case domain.InteractionFeedback:
			speaker, content = "Client (Me)", feedbackContent{Type: it.Kind, Feedback: it.Feedback}
		default:
			continue
		}
		data, err := promptJSON(content, 0)
		if err != nil {
			return nil, err
		}
		out = append(out, historyEntry{Speaker: speaker, Content: string(data)})
	}
	return out, nil
}

type reviewPayload struct {
	Rating      float64 `json:"rating"`
	Testimonial string  `json:"testimonial" validate:"required"`
}

func validateRating(p reviewPayload) error {
	r := math.Round(p.Rating)
	if r < 1 || r > 5 {
		return errors.New("rating must be between 1 and 5")
	}
	return llm.ValidateStruct[reviewPayload]()(p)
}

func (s *reviewService) FinalReview(ctx context.Context, b domain.Brief, log []domain.Interaction, lang domain.Language) (domain.FinalReview, error) {
	if b == nil {
		return domain.FinalReview{}, &domain.ValidationError{Field: "brief", Message: "A brief is required for a final review."}
	}
	if lang == "" {
		lang = b.Meta().Lang
	}

	history, err := reviewHistory(log)
	if err != nil {
		return domain.FinalReview{}, &domain.GenerationError{Op: "final review", Err: err}
	}
	historyJSON, err := promptJSON(history, 2)
	if err != nil {
		return domain.FinalReview{}, &domain.GenerationError{Op: "final review", Err: err}
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskReview,
		SystemPrompt: reviewSystemPrompt(b.Meta().ClientPersonality, lang),
		UserPrompt:   reviewUserPrompt(historyJSON),
		Schema:       reviewSchema,
	})
	if err != nil {
		return domain.FinalReview{}, &domain.GenerationError{Op: "final review", Err: err}
	}
	if resp.Text == "" {
		return domain.FinalReview{}, &domain.GenerationError{Op: "final review", Err: llm.ErrEmptyResponse}
	}

	p, err := llm.ExtractJSON(resp.Text, validateRating)
	if err != nil {
		return domain.FinalReview{}, &domain.GenerationError{Op: "final review", Err: err}
	}
	return domain.FinalReview{Rating: int(math.Round(p.Rating)), Testimonial: p.Testimonial}, nil
}
