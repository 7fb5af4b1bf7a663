package intelligence

import (
	"context"
	"errors"

	"github.com/alexanderramin/clientbuddy/internal/domain"
	"github.com/alexanderramin/clientbuddy/internal/imagecap"
	"github.com/alexanderramin/clientbuddy/internal/llm"
)

// errSpeechless is returned when the model sends back no feedback text.
var errSpeechless = errors.New("client returned no feedback")

// FeedbackRequest is a design submitted against a brief.
type FeedbackRequest struct {
	Image imagecap.Image
	Brief domain.Brief
	// Lang is the reply language; empty uses the brief's language.
	Lang domain.Language
	Note string
}

// FeedbackService asks the simulated client to react to submitted work.
type FeedbackService interface {
	// Feedback returns the client's chat-style reaction to a design.
	Feedback(ctx context.Context, req FeedbackRequest) (string, error)
}

type feedbackService struct {
	client llm.LLMClient
}

// NewFeedbackService creates a FeedbackService backed by an LLM client.
func NewFeedbackService(client llm.LLMClient) FeedbackService {
	return &feedbackService{client: client}
}

func (s *feedbackService) Feedback(ctx context.Context, req FeedbackRequest) (string, error) {
	if req.Brief == nil {
		return "", &domain.ValidationError{Field: "brief", Message: "A brief is required before submitting a design."}
	}
	if len(req.Image.Data) == 0 {
		return "", &domain.ValidationError{Field: "image", Message: "Please upload a valid image file."}
	}
	lang := req.Lang
	if lang == "" {
		lang = req.Brief.Meta().Lang
	}

	briefJSON, err := promptJSON(req.Brief, 2)
	if err != nil {
		return "", &domain.GenerationError{Op: "design feedback", Err: err}
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskFeedback,
		SystemPrompt: feedbackSystemPrompt(req.Brief.Meta().ClientPersonality, lang),
		UserPrompt:   feedbackUserPrompt(briefJSON, req.Note),
		Images:       []llm.Image{{Data: req.Image.Data, MIMEType: req.Image.MIMEType}},
	})
	if err != nil {
		return "", &domain.GenerationError{Op: "design feedback", Err: err}
	}
	if resp.Text == "" {
		return "", &domain.GenerationError{Op: "design feedback", Err: errSpeechless}
	}
	return resp.Text, nil
}
