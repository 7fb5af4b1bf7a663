package intelligence

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/clientbuddy/internal/domain"
	"github.com/alexanderramin/clientbuddy/internal/imagecap"
	"github.com/alexanderramin/clientbuddy/internal/llm"
)

var testImage = imagecap.Image{Data: []byte{0x89, 'P', 'N', 'G'}, MIMEType: "image/png"}

func TestFeedbackService_Prompt(t *testing.T) {
	client := &mockLLMClient{response: "Hi, thanks for sending this over. The kerning is off by 2px."}
	svc := NewFeedbackService(client)

	text, err := svc.Feedback(context.Background(), FeedbackRequest{
		Image: testImage,
		Brief: testLogoBrief(),
		Lang:  domain.LangID,
		Note:  "Went with a warmer red & a rounder mark.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Hi, thanks for sending this over. The kerning is off by 2px.", text)

	req := client.lastRequest()
	assert.Equal(t, llm.TaskFeedback, req.Task)
	assert.Contains(t, req.SystemPrompt, `Your personality is: "The Perfectionist".`)
	assert.Contains(t, req.SystemPrompt, `- If you are "The Indecisive", be vague, contradictory, and ask for more options. Express uncertainty.`)
	assert.True(t, strings.HasSuffix(req.SystemPrompt, "The response MUST be in Indonesian."))

	assert.True(t, strings.HasPrefix(req.UserPrompt, "This is the original project brief we agreed on:\n```json\n{\n  \"type\": \"logo\""))
	assert.Contains(t, req.UserPrompt, `"palette": {`)
	assert.Contains(t, req.UserPrompt, "\n\nThe designer also sent this note: \"Went with a warmer red & a rounder mark.\"")
	assert.True(t, strings.HasSuffix(req.UserPrompt, "\n\nBased on the brief, my note, and your personality, please provide your feedback."))

	require.Len(t, req.Images, 1)
	assert.Equal(t, "image/png", req.Images[0].MIMEType)
	assert.Equal(t, testImage.Data, req.Images[0].Data)
}

func TestFeedbackService_NoNoteAndBriefLanguage(t *testing.T) {
	client := &mockLLMClient{response: "Looks nice."}
	svc := NewFeedbackService(client)

	_, err := svc.Feedback(context.Background(), FeedbackRequest{Image: testImage, Brief: testLogoBrief()})
	require.NoError(t, err)

	req := client.lastRequest()
	assert.NotContains(t, req.UserPrompt, "also sent this note")
	assert.Contains(t, req.SystemPrompt, "The response MUST be in English.")
}

func TestFeedbackService_Errors(t *testing.T) {
	svc := NewFeedbackService(&mockLLMClient{response: ""})
	_, err := svc.Feedback(context.Background(), FeedbackRequest{Image: testImage, Brief: testLogoBrief()})
	var genErr *domain.GenerationError
	require.True(t, errors.As(err, &genErr))
	assert.ErrorIs(t, err, errSpeechless)
	assert.Contains(t, err.Error(), "client returned no feedback")

	svc = NewFeedbackService(&mockLLMClient{err: llm.ErrTimeout})
	_, err = svc.Feedback(context.Background(), FeedbackRequest{Image: testImage, Brief: testLogoBrief()})
	assert.ErrorIs(t, err, llm.ErrTimeout)

	client := &mockLLMClient{response: "unused"}
	svc = NewFeedbackService(client)
	_, err = svc.Feedback(context.Background(), FeedbackRequest{Brief: testLogoBrief()})
	var valErr *domain.ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, "image", valErr.Field)
	assert.Equal(t, 0, client.calls())
}

func scenarioLog() []domain.Interaction {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return []domain.Interaction{
		{ID: "1", Kind: domain.InteractionInitialBrief, Brief: testLogoBrief(), CreatedAt: now},
		{ID: "2", Kind: domain.InteractionSubmission, Submission: &domain.Submission{MIMEType: "image/png", Size: 8, Note: "First draft"}, CreatedAt: now},
		{ID: "3", Kind: domain.InteractionFeedback, Feedback: "Make it symmetrical.", CreatedAt: now},
		{ID: "4", Kind: domain.InteractionSubmission, Submission: &domain.Submission{MIMEType: "image/png", Size: 8}, CreatedAt: now},
	}
}

func TestReviewHistory_SpeakersByKind(t *testing.T) {
	history, err := reviewHistory(scenarioLog())
	require.NoError(t, err)
	require.Len(t, history, 4)

	assert.Equal(t, "Initial Brief", history[0].Speaker)
	assert.Contains(t, history[0].Content, `"brandName":"Kopi Kita"`)
	assert.Equal(t, "Designer", history[1].Speaker)
	assert.Equal(t, `{"type":"user_submission","submissionNote":"First draft"}`, history[1].Content)
	assert.Equal(t, "Client (Me)", history[2].Speaker)
	assert.Equal(t, `{"type":"client_feedback","feedback":"Make it symmetrical."}`, history[2].Content)
	assert.Equal(t, `{"type":"user_submission","submissionNote":""}`, history[3].Content)
}

func TestReviewService_FinalReview(t *testing.T) {
	client := &mockLLMClient{response: `{"rating": 3.6, "testimonial": "Acceptable, eventually."}`}
	svc := NewReviewService(client)

	review, err := svc.FinalReview(context.Background(), testLogoBrief(), scenarioLog(), domain.LangEN)
	require.NoError(t, err)
	assert.Equal(t, 4, review.Rating)
	assert.Equal(t, "Acceptable, eventually.", review.Testimonial)

	req := client.lastRequest()
	assert.Equal(t, llm.TaskReview, req.Task)
	assert.Contains(t, req.SystemPrompt, "You are giving a final review for a completed project.")
	assert.Contains(t, req.SystemPrompt, "Your entire response must be in English and strictly follow the JSON schema.")
	assert.True(t, strings.HasPrefix(req.UserPrompt, "Here is the full history of our project:\n```json\n["))
	assert.True(t, strings.HasSuffix(req.UserPrompt, "\n```\nPlease provide your final review."))
	assert.NotContains(t, req.UserPrompt, "iVBORw0KGgo")
	assert.Equal(t, []string{"rating", "testimonial"}, req.Schema.Required)
}

func TestReviewService_RejectsOutOfRangeRating(t *testing.T) {
	for _, raw := range []string{
		`{"rating": 0, "testimonial": "Bad."}`,
		`{"rating": 7, "testimonial": "Amazing."}`,
		`{"rating": 5}`,
	} {
		svc := NewReviewService(&mockLLMClient{response: raw})
		_, err := svc.FinalReview(context.Background(), testLogoBrief(), scenarioLog(), domain.LangEN)
		assert.ErrorIs(t, err, llm.ErrInvalidOutput, raw)
	}
}
