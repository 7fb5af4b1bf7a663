package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"google.golang.org/genai"
)

// Image is inline binary content sent alongside a prompt.
type Image struct {
	Data     []byte
	MIMEType string
}

// GenerateRequest holds the parameters for an LLM generation call.
type GenerateRequest struct {
	Task         TaskType
	SystemPrompt string
	UserPrompt   string
	Schema       *Schema // non-nil requests JSON output shaped by the schema
	Images       []Image
	Temperature  *float64 // nil uses task default
	TopP         *float64 // nil uses task default
	MaxTokens    *int     // nil uses task default
}

// GenerateResponse holds the result of an LLM generation call.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// LLMClient provides access to a language model for text generation.
type LLMClient interface {
	// Generate sends a prompt and returns the raw text response.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// Available reports whether the backend looks usable.
	Available(ctx context.Context) bool
}

type sampling struct {
	temperature float64
	topP        float64
	maxTokens   int
}

func (c LLMConfig) sampling(req GenerateRequest) sampling {
	tc := c.Tasks[req.Task]
	s := sampling{temperature: tc.Temperature, topP: tc.TopP, maxTokens: tc.MaxTokens}
	if req.Temperature != nil {
		s.temperature = *req.Temperature
	}
	if req.TopP != nil {
		s.topP = *req.TopP
	}
	if req.MaxTokens != nil {
		s.maxTokens = *req.MaxTokens
	}
	return s
}

type attemptFunc func(ctx context.Context) (text, model string, err error)

// retryBackoff is the pause before the first retry; it doubles after that.
var retryBackoff = 500 * time.Millisecond

// generateWithRetry runs attempt under the task timeout, up to
// 1+cfg.MaxRetries times. The outcome goes to observer and a failure is
// mapped onto the package sentinels.
func generateWithRetry(ctx context.Context, cfg LLMConfig, observer Observer, task TaskType, attempt attemptFunc) (*GenerateResponse, error) {
	start := time.Now()
	if ms := cfg.TaskTimeout(task); ms > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(ms)*time.Millisecond)
		defer cancel()
	}

	event := LLMCallEvent{Task: task, Model: cfg.Model}
	backoff := retryBackoff
	var lastErr error
	for event.Attempts < 1+cfg.MaxRetries {
		if event.Attempts > 0 && !sleep(ctx, backoff) {
			break
		}
		event.Attempts++

		text, model, err := attempt(ctx)
		if err == nil {
			event.LatencyMs = time.Since(start).Milliseconds()
			event.Success = true
			observer.OnCallComplete(event)
			if model == "" {
				model = cfg.Model
			}
			return &GenerateResponse{Text: text, Model: model, LatencyMs: event.LatencyMs}, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
		backoff *= 2
	}

	final := classifyFailure(ctx, lastErr)
	event.LatencyMs = time.Since(start).Milliseconds()
	event.ErrorCode = errorCode(final)
	observer.OnCallComplete(event)
	return nil, final
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// classifyFailure maps the last attempt's error onto the package sentinels,
// keeping the cause in the message. A caller cancellation is returned as is.
func classifyFailure(ctx context.Context, err error) error {
	switch {
	case errors.Is(ctx.Err(), context.Canceled):
		return ctx.Err()
	case ctx.Err() != nil:
		return withCause(ErrTimeout, err)
	case isUnavailable(err):
		return withCause(ErrUnavailable, err)
	default:
		return withCause(ErrRetryExhausted, err)
	}
}

func withCause(sentinel, cause error) error {
	if cause == nil || errors.Is(cause, context.DeadlineExceeded) {
		return sentinel
	}
	return fmt.Errorf("%w: %v", sentinel, cause)
}

// isUnavailable reports network failures and Gemini overload or server
// errors.
func isUnavailable(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	var dnsErr *net.DNSError
	if errors.As(err, &netErr) || errors.As(err, &dnsErr) {
		return true
	}
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= http.StatusInternalServerError
	}
	return false
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.Canceled):
		return "CANCELED"
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	case errors.Is(err, ErrRetryExhausted):
		return "RETRY_EXHAUSTED"
	default:
		return "UNKNOWN"
	}
}
