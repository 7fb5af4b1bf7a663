package llm

import "errors"

var (
	// ErrUnavailable indicates the model backend is unreachable.
	ErrUnavailable = errors.New("llm backend unavailable")

	// ErrTimeout indicates the LLM request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrInvalidOutput indicates the LLM response could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid llm output format")

	// ErrEmptyResponse indicates the model answered with no text.
	ErrEmptyResponse = errors.New("llm returned an empty response")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")

	// ErrMissingAPIKey indicates the Gemini backend was selected without a key.
	ErrMissingAPIKey = errors.New("API key is not set; configure llm.api_key or GEMINI_API_KEY to use the AI features")

	// ErrUnknownProvider indicates an unsupported llm.provider value.
	ErrUnknownProvider = errors.New("unknown llm provider")
)
