package domain

// GenerationError wraps a failed AI call. Op names the operation, e.g.
// "brief generation" or "design feedback".
type GenerationError struct {
	Op  string
	Err error
}

func (e *GenerationError) Error() string {
	return e.Op + " failed: " + e.Err.Error()
}

func (e *GenerationError) Unwrap() error { return e.Err }

// TranslationError wraps a failed brief translation. The original brief
// stays valid when this is returned.
type TranslationError struct {
	Err error
}

func (e *TranslationError) Error() string {
	return "brief translation failed: " + e.Err.Error()
}

func (e *TranslationError) Unwrap() error { return e.Err }

// ValidationError reports bad caller input. Message is shown to users as is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
