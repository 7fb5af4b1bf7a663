package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kaptinlin/jsonrepair"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// SchemaValidator checks a decoded model reply.
type SchemaValidator[T any] func(T) error

// ValidateStruct returns a SchemaValidator that checks the `validate`
// struct tags of T.
func ValidateStruct[T any]() SchemaValidator[T] {
	return func(v T) error {
		return validate.Struct(v)
	}
}

// ExtractJSON decodes the first JSON object in a model reply into T.
// Code fences and surrounding prose are ignored. An object that does not
// decode as is gets one jsonrepair pass (trailing commas, comments,
// truncated output). check, when non-nil, runs on the decoded value.
func ExtractJSON[T any](raw string, check SchemaValidator[T]) (T, error) {
	var zero T

	obj, ok := objectSpan(raw)
	if !ok {
		return zero, fmt.Errorf("%w: no JSON object found in response", ErrInvalidOutput)
	}

	out, err := decodeJSON[T](obj)
	if err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(obj)
		if repairErr != nil {
			return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
		}
		if out, err = decodeJSON[T](repaired); err != nil {
			return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
		}
	}

	if check != nil {
		if err := check(out); err != nil {
			return zero, fmt.Errorf("%w: validation failed: %v", ErrInvalidOutput, err)
		}
	}
	return out, nil
}

func decodeJSON[T any](s string) (T, error) {
	var v T
	err := json.Unmarshal([]byte(s), &v)
	return v, err
}

// objectSpan returns the text from the first '{' to its matching '}'. When
// the object is cut off it returns everything after the brace, minus a
// closing fence. Braces inside strings do not count.
func objectSpan(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString, escaped := false, false
	for i := start; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case inString:
			switch c {
			case '\\':
				escaped = true
			case '"':
				inString = false
			}
		case c == '"':
			inString = true
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return strings.TrimRight(strings.TrimSpace(s[start:]), "`"), true
}
