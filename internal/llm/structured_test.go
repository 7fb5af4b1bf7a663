package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reviewPayload struct {
	Rating      float64 `json:"rating"`
	Testimonial string  `json:"testimonial"`
}

type challengePayload struct {
	ProjectName string   `json:"projectName" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Keywords    []string `json:"keywords" validate:"required,min=1"`
}

func TestExtractJSON_Shapes(t *testing.T) {
	cases := map[string]string{
		"clean":       `{"rating":4,"testimonial":"Great work"}`,
		"fenced":      "```json\n{\"rating\":4,\"testimonial\":\"Great work\"}\n```",
		"prose":       "Here is my review:\n{\"rating\":4,\"testimonial\":\"Great work\"}\nThanks!",
		"bare fence":  "Sure\n```\n{\"rating\":4,\"testimonial\":\"Great work\"}\n```\nBye",
		"comments":    "{\n  // score\n  \"rating\": 4, /* text */ \"testimonial\": \"Great work\"\n}",
		"trailing ,":  `{"rating":4,"testimonial":"Great work",}`,
		"cut + fence": "```json\n{\"rating\":4,\"testimonial\":\"Great work\"\n```",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := ExtractJSON[reviewPayload](raw, nil)
			require.NoError(t, err)
			assert.Equal(t, reviewPayload{Rating: 4, Testimonial: "Great work"}, got)
		})
	}
}

func TestExtractJSON_BracesInsideStrings(t *testing.T) {
	raw := `{"rating":5,"testimonial":"They nailed the {brand} feel \"}\" twice"} trailing`
	got, err := ExtractJSON[reviewPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, `They nailed the {brand} feel "}" twice`, got.Testimonial)
}

func TestExtractJSON_NestedObjects(t *testing.T) {
	type palette struct {
		Name  string            `json:"name"`
		Roles map[string]string `json:"roles"`
	}
	got, err := ExtractJSON[palette](`{"name":"Dusk","roles":{"primary":"#1d3557"}}`, nil)
	require.NoError(t, err)
	assert.Equal(t, "#1d3557", got.Roles["primary"])
}

func TestExtractJSON_Rejects(t *testing.T) {
	for name, raw := range map[string]string{
		"no object":  "I'm speechless.",
		"wrong type": `{"rating":"five","testimonial":"ok"}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ExtractJSON[reviewPayload](raw, nil)
			assert.ErrorIs(t, err, ErrInvalidOutput)
		})
	}
}

func TestExtractJSON_RunsCheck(t *testing.T) {
	inRange := func(p reviewPayload) error {
		if p.Rating < 1 || p.Rating > 5 {
			return errors.New("rating out of range")
		}
		return nil
	}

	_, err := ExtractJSON(`{"rating":9,"testimonial":"wow"}`, inRange)
	assert.ErrorIs(t, err, ErrInvalidOutput)
	assert.Contains(t, err.Error(), "validation failed: rating out of range")

	got, err := ExtractJSON(`{"rating":3,"testimonial":"fine"}`, inRange)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got.Rating)
}

func TestExtractJSON_RepairsTruncatedObject(t *testing.T) {
	raw := `{"projectName":"Nova","description":"Design a logo.","keywords":["bold"`
	got, err := ExtractJSON(raw, ValidateStruct[challengePayload]())
	require.NoError(t, err)
	assert.Equal(t, []string{"bold"}, got.Keywords)
}

func TestValidateStruct_RejectsMissingFields(t *testing.T) {
	raw := `{"projectName":"Nova","keywords":[]}`
	_, err := ExtractJSON(raw, ValidateStruct[challengePayload]())
	assert.ErrorIs(t, err, ErrInvalidOutput)
	assert.Contains(t, err.Error(), "Description")
}
