package intelligence

import (
	"context"
	"sync"

	"github.com/alexanderramin/clientbuddy/internal/domain"
	"github.com/alexanderramin/clientbuddy/internal/llm"
)

type mockLLMClient struct {
	response string
	err      error
	// respond, when set, overrides response/err per request.
	respond func(req llm.GenerateRequest) (string, error)

	mu       sync.Mutex
	requests []llm.GenerateRequest
}

func (m *mockLLMClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	text, err := m.response, m.err
	if m.respond != nil {
		text, err = m.respond(req)
	}
	if err != nil {
		return nil, err
	}
	return &llm.GenerateResponse{Text: text, Model: "gemini-2.5-flash"}, nil
}

func (m *mockLLMClient) Available(_ context.Context) bool { return m.err == nil }

func (m *mockLLMClient) lastRequest() llm.GenerateRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		return llm.GenerateRequest{}
	}
	return m.requests[len(m.requests)-1]
}

func (m *mockLLMClient) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

func testLogoBrief() *domain.LogoBrief {
	return &domain.LogoBrief{
		BriefMeta: domain.BriefMeta{
			Type:              domain.BriefLogo,
			Lang:              domain.LangEN,
			ClientPersonality: domain.Perfectionist,
			Industry:          "Cafe (Food & Beverage)",
		},
		BrandName:       "Kopi Kita",
		Tagline:         "Brewed with care",
		BrandType:       "Coffee roastery",
		Audience:        "young professionals",
		Focus:           "single origin beans",
		Values:          []string{"honesty", "craft"},
		StyleAdjectives: []string{"warm", "bold"},
		LogoToAvoid:     "generic coffee cups",
		Competitor:      "Big Chain Coffee",
		Description:     "A small-batch roastery.",
		Palette:         domain.Palette{Name: "Warm & Energetic", Colors: []string{"#C14925"}},
		OtherNote:       "Must work in black and white.",
		FontNote:        "Modern sans-serif.",
	}
}
