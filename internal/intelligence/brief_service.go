package intelligence

import (
	"context"

	"github.com/alexanderramin/clientbuddy/internal/brief"
	"github.com/alexanderramin/clientbuddy/internal/catalog"
	"github.com/alexanderramin/clientbuddy/internal/domain"
	"github.com/alexanderramin/clientbuddy/internal/llm"
	"github.com/alexanderramin/clientbuddy/internal/random"
)

// BriefRequest describes the brief to generate. Empty industry and region
// keys fall back to the catalog defaults; an empty language means English.
type BriefRequest struct {
	Category    domain.DesignCategory  `json:"category"`
	IndustryKey string                 `json:"industry"`
	RegionKey   string                 `json:"region"`
	Lang        domain.Language        `json:"lang"`
	Challenge   *domain.DailyChallenge `json:"challenge,omitempty"`
}

func (r BriefRequest) withDefaults() BriefRequest {
	if r.IndustryKey == "" {
		r.IndustryKey = catalog.DefaultIndustry
	}
	if r.RegionKey == "" {
		r.RegionKey = catalog.DefaultRegion
	}
	if r.Lang == "" {
		r.Lang = domain.LangEN
	}
	return r
}

// BriefService generates fictional client briefs and translates them.
type BriefService interface {
	// Generate produces a brief for the request's category.
	Generate(ctx context.Context, req BriefRequest) (domain.Brief, error)

	// Translate returns a translated copy of b. b itself is not modified.
	Translate(ctx context.Context, b domain.Brief, target domain.Language) (domain.Brief, error)
}

type briefService struct {
	client llm.LLMClient
	rnd    random.Source
}

// NewBriefService creates a BriefService backed by an LLM client. rnd
// drives personality and logo enrichment (random.Default when nil).
func NewBriefService(client llm.LLMClient, rnd random.Source) BriefService {
	if rnd == nil {
		rnd = random.Default()
	}
	return &briefService{client: client, rnd: rnd}
}

func (s *briefService) Generate(ctx context.Context, req BriefRequest) (domain.Brief, error) {
	req = req.withDefaults()

	cfg, err := brief.ConfigFor(brief.ResolveType(req.Category))
	if err != nil {
		return nil, &domain.GenerationError{Op: "brief generation", Err: err}
	}

	industryName := catalog.IndustryName(req.IndustryKey, req.Lang)
	prompt := cfg.BuildPrompt(brief.PromptInput{
		IndustryName: industryName,
		RegionKey:    req.RegionKey,
		RegionName:   catalog.RegionName(req.RegionKey, req.Lang),
		Lang:         req.Lang,
		Challenge:    req.Challenge,
		SubCategory:  req.Category,
	})

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskBrief,
		SystemPrompt: brief.SystemPrompt,
		UserPrompt:   prompt,
		Schema:       cfg.Schema,
	})
	if err != nil {
		return nil, &domain.GenerationError{Op: "brief generation", Err: err}
	}
	if resp.Text == "" {
		return nil, &domain.GenerationError{Op: "brief generation", Err: llm.ErrEmptyResponse}
	}

	b, err := cfg.PostProcess(resp.Text, brief.ProcessInput{
		IndustryName: industryName,
		Lang:         req.Lang,
		Rand:         s.rnd,
	})
	if err != nil {
		return nil, &domain.GenerationError{Op: "brief generation", Err: err}
	}
	return b, nil
}
