package intelligence

import (
	"context"
	"fmt"
	"slices"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"github.com/alexanderramin/clientbuddy/internal/catalog"
	"github.com/alexanderramin/clientbuddy/internal/domain"
	"github.com/alexanderramin/clientbuddy/internal/llm"
)

// ChallengeService produces the day's design challenges.
type ChallengeService interface {
	// Daily returns one challenge per daily slot, in slot order. A slot whose
	// generation fails holds a placeholder challenge instead of failing the
	// whole batch.
	Daily(ctx context.Context, lang domain.Language) ([]domain.DailyChallenge, error)
}

type challengeService struct {
	client llm.LLMClient
	cache  *lru.Cache[string, []domain.DailyChallenge]
	now    func() time.Time
}

// NewChallengeService creates a ChallengeService. Complete batches are
// cached per day and language, up to cacheSize batches.
func NewChallengeService(client llm.LLMClient, cacheSize int) (ChallengeService, error) {
	if cacheSize <= 0 {
		cacheSize = 8
	}
	cache, err := lru.New[string, []domain.DailyChallenge](cacheSize)
	if err != nil {
		return nil, err
	}
	return &challengeService{client: client, cache: cache, now: time.Now}, nil
}

type challengePayload struct {
	ProjectName string   `json:"projectName" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Keywords    []string `json:"keywords" validate:"required,min=1"`
}

func (s *challengeService) Daily(ctx context.Context, lang domain.Language) ([]domain.DailyChallenge, error) {
	if lang == "" {
		lang = domain.LangEN
	}
	date := s.now().UTC().Format(time.DateOnly)
	key := date + "/" + string(lang)

	if cached, ok := s.cache.Get(key); ok {
		return cloneChallenges(cached), nil
	}

	slots := catalog.DailyChallengeSlots()
	results := make([]domain.DailyChallenge, len(slots))
	failed := make([]bool, len(slots))

	g, gctx := errgroup.WithContext(ctx)
	for i, slot := range slots {
		g.Go(func() error {
			c, err := s.generate(gctx, slot, lang, date)
			if err != nil {
				failed[i] = true
				c = fallbackChallenge(slot, err)
			}
			results[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !slices.Contains(failed, true) {
		s.cache.Add(key, cloneChallenges(results))
	}
	return results, nil
}

func (s *challengeService) generate(ctx context.Context, slot catalog.ChallengeSlot, lang domain.Language, date string) (domain.DailyChallenge, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskChallenge,
		SystemPrompt: challengeSystemPrompt,
		UserPrompt:   challengeUserPrompt(slot.Category, lang, date),
		Schema:       challengeSchema,
	})
	if err != nil {
		return domain.DailyChallenge{}, err
	}
	if resp.Text == "" {
		return domain.DailyChallenge{}, fmt.Errorf("no challenge content returned for %s", slot.Category)
	}

	p, err := llm.ExtractJSON(resp.Text, llm.ValidateStruct[challengePayload]())
	if err != nil {
		return domain.DailyChallenge{}, err
	}
	keywords := p.Keywords
	if len(keywords) > 3 {
		keywords = keywords[:3]
	}
	return domain.DailyChallenge{
		Category:    slot.Category,
		Industry:    slot.Industry,
		ProjectName: p.ProjectName,
		Description: p.Description,
		Keywords:    keywords,
	}, nil
}

func fallbackChallenge(slot catalog.ChallengeSlot, err error) domain.DailyChallenge {
	return domain.DailyChallenge{
		Category:    slot.Category,
		Industry:    slot.Industry,
		ProjectName: "Error Generating Challenge",
		Description: err.Error(),
		Keywords:    []string{"error", "debug", "retry"},
	}
}

func cloneChallenges(in []domain.DailyChallenge) []domain.DailyChallenge {
	out := slices.Clone(in)
	for i := range out {
		out[i].Keywords = slices.Clone(in[i].Keywords)
	}
	return out
}
