package brief

import (
	"fmt"

	"github.com/alexanderramin/clientbuddy/internal/catalog"
	"github.com/alexanderramin/clientbuddy/internal/domain"
	"github.com/alexanderramin/clientbuddy/internal/llm"
	"github.com/alexanderramin/clientbuddy/internal/random"
)

// ProcessInput carries the values stamped onto a generated brief.
type ProcessInput struct {
	IndustryName string
	Lang         domain.Language
	// Rand drives personality and logo enrichment; nil uses random.Default.
	Rand random.Source
}

func (in ProcessInput) source() random.Source {
	if in.Rand == nil {
		return random.Default()
	}
	return in.Rand
}

// Config is the per-type recipe for producing a brief.
type Config struct {
	Type        domain.CoreBriefType
	Schema      *llm.Schema
	BuildPrompt func(PromptInput) string
	PostProcess func(raw string, in ProcessInput) (domain.Brief, error)
}

var configs = map[domain.CoreBriefType]Config{
	domain.BriefLogo: {
		Type:        domain.BriefLogo,
		Schema:      logoSchema(),
		BuildPrompt: buildLogoPrompt,
		PostProcess: processLogo,
	},
	domain.BriefWeb: {
		Type:        domain.BriefWeb,
		Schema:      webSchema(),
		BuildPrompt: buildWebPrompt,
		PostProcess: processAs[domain.WebBrief],
	},
	domain.BriefBrand: {
		Type:        domain.BriefBrand,
		Schema:      brandSchema(),
		BuildPrompt: buildBrandPrompt,
		PostProcess: processAs[domain.BrandBrief],
	},
	domain.BriefPresentation: {
		Type:        domain.BriefPresentation,
		Schema:      presentationSchema(),
		BuildPrompt: buildPresentationPrompt,
		PostProcess: processAs[domain.PresentationBrief],
	},
	domain.BriefCover: {
		Type:        domain.BriefCover,
		Schema:      coverSchema(),
		BuildPrompt: buildCoverPrompt,
		PostProcess: processAs[domain.CoverBrief],
	},
}

// ConfigFor returns the recipe for t.
func ConfigFor(t domain.CoreBriefType) (Config, error) {
	cfg, ok := configs[t]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", domain.ErrUnknownBriefType, t)
	}
	return cfg, nil
}

// briefPtr constrains P to a pointer to a brief struct T.
type briefPtr[T any] interface {
	*T
	domain.Brief
}

func decode[T any, P briefPtr[T]](raw string) (P, error) {
	v, err := llm.ExtractJSON(raw, llm.ValidateStruct[T]())
	if err != nil {
		return nil, err
	}
	return P(&v), nil
}

func processAs[T any, P briefPtr[T]](raw string, in ProcessInput) (domain.Brief, error) {
	b, err := decode[T, P](raw)
	if err != nil {
		return nil, err
	}
	stamp(b, in, in.source())
	return b, nil
}

func processLogo(raw string, in ProcessInput) (domain.Brief, error) {
	b, err := decode[domain.LogoBrief](raw)
	if err != nil {
		return nil, err
	}
	rnd := in.source()
	stamp(b, in, rnd)

	b.Palette = random.Pick(rnd, catalog.Palettes())
	b.FinalFiles = random.Pick(rnd, catalog.DeliverableSets())
	b.OtherNote = random.Pick(rnd, catalog.OtherNotes(in.Lang))
	b.FontNote = random.Pick(rnd, catalog.FontNotes(in.Lang))

	pairs := catalog.StylePairs()
	b.Styles = make([]domain.StyleSlider, len(pairs))
	for i, pair := range pairs {
		b.Styles[i] = domain.StyleSlider{Pair: pair, Position: random.IntRange(rnd, 1, 5)}
	}
	return b, nil
}

// stamp overwrites the shared fields, whatever the model put there.
func stamp(b domain.Brief, in ProcessInput, rnd random.Source) {
	m := b.Meta()
	m.ClientPersonality = random.Pick(rnd, domain.ClientPersonalities)
	m.Type = b.BriefType()
	m.Lang = in.Lang
	m.Industry = in.IndustryName
}
