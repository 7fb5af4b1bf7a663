package intelligence

import (
	"context"
	"fmt"
	"slices"

	"github.com/alexanderramin/clientbuddy/internal/domain"
	"github.com/alexanderramin/clientbuddy/internal/llm"
)

// Translatable payloads. Names, titles and authors stay as written.

type logoTranslation struct {
	BrandType       string   `json:"brandType"`
	Audience        string   `json:"audience"`
	Focus           string   `json:"focus"`
	Values          []string `json:"values"`
	StyleAdjectives []string `json:"styleAdjectives"`
	LogoToAvoid     string   `json:"logoToAvoid"`
	Competitor      string   `json:"competitor"`
	Description     string   `json:"description"`
	Industry        string   `json:"industry"`
	PaletteName     string   `json:"paletteName"`
	OtherNote       string   `json:"otherNote"`
	FontNote        string   `json:"fontNote"`
}

type webTranslation struct {
	Industry           string   `json:"industry"`
	ProjectSummary     string   `json:"projectSummary"`
	TargetAudience     string   `json:"targetAudience"`
	CoreObjective      string   `json:"coreObjective"`
	KeyFeatures        []string `json:"keyFeatures"`
	Pages              []string `json:"pages"`
	DesignInspirations string   `json:"designInspirations"`
	ThingsToAvoid      string   `json:"thingsToAvoid"`
}

type brandTranslation struct {
	Industry       string   `json:"industry"`
	CoreValues     []string `json:"coreValues"`
	BrandArchetype string   `json:"brandArchetype"`
	Competitors    []string `json:"competitors"`
	Deliverables   []string `json:"deliverables"`
}

type presentationTranslation struct {
	Industry    string `json:"industry"`
	Objective   string `json:"objective"`
	Audience    string `json:"audience"`
	KeyMessage  string `json:"keyMessage"`
	SlideCount  string `json:"slideCount"`
	VisualStyle string `json:"visualStyle"`
}

type coverTranslation struct {
	Industry            string `json:"industry"`
	Genre               string `json:"genre"`
	Synopsis            string `json:"synopsis"`
	Mood                string `json:"mood"`
	MustIncludeElements string `json:"mustIncludeElements"`
}

// flatSchema builds an all-required object schema of plain strings, with
// the names in arrays typed as string lists.
func flatSchema(names []string, arrays ...string) *llm.Schema {
	fields := make([]llm.Field, len(names))
	for i, name := range names {
		s := llm.String("")
		if slices.Contains(arrays, name) {
			s = llm.StringArray("")
		}
		fields[i] = llm.Field{Name: name, Schema: s}
	}
	return llm.Object(fields)
}

var translationSchemas = map[domain.CoreBriefType]*llm.Schema{
	domain.BriefLogo: flatSchema([]string{
		"brandType", "audience", "focus", "values", "styleAdjectives", "logoToAvoid",
		"competitor", "description", "industry", "paletteName", "otherNote", "fontNote",
	}, "values", "styleAdjectives"),
	domain.BriefWeb: flatSchema([]string{
		"industry", "projectSummary", "targetAudience", "coreObjective", "keyFeatures",
		"pages", "designInspirations", "thingsToAvoid",
	}, "keyFeatures", "pages"),
	domain.BriefBrand: flatSchema([]string{
		"industry", "coreValues", "brandArchetype", "competitors", "deliverables",
	}, "coreValues", "competitors", "deliverables"),
	domain.BriefPresentation: flatSchema([]string{
		"industry", "objective", "audience", "keyMessage", "slideCount", "visualStyle",
	}),
	domain.BriefCover: flatSchema([]string{
		"industry", "genre", "synopsis", "mood", "mustIncludeElements",
	}),
}

// setText and setList copy a translated value over the original. A value
// the model left out keeps the original text. A list is only replaced by one
// of the same length, so an empty or truncated reply cannot drop items.
func setText(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setList(dst *[]string, v []string) {
	if len(v) > 0 && len(v) == len(*dst) {
		*dst = v
	}
}

// translationPlan returns the payload sent to the model and a function
// that merges the model's answer into a copy of b.
func translationPlan(b domain.Brief) (any, func(raw string) (domain.Brief, error), error) {
	switch v := b.(type) {
	case *domain.LogoBrief:
		payload := logoTranslation{
			BrandType: v.BrandType, Audience: v.Audience, Focus: v.Focus,
			Values: v.Values, StyleAdjectives: v.StyleAdjectives,
			LogoToAvoid: v.LogoToAvoid, Competitor: v.Competitor, Description: v.Description,
			Industry: v.Industry, PaletteName: v.Palette.Name, OtherNote: v.OtherNote, FontNote: v.FontNote,
		}
		return payload, func(raw string) (domain.Brief, error) {
			t, err := llm.ExtractJSON[logoTranslation](raw, nil)
			if err != nil {
				return nil, err
			}
			out := v.Clone().(*domain.LogoBrief)
			setText(&out.BrandType, t.BrandType)
			setText(&out.Audience, t.Audience)
			setText(&out.Focus, t.Focus)
			setList(&out.Values, t.Values)
			setList(&out.StyleAdjectives, t.StyleAdjectives)
			setText(&out.LogoToAvoid, t.LogoToAvoid)
			setText(&out.Competitor, t.Competitor)
			setText(&out.Description, t.Description)
			setText(&out.Industry, t.Industry)
			setText(&out.Palette.Name, t.PaletteName)
			setText(&out.OtherNote, t.OtherNote)
			setText(&out.FontNote, t.FontNote)
			return out, nil
		}, nil

	case *domain.WebBrief:
		payload := webTranslation{
			Industry: v.Industry, ProjectSummary: v.ProjectSummary, TargetAudience: v.TargetAudience,
			CoreObjective: v.CoreObjective, KeyFeatures: v.KeyFeatures, Pages: v.Pages,
			DesignInspirations: v.DesignInspirations, ThingsToAvoid: v.ThingsToAvoid,
		}
		return payload, func(raw string) (domain.Brief, error) {
			t, err := llm.ExtractJSON[webTranslation](raw, nil)
			if err != nil {
				return nil, err
			}
			out := v.Clone().(*domain.WebBrief)
			setText(&out.Industry, t.Industry)
			setText(&out.ProjectSummary, t.ProjectSummary)
			setText(&out.TargetAudience, t.TargetAudience)
			setText(&out.CoreObjective, t.CoreObjective)
			setList(&out.KeyFeatures, t.KeyFeatures)
			setList(&out.Pages, t.Pages)
			setText(&out.DesignInspirations, t.DesignInspirations)
			setText(&out.ThingsToAvoid, t.ThingsToAvoid)
			return out, nil
		}, nil

	case *domain.BrandBrief:
		payload := brandTranslation{
			Industry: v.Industry, CoreValues: v.CoreValues, BrandArchetype: v.BrandArchetype,
			Competitors: v.Competitors, Deliverables: v.Deliverables,
		}
		return payload, func(raw string) (domain.Brief, error) {
			t, err := llm.ExtractJSON[brandTranslation](raw, nil)
			if err != nil {
				return nil, err
			}
			out := v.Clone().(*domain.BrandBrief)
			setText(&out.Industry, t.Industry)
			setList(&out.CoreValues, t.CoreValues)
			setText(&out.BrandArchetype, t.BrandArchetype)
			setList(&out.Competitors, t.Competitors)
			setList(&out.Deliverables, t.Deliverables)
			return out, nil
		}, nil

	case *domain.PresentationBrief:
		payload := presentationTranslation{
			Industry: v.Industry, Objective: v.Objective, Audience: v.Audience,
			KeyMessage: v.KeyMessage, SlideCount: v.SlideCount, VisualStyle: v.VisualStyle,
		}
		return payload, func(raw string) (domain.Brief, error) {
			t, err := llm.ExtractJSON[presentationTranslation](raw, nil)
			if err != nil {
				return nil, err
			}
			out := v.Clone().(*domain.PresentationBrief)
			setText(&out.Industry, t.Industry)
			setText(&out.Objective, t.Objective)
			setText(&out.Audience, t.Audience)
			setText(&out.KeyMessage, t.KeyMessage)
			setText(&out.SlideCount, t.SlideCount)
			setText(&out.VisualStyle, t.VisualStyle)
			return out, nil
		}, nil

	case *domain.CoverBrief:
		payload := coverTranslation{
			Industry: v.Industry, Genre: v.Genre, Synopsis: v.Synopsis,
			Mood: v.Mood, MustIncludeElements: v.MustIncludeElements,
		}
		return payload, func(raw string) (domain.Brief, error) {
			t, err := llm.ExtractJSON[coverTranslation](raw, nil)
			if err != nil {
				return nil, err
			}
			out := v.Clone().(*domain.CoverBrief)
			setText(&out.Industry, t.Industry)
			setText(&out.Genre, t.Genre)
			setText(&out.Synopsis, t.Synopsis)
			setText(&out.Mood, t.Mood)
			setText(&out.MustIncludeElements, t.MustIncludeElements)
			return out, nil
		}, nil

	default:
		return nil, nil, fmt.Errorf("%w: %T", domain.ErrUnknownBriefType, b)
	}
}

func (s *briefService) Translate(ctx context.Context, b domain.Brief, target domain.Language) (domain.Brief, error) {
	if b == nil {
		return nil, &domain.ValidationError{Field: "brief", Message: "brief is required"}
	}
	if target == "" {
		target = domain.LangEN
	}

	payload, apply, err := translationPlan(b)
	if err != nil {
		return nil, &domain.TranslationError{Err: err}
	}
	payloadJSON, err := promptJSON(payload, 0)
	if err != nil {
		return nil, &domain.TranslationError{Err: err}
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskTranslate,
		SystemPrompt: translateSystemPrompt(target),
		UserPrompt:   string(payloadJSON),
		Schema:       translationSchemas[b.BriefType()],
	})
	if err != nil {
		return nil, &domain.TranslationError{Err: err}
	}

	out, err := apply(resp.Text)
	if err != nil {
		return nil, &domain.TranslationError{Err: err}
	}
	out.Meta().Lang = target
	return out, nil
}
