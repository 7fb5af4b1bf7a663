package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownBriefType is returned when a serialized brief carries a type
// discriminant outside the five core types.
var ErrUnknownBriefType = errors.New("unknown brief type")

// BriefMeta holds the fields every brief variant carries. Its JSON keys
// sit at the top level of the serialized brief.
type BriefMeta struct {
	Type              CoreBriefType     `json:"type"`
	Lang              Language          `json:"lang"`
	ClientPersonality ClientPersonality `json:"clientPersonality"`
	Industry          string            `json:"industry"`
}

// Meta gives mutable access to the shared fields.
func (m *BriefMeta) Meta() *BriefMeta { return m }

// Brief is the tagged union of the five brief variants. Callers switch on
// the concrete type (*LogoBrief, *WebBrief, ...).
type Brief interface {
	BriefType() CoreBriefType
	Meta() *BriefMeta
	// Clone returns a deep copy.
	Clone() Brief
}

type Palette struct {
	Name   string   `json:"name"`
	Colors []string `json:"colors"`
}

type Deliverables struct {
	Screen []string `json:"screen"`
	Print  []string `json:"print"`
}

type StylePair struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

// StyleSlider places the brand on a Left..Right axis; Position is 1..5.
type StyleSlider struct {
	Pair     StylePair `json:"pair"`
	Position int       `json:"position"`
}

type LogoBrief struct {
	BriefMeta
	BrandName       string   `json:"brandName" validate:"required"`
	Tagline         string   `json:"tagline"`
	BrandType       string   `json:"brandType" validate:"required"`
	Audience        string   `json:"audience" validate:"required"`
	Focus           string   `json:"focus" validate:"required"`
	Values          []string `json:"values" validate:"required,min=1"`
	StyleAdjectives []string `json:"styleAdjectives" validate:"required,min=1"`
	LogoToAvoid     string   `json:"logoToAvoid" validate:"required"`
	Competitor      string   `json:"competitor" validate:"required"`
	Description     string   `json:"description" validate:"required"`

	Palette    Palette       `json:"palette"`
	FinalFiles Deliverables  `json:"finalFiles"`
	OtherNote  string        `json:"otherNote"`
	FontNote   string        `json:"fontNote"`
	Styles     []StyleSlider `json:"styles"`
}

func (*LogoBrief) BriefType() CoreBriefType { return BriefLogo }

func (b *LogoBrief) Clone() Brief {
	c := *b
	c.Values = slices.Clone(b.Values)
	c.StyleAdjectives = slices.Clone(b.StyleAdjectives)
	c.Palette.Colors = slices.Clone(b.Palette.Colors)
	c.FinalFiles.Screen = slices.Clone(b.FinalFiles.Screen)
	c.FinalFiles.Print = slices.Clone(b.FinalFiles.Print)
	c.Styles = slices.Clone(b.Styles)
	return &c
}

type WebBrief struct {
	BriefMeta
	ProjectName        string   `json:"projectName" validate:"required"`
	ProjectSummary     string   `json:"projectSummary" validate:"required"`
	TargetAudience     string   `json:"targetAudience" validate:"required"`
	CoreObjective      string   `json:"coreObjective" validate:"required"`
	KeyFeatures        []string `json:"keyFeatures" validate:"required,min=1"`
	Pages              []string `json:"pages" validate:"required,min=1"`
	DesignInspirations string   `json:"designInspirations" validate:"required"`
	ThingsToAvoid      string   `json:"thingsToAvoid" validate:"required"`
}

func (*WebBrief) BriefType() CoreBriefType { return BriefWeb }

func (b *WebBrief) Clone() Brief {
	c := *b
	c.KeyFeatures = slices.Clone(b.KeyFeatures)
	c.Pages = slices.Clone(b.Pages)
	return &c
}

type BrandBrief struct {
	BriefMeta
	ProjectName    string   `json:"projectName" validate:"required"`
	CoreValues     []string `json:"coreValues" validate:"required,min=1"`
	BrandArchetype string   `json:"brandArchetype" validate:"required"`
	Competitors    []string `json:"competitors" validate:"required,min=1"`
	Deliverables   []string `json:"deliverables" validate:"required,min=1"`
}

func (*BrandBrief) BriefType() CoreBriefType { return BriefBrand }

func (b *BrandBrief) Clone() Brief {
	c := *b
	c.CoreValues = slices.Clone(b.CoreValues)
	c.Competitors = slices.Clone(b.Competitors)
	c.Deliverables = slices.Clone(b.Deliverables)
	return &c
}

type PresentationBrief struct {
	BriefMeta
	PresentationTitle string `json:"presentationTitle" validate:"required"`
	Objective         string `json:"objective" validate:"required"`
	Audience          string `json:"audience" validate:"required"`
	KeyMessage        string `json:"keyMessage" validate:"required"`
	SlideCount        string `json:"slideCount" validate:"required"`
	VisualStyle       string `json:"visualStyle" validate:"required"`
}

func (*PresentationBrief) BriefType() CoreBriefType { return BriefPresentation }

func (b *PresentationBrief) Clone() Brief {
	c := *b
	return &c
}

type CoverBrief struct {
	BriefMeta
	CoverTitle          string `json:"coverTitle" validate:"required"`
	Author              string `json:"author" validate:"required"`
	Genre               string `json:"genre" validate:"required"`
	Synopsis            string `json:"synopsis" validate:"required"`
	Mood                string `json:"mood" validate:"required"`
	MustIncludeElements string `json:"mustIncludeElements" validate:"required"`
}

func (*CoverBrief) BriefType() CoreBriefType { return BriefCover }

func (b *CoverBrief) Clone() Brief {
	c := *b
	return &c
}

// Title returns the most prominent name on a brief: brand name, project
// name, presentation title or cover title.
func Title(b Brief) string {
	switch v := b.(type) {
	case *LogoBrief:
		return v.BrandName
	case *WebBrief:
		return v.ProjectName
	case *BrandBrief:
		return v.ProjectName
	case *PresentationBrief:
		return v.PresentationTitle
	case *CoverBrief:
		return v.CoverTitle
	default:
		return ""
	}
}

// NewBrief returns an empty brief of the given type.
func NewBrief(t CoreBriefType) (Brief, error) {
	switch t {
	case BriefLogo:
		return &LogoBrief{}, nil
	case BriefWeb:
		return &WebBrief{}, nil
	case BriefBrand:
		return &BrandBrief{}, nil
	case BriefPresentation:
		return &PresentationBrief{}, nil
	case BriefCover:
		return &CoverBrief{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBriefType, t)
	}
}

// UnmarshalBrief decodes a serialized brief using its "type" field to pick
// the variant.
func UnmarshalBrief(data []byte) (Brief, error) {
	var head struct {
		Type CoreBriefType `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("decoding brief: %w", err)
	}
	b, err := NewBrief(head.Type)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, b); err != nil {
		return nil, fmt.Errorf("decoding %s brief: %w", head.Type, err)
	}
	return b, nil
}
