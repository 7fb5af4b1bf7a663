package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/clientbuddy/internal/catalog"
	"github.com/alexanderramin/clientbuddy/internal/domain"
)

// FormatBrief renders a brief of any type as a boxed card.
func FormatBrief(b domain.Brief) string {
	if b == nil {
		return Dim("No brief yet.")
	}
	meta := b.Meta()

	var sb strings.Builder
	sb.WriteString(Bold(domain.Title(b)))
	sb.WriteString("\n")
	sb.WriteString(Dim(fmt.Sprintf("%s brief · %s · %s", meta.Type, meta.Industry, meta.Lang.Name())))
	sb.WriteString("\n")
	sb.WriteString(formatClient(meta.ClientPersonality, meta.Lang))
	sb.WriteString("\n\n")

	for _, f := range briefFields(b) {
		sb.WriteString(StyleBlue.Render(f.label))
		sb.WriteString("\n")
		sb.WriteString(f.value)
		sb.WriteString("\n\n")
	}
	return RenderBox("Design Brief", strings.TrimRight(sb.String(), "\n"))
}

func formatClient(p domain.ClientPersonality, lang domain.Language) string {
	name := catalog.PersonaName(p, lang)
	return catalog.PersonaAvatar(p) + " " + PersonalityStyle(p).Render(name)
}

type briefField struct {
	label string
	value string
}

func briefFields(b domain.Brief) []briefField {
	switch v := b.(type) {
	case *domain.LogoBrief:
		fields := []briefField{
			{"Brand", v.BrandName},
			{"Tagline", v.Tagline},
			{"Business", v.BrandType},
			{"Audience", v.Audience},
			{"Focus", v.Focus},
			{"Values", List(v.Values)},
			{"Style", strings.Join(v.StyleAdjectives, ", ")},
			{"Avoid", v.LogoToAvoid},
			{"Competitor", v.Competitor},
			{"Description", v.Description},
			{"Palette", formatPalette(v.Palette)},
			{"Final files", formatDeliverables(v.FinalFiles)},
			{"Fonts", v.FontNote},
			{"Notes", v.OtherNote},
		}
		if len(v.Styles) > 0 {
			sliders := make([]string, len(v.Styles))
			for i, s := range v.Styles {
				sliders[i] = Slider(s.Pair.Left, s.Pair.Right, s.Position)
			}
			fields = append(fields, briefField{"Style sliders", strings.Join(sliders, "\n")})
		}
		return nonEmpty(fields)
	case *domain.WebBrief:
		return nonEmpty([]briefField{
			{"Summary", v.ProjectSummary},
			{"Audience", v.TargetAudience},
			{"Objective", v.CoreObjective},
			{"Key features", List(v.KeyFeatures)},
			{"Pages", List(v.Pages)},
			{"Inspiration", v.DesignInspirations},
			{"Avoid", v.ThingsToAvoid},
		})
	case *domain.BrandBrief:
		return nonEmpty([]briefField{
			{"Core values", List(v.CoreValues)},
			{"Archetype", v.BrandArchetype},
			{"Competitors", List(v.Competitors)},
			{"Deliverables", List(v.Deliverables)},
		})
	case *domain.PresentationBrief:
		return nonEmpty([]briefField{
			{"Objective", v.Objective},
			{"Audience", v.Audience},
			{"Key message", v.KeyMessage},
			{"Slides", v.SlideCount},
			{"Visual style", v.VisualStyle},
		})
	case *domain.CoverBrief:
		return nonEmpty([]briefField{
			{"Author", v.Author},
			{"Genre", v.Genre},
			{"Synopsis", v.Synopsis},
			{"Mood", v.Mood},
			{"Must include", v.MustIncludeElements},
		})
	default:
		return nil
	}
}

func nonEmpty(fields []briefField) []briefField {
	out := fields[:0]
	for _, f := range fields {
		if strings.TrimSpace(f.value) != "" {
			out = append(out, f)
		}
	}
	return out
}

func formatPalette(p domain.Palette) string {
	if p.Name == "" {
		return ""
	}
	swatches := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		swatches[i] = Swatch(c)
	}
	return p.Name + "\n" + strings.Join(swatches, "  ")
}

func formatDeliverables(d domain.Deliverables) string {
	if len(d.Screen) == 0 && len(d.Print) == 0 {
		return ""
	}
	return "Screen: " + strings.Join(d.Screen, ", ") + "\nPrint: " + strings.Join(d.Print, ", ")
}
