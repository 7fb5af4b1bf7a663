package formatter

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/clientbuddy/internal/domain"
	"github.com/alexanderramin/clientbuddy/internal/scenario"
)

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable([]string{"KEY", "NAME"}, [][]string{
		{"region_global", "Global"},
		{"region_asia", "Asia"},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, "KEY"+strings.Repeat(" ", 12)+"NAME", lines[0])
	assert.Equal(t, "region_global  Global", lines[2])
	assert.Equal(t, "region_asia    Asia", lines[3])
	assert.Equal(t, "", RenderTable(nil, nil))
}

func TestStarsAndSlider(t *testing.T) {
	assert.Equal(t, "★★★☆☆", Stars(3))
	assert.Equal(t, "★★★★★", Stars(9))
	assert.Equal(t, "Classic ●──── Modern", Slider("Classic", "Modern", 1))
	assert.Equal(t, "Classic ──●── Modern", Slider("Classic", "Modern", 3))
	assert.Equal(t, "Classic ────● Modern", Slider("Classic", "Modern", 7))
}

func TestFormatBrief_Logo(t *testing.T) {
	b := &domain.LogoBrief{
		BriefMeta:       domain.BriefMeta{Type: domain.BriefLogo, Lang: domain.LangEN, ClientPersonality: domain.KnowItAll, Industry: "Cafe"},
		BrandName:       "Kopi Kita",
		Values:          []string{"honesty", "craft"},
		StyleAdjectives: []string{"warm", "bold"},
		Palette:         domain.Palette{Name: "Warm & Energetic", Colors: []string{"#C14925"}},
		Styles:          []domain.StyleSlider{{Pair: domain.StylePair{Left: "Classic", Right: "Modern"}, Position: 2}},
	}
	out := FormatBrief(b)
	assert.Contains(t, out, "DESIGN BRIEF")
	assert.Contains(t, out, "Kopi Kita")
	assert.Contains(t, out, "The Know-It-All")
	assert.Contains(t, out, "• honesty")
	assert.Contains(t, out, "warm, bold")
	assert.Contains(t, out, "Warm & Energetic")
	assert.Contains(t, out, "Classic ─●─── Modern")
	assert.NotContains(t, out, "Tagline")
}

func TestFormatBrief_Cover(t *testing.T) {
	out := FormatBrief(&domain.CoverBrief{
		BriefMeta:  domain.BriefMeta{Type: domain.BriefCover, Lang: domain.LangID},
		CoverTitle: "Laut Bercerita",
		Author:     "Leila",
		Genre:      "Historical fiction",
	})
	assert.Contains(t, out, "Laut Bercerita")
	assert.Contains(t, out, "Indonesian")
	assert.Contains(t, out, "Historical fiction")
	assert.NotContains(t, out, "Synopsis")
	assert.Equal(t, Dim("No brief yet."), FormatBrief(nil))
}

func TestFormatChallenges(t *testing.T) {
	out := FormatChallenges([]domain.DailyChallenge{{
		Category:    domain.CategoryLogoDesign,
		Industry:    "tech_software_dev",
		ProjectName: "Nova",
		Description: "Design a mark for a compiler startup.",
		Keywords:    []string{"fast", "sharp", "calm"},
	}}, domain.LangEN)
	assert.Contains(t, out, "1. Nova")
	assert.Contains(t, out, "fast · sharp · calm")
	assert.Equal(t, Dim("No challenges today."), FormatChallenges(nil, domain.LangEN))
}

func TestFormatScenario(t *testing.T) {
	out := FormatScenario(scenario.Snapshot{
		State: scenario.StateCompleted,
		Lang:  domain.LangEN,
		Brief: &domain.LogoBrief{BriefMeta: domain.BriefMeta{ClientPersonality: domain.Enthusiast}, BrandName: "Lumen"},
		Log: []domain.Interaction{
			{Kind: domain.InteractionInitialBrief},
			{Kind: domain.InteractionSubmission, Submission: &domain.Submission{Note: "v1"}},
			{Kind: domain.InteractionFeedback, Feedback: "Love it!"},
		},
		Review:    &domain.FinalReview{Rating: 4, Testimonial: "Great work."},
		LastError: "",
	})
	assert.Contains(t, out, "✔ Completed")
	assert.Contains(t, out, "Lumen")
	assert.Contains(t, out, `revision 1 submitted ("v1")`)
	assert.Contains(t, out, "The Enthusiast: Love it!")
	assert.Contains(t, out, "★★★★☆")
	assert.NotContains(t, out, "last error")
}

func TestErrorLine(t *testing.T) {
	assert.Equal(t, "✖ boom", ErrorLine(errors.New("boom")))
}

func TestCatalogTables(t *testing.T) {
	assert.Contains(t, FormatCategories(domain.LangEN), "logo_design")
	assert.Contains(t, FormatIndustries(domain.LangEN), "tech_software_dev")
	assert.Contains(t, FormatRegions(domain.LangEN), "region_global")
}
