package brief

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/clientbuddy/internal/catalog"
	"github.com/alexanderramin/clientbuddy/internal/domain"
	"github.com/alexanderramin/clientbuddy/internal/llm"
	"github.com/alexanderramin/clientbuddy/internal/random"
)

func TestResolveType_Partition(t *testing.T) {
	cases := map[domain.DesignCategory]domain.CoreBriefType{
		"website_ui_ux":       domain.BriefWeb,
		"wireframe_prototype": domain.BriefWeb,
		"brand_guideline":     domain.BriefBrand,
		"rebranding_project":  domain.BriefBrand,
		"nft_art":             domain.BriefCover,
		"annual_report":       domain.BriefCover,
		"presentation":        domain.BriefPresentation,
		"logo":                domain.BriefLogo,
		"mascot_logo":         domain.BriefLogo,
		"food_packaging":      domain.BriefLogo,
		// Raw core keys other than presentation are not in the mapped lists.
		"web":           domain.BriefLogo,
		"brand":         domain.BriefLogo,
		"cover":         domain.BriefLogo,
		"no_such_thing": domain.BriefLogo,
		"":              domain.BriefLogo,
	}
	for c, want := range cases {
		assert.Equal(t, want, ResolveType(c), "category %q", c)
	}
}

func TestResolveType_IsTotalOverCatalog(t *testing.T) {
	counts := map[domain.CoreBriefType]int{}
	for _, c := range domain.AllDesignCategories() {
		counts[ResolveType(c)]++
	}
	assert.Equal(t, 6, counts[domain.BriefWeb])
	assert.Equal(t, 2, counts[domain.BriefBrand])
	assert.Equal(t, 13, counts[domain.BriefCover])
	assert.Equal(t, 1, counts[domain.BriefPresentation])
	assert.Equal(t, len(domain.AllDesignCategories())-22, counts[domain.BriefLogo])
}

func TestConfigFor_EveryType(t *testing.T) {
	for _, bt := range domain.CoreBriefTypes {
		cfg, err := ConfigFor(bt)
		require.NoError(t, err)
		assert.Equal(t, bt, cfg.Type)
		assert.Equal(t, llm.TypeObject, cfg.Schema.Type)
		assert.NotEmpty(t, cfg.Schema.Required)
	}

	_, err := ConfigFor("poster")
	assert.ErrorIs(t, err, domain.ErrUnknownBriefType)
}

func TestLogoSchema_TaglineOptional(t *testing.T) {
	cfg, err := ConfigFor(domain.BriefLogo)
	require.NoError(t, err)
	assert.NotContains(t, cfg.Schema.Required, "tagline")
	assert.Contains(t, cfg.Schema.Properties, "tagline")
	assert.Len(t, cfg.Schema.Required, 9)
}

func TestWebSchema_Descriptions(t *testing.T) {
	cfg, err := ConfigFor(domain.BriefWeb)
	require.NoError(t, err)
	assert.Equal(t, "A list of 4-6 required pages for the website.", cfg.Schema.Properties["pages"].Description)
	assert.Equal(t, llm.TypeArray, cfg.Schema.Properties["keyFeatures"].Type)
}

func globalInput(lang domain.Language) PromptInput {
	return PromptInput{
		IndustryName: "Software Development (Technology & IT)",
		RegionKey:    catalog.DefaultRegion,
		RegionName:   catalog.RegionName(catalog.DefaultRegion, lang),
		Lang:         lang,
	}
}

func TestBuildLogoPrompt_Global(t *testing.T) {
	cfg, _ := ConfigFor(domain.BriefLogo)
	in := globalInput(domain.LangEN)
	in.SubCategory = domain.CategoryMascotLogo

	got := cfg.BuildPrompt(in)

	assert.Equal(t, "Generate a creative Mascot / Character Logo brief for a fictional company. The company is in the 'Software Development (Technology & IT)' industry. The 'brandName' and 'tagline' can be in English or the local language, whichever sounds more professional, creative, or natural for the brand. All other fields (description, audience, values, etc.) MUST be in English. Make the brand name and slogan as unique and wild as possible.", got)
}

func TestBuildLogoPrompt_RegionalIndonesian(t *testing.T) {
	cfg, _ := ConfigFor(domain.BriefLogo)
	in := globalInput(domain.LangID)
	in.RegionKey = "region_asia"
	in.RegionName = "Asia"

	got := cfg.BuildPrompt(in)

	assert.Contains(t, got, "Generate a creative logo design brief")
	assert.Contains(t, got, "with a client based in 'Asia'. Make the brand name, slogan, and cultural references feel appropriate for the 'Asia' region.")
	assert.Contains(t, got, "MUST be in Indonesian.")
	assert.Contains(t, got, "Make it unique and wild.")
}

func TestBuildPrompt_Challenge(t *testing.T) {
	challenge := &domain.DailyChallenge{
		Category:    domain.CategoryEventPoster,
		ProjectName: "Neon Nights",
		Description: "A poster for a synthwave festival.",
		Keywords:    []string{"retro", "glow", "grid"},
	}
	directive := `Based on this creative challenge: (Project: "Neon Nights", Description: "A poster for a synthwave festival.", Keywords: retro, glow, grid), generate a full, detailed Event Poster brief`

	for _, bt := range domain.CoreBriefTypes {
		cfg, _ := ConfigFor(bt)
		in := globalInput(domain.LangEN)
		in.SubCategory = domain.CategoryEventPoster
		in.Challenge = challenge

		got := cfg.BuildPrompt(in)
		assert.Contains(t, got, directive, "type %s", bt)
		assert.Contains(t, got, "Software Development (Technology & IT)", "type %s", bt)
		assert.Contains(t, got, "English", "type %s", bt)
	}
}

func TestBuildPrompt_NonLogoRegionAndLanguage(t *testing.T) {
	for _, bt := range []domain.CoreBriefType{domain.BriefWeb, domain.BriefBrand, domain.BriefPresentation, domain.BriefCover} {
		cfg, _ := ConfigFor(bt)

		global := cfg.BuildPrompt(globalInput(domain.LangID))
		assert.NotContains(t, global, "The client is based in", "type %s", bt)
		assert.Contains(t, global, "All text fields in the JSON response MUST be in Indonesian.", "type %s", bt)

		in := globalInput(domain.LangEN)
		in.RegionKey = "region_eu"
		in.RegionName = "Europe"
		regional := cfg.BuildPrompt(in)
		assert.Contains(t, regional, "The client is based in 'Europe'.", "type %s", bt)
	}
}

func TestBuildPrompt_DefaultLabels(t *testing.T) {
	want := map[domain.CoreBriefType]string{
		domain.BriefLogo:         "logo design",
		domain.BriefWeb:          "web design",
		domain.BriefBrand:        "brand identity",
		domain.BriefPresentation: "presentation design",
		domain.BriefCover:        "cover design",
	}
	for bt, label := range want {
		cfg, _ := ConfigFor(bt)
		assert.Contains(t, cfg.BuildPrompt(globalInput(domain.LangEN)), label, "type %s", bt)
	}
}

func TestBuildPrompt_UnknownSubCategoryUsesKey(t *testing.T) {
	cfg, _ := ConfigFor(domain.BriefLogo)
	in := globalInput(domain.LangEN)
	in.SubCategory = "hologram_signage"
	assert.Contains(t, cfg.BuildPrompt(in), "Generate a creative hologram signage brief")
}

const logoJSON = `{"brandName":"Kopi Kita","brandType":"Coffee roastery","audience":"Young professionals","focus":"Single origin beans","values":["honesty","craft"],"styleAdjectives":["warm","bold"],"logoToAvoid":"Generic coffee cups","competitor":"Big Chain Coffee","description":"A small-batch roastery."}`

func TestProcessLogo_Enrichment(t *testing.T) {
	cfg, _ := ConfigFor(domain.BriefLogo)
	// personality, palette, deliverables, other note, font note, 7 sliders
	rnd := random.Sequence(1, 3, 2, 0, 1, 0, 1, 2, 3, 4, 0, 4)

	b, err := cfg.PostProcess("```json\n"+logoJSON+"\n```", ProcessInput{
		IndustryName: "Cafe (Food & Beverage)",
		Lang:         domain.LangID,
		Rand:         rnd,
	})
	require.NoError(t, err)

	logo, ok := b.(*domain.LogoBrief)
	require.True(t, ok)
	assert.Equal(t, domain.BriefLogo, logo.Type)
	assert.Equal(t, domain.LangID, logo.Lang)
	assert.Equal(t, "Cafe (Food & Beverage)", logo.Industry)
	assert.Equal(t, domain.KnowItAll, logo.ClientPersonality)
	assert.Equal(t, "", logo.Tagline)
	assert.Equal(t, "Kopi Kita", logo.BrandName)

	assert.Equal(t, catalog.Palettes()[3], logo.Palette)
	assert.Equal(t, catalog.DeliverableSets()[2], logo.FinalFiles)
	assert.Equal(t, catalog.OtherNotes(domain.LangID)[0], logo.OtherNote)
	assert.Equal(t, catalog.FontNotes(domain.LangID)[1], logo.FontNote)

	require.Len(t, logo.Styles, len(catalog.StylePairs()))
	positions := make([]int, len(logo.Styles))
	for i, s := range logo.Styles {
		assert.Equal(t, catalog.StylePairs()[i], s.Pair)
		positions[i] = s.Position
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 1, 5}, positions)
}

func TestProcessLogo_PositionsStayInRange(t *testing.T) {
	cfg, _ := ConfigFor(domain.BriefLogo)
	rnd := random.New(42)
	for i := 0; i < 50; i++ {
		b, err := cfg.PostProcess(logoJSON, ProcessInput{Lang: domain.LangEN, Rand: rnd})
		require.NoError(t, err)
		for _, s := range b.(*domain.LogoBrief).Styles {
			assert.GreaterOrEqual(t, s.Position, 1)
			assert.LessOrEqual(t, s.Position, 5)
		}
		assert.Contains(t, domain.ClientPersonalities, b.Meta().ClientPersonality)
	}
}

func TestProcess_OverridesModelMeta(t *testing.T) {
	cfg, _ := ConfigFor(domain.BriefWeb)
	raw := `{"type":"logo","lang":"fr","industry":"x","projectName":"Atlas","projectSummary":"s","targetAudience":"a","coreObjective":"o","keyFeatures":["f"],"pages":["Home"],"designInspirations":"d","thingsToAvoid":"t"}`

	b, err := cfg.PostProcess(raw, ProcessInput{IndustryName: "Banking (Finance)", Lang: domain.LangEN, Rand: random.Sequence(3)})
	require.NoError(t, err)

	web := b.(*domain.WebBrief)
	assert.Equal(t, domain.BriefWeb, web.Type)
	assert.Equal(t, domain.LangEN, web.Lang)
	assert.Equal(t, "Banking (Finance)", web.Industry)
	assert.Equal(t, domain.Enthusiast, web.ClientPersonality)
	assert.Equal(t, "Atlas", web.ProjectName)
}

func TestProcess_MissingRequiredField(t *testing.T) {
	cfg, _ := ConfigFor(domain.BriefCover)
	_, err := cfg.PostProcess(`{"coverTitle":"Dust"}`, ProcessInput{Lang: domain.LangEN})
	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}

func TestProcess_NotJSON(t *testing.T) {
	cfg, _ := ConfigFor(domain.BriefBrand)
	_, err := cfg.PostProcess("Sorry, I can't help with that.", ProcessInput{Lang: domain.LangEN})
	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}
