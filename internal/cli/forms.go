package cli

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/clientbuddy/internal/catalog"
	"github.com/alexanderramin/clientbuddy/internal/cli/formatter"
	"github.com/alexanderramin/clientbuddy/internal/domain"
	"github.com/alexanderramin/clientbuddy/internal/intelligence"
)

func clientbuddyHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func languageOptions() []huh.Option[domain.Language] {
	return []huh.Option[domain.Language]{
		huh.NewOption("English", domain.LangEN),
		huh.NewOption("Bahasa Indonesia", domain.LangID),
	}
}

func categoryOptions(lang domain.Language) []huh.Option[domain.DesignCategory] {
	var opts []huh.Option[domain.DesignCategory]
	for _, g := range catalog.CategoryGroups() {
		for _, c := range g.Items {
			opts = append(opts, huh.NewOption(g.Label.In(lang)+" › "+c.Label.In(lang), c.Key))
		}
	}
	return opts
}

func industryOptions(lang domain.Language) []huh.Option[string] {
	var opts []huh.Option[string]
	for _, g := range catalog.IndustryGroups() {
		for _, it := range g.Items {
			opts = append(opts, huh.NewOption(catalog.IndustryName(it.Key, lang), it.Key))
		}
	}
	return opts
}

func regionOptions(lang domain.Language) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(catalog.Regions()))
	for _, r := range catalog.Regions() {
		opts = append(opts, huh.NewOption(r.Label.In(lang), r.Key))
	}
	return opts
}

// briefRequestForm asks for every field of req, starting from its current
// values.
func briefRequestForm(req *intelligence.BriefRequest) *huh.Form {
	if req.IndustryKey == "" {
		req.IndustryKey = catalog.DefaultIndustry
	}
	if req.RegionKey == "" {
		req.RegionKey = catalog.DefaultRegion
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.Language]().
				Title("Language").
				Options(languageOptions()...).
				Value(&req.Lang),
			huh.NewSelect[domain.DesignCategory]().
				Title("Design category").
				Options(categoryOptions(req.Lang)...).
				Height(10).
				Value(&req.Category),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Client industry").
				Options(industryOptions(req.Lang)...).
				Height(10).
				Value(&req.IndustryKey),
			huh.NewSelect[string]().
				Title("Client region").
				Options(regionOptions(req.Lang)...).
				Value(&req.RegionKey),
		),
	).WithTheme(clientbuddyHuhTheme()).WithShowHelp(false)
}
