package formatter

import (
	"strings"

	"github.com/alexanderramin/clientbuddy/internal/brief"
	"github.com/alexanderramin/clientbuddy/internal/catalog"
	"github.com/alexanderramin/clientbuddy/internal/domain"
)

// FormatCategories lists every detailed category with its brief type.
func FormatCategories(lang domain.Language) string {
	var b strings.Builder
	for _, g := range catalog.CategoryGroups() {
		rows := make([][]string, 0, len(g.Items))
		for _, c := range g.Items {
			rows = append(rows, []string{string(c.Key), c.Label.In(lang), Dim(string(brief.ResolveType(c.Key)))})
		}
		b.WriteString(Header(g.Label.In(lang)))
		b.WriteString("\n")
		b.WriteString(RenderTable([]string{"KEY", "NAME", "BRIEF"}, rows))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatIndustries lists industry keys grouped by sector.
func FormatIndustries(lang domain.Language) string {
	var b strings.Builder
	for _, g := range catalog.IndustryGroups() {
		rows := make([][]string, 0, len(g.Items))
		for _, it := range g.Items {
			rows = append(rows, []string{it.Key, it.Label.In(lang)})
		}
		b.WriteString(Header(g.Label.In(lang)))
		b.WriteString("\n")
		b.WriteString(RenderTable([]string{"KEY", "NAME"}, rows))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatRegions lists the selectable client regions.
func FormatRegions(lang domain.Language) string {
	rows := make([][]string, 0, len(catalog.Regions()))
	for _, r := range catalog.Regions() {
		rows = append(rows, []string{r.Key, r.Label.In(lang)})
	}
	return RenderTable([]string{"KEY", "NAME"}, rows)
}
