package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/clientbuddy/internal/catalog"
	"github.com/alexanderramin/clientbuddy/internal/domain"
)

// FormatChallenges renders the daily challenge list, numbered from 1.
func FormatChallenges(list []domain.DailyChallenge, lang domain.Language) string {
	if len(list) == 0 {
		return Dim("No challenges today.")
	}
	var b strings.Builder
	b.WriteString(Header("Daily challenges"))
	b.WriteString("\n")
	for i, c := range list {
		fmt.Fprintf(&b, "\n%s %s  %s\n",
			StyleDim.Render(fmt.Sprintf("%d.", i+1)),
			Bold(c.ProjectName),
			StylePurple.Render(catalog.CategoryDisplayName(c.Category, lang)),
		)
		fmt.Fprintf(&b, "   %s\n", c.Description)
		fmt.Fprintf(&b, "   %s %s\n", Dim(catalog.IndustryName(c.Industry, lang)+" ·"), StyleYellow.Render(strings.Join(c.Keywords, " · ")))
	}
	return b.String()
}
