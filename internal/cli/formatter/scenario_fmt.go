package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/clientbuddy/internal/catalog"
	"github.com/alexanderramin/clientbuddy/internal/domain"
	"github.com/alexanderramin/clientbuddy/internal/scenario"
)

// FormatScenario renders the state line and the interaction log. The
// initial brief is summarized by its title; use FormatBrief for the card.
func FormatScenario(s scenario.Snapshot) string {
	var b strings.Builder
	b.WriteString(StateBadge(string(s.State)))
	if s.Brief != nil {
		b.WriteString(Dim("  ·  ") + Bold(domain.Title(s.Brief)))
	}
	b.WriteString("\n")

	var client string
	if s.Brief != nil {
		client = catalog.PersonaName(s.Brief.Meta().ClientPersonality, s.Lang)
	}
	round := 0
	for _, it := range s.Log {
		switch it.Kind {
		case domain.InteractionInitialBrief:
			b.WriteString(Dim("  brief received") + "\n")
		case domain.InteractionSubmission:
			round++
			line := fmt.Sprintf("  revision %d submitted", round)
			if it.Submission != nil && it.Submission.Note != "" {
				line += fmt.Sprintf(" (%q)", it.Submission.Note)
			}
			b.WriteString(StyleBlue.Render(line) + "\n")
		case domain.InteractionFeedback:
			b.WriteString("  " + ClientMessage(client, it.Feedback) + "\n")
		}
	}
	if s.Review != nil {
		b.WriteString(FormatReview(*s.Review) + "\n")
	}
	if s.LastError != "" {
		b.WriteString(StyleRed.Render("  last error: "+s.LastError) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
