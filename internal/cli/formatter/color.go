package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/clientbuddy/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// PersonalityStyle gives each client personality its own accent.
func PersonalityStyle(p domain.ClientPersonality) lipgloss.Style {
	switch p {
	case domain.Perfectionist:
		return StyleRed
	case domain.KnowItAll:
		return StyleYellow
	case domain.Indecisive:
		return StyleBlue
	case domain.Enthusiast:
		return StyleGreen
	default:
		return StyleDim
	}
}

// StateBadge returns a colored indicator for a scenario state.
func StateBadge(state string) string {
	switch state {
	case "in_progress":
		return StyleGreen.Render("● In Progress")
	case "completed":
		return StyleBlue.Render("✔ Completed")
	case "generating_brief", "submitting_revision", "completing_project":
		return StyleYellow.Render("◌ " + strings.ReplaceAll(state, "_", " "))
	default:
		return StyleDim.Render("○ Idle")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
