package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(1, 2)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// Stars renders a 1..5 rating as filled and empty stars.
func Stars(rating int) string {
	rating = min(max(rating, 0), 5)
	return StyleYellow.Render(strings.Repeat("★", rating)) + StyleDim.Render(strings.Repeat("☆", 5-rating))
}

// List renders items as a bulleted list, or a dim dash when empty.
func List(items []string) string {
	if len(items) == 0 {
		return Dim("--")
	}
	var b strings.Builder
	for i, it := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(StyleDim.Render("• ") + it)
	}
	return b.String()
}

// Swatch renders a hex color as a small filled block followed by its code.
func Swatch(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██") + " " + hex
}

// Slider draws a 1..5 position between two labels, e.g. "Classic ──●── Modern".
func Slider(left, right string, pos int) string {
	pos = min(max(pos, 1), 5)
	track := []rune("─────")
	track[pos-1] = '●'
	return left + " " + StylePurple.Render(string(track)) + " " + right
}
