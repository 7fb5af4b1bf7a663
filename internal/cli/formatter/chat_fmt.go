package formatter

import (
	"strings"

	"github.com/alexanderramin/clientbuddy/internal/domain"
)

// ChatHeader renders the avatar line above a chat transcript.
func ChatHeader(avatar, name, title string) string {
	line := avatar + " " + StyleHeader.Render(name)
	if title != "" {
		line += Dim("  ·  " + title)
	}
	return line
}

// ClientMessage renders a line spoken by the mock client.
func ClientMessage(name, text string) string {
	return StylePurple.Render(name+": ") + text
}

// DesignerMessage renders a line typed by the user.
func DesignerMessage(text string) string {
	return Dim("You: ") + text
}

// FormatFeedback renders one round of client feedback.
func FormatFeedback(p domain.ClientPersonality, name, text string) string {
	return PersonalityStyle(p).Render(name) + "\n" + strings.TrimSpace(text)
}

// FormatReview renders the final rating and testimonial.
func FormatReview(r domain.FinalReview) string {
	return RenderBox("Final review", Stars(r.Rating)+"\n\n"+StyleFg.Italic(true).Render("“"+r.Testimonial+"”"))
}

// ErrorLine renders an error for the terminal.
func ErrorLine(err error) string {
	return StyleRed.Render("✖ ") + err.Error()
}
