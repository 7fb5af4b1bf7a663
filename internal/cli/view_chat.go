package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/clientbuddy/internal/cli/formatter"
	"github.com/alexanderramin/clientbuddy/internal/domain"
	"github.com/alexanderramin/clientbuddy/internal/persona"
)

// chatView is the full-screen chat with the brief's client. Replies come
// from the local persona responder, so no AI call is made.
type chatView struct {
	brief     domain.Brief
	header    persona.Header
	responder *persona.Responder
	input     textinput.Model
	history   inputHistory

	messages []string
	quitting bool
}

func newChatView(b domain.Brief, lang domain.Language, responder *persona.Responder) *chatView {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 500
	ti.Placeholder = "Ask about the brief..."

	v := &chatView{
		brief:     b,
		header:    persona.HeaderFor(b.Meta().ClientPersonality, lang),
		responder: responder,
		input:     ti,
	}
	v.messages = append(v.messages, formatter.ClientMessage(v.header.Name, persona.WelcomeMessage(lang)))
	return v
}

func (v *chatView) Init() tea.Cmd {
	return textinput.Blink
}

func (v *chatView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			v.quitting = true
			return v, tea.Quit
		case tea.KeyUp:
			if line, ok := v.history.prev(); ok {
				v.input.SetValue(line)
				v.input.CursorEnd()
			}
			return v, nil
		case tea.KeyDown:
			if line, ok := v.history.next(); ok {
				v.input.SetValue(line)
				v.input.CursorEnd()
			}
			return v, nil
		case tea.KeyEnter:
			input := strings.TrimSpace(v.input.Value())
			v.input.Reset()
			if input == "" {
				return v, nil
			}
			v.history.push(input)
			return v.handleInput(input)
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *chatView) handleInput(input string) (tea.Model, tea.Cmd) {
	switch strings.ToLower(input) {
	case "/quit", "/exit", "/q":
		v.quitting = true
		return v, tea.Quit
	case "/brief":
		v.messages = append(v.messages, formatter.FormatBrief(v.brief))
		return v, nil
	}

	v.messages = append(v.messages,
		formatter.DesignerMessage(input),
		formatter.ClientMessage(v.header.Name, v.responder.Respond(input, v.brief)),
	)
	return v, nil
}

func (v *chatView) View() string {
	var b strings.Builder
	b.WriteString(formatter.ChatHeader(v.header.Avatar, v.header.Name, domain.Title(v.brief)))
	b.WriteString("\n\n")
	for _, msg := range v.messages {
		b.WriteString(msg)
		b.WriteString("\n")
	}
	if v.quitting {
		return b.String()
	}
	b.WriteString("\n")
	b.WriteString(formatter.StylePurple.Render("you") + formatter.Dim("> "))
	b.WriteString(v.input.View())
	b.WriteString("\n")
	b.WriteString(formatter.Dim("enter send · ↑/↓ history · /brief show brief · esc quit"))
	return b.String()
}
