package cli

import (
	"bufio"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/clientbuddy/internal/cli/formatter"
	"github.com/alexanderramin/clientbuddy/internal/domain"
	"github.com/alexanderramin/clientbuddy/internal/persona"
)

func newChatCmd(app *App) *cobra.Command {
	var (
		file string
		lang domain.Language
	)

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Chat with the client about a saved brief",
		Long: "Chat with the client about a saved brief. In a terminal this opens a chat view;\n" +
			"otherwise each line read from stdin is answered on stdout.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := readBrief(file)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("lang") {
				lang = b.Meta().Lang
			}
			responder := persona.NewResponder(app.Rand)

			if app.interactive() {
				_, err := tea.NewProgram(newChatView(b, lang, responder), tea.WithContext(cmd.Context())).Run()
				return err
			}
			return chatLines(cmd, b, lang, responder)
		},
	}
	cmd.Flags().StringVar(&file, "brief", "", "Brief JSON file (from brief generate --save)")
	addLangFlag(cmd.Flags(), &lang, "Chat language (defaults to the brief's)")
	_ = cmd.MarkFlagRequired("brief")
	return cmd
}

// chatLines answers stdin line by line, for pipes and scripts.
func chatLines(cmd *cobra.Command, b domain.Brief, lang domain.Language, responder *persona.Responder) error {
	out := cmd.OutOrStdout()
	header := persona.HeaderFor(b.Meta().ClientPersonality, lang)
	fmt.Fprintln(out, formatter.ClientMessage(header.Name, persona.WelcomeMessage(lang)))

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fmt.Fprintln(out, formatter.ClientMessage(header.Name, responder.Respond(line, b)))
	}
	return scanner.Err()
}
