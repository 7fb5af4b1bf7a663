package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/clientbuddy/internal/cli/formatter"
	"github.com/alexanderramin/clientbuddy/internal/domain"
	"github.com/alexanderramin/clientbuddy/internal/intelligence"
)

func newChallengeCmd(app *App) *cobra.Command {
	var (
		lang   domain.Language
		pick   int
		asJSON bool
		out    briefOutput
	)

	cmd := &cobra.Command{
		Use:   "challenge",
		Short: "Show today's design challenges, or turn one into a full brief",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireAI(); err != nil {
				return err
			}

			var list []domain.DailyChallenge
			err := app.spin(cmd, "Fetching today's challenges...", func() error {
				var err error
				list, err = app.Challenges.Daily(cmd.Context(), lang)
				return err
			})
			if err != nil {
				return err
			}

			if pick == 0 {
				if asJSON {
					data, err := json.MarshalIndent(list, "", "  ")
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), string(data))
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatChallenges(list, lang))
				return nil
			}

			if pick < 1 || pick > len(list) {
				return &domain.ValidationError{Field: "brief", Message: fmt.Sprintf("challenge number must be between 1 and %d", len(list))}
			}
			c := list[pick-1]
			req := intelligence.BriefRequest{
				Category:    c.Category,
				IndustryKey: c.Industry,
				Lang:        lang,
				Challenge:   &c,
			}

			var b domain.Brief
			err = app.spin(cmd, "Expanding the challenge into a brief...", func() error {
				b, err = app.Briefs.Generate(cmd.Context(), req)
				return err
			})
			if err != nil {
				return err
			}
			out.asJSON = asJSON
			return out.write(cmd, b)
		},
	}
	addLangFlag(cmd.Flags(), &lang, "Challenge language (en or id)")
	cmd.Flags().IntVar(&pick, "brief", 0, "Generate a full brief from challenge N (1-based)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	cmd.Flags().StringVar(&out.save, "save", "", "With --brief, also write the brief JSON to this file")
	return cmd
}
