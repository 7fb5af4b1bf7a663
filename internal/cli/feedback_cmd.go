package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/clientbuddy/internal/catalog"
	"github.com/alexanderramin/clientbuddy/internal/cli/formatter"
	"github.com/alexanderramin/clientbuddy/internal/domain"
	"github.com/alexanderramin/clientbuddy/internal/imagecap"
	"github.com/alexanderramin/clientbuddy/internal/intelligence"
)

func newFeedbackCmd(app *App) *cobra.Command {
	var (
		file  string
		image string
		note  string
		lang  domain.Language
	)

	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "Get the client's reaction to a design, outside a scenario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireAI(); err != nil {
				return err
			}
			b, err := readBrief(file)
			if err != nil {
				return err
			}
			img, err := imagecap.Load(image)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("lang") {
				lang = b.Meta().Lang
			}

			var text string
			err = app.spin(cmd, "The client is looking at your design...", func() error {
				text, err = app.Feedback.Feedback(cmd.Context(), intelligence.FeedbackRequest{
					Image: img,
					Brief: b,
					Lang:  lang,
					Note:  note,
				})
				return err
			})
			if err != nil {
				return err
			}

			p := b.Meta().ClientPersonality
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatFeedback(p, catalog.PersonaName(p, lang), text))
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "brief", "", "Brief JSON file (from brief generate --save)")
	cmd.Flags().StringVar(&image, "image", "", "Design image: file path or data: URL")
	cmd.Flags().StringVar(&note, "note", "", "Optional note to the client")
	addLangFlag(cmd.Flags(), &lang, "Reply language (defaults to the brief's)")
	_ = cmd.MarkFlagRequired("brief")
	_ = cmd.MarkFlagRequired("image")
	return cmd
}
