package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/clientbuddy/internal/catalog"
	"github.com/alexanderramin/clientbuddy/internal/cli/formatter"
	"github.com/alexanderramin/clientbuddy/internal/domain"
	"github.com/alexanderramin/clientbuddy/internal/intelligence"
)

func newBriefCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "brief",
		Short: "Generate and translate client briefs",
	}
	cmd.AddCommand(newBriefGenerateCmd(app), newBriefTranslateCmd(app))
	return cmd
}

// briefOutput is shared by every command that ends with a brief.
type briefOutput struct {
	asJSON bool
	save   string
}

func (o *briefOutput) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.asJSON, "json", false, "Print the brief as JSON")
	cmd.Flags().StringVar(&o.save, "save", "", "Also write the brief JSON to this file")
}

func (o *briefOutput) write(cmd *cobra.Command, b domain.Brief) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err
	}
	if o.save != "" {
		if err := writeJSON(o.save, data); err != nil {
			return err
		}
	}
	if o.asJSON {
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatBrief(b))
	if o.save != "" {
		fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Saved to "+o.save))
	}
	return nil
}

// briefRequestFlags binds the generation inputs shared by "brief generate"
// and "scenario".
type briefRequestFlags struct {
	req intelligence.BriefRequest
}

func (f *briefRequestFlags) register(cmd *cobra.Command) {
	cmd.Flags().Var(newCategoryValue(&f.req.Category, domain.CategoryLogoDesign), "category", "Design category key (see: catalog categories)")
	cmd.Flags().StringVar(&f.req.IndustryKey, "industry", catalog.DefaultIndustry, "Client industry key (see: catalog industries)")
	cmd.Flags().StringVar(&f.req.RegionKey, "region", catalog.DefaultRegion, "Client region key (see: catalog regions)")
	addLangFlag(cmd.Flags(), &f.req.Lang, "Brief language (en or id)")
}

// resolve validates the flags and, in a terminal with no category given,
// asks for the inputs with a form.
func (f *briefRequestFlags) resolve(cmd *cobra.Command, app *App) (intelligence.BriefRequest, error) {
	if app.interactive() && !cmd.Flags().Changed("category") {
		if err := briefRequestForm(&f.req).Run(); err != nil {
			return intelligence.BriefRequest{}, err
		}
	}
	if !catalog.IsIndustry(f.req.IndustryKey) {
		return intelligence.BriefRequest{}, &domain.ValidationError{Field: "industry", Message: fmt.Sprintf("unknown industry %q", f.req.IndustryKey)}
	}
	if !catalog.IsRegion(f.req.RegionKey) {
		return intelligence.BriefRequest{}, &domain.ValidationError{Field: "region", Message: fmt.Sprintf("unknown region %q", f.req.RegionKey)}
	}
	return f.req, nil
}

func newBriefGenerateCmd(app *App) *cobra.Command {
	var (
		flags briefRequestFlags
		out   briefOutput
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a fictional client brief",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireAI(); err != nil {
				return err
			}
			req, err := flags.resolve(cmd, app)
			if err != nil {
				return err
			}

			var b domain.Brief
			err = app.spin(cmd, "The client is writing a brief...", func() error {
				b, err = app.Briefs.Generate(cmd.Context(), req)
				return err
			})
			if err != nil {
				return err
			}
			return out.write(cmd, b)
		},
	}
	flags.register(cmd)
	out.register(cmd)
	return cmd
}

func newBriefTranslateCmd(app *App) *cobra.Command {
	var (
		file   string
		target domain.Language
		out    briefOutput
	)

	cmd := &cobra.Command{
		Use:   "translate",
		Short: "Translate a saved brief into another language",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireAI(); err != nil {
				return err
			}
			b, err := readBrief(file)
			if err != nil {
				return err
			}

			var translated domain.Brief
			err = app.spin(cmd, "Translating...", func() error {
				translated, err = app.Briefs.Translate(cmd.Context(), b, target)
				return err
			})
			if err != nil {
				return err
			}
			return out.write(cmd, translated)
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "Brief JSON file (from --save)")
	cmd.Flags().Var(newLangValue(&target, domain.LangID), "to", "Target language (en or id)")
	_ = cmd.MarkFlagRequired("file")
	out.register(cmd)
	return cmd
}
