package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/clientbuddy/internal/cli/formatter"
	"github.com/alexanderramin/clientbuddy/internal/domain"
)

func newCatalogCmd() *cobra.Command {
	var lang domain.Language

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List design categories, industries and regions",
	}
	addLangFlag(cmd.PersistentFlags(), &lang, "Label language (en or id)")

	list := func(use, short string, render func(domain.Language) string) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(cmd.OutOrStdout(), render(lang))
				return nil
			},
		}
	}

	cmd.AddCommand(
		list("categories", "List design categories and the brief type each produces", formatter.FormatCategories),
		list("industries", "List client industries", formatter.FormatIndustries),
		list("regions", "List client regions", formatter.FormatRegions),
	)
	return cmd
}
