package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ramzor-dev/ramzor/internal/category"
	"github.com/ramzor-dev/ramzor/internal/model"
)

func newRulesCommand(gf *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print the active categorization rules in match order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := loadProject(gf)
			if err != nil {
				return err
			}
			cats, err := p.categories()
			if err != nil {
				return err
			}
			return printRules(cmd.OutOrStdout(), cats)
		},
	}
}

func printRules(w io.Writer, c *category.Classifier) error {
	for i, r := range c.Rules() {
		if _, err := fmt.Fprintf(w, "%d. %-14s %s\n", i+1, r.Category, strings.Join(r.Keywords, ", ")); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "*  %-14s (no keyword matched)\n", model.CategoryOther)
	return err
}
