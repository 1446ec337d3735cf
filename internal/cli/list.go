package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Alan-Rodz/DesignPatterns/internal/catalog"
)

var listCategory string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available pattern demonstrations",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listCategory, "category", "", "only list one category (behavioral, creational, structural)")
	rootCmd.AddCommand(listCmd)
}

// displayName turns a registry name like "template-method" into
// "Template Method".
func displayName(name string) string {
	title := cases.Title(language.English)
	return title.String(strings.ReplaceAll(name, "-", " "))
}

func runList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	categories := catalog.Categories()
	if listCategory != "" {
		cat := catalog.Category(strings.ToLower(listCategory))
		if len(catalog.ByCategory(cat)) == 0 {
			return fmt.Errorf("unknown category %q", listCategory)
		}
		categories = []catalog.Category{cat}
	}

	title := cases.Title(language.English)
	for _, cat := range categories {
		fmt.Fprintln(out, appTheme.Title(title.String(string(cat))))
		for _, e := range catalog.ByCategory(cat) {
			fmt.Fprintf(out, "  %-18s %s\n", e.Name, appTheme.Muted(e.Summary))
		}
		fmt.Fprintln(out)
	}
	return nil
}
