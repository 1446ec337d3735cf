package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Alan-Rodz/DesignPatterns/internal/catalog"
	"github.com/Alan-Rodz/DesignPatterns/internal/ui"
)

var (
	runAll      bool
	runCategory string
)

var runCmd = &cobra.Command{
	Use:   "run [pattern...]",
	Short: "Execute one or more pattern demonstrations",
	Long: `Execute pattern demonstrations by name, or every registered one
with --all. Category filters come from --category or the run.categories
setting in the config file.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().BoolVar(&runAll, "all", false, "run every registered demo")
	runCmd.Flags().StringVar(&runCategory, "category", "", "with --all, only run one category")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if !runAll && len(args) == 0 {
		return fmt.Errorf("name at least one pattern or pass --all")
	}
	if runAll && len(args) > 0 {
		return fmt.Errorf("--all and explicit names are mutually exclusive")
	}

	var selected []catalog.Entry
	if runAll {
		var err error
		if selected, err = selectAll(); err != nil {
			return err
		}
	} else {
		for _, name := range args {
			e, err := catalog.Lookup(name)
			if err != nil {
				return err
			}
			selected = append(selected, e)
		}
	}

	var bar ui.ProgressBar
	if runAll {
		bar = ui.NewProgressTo(appTheme, headless, cmd.ErrOrStderr()).Start("running demos", len(selected))
	}

	for _, e := range selected {
		slog.Debug("running demo", "pattern", e.Name, "category", string(e.Category))
		if bar != nil {
			bar.SetTitle(e.Name)
		}

		header := fmt.Sprintf("── %s (%s) ──", displayName(e.Name), e.Category)
		fmt.Fprintln(out, appTheme.Accent(header))
		if err := e.Run(out); err != nil {
			return fmt.Errorf("run %s: %w", e.Name, err)
		}
		fmt.Fprintln(out)

		if bar != nil {
			bar.Increment(1)
		}
	}
	if bar != nil {
		bar.Done()
	}

	fmt.Fprintln(out, appTheme.Success(fmt.Sprintf("%d demo(s) completed", len(selected))))
	return nil
}

// selectAll resolves the --all selection, applying the --category flag
// first and the configured category filter second.
func selectAll() ([]catalog.Entry, error) {
	if runCategory != "" {
		cat := catalog.Category(strings.ToLower(runCategory))
		entries := catalog.ByCategory(cat)
		if len(entries) == 0 {
			return nil, fmt.Errorf("unknown category %q", runCategory)
		}
		return entries, nil
	}

	if len(appCfg.Run.Categories) > 0 {
		var entries []catalog.Entry
		for _, c := range appCfg.Run.Categories {
			entries = append(entries, catalog.ByCategory(catalog.Category(c))...)
		}
		return entries, nil
	}

	return catalog.All(), nil
}
