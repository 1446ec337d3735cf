package cli

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/Alan-Rodz/DesignPatterns/internal/catalog"
)

var explainCmd = &cobra.Command{
	Use:   "explain <pattern>",
	Short: "Describe a pattern and the contract its demo illustrates",
	Args:  cobra.ExactArgs(1),
	RunE:  runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	entry, err := catalog.Lookup(args[0])
	if err != nil {
		return err
	}

	if appTheme.NoColor || headless.IsHeadless() {
		fmt.Fprintln(out, entry.Doc)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(appCfg.UI.Width),
	)
	if err != nil {
		slog.Warn("markdown renderer unavailable, printing plain text", "error", err)
		fmt.Fprintln(out, entry.Doc)
		return nil
	}

	rendered, err := renderer.Render(entry.Doc)
	if err != nil {
		slog.Warn("markdown rendering failed, printing plain text", "error", err)
		fmt.Fprintln(out, entry.Doc)
		return nil
	}
	fmt.Fprint(out, rendered)
	return nil
}
