package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/Alan-Rodz/DesignPatterns/internal/catalog"
)

// browseQuit is the sentinel select option that exits the loop.
const browseQuit = "quit"

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Pick and run demos interactively",
	Args:  cobra.NoArgs,
	RunE:  runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if headless.IsHeadless() {
		return fmt.Errorf("browse needs an interactive terminal; use 'patterns run' instead")
	}

	out := cmd.OutOrStdout()
	for {
		choice, err := pickPattern()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("pattern selection: %w", err)
		}
		if choice == browseQuit {
			return nil
		}

		entry, err := catalog.Lookup(choice)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, appTheme.Accent("── "+displayName(entry.Name)+" ──"))
		if err := entry.Run(out); err != nil {
			return fmt.Errorf("run %s: %w", entry.Name, err)
		}
		fmt.Fprintln(out)
	}
}

// pickPattern shows one select form and returns the chosen name.
func pickPattern() (string, error) {
	options := make([]huh.Option[string], 0, 19)
	for _, e := range catalog.All() {
		label := fmt.Sprintf("%s — %s", displayName(e.Name), e.Summary)
		options = append(options, huh.NewOption(label, e.Name))
	}
	options = append(options, huh.NewOption("Quit", browseQuit))

	var choice string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Pick a pattern to run").
			Options(options...).
			Value(&choice),
	))
	if err := form.Run(); err != nil {
		return "", err
	}
	return choice, nil
}
