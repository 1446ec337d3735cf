package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Alan-Rodz/DesignPatterns/internal/config"
	"github.com/Alan-Rodz/DesignPatterns/internal/ui"
	"github.com/Alan-Rodz/DesignPatterns/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Runnable Gang-of-Four design pattern demonstrations",
	Long: `patterns is a teaching collection of Gang-of-Four design pattern
demonstrations: behavioral, creational and structural.

Each pattern is a small, self-contained example with a driver that prints
illustrative output. Use 'list' to see them, 'explain' to read about one,
'run' to execute one or all, or 'browse' to pick interactively.`,
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: false,
}

var (
	flagConfig  string
	flagNoColor bool

	appCfg   *config.Config
	appTheme *ui.Theme
	headless *ui.HeadlessManager
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("patterns %s\n", version.GetVersion()))

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", config.DefaultFileName, "path to the settings file")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewLoader().Load(flagConfig)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		appCfg = cfg

		noColor := flagNoColor || cfg.UI.NoColor
		appTheme = ui.NewTheme(cfg.UI.Theme, noColor)
		headless = ui.NewHeadlessManager()
		return nil
	}
}
