package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blockfall/internal/config"
	"github.com/vovakirdan/tui-blockfall/internal/games/blockfall"
)

var flagCheckConfig string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or check the game configuration",
	Long: `Print the default configuration as YAML, or check a config file.

Config files are searched in this order:
  --config <path> (play and menu)
  ~/.blockfall/configs/blockfall.yaml
  ./configs/blockfall.yaml
  built-in defaults

Examples:
  blockfall config > ~/.blockfall/configs/blockfall.yaml
  blockfall config --check ./my-blockfall.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagCheckConfig, "check", "", "Validate this config file and report the result")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagCheckConfig == "" {
		_, err := cmd.OutOrStdout().Write(config.GetDefaultYAML(blockfall.ID))
		return err
	}

	cfg, err := config.LoadBlockfall(flagCheckConfig)
	if err != nil {
		return err
	}
	cliLogger().Info("config ok", "path", flagCheckConfig,
		"rows", cfg.Board.Rows, "columns", cfg.Board.Columns, "gravity_ms", cfg.Gravity.PeriodMS)
	return nil
}
