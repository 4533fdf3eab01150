package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/slide2048/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration as YAML after the config file search,
the difficulty preset and --fps have been applied.

Config search order:
  --config <path>
  ~/.slide2048/config.yaml
  ./configs/slide2048.yaml
  built-in defaults

Examples:
  slide2048 config
  slide2048 config --difficulty hard
  slide2048 config --defaults > ~/.slide2048/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
