package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tacogips/altadder/internal/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
	Long: `Manage the altadder configuration file.

The file lives at $XDG_CONFIG_HOME/altadder/config.toml unless --config is
given.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with default values",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
	// The file named by --config may not exist yet.
	Annotations: map[string]string{annotationConfigOptional: "true"},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, FlagForce, false, DescForce)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func configPath() string {
	if globalConfigPath != "" {
		return globalConfigPath
	}
	return config.DefaultConfigPath()
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configPath()
	if _, err := os.Stat(path); err == nil && !configInitForce {
		return fmt.Errorf("configuration file already exists: %s (use --%s to overwrite)", path, FlagForce)
	}

	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return err
	}
	printSuccess("Wrote " + path)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	data, err := config.Encode(currentConfig())
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	printResult(string(data))
	return nil
}
