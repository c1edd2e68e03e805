package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/apimgr/xfetch/src/paths"
)

const defaultConfig = `# xfetch CLI configuration
model: grok-4-1-fast
web: false

api:
  base_url: https://api.x.ai/v1

logging:
  level: warn
  file: ""
  max_size: 10
  max_files: 5

output:
  color: auto
`

func newConfigCmd(opts *options) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
	}

	configShowCmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := yaml.Marshal(viper.AllSettings())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	configGetCmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if !viper.IsSet(key) {
				return &UsageError{Err: fmt.Errorf("key not found: %s", key)}
			}
			fmt.Fprintln(cmd.OutOrStdout(), viper.Get(key))
			return nil
		},
	}

	configSetCmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			viper.Set(key, value)

			configPath := paths.ResolveConfigPath(opts.cfgFile)
			if err := paths.EnsureFile(configPath); err != nil {
				return err
			}
			if err := viper.WriteConfigAs(configPath); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
			return nil
		},
	}

	configInitCmd := &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath := paths.ResolveConfigPath(opts.cfgFile)

			if _, err := os.Stat(configPath); err == nil {
				return fmt.Errorf("config already exists: %s", configPath)
			}
			if err := paths.EnsureFile(configPath); err != nil {
				return err
			}
			if err := os.WriteFile(configPath, []byte(defaultConfig), 0600); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created config file: %s\n", configPath)
			return nil
		},
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), paths.ResolveConfigPath(opts.cfgFile))
			return nil
		},
	}

	configCmd.AddCommand(configShowCmd, configGetCmd, configSetCmd, configInitCmd, configPathCmd)
	return configCmd
}
