package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/webidl/am"
	"github.com/teranos/webidl/errors"
)

// ConfigCmd represents the config command
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show and edit webidl configuration",
	Long: `Display and manage webidl configuration.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (WEBIDL_* prefix)
3. Project config (webidl.toml, searched upward from the working directory)
4. User config (~/.webidl/config.toml)
5. System config (/etc/webidl/config.toml)
6. Default values

Examples:
  webidl config show                     # Show current configuration
  webidl config show --format json       # Show configuration in JSON format
  webidl config show --sources           # Show where each value comes from
  webidl config set expand.workers 8     # Persist a value in the user config
  webidl config validate                 # Validate current configuration`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  "Display the effective webidl configuration from all sources",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a value in the user configuration",
	Long:  "Write a value to ~/.webidl/config.toml using dot notation (e.g., expand.workers, watch.debounce_ms)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := am.SetUserValue(args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", args[0], args[1])
		return nil
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := am.Load()
		if err != nil {
			return errors.Wrap(err, "failed to load config")
		}
		if err := cfg.Validate(); err != nil {
			return errors.Wrap(err, "configuration validation failed")
		}
		fmt.Fprintln(cmd.OutOrStdout(), "✓ Configuration is valid")
		return nil
	},
}

var (
	configFormat  string
	configSources bool
)

func init() {
	configShowCmd.Flags().StringVar(&configFormat, "format", "toml", "Output format: toml, json, yaml")
	configShowCmd.Flags().BoolVar(&configSources, "sources", false, "List each setting with the source it came from")

	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configSetCmd)
	ConfigCmd.AddCommand(configValidateCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	if configSources {
		return WriteSources(cmd.OutOrStdout(), am.Introspect())
	}

	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	return WriteConfig(cmd.OutOrStdout(), cfg, configFormat)
}

// WriteConfig renders cfg as toml, json or yaml
func WriteConfig(w io.Writer, cfg *am.Config, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to JSON")
		}
		_, err = fmt.Fprintln(w, string(data))
		return err

	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to YAML")
		}
		_, err = fmt.Fprintf(w, "# webidl configuration\n%s", data)
		return err

	case "toml":
		data, err := toml.Marshal(cfg)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to TOML")
		}
		_, err = fmt.Fprintf(w, "# webidl configuration\n%s", data)
		return err

	default:
		return errors.Newf("unsupported format: %s (supported: toml, json, yaml)", format)
	}
}

// WriteSources renders settings as a table of key, value and source
func WriteSources(w io.Writer, settings []am.SettingInfo) error {
	data := pterm.TableData{{"Key", "Value", "Source", "From"}}
	for _, s := range settings {
		data = append(data, []string{s.Key, fmt.Sprint(s.Value), string(s.Source), s.SourcePath})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "failed to render table")
	}
	_, err = fmt.Fprintln(w, table)
	return err
}
