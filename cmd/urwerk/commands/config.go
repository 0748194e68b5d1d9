package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/neusy/urwerk-client/internal/constants"
)

// Config represents the persisted CLI configuration.
type Config struct {
	API       string `json:"api,omitempty"        yaml:"api,omitempty"`
	UserAgent string `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
	Output    string `json:"output,omitempty"     yaml:"output,omitempty"`
	LogLevel  string `json:"log_level,omitempty"  yaml:"log_level,omitempty"`
	Verbose   bool   `json:"verbose"              yaml:"verbose"`
	NATSURL   string `json:"nats_url,omitempty"   yaml:"nats_url,omitempty"`
	Subject   string `json:"subject,omitempty"    yaml:"subject,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the urwerk CLI configuration file",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration after flags, environment and config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return render(cmd, loadConfig(), displayConfigTable)
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long: `Set a configuration value and save it to the config file.

Keys: api, user_agent, output, log_level, verbose, nats_url, subject`,
		Args: cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			value := args[1]

			config := loadConfig()

			if err := setConfigValue(config, key, value); err != nil {
				return err
			}

			if err := saveConfig(config); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			return printMessage(cmd, "Set", key+" = "+value)
		},
	}
}

func loadConfig() *Config {
	return &Config{
		API:       viper.GetString("api"),
		UserAgent: viper.GetString("user_agent"),
		Output:    viper.GetString("output"),
		LogLevel:  viper.GetString("log_level"),
		Verbose:   viper.GetBool("verbose"),
		NATSURL:   viper.GetString("nats_url"),
		Subject:   viper.GetString("subject"),
	}
}

func setConfigValue(config *Config, key, value string) error {
	switch key {
	case "api":
		config.API = value
	case "user_agent":
		config.UserAgent = value
	case "output":
		switch value {
		case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
			config.Output = value
		default:
			return fmt.Errorf("%w: %s", constants.ErrUnsupportedOutput, value)
		}
	case "log_level":
		config.LogLevel = value
	case "verbose":
		config.Verbose = value == constants.BooleanTrue || value == "1"
	case "nats_url":
		config.NATSURL = value
	case "subject":
		config.Subject = value
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	viper.Set(key, value)

	return nil
}

// configFilePath returns the config file in use, or ~/.urwerk/config.yml.
func configFilePath() (string, error) {
	if configFile := viper.ConfigFileUsed(); configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, constants.ConfigDirName, constants.ConfigFileName), nil
}

func saveConfig(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	if err := os.WriteFile(configFile, data, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func displayConfigTable(out io.Writer, config *Config) error {
	table := newTable(out, "property", "value")
	_ = table.Append([]string{"API", config.API})
	_ = table.Append([]string{"User Agent", config.UserAgent})
	_ = table.Append([]string{"Output", config.Output})
	_ = table.Append([]string{"Log Level", config.LogLevel})
	_ = table.Append([]string{"Verbose", strconv.FormatBool(config.Verbose)})
	_ = table.Append([]string{"NATS URL", config.NATSURL})
	_ = table.Append([]string{"Subject", config.Subject})

	return renderTable(table)
}
