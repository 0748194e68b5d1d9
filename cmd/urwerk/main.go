package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/neusy/urwerk-client/cmd/urwerk/commands"
	"github.com/neusy/urwerk-client/internal/constants"
)

var rootCmd = &cobra.Command{
	Use:   "urwerk",
	Short: "urwerk device API CLI",
	Long: `A command-line interface for urwerk colorsensors and spectral imagers.

It reads device identity, system and network state, detection profiles and
samples, streams live samples and discovers devices on the local network.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.urwerk/config.yml)")
	rootCmd.PersistentFlags().StringP("api", "a", "", "device API root URL, e.g. http://10.0.0.5/api/v1")
	rootCmd.PersistentFlags().String("user-agent", "", "User-Agent header sent to the device")
	rootCmd.PersistentFlags().StringP("output", "o", constants.FormatTable, "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log HTTP requests and responses")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error); silent when unset")

	// Bind flags to viper
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("api", rootCmd.PersistentFlags().Lookup("api"))
	_ = viper.BindPFlag("user_agent", rootCmd.PersistentFlags().Lookup("user-agent"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand())
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewInfoCommand())
	rootCmd.AddCommand(commands.NewSystemCommand())
	rootCmd.AddCommand(commands.NewNetworkCommand())
	rootCmd.AddCommand(commands.NewSamplesCommand())
	rootCmd.AddCommand(commands.NewProfilesCommand())
	rootCmd.AddCommand(commands.NewDetectablesCommand())
	rootCmd.AddCommand(commands.NewSettingsCommand())
	rootCmd.AddCommand(commands.NewMaintenanceCommand())
	rootCmd.AddCommand(commands.NewDiscoverCommand())
}

func initConfig() {
	// A .env in the working directory may carry URWERK_* overrides.
	_ = godotenv.Load()

	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		configDir := filepath.Join(home, constants.ConfigDirName)

		viper.AddConfigPath(configDir)
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
