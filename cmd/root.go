package cmd

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/HieuLe2021/AutomateFlow-Tracker/internal/utils"
)

var rootCmd = &cobra.Command{
	Use:               "automateflow-tracker",
	Short:             "Browse workflow definitions from a remote data API",
	PersistentPreRunE: RootCmdPersistentPreRunE,
}

// RootCmdPersistentPreRunE validates the global configuration before any
// subcommand runs.
func RootCmdPersistentPreRunE(cmd *cobra.Command, args []string) error {
	logLevelArg := viper.GetString("logLevel")
	urlString := viper.GetString("url")
	tokenURLString := viper.GetString("token-url")
	if err := setLogLevel(logLevelArg); err != nil {
		return err
	}
	if err := validateURL(urlString); err != nil {
		return err
	}
	if err := validateURL(tokenURLString); err != nil {
		return errors.WithMessage(err, "token URL")
	}

	slog.Debug("Application initialized", "logLevel", logLevelArg, "url", urlString, "tokenUrl", tokenURLString)

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var (
	validLogLevels = map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	validLogLevelsStr = strings.Join(utils.GetKeys(validLogLevels), "|")
)

// SetupRootCmdFlags registers the persistent flags on a command. Split out
// so tests can build their own command instances.
func SetupRootCmdFlags(command *cobra.Command) {
	command.PersistentFlags().StringP("logLevel", "l", "info", fmt.Sprintf("set log level (%s)", validLogLevelsStr))
	if err := viper.BindPFlag("logLevel", command.PersistentFlags().Lookup("logLevel")); err != nil {
		slog.Error("unable to bind flag", "error", err)
	}

	command.PersistentFlags().StringP("url", "u", "", "Root URL of the data API")
	if err := viper.BindPFlag("url", command.PersistentFlags().Lookup("url")); err != nil {
		slog.Error("unable to bind flag", "error", err)
	}

	command.PersistentFlags().StringP("token-url", "t", "", "URL of the credential endpoint")
	if err := viper.BindPFlag("token-url", command.PersistentFlags().Lookup("token-url")); err != nil {
		slog.Error("unable to bind flag", "error", err)
	}

	command.PersistentFlags().Int("page-size", 0, "records per page (0 = default)")
	if err := viper.BindPFlag("page-size", command.PersistentFlags().Lookup("page-size")); err != nil {
		slog.Error("unable to bind flag", "error", err)
	}

	command.PersistentFlags().String("theme", "dark", "dashboard theme (light|dark)")
	if err := viper.BindPFlag("theme", command.PersistentFlags().Lookup("theme")); err != nil {
		slog.Error("unable to bind flag", "error", err)
	}
}

func init() {
	SetupRootCmdFlags(rootCmd)

	viper.AddConfigPath("./")
	viper.SetConfigName("config")

	viper.AutomaticEnv()
}

// setLogLevel sets the log level
func setLogLevel(logLevel string) error {
	level, exists := validLogLevels[logLevel]
	if !exists {
		return fmt.Errorf("invalid log level: %s. Valid log levels are: %s", logLevel, validLogLevelsStr)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

// validateURL validates a URL is not empty and is a valid URL
func validateURL(urlStr string) error {
	if urlStr == "" {
		return errors.New("URL cannot be empty")
	}

	_, err := url.ParseRequestURI(urlStr)
	if err != nil {
		return fmt.Errorf("invalid URL: %v", err)
	}
	return nil
}
