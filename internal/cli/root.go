// Package cli implements the chromectl command-line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/tOgg1/chromectl/internal/config"
	"github.com/tOgg1/chromectl/internal/envcheck"
	"github.com/tOgg1/chromectl/internal/logging"
)

var (
	appConfig *config.Config

	configFile string
	logLevel   string
	logFormat  string
)

// Swappable for tests.
var verifyEnvFunc = envcheck.Verify

// Execute runs the chromectl CLI.
func Execute(version string) error {
	return newRootCmd(version).Execute()
}

func newRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "chromectl",
		Short:         "Manage isolated Chrome instances on macOS",
		Long:          "chromectl provisions isolated Chrome instances and grid-arranges their windows.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initApp(); err != nil {
				return err
			}
			// Every operation requires Chrome and osascript; fail fast
			// before any work happens.
			return verifyEnvFunc(appConfig)
		},
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file path")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format (auto, json, console)")

	cmd.AddCommand(
		newCreateCmd(),
		newArrangeCmd(),
		newListCmd(),
	)

	return cmd
}

// initApp loads configuration and initializes logging. Idempotent so
// tests can pre-seed appConfig.
func initApp() error {
	if appConfig == nil {
		loader := config.NewLoader()
		if configFile != "" {
			loader.SetConfigFile(configFile)
		}
		cfg, err := loader.Load()
		if err != nil {
			return err
		}
		appConfig = cfg
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = appConfig.Logging.Level
	logCfg.Format = appConfig.Logging.Format
	if logLevel != "" {
		logCfg.Level = logLevel
	}
	if logFormat != "" {
		logCfg.Format = logFormat
	}
	logging.Init(logCfg)

	return nil
}
