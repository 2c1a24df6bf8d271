// Package config handles chromectl configuration loading and validation.
package config

import (
	"fmt"
)

// Config is the root configuration structure for chromectl.
type Config struct {
	// Chrome settings
	Chrome ChromeConfig `yaml:"chrome" mapstructure:"chrome"`

	// Provisioning settings
	Provision ProvisionConfig `yaml:"provision" mapstructure:"provision"`

	// Window grid settings
	Grid GridConfig `yaml:"grid" mapstructure:"grid"`

	// Logging settings
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// ChromeConfig describes the managed Chrome installation.
type ChromeConfig struct {
	// BinaryPath is the Chrome executable inside the app bundle.
	BinaryPath string `yaml:"binary_path" mapstructure:"binary_path"`

	// ProcessName is the process name running Chrome instances report.
	ProcessName string `yaml:"process_name" mapstructure:"process_name"`

	// AppName is the application name AppleScript addresses.
	AppName string `yaml:"app_name" mapstructure:"app_name"`
}

// ProvisionConfig contains launcher-script generation settings.
type ProvisionConfig struct {
	// BaseDebugPort is the remote debugging port assigned to the first
	// instance in a range; later instances count up from it.
	BaseDebugPort int `yaml:"base_debug_port" mapstructure:"base_debug_port"`

	// ScriptPrefix is prepended to the instance index to form the
	// launcher script filename.
	ScriptPrefix string `yaml:"script_prefix" mapstructure:"script_prefix"`
}

// GridConfig contains window arrangement settings.
type GridConfig struct {
	// CellWidth is the width of one grid cell in pixels.
	CellWidth int `yaml:"cell_width" mapstructure:"cell_width"`

	// CellHeight is the height of one grid cell in pixels.
	CellHeight int `yaml:"cell_height" mapstructure:"cell_height"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `yaml:"level" mapstructure:"level"`

	// Format is the output format (auto, json, console).
	Format string `yaml:"format" mapstructure:"format"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Chrome: ChromeConfig{
			BinaryPath:  "/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
			ProcessName: "Google Chrome",
			AppName:     "Google Chrome",
		},
		Provision: ProvisionConfig{
			BaseDebugPort: 9222,
			ScriptPrefix:  "start-",
		},
		Grid: GridConfig{
			CellWidth:  800,
			CellHeight: 600,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "auto",
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Chrome.BinaryPath == "" {
		return fmt.Errorf("chrome.binary_path is required")
	}
	if c.Chrome.ProcessName == "" {
		return fmt.Errorf("chrome.process_name is required")
	}
	if c.Chrome.AppName == "" {
		return fmt.Errorf("chrome.app_name is required")
	}
	if c.Provision.BaseDebugPort < 1 || c.Provision.BaseDebugPort > 65535 {
		return fmt.Errorf("provision.base_debug_port must be a valid port number")
	}
	if c.Grid.CellWidth < 1 {
		return fmt.Errorf("grid.cell_width must be at least 1")
	}
	if c.Grid.CellHeight < 1 {
		return fmt.Errorf("grid.cell_height must be at least 1")
	}
	switch c.Logging.Format {
	case "auto", "json", "console":
		// ok
	default:
		return fmt.Errorf("logging.format must be one of auto, json, console")
	}
	return nil
}
