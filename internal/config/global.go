// Package config handles the global dv configuration.
//
// The configuration only affects presentation and tooling (output mode,
// colors, clipboard command, log level). The snippet store location is fixed
// and never read from here.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

// GlobalConfig represents configuration stored in ~/.config/dv/config.yml.
type GlobalConfig struct {
	Output    string `yaml:"output,omitempty"`    // human or json
	Color     string `yaml:"color,omitempty"`     // auto, always, never
	Clipboard string `yaml:"clipboard,omitempty"` // Command line overriding clipboard detection, e.g. "wl-copy"
	LogLevel  string `yaml:"log_level,omitempty"` // debug, info, warn, error
	NoBanner  bool   `yaml:"no_banner,omitempty"` // Suppress the banner in human output
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "dv"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"
	// EnvFile is the dotenv file read from the config directory.
	EnvFile = ".env"
)

// Allowed values.
const (
	OutputHuman = "human"
	OutputJSON  = "json"

	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"

	DefaultLogLevel = "warn"
)

var (
	ValidOutputs   = []string{OutputHuman, OutputJSON}
	ValidColors    = []string{ColorAuto, ColorAlways, ColorNever}
	ValidLogLevels = []string{"debug", "info", "warn", "error"}
)

// ErrUnknownKey is returned by Get and Set for keys that are not configurable.
var ErrUnknownKey = errors.New("unknown config key")

// globalConfigCache caches the loaded global config.
var globalConfigCache *GlobalConfig

// GlobalConfigDirPath returns the dv config directory.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/dv.
func GlobalConfigDirPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir)
}

// GlobalConfigPath returns the path to the global config file.
func GlobalConfigPath() string {
	dir := GlobalConfigDirPath()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, GlobalConfigFile)
}

// LoadGlobalConfig loads the global configuration file and applies
// environment overrides. Returns defaults (not an error) if the file doesn't exist.
func LoadGlobalConfig() (*GlobalConfig, error) {
	if globalConfigCache != nil {
		return globalConfigCache, nil
	}

	cfg, err := readGlobalConfig(GlobalConfigPath())
	if err != nil {
		return nil, err
	}

	loadEnvFiles()
	cfg.Output = GetConfigValue("DV_OUTPUT", cfg.Output)
	cfg.Clipboard = GetConfigValue("DV_CLIPBOARD", cfg.Clipboard)
	cfg.LogLevel = GetConfigValue("DV_LOG_LEVEL", cfg.LogLevel)
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	globalConfigCache = cfg
	return cfg, nil
}

// readGlobalConfig reads the file as written, without defaults or env overrides.
func readGlobalConfig(path string) (*GlobalConfig, error) {
	if path == "" {
		return &GlobalConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &GlobalConfig{}, nil
		}
		return nil, fmt.Errorf("reading global config: %w", err)
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing global config: %w", err)
	}
	return &cfg, nil
}

// ResetGlobalConfigCache clears the cached global config.
// Useful for testing.
func ResetGlobalConfigCache() {
	globalConfigCache = nil
}

func (c *GlobalConfig) applyDefaults() {
	if c.Output == "" {
		c.Output = OutputHuman
	}
	if c.Color == "" {
		c.Color = ColorAuto
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// Validate checks enumerated fields. Empty values are allowed.
func (c *GlobalConfig) Validate() error {
	if err := validateOneOf("output", c.Output, ValidOutputs); err != nil {
		return err
	}
	if err := validateOneOf("color", c.Color, ValidColors); err != nil {
		return err
	}
	return validateOneOf("log_level", c.LogLevel, ValidLogLevels)
}

func validateOneOf(name, value string, valid []string) error {
	if value == "" {
		return nil
	}
	for _, v := range valid {
		if value == v {
			return nil
		}
	}
	return fmt.Errorf("invalid %s: %s (valid: %v)", name, value, valid)
}

// Keys returns the configurable keys in sorted order.
func Keys() []string {
	keys := []string{"output", "color", "clipboard", "log_level", "no_banner"}
	sort.Strings(keys)
	return keys
}

// Get returns the value of a config key as a string.
func (c *GlobalConfig) Get(key string) (string, error) {
	switch key {
	case "output":
		return c.Output, nil
	case "color":
		return c.Color, nil
	case "clipboard":
		return c.Clipboard, nil
	case "log_level":
		return c.LogLevel, nil
	case "no_banner":
		return strconv.FormatBool(c.NoBanner), nil
	default:
		return "", fmt.Errorf("%w: %s (valid: %v)", ErrUnknownKey, key, Keys())
	}
}

// Set assigns a config key from its string form and validates the result.
func (c *GlobalConfig) Set(key, value string) error {
	switch key {
	case "output":
		c.Output = value
	case "color":
		c.Color = value
	case "clipboard":
		c.Clipboard = value
	case "log_level":
		c.LogLevel = value
	case "no_banner":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid no_banner: %s (want true or false)", value)
		}
		c.NoBanner = b
	default:
		return fmt.Errorf("%w: %s (valid: %v)", ErrUnknownKey, key, Keys())
	}
	return c.Validate()
}

// UpdateGlobalConfig applies key=value to the config file on disk, leaving
// env overrides and defaults out of the written file.
func UpdateGlobalConfig(key, value string) error {
	path := GlobalConfigPath()
	if path == "" {
		return errors.New("cannot locate config directory")
	}

	cfg, err := readGlobalConfig(path)
	if err != nil {
		return err
	}
	if err := cfg.Set(key, value); err != nil {
		return err
	}
	if err := cfg.Save(path); err != nil {
		return err
	}

	ResetGlobalConfigCache()
	return nil
}

// Save writes the config as yaml to path, creating the directory if needed.
func (c *GlobalConfig) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
