package config

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

//go:embed data/default_config.toml
var defaultConfigTOML string

// EnvPrefix is the prefix for environment overrides, e.g. MADLIB_OUTPUT_VERBOSE
const EnvPrefix = "MADLIB"

// Manager handles configuration loading and management
type Manager struct {
	v      *viper.Viper
	cfg    *Config
	logger *slog.Logger
}

// NewManager creates a new configuration manager with default settings
func NewManager() *Manager {
	v := viper.New()

	// MADLIB_LOG_FILE -> log.file
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Manager{
		v:   v,
		cfg: &Config{}, // defaults loaded from embedded TOML in Load()
	}
}

// WithLogger sets the logger for the configuration manager
func (m *Manager) WithLogger(logger *slog.Logger) *Manager {
	m.logger = logger
	return m
}

// Load loads configuration from the specified TOML file, merging with defaults.
// A missing file is not an error; `madlib init` is what creates one.
func (m *Manager) Load(configPath string) error {
	if m.logger != nil {
		m.logger.Debug("Attempting to load config file", "path", configPath)
	}

	m.v.SetConfigType("toml")

	// load defaults from embedded TOML
	if err := m.v.ReadConfig(strings.NewReader(defaultConfigTOML)); err != nil {
		return fmt.Errorf("failed to load embedded defaults: %w", err)
	}

	if configPath != "" {
		m.v.SetConfigFile(configPath)

		// merge user config file over defaults
		err := m.v.MergeInConfig()
		switch {
		case err == nil:
			if m.logger != nil {
				m.logger.Info("Configuration loaded successfully", "path", m.v.ConfigFileUsed())
			}
		case isNotExist(err):
			if m.logger != nil {
				m.logger.Debug("Config file not found, using defaults", "path", configPath)
			}
		default:
			return fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	if err := m.v.Unmarshal(m.cfg); err != nil {
		return fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return nil
}

// isNotExist reports whether err means the config file is simply absent
func isNotExist(err error) bool {
	var configFileNotFoundError viper.ConfigFileNotFoundError
	if errors.As(err, &configFileNotFoundError) {
		return true
	}
	var pathError *os.PathError
	return errors.As(err, &pathError) && os.IsNotExist(pathError)
}

// Config returns the current configuration
func (m *Manager) Config() *Config {
	return m.cfg
}

// Viper returns the underlying Viper instance for flag binding
func (m *Manager) Viper() *viper.Viper {
	return m.v
}

// Path returns the config file path set by Load, which may not exist yet
func (m *Manager) Path() string {
	return m.v.ConfigFileUsed()
}

// Save writes the current configuration state back to the config file
func (m *Manager) Save() error {
	configFile := m.v.ConfigFileUsed()
	if configFile == "" {
		return fmt.Errorf("no config file path set")
	}

	configDir := filepath.Dir(configFile)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		if err := m.v.SafeWriteConfigAs(configFile); err != nil {
			return fmt.Errorf("failed to create config file: %w", err)
		}
	} else {
		if err := m.v.WriteConfigAs(configFile); err != nil {
			return fmt.Errorf("failed to update config file: %w", err)
		}
	}

	// reload the configuration struct to reflect the changes
	if err := m.v.Unmarshal(m.cfg); err != nil {
		return fmt.Errorf("failed to reload configuration after save: %w", err)
	}

	if m.logger != nil {
		m.logger.Info("Configuration saved", "path", configFile)
	}

	return nil
}

// NewDefaultFromEmbedded creates a Config struct populated from embedded TOML
// note we're primarily using this for testing
func NewDefaultFromEmbedded() *Config {
	v := viper.New()
	v.SetConfigType("toml")

	if err := v.ReadConfig(strings.NewReader(defaultConfigTOML)); err != nil {
		panic(fmt.Sprintf("failed to load embedded defaults in test helper: %v", err))
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		panic(fmt.Sprintf("failed to unmarshal embedded config in test helper: %v", err))
	}

	return cfg
}

// DefaultConfigTOML returns the embedded default configuration file
func DefaultConfigTOML() string {
	return defaultConfigTOML
}
