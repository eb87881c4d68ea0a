package config

// Config represents the complete configuration structure for madlib
type Config struct {
	Output Output `mapstructure:"output"`
	Log    Log    `mapstructure:"log"`
}

// Output controls what is written to stderr alongside the filled text
type Output struct {
	Verbose bool `mapstructure:"verbose"`
	Color   bool `mapstructure:"color"`
}

// Log configures the structured logger and its optional rotating file
type Log struct {
	Debug      bool   `mapstructure:"debug"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}
