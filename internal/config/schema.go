package config

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// ConfigFieldInfo contains metadata about a configuration field
type ConfigFieldInfo struct {
	Type        reflect.Type
	Description string
	Default     interface{}
	Validation  func(interface{}) error
}

// ConfigSchema holds the registry of valid configuration paths and aliases
type ConfigSchema struct {
	ValidPaths map[string]ConfigFieldInfo
	Aliases    map[string]string
}

// validateIntRange returns a validation function for int values within a range
func validateIntRange(min, max int) func(interface{}) error {
	return func(value interface{}) error {
		if v, ok := value.(int); ok {
			if v < min || v > max {
				return fmt.Errorf("value must be between %d and %d", min, max)
			}
			return nil
		}
		return fmt.Errorf("expected int, got %T", value)
	}
}

// validateLogPath rejects log file paths that point at a directory
func validateLogPath() func(interface{}) error {
	return func(value interface{}) error {
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		if v != "" && strings.HasSuffix(v, "/") {
			return fmt.Errorf("log file path must name a file, got directory %q", v)
		}
		return nil
	}
}

// DefaultConfigSchema returns the default configuration schema
func DefaultConfigSchema() *ConfigSchema {
	return &ConfigSchema{
		ValidPaths: map[string]ConfigFieldInfo{
			// output
			"output.verbose": {
				Type:        reflect.TypeOf(bool(false)),
				Description: "Print vocabulary and run statistics to stderr",
				Default:     false,
			},
			"output.color": {
				Type:        reflect.TypeOf(bool(false)),
				Description: "Colorize stderr output",
				Default:     true,
			},

			// logging
			"log.debug": {
				Type:        reflect.TypeOf(bool(false)),
				Description: "Enable detailed debug logging",
				Default:     false,
			},
			"log.file": {
				Type:        reflect.TypeOf(""),
				Description: "Rotating log file path (empty disables file logging)",
				Default:     "",
				Validation:  validateLogPath(),
			},
			"log.max_size_mb": {
				Type:        reflect.TypeOf(int(0)),
				Description: "Maximum log file size in megabytes before rotation",
				Default:     10,
				Validation:  validateIntRange(1, 1024),
			},
			"log.max_backups": {
				Type:        reflect.TypeOf(int(0)),
				Description: "Number of rotated log files to keep (0 keeps all)",
				Default:     3,
				Validation:  validateIntRange(0, 100),
			},
			"log.max_age_days": {
				Type:        reflect.TypeOf(int(0)),
				Description: "Days to keep rotated log files (0 keeps forever)",
				Default:     28,
				Validation:  validateIntRange(0, 3650),
			},
			"log.compress": {
				Type:        reflect.TypeOf(bool(false)),
				Description: "Gzip rotated log files",
				Default:     false,
			},
		},

		Aliases: map[string]string{
			"verbose":      "output.verbose",
			"color":        "output.color",
			"debug":        "log.debug",
			"log-file":     "log.file",
			"log-max-size": "log.max_size_mb",
			"log-backups":  "log.max_backups",
			"log-max-age":  "log.max_age_days",
			"log-compress": "log.compress",
		},
	}
}

// ResolveKey resolves an alias to its canonical path or returns the path if already canonical
func (s *ConfigSchema) ResolveKey(key string) (string, error) {
	// Check if it's an alias first
	if canonicalPath, exists := s.Aliases[key]; exists {
		return canonicalPath, nil
	}

	// Check if it's a valid direct path
	if _, exists := s.ValidPaths[key]; exists {
		return key, nil
	}

	// Return error with suggestions
	suggestions := s.FindSimilarKeys(key)
	if len(suggestions) > 0 {
		return "", fmt.Errorf("invalid config key %q. Did you mean one of: %s", key, strings.Join(suggestions, ", "))
	}

	return "", fmt.Errorf("invalid config key %q. Use 'madlib config' to see valid keys", key)
}

// ValidateValue validates a value against the field's type and validation rules
func (s *ConfigSchema) ValidateValue(path string, value interface{}) error {
	fieldInfo, exists := s.ValidPaths[path]
	if !exists {
		return fmt.Errorf("unknown config path: %s", path)
	}

	// Check type compatibility
	valueType := reflect.TypeOf(value)
	if valueType != fieldInfo.Type {
		return fmt.Errorf("expected %s, got %s", fieldInfo.Type.String(), valueType.String())
	}

	// Run custom validation if present
	if fieldInfo.Validation != nil {
		return fieldInfo.Validation(value)
	}

	return nil
}

// GetFieldInfo returns information about a configuration field
func (s *ConfigSchema) GetFieldInfo(path string) (ConfigFieldInfo, error) {
	fieldInfo, exists := s.ValidPaths[path]
	if !exists {
		return ConfigFieldInfo{}, fmt.Errorf("unknown config path: %s", path)
	}
	return fieldInfo, nil
}

// ListAllKeys returns all valid configuration keys (canonical paths and aliases)
func (s *ConfigSchema) ListAllKeys() []string {
	var keys []string

	// Add canonical paths
	for path := range s.ValidPaths {
		keys = append(keys, path)
	}

	// Add aliases
	for alias := range s.Aliases {
		keys = append(keys, alias)
	}

	sort.Strings(keys)
	return keys
}

// ListCanonicalKeys returns only the canonical configuration paths
func (s *ConfigSchema) ListCanonicalKeys() []string {
	var keys []string
	for path := range s.ValidPaths {
		keys = append(keys, path)
	}
	sort.Strings(keys)
	return keys
}

// ListAliases returns only the alias keys
func (s *ConfigSchema) ListAliases() []string {
	var aliases []string
	for alias := range s.Aliases {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return aliases
}

// FindSimilarKeys finds keys similar to the input using simple string matching
func (s *ConfigSchema) FindSimilarKeys(key string) []string {
	var suggestions []string
	lowerKey := strings.ToLower(key)

	// Check canonical paths
	for path := range s.ValidPaths {
		if strings.Contains(strings.ToLower(path), lowerKey) ||
			strings.Contains(lowerKey, strings.ToLower(strings.Split(path, ".")[len(strings.Split(path, "."))-1])) {
			suggestions = append(suggestions, path)
		}
	}

	// Check aliases
	for alias := range s.Aliases {
		if strings.Contains(strings.ToLower(alias), lowerKey) ||
			strings.Contains(lowerKey, strings.ToLower(alias)) {
			suggestions = append(suggestions, alias)
		}
	}

	// Limit suggestions to avoid overwhelming output
	if len(suggestions) > 5 {
		suggestions = suggestions[:5]
	}

	return suggestions
}
