// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Server ServerConfig `toml:"server"`
	TMDB   TMDBConfig   `toml:"tmdb"`
}

type ServerConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	LogLevel string `toml:"log_level"`
}

type TMDBConfig struct {
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
	Language string `toml:"language"`
}

// Load reads, substitutes and validates the configuration file. It returns
// a *ConfigError when environment variables are unresolved or validation
// fails.
func Load(path string) (*Config, error) {
	cfg, missing, err := load(path)
	if err != nil {
		return nil, err
	}

	cerr := &ConfigError{Path: path, Missing: missing, Errors: cfg.Validate()}
	if cerr.HasErrors() {
		return nil, cerr
	}
	return cfg, nil
}

// LoadWithoutValidation reads the configuration file but skips validation
// and unresolved variable checks. Used by tooling that inspects configs
// which are not yet complete.
func LoadWithoutValidation(path string) (*Config, error) {
	cfg, _, err := load(path)
	return cfg, err
}

func load(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, missing, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8000
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = "info"
	}
}

// Addr returns the host:port the server should listen on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// substituteEnvVars replaces ${VAR}, ${VAR:-default} and ${VAR:?message}
// references with environment variable values. Unresolvable references are
// left unchanged and reported in the missing list.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)((?::-|:\?)[^}]*)?\}`)

func substituteEnvVars(content string) (string, []string) {
	var missing []string

	result := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		groups := envVarPattern.FindStringSubmatch(match)
		name, op := groups[1], groups[2]
		value, ok := os.LookupEnv(name)

		switch {
		case op == "":
			if !ok {
				missing = append(missing, name)
				return match
			}
			return value
		case strings.HasPrefix(op, ":-"):
			// Empty counts as unset, like the shell.
			if value != "" {
				return value
			}
			return op[2:]
		case strings.HasPrefix(op, ":?"):
			if value != "" {
				return value
			}
			missing = append(missing, fmt.Sprintf("%s: %s", name, op[2:]))
			return match
		}
		return match
	})

	return result, missing
}
