package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"github.com/takak2166/markdown2wordpress/internal/logger"
)

// Environment variables read by Load
const (
	EnvURL         = "WORDPRESS_URL"
	EnvUsername    = "WORDPRESS_USERNAME"
	EnvAppPassword = "WORDPRESS_APP_PASSWORD"
	EnvLogLevel    = "LOG_LEVEL"
)

// DefaultLogLevel is used when LOG_LEVEL is unset
const DefaultLogLevel = "info"

// ErrMissingCredentials is returned by Validate when any credential is empty
var ErrMissingCredentials = errors.New("missing WordPress credentials")

// Config holds everything needed to talk to a WordPress site
type Config struct {
	WordPressURL string
	Username     string
	AppPassword  string
	LogLevel     string
}

// LookupFunc looks up a variable the way os.LookupEnv does
type LookupFunc func(key string) (string, bool)

// DefaultEnvFiles returns the override files in dir, local first
func DefaultEnvFiles(dir string) []string {
	return []string{
		filepath.Join(dir, ".env.local"),
		filepath.Join(dir, ".env"),
	}
}

// ExecutableDir returns the directory of the running binary
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to get executable path: %w", err)
	}
	return filepath.Dir(exe), nil
}

// Load builds a Config from lookup and the given override files. A variable
// known to lookup always wins; otherwise the first file defining it wins.
// Files that do not exist are skipped.
func Load(lookup LookupFunc, files ...string) (*Config, error) {
	values := make(map[string]string)

	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		vars, err := readEnvFile(file)
		if err != nil {
			return nil, err
		}
		for k, v := range vars {
			if _, ok := values[k]; !ok {
				values[k] = strings.TrimSpace(v)
			}
		}
	}

	get := func(key string) string {
		if v, ok := lookup(key); ok {
			return v
		}
		return values[key]
	}

	cfg := &Config{
		WordPressURL: get(EnvURL),
		Username:     get(EnvUsername),
		AppPassword:  get(EnvAppPassword),
		LogLevel:     get(EnvLogLevel),
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	return cfg, nil
}

// readEnvFile parses an env file. When the file as a whole does not parse,
// it is read line by line and lines that do not parse are skipped.
func readEnvFile(file string) (map[string]string, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read env file %s: %w", file, err)
	}

	vars, err := godotenv.UnmarshalBytes(data)
	if err == nil {
		return vars, nil
	}
	logger.Warn("Skipping unparsable lines in env file", err, map[string]interface{}{
		"file": file,
	})

	vars = make(map[string]string)
	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		parsed, err := godotenv.Unmarshal(trimmed)
		if err != nil {
			continue
		}
		for k, v := range parsed {
			vars[k] = v
		}
	}
	return vars, nil
}

// Validate checks that all credentials are present
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.WordPressURL, validation.Required),
		validation.Field(&c.Username, validation.Required),
		validation.Field(&c.AppPassword, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%w (%v)", ErrMissingCredentials, err)
	}
	return nil
}

// BaseURL returns the site URL without trailing slashes
func (c *Config) BaseURL() string {
	return strings.TrimRight(c.WordPressURL, "/")
}
