// Package config loads the optional YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/alnah/go-pdfrender/internal/fileutil"
	"github.com/alnah/go-pdfrender/internal/logging"
)

// MaxFileSize limits config input to prevent memory exhaustion (1MB).
const MaxFileSize = 1 << 20

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidEndpoint = errors.New("invalid service endpoint")
	ErrInvalidLog      = errors.New("invalid log settings")
)

// Default render service settings.
const (
	DefaultServiceURL  = "https://pdfrenderpro.p.rapidapi.com/pdf"
	DefaultServiceHost = "pdfrenderpro.p.rapidapi.com"
)

// Config holds all configuration for a run.
type Config struct {
	BaseDir string        `yaml:"baseDir"` // Empty = directory of the executable
	Service ServiceConfig `yaml:"service"`
	Log     LogConfig     `yaml:"log"`
}

// ServiceConfig defines the remote render service.
type ServiceConfig struct {
	URL       string `yaml:"url"`       // Must be https
	Host      string `yaml:"host"`      // Sent as X-RapidAPI-Host
	UserAgent string `yaml:"userAgent"` // Empty = client default
}

// LogConfig defines logging options.
type LogConfig struct {
	Level      string `yaml:"level"`      // "debug", "info", "warn", "error" (empty = info)
	File       string `yaml:"file"`       // Optional JSON log file, rotated
	MaxSizeMB  int    `yaml:"maxSizeMB"`  // Rotate after this size (0 = lumberjack default)
	MaxBackups int    `yaml:"maxBackups"` // Old files to keep (0 = all)
	MaxAgeDays int    `yaml:"maxAgeDays"` // Days to keep old files (0 = forever)
	Compress   bool   `yaml:"compress"`   // gzip rotated files
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Service: ServiceConfig{
			URL:  DefaultServiceURL,
			Host: DefaultServiceHost,
		},
	}
}

// Validate checks the endpoint and log settings.
// Called automatically by LoadConfig.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Service.URL)
	if err != nil {
		return fmt.Errorf("%w: service.url: %v", ErrInvalidEndpoint, err)
	}
	if u.Scheme != "https" {
		return fmt.Errorf("%w: service.url: scheme must be https, got %q", ErrInvalidEndpoint, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: service.url: missing host", ErrInvalidEndpoint)
	}
	if strings.TrimSpace(c.Service.Host) == "" {
		return fmt.Errorf("%w: service.host: required", ErrInvalidEndpoint)
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v (must be debug, info, warn, or error)", ErrInvalidLog, err)
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		return fmt.Errorf("%w: log rotation values must not be negative", ErrInvalidLog)
	}

	return nil
}

// LoadConfig loads configuration from a file path or config name.
// A value containing a path separator is read as is; a bare name is looked
// up as <name>.yaml or <name>.yml in the current directory, then in
// <user config dir>/go-pdfrender/.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	path := nameOrPath
	if !strings.ContainsAny(nameOrPath, `/\`) {
		found, err := lookupConfig(nameOrPath)
		if err != nil {
			return nil, err
		}
		path = found
	}

	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML, rejecting unknown fields, fills defaults and
// validates the result.
func Parse(data []byte) (*Config, error) {
	if len(data) > MaxFileSize {
		return nil, fmt.Errorf("%w: input exceeds %d bytes", ErrConfigParse, MaxFileSize)
	}

	var cfg Config
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
		}
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults fills empty service fields. A custom URL without a host
// sends the URL's host name as the service host.
func (c *Config) applyDefaults() {
	if c.Service.URL == "" {
		c.Service.URL = DefaultServiceURL
	}
	if c.Service.Host == "" {
		if c.Service.URL == DefaultServiceURL {
			c.Service.Host = DefaultServiceHost
		} else if u, err := url.Parse(c.Service.URL); err == nil {
			c.Service.Host = u.Hostname()
		}
	}
}

// configDirs returns the directories searched for a named config.
func configDirs() []string {
	dirs := []string{"."}
	if userDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(userDir, "go-pdfrender"))
	}
	return dirs
}

// lookupConfig returns the first existing candidate for name.
func lookupConfig(name string) (string, error) {
	var tried []string
	for _, dir := range configDirs() {
		for _, ext := range []string{".yaml", ".yml"} {
			candidate := filepath.Join(dir, name+ext)
			if fileutil.FileExists(candidate) {
				return candidate, nil
			}
			tried = append(tried, candidate)
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
