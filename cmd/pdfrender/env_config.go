package main

import (
	"sort"
	"strings"
)

// Environment variable names.
const (
	envAPIKey     = "RAPIDAPI_KEY"
	envConfigFile = "PDFRENDER_CONFIG"
	envBaseDir    = "PDFRENDER_BASE_DIR"
	envLogLevel   = "PDFRENDER_LOG_LEVEL"
	envPrefix     = "PDFRENDER_"
)

// envConfig holds configuration from environment variables.
type envConfig struct {
	APIKey     string // RAPIDAPI_KEY: render API credential
	ConfigPath string // PDFRENDER_CONFIG: config file name or path
	BaseDir    string // PDFRENDER_BASE_DIR: directory holding job folders
	LogLevel   string // PDFRENDER_LOG_LEVEL: debug, info, warn, error
}

// knownEnvVars lists valid PDFRENDER_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	envConfigFile: true,
	envBaseDir:    true,
	envLogLevel:   true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig(getenv func(string) string) *envConfig {
	return &envConfig{
		APIKey:     getenv(envAPIKey),
		ConfigPath: getenv(envConfigFile),
		BaseDir:    getenv(envBaseDir),
		LogLevel:   getenv(envLogLevel),
	}
}

// unknownEnvVars returns unrecognized PDFRENDER_* variable names, sorted.
// Helps catch typos like PDFRENDER_BASEDIR instead of PDFRENDER_BASE_DIR.
func unknownEnvVars(environ []string) []string {
	var unknown []string
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name := strings.SplitN(env, "=", 2)[0]
		if !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	return unknown
}
