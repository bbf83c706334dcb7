package main

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/joho/godotenv"
)

// dotenvFile is read from the base directory, next to the job folders.
const dotenvFile = ".env"

// Credential sources, in precedence order.
const (
	sourceEnv      = "environment"
	sourceDotenv   = dotenvFile
	sourceArgument = "argument"
)

// resolveAPIKey picks the API key: RAPIDAPI_KEY from the process
// environment, then from <baseDir>/.env, then the positional argument.
// A missing .env is not an error; an unreadable one is returned alongside
// the resolved key so the caller can warn and carry on.
func resolveAPIKey(envKey, argKey, baseDir string) (key, source string, dotenvErr error) {
	if envKey != "" {
		return envKey, sourceEnv, nil
	}

	vars, err := godotenv.Read(filepath.Join(baseDir, dotenvFile))
	switch {
	case err == nil:
		if v := vars[envAPIKey]; v != "" {
			return v, sourceDotenv, nil
		}
	case !errors.Is(err, fs.ErrNotExist):
		dotenvErr = fmt.Errorf("reading %s: %w", filepath.Join(baseDir, dotenvFile), err)
	}

	if argKey != "" {
		return argKey, sourceArgument, dotenvErr
	}
	return "", "", dotenvErr
}
