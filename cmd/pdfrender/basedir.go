package main

import (
	"fmt"
	"path/filepath"
)

// resolveBaseDir returns the directory job folders are resolved under.
// Priority: --base-dir > PDFRENDER_BASE_DIR > config baseDir > directory of
// the executable, with symlinks followed.
func resolveBaseDir(flagDir, envDir, cfgDir string, executable func() (string, error)) (string, error) {
	for _, dir := range []string{flagDir, envDir, cfgDir} {
		if dir != "" {
			abs, err := filepath.Abs(dir)
			if err != nil {
				return "", fmt.Errorf("resolving base directory %q: %w", dir, err)
			}
			return abs, nil
		}
	}

	exe, err := executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}
