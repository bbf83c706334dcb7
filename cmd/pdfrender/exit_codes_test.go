package main

// Notes:
// - exitCodeFor: we test every sentinel from the pdfrender and config
//   packages, plus wrapped errors to verify the errors.Is() chain.
// - Exit code constants: we verify Unix conventions (0=success, 1=general,
//   2=usage) and that custom codes stay below 126.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"fmt"
	"os"
	"testing"

	pdfrender "github.com/alnah/go-pdfrender"
	"github.com/alnah/go-pdfrender/internal/config"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// Pre-flight errors (exit 1)
		{"folder required", pdfrender.ErrFolderRequired, ExitGeneral},
		{"invalid folder name", pdfrender.ErrInvalidFolderName, ExitGeneral},
		{"folder not found", pdfrender.ErrFolderNotFound, ExitGeneral},
		{"template missing", pdfrender.ErrTemplateMissing, ExitGeneral},
		{"data missing", pdfrender.ErrDataMissing, ExitGeneral},
		{"invalid data", pdfrender.ErrInvalidData, ExitGeneral},
		{"wrapped data missing", fmt.Errorf("loading: %w", pdfrender.ErrDataMissing), ExitGeneral},

		// Usage/config errors (exit 2)
		{"usage", ErrUsage, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"invalid endpoint", config.ErrInvalidEndpoint, ExitUsage},
		{"invalid log", config.ErrInvalidLog, ExitUsage},
		{"wrapped config parse", fmt.Errorf("loading config: %w", config.ErrConfigParse), ExitUsage},

		// I/O errors (exit 3)
		{"read input", pdfrender.ErrReadInput, ExitIO},
		{"write pdf", pdfrender.ErrWritePDF, ExitIO},
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},

		// Remote errors (exit 4, 5)
		{"remote rejected", pdfrender.ErrRemoteRejected, ExitRejected},
		{"remote error type", &pdfrender.RemoteError{StatusCode: 403, Body: "no"}, ExitRejected},
		{"wrapped remote error", fmt.Errorf("%w\n  hint: x", &pdfrender.RemoteError{StatusCode: 500}), ExitRejected},
		{"transport", pdfrender.ErrTransport, ExitTransport},
		{"wrapped transport", fmt.Errorf("%w: dial tcp: refused", pdfrender.ErrTransport), ExitTransport},

		// Unknown errors (exit 1)
		{"unknown", errors.New("something else"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExitCodeConstants - Exit code values
// ---------------------------------------------------------------------------

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess = %d, want 0", ExitSuccess)
	}
	if ExitGeneral != 1 {
		t.Errorf("ExitGeneral = %d, want 1", ExitGeneral)
	}
	if ExitUsage != 2 {
		t.Errorf("ExitUsage = %d, want 2", ExitUsage)
	}

	codes := []int{ExitSuccess, ExitGeneral, ExitUsage, ExitIO, ExitRejected, ExitTransport}
	seen := make(map[int]bool)
	for _, c := range codes {
		if c >= 126 {
			t.Errorf("exit code %d collides with shell-reserved codes", c)
		}
		if seen[c] {
			t.Errorf("exit code %d used twice", c)
		}
		seen[c] = true
	}
}
