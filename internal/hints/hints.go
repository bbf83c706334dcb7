// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"net/http"
	"strings"
)

// ForFolderNotFound returns hints for a folder missing from the base directory.
// The folder is looked up next to the tool, not in the working directory.
func ForFolderNotFound(baseDir string) string {
	return format("folders are resolved under " + baseDir + "; use --base-dir or PDFRENDER_BASE_DIR to change it")
}

// ForMissingFile returns a hint listing the files a bundle must contain.
func ForMissingFile(folderName string) string {
	return format("a bundle needs " + folderName + ".hbr and data.json")
}

// ForRemoteStatus returns hints for a rejected render request.
func ForRemoteStatus(status int) string {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return format("check RAPIDAPI_KEY and your subscription to the render API")
	case http.StatusTooManyRequests:
		return format("request quota exceeded; wait or upgrade your plan")
	case http.StatusRequestEntityTooLarge:
		return format("the request document is too large; shrink data.json or inline assets")
	default:
		if status >= 500 {
			return format("the render service failed; try again later")
		}
		return ""
	}
}

// ForTransport returns hints for connection-level failures.
func ForTransport(endpoint string) string {
	return format("could not reach " + endpoint + "; check network access and proxy settings")
}

// ForMissingCredential returns hints for a run without an API key.
func ForMissingCredential() string {
	return formatHints([]string{
		"set RAPIDAPI_KEY",
		"add RAPIDAPI_KEY to .env next to the tool",
		"pass the key as second argument",
	})
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
