package main

import (
	"fmt"
	"io"
)

// usageLine is the one-line synopsis shown with usage errors.
const usageLine = "usage: pdfrender <folderName> [apiKey]"

// printUsage prints the full help message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pdfrender [flags] <folderName> [apiKey]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render <folderName>/<folderName>.hbr with <folderName>/data.json through")
	fmt.Fprintln(w, "the remote PDF API and write <folderName>/<folderName>.pdf.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  folderName    Job folder, resolved next to the executable")
	fmt.Fprintln(w, "  apiKey        API key (RAPIDAPI_KEY takes precedence)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Folder contents:")
	fmt.Fprintln(w, "  <folderName>.hbr    Main template (required)")
	fmt.Fprintln(w, "  data.json           Template data (required)")
	fmt.Fprintln(w, "  header.hbr          Header template (optional)")
	fmt.Fprintln(w, "  footer.hbr          Footer template (optional)")
	fmt.Fprintln(w, "  pdfoptions.json     PDF option overrides (optional)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -b, --base-dir <dir>  Directory holding job folders")
	fmt.Fprintln(w, "  -c, --config <name>   Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet           Only show warnings and errors")
	fmt.Fprintln(w, "  -v, --verbose         Show debug output")
	fmt.Fprintln(w, "      --version         Show version information")
	fmt.Fprintln(w, "  -h, --help            Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  RAPIDAPI_KEY          API key (also read from .env in the base directory)")
	fmt.Fprintln(w, "  PDFRENDER_CONFIG      Config file name or path")
	fmt.Fprintln(w, "  PDFRENDER_BASE_DIR    Directory holding job folders")
	fmt.Fprintln(w, "  PDFRENDER_LOG_LEVEL   debug, info, warn, error")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0 success, 1 invalid input, 2 usage/config, 3 file I/O,")
	fmt.Fprintln(w, "  4 rejected by the API, 5 API unreachable")
}

// printVersion prints the version line.
func printVersion(w io.Writer) {
	fmt.Fprintf(w, "go-pdfrender %s\n", Version)
}
