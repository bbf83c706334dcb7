package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage marks invalid command-line usage.
var ErrUsage = errors.New("invalid usage")

// Positional argument positions.
const (
	folderArgIndex = 0
	apiKeyArgIndex = 1
	maxPositional  = 2
)

// cliFlags holds all command-line flags.
type cliFlags struct {
	config  string
	baseDir string
	quiet   bool
	verbose bool
	version bool
	help    bool
}

// positionalArgs holds "<folderName> [apiKey]".
type positionalArgs struct {
	folder string
	apiKey string
}

// parseFlags parses args (without the program name) and returns the flags
// and positional arguments.
func parseFlags(args []string) (*cliFlags, *positionalArgs, error) {
	fs := flag.NewFlagSet("pdfrender", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := &cliFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.baseDir, "base-dir", "b", "", "directory holding job folders (default: next to the executable)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show warnings and errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug output")
	fs.BoolVar(&f.version, "version", false, "show version information")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if f.quiet && f.verbose {
		return nil, nil, fmt.Errorf("%w: --quiet and --verbose are mutually exclusive", ErrUsage)
	}

	rest := fs.Args()
	if len(rest) > maxPositional {
		return nil, nil, fmt.Errorf("%w: too many arguments: %q", ErrUsage, rest[maxPositional:])
	}

	pos := &positionalArgs{}
	if len(rest) > folderArgIndex {
		pos.folder = rest[folderArgIndex]
	}
	if len(rest) > apiKeyArgIndex {
		pos.apiKey = rest[apiKeyArgIndex]
	}
	return f, pos, nil
}
