package pdfrender

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Fixed file names inside a folder bundle.
const (
	TemplateExt     = ".hbr"
	OutputExt       = ".pdf"
	DataFile        = "data.json"
	HeaderFile      = "header.hbr"
	FooterFile      = "footer.hbr"
	OptionsFile     = "pdfoptions.json"
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Bundle is the set of input and output paths for one rendering job.
// All paths are absolute.
type Bundle struct {
	Name         string
	Dir          string
	TemplatePath string
	DataPath     string
	HeaderPath   string
	FooterPath   string
	OptionsPath  string
	OutputPath   string
}

// ResolveFolder locates folderName under baseDir and returns its bundle.
// The folder name is a sibling of the tool, not an arbitrary path: names
// with separators or dot segments are rejected.
func ResolveFolder(baseDir, folderName string) (*Bundle, error) {
	name := strings.TrimRight(folderName, `/\`)
	if name == "" {
		return nil, ErrFolderRequired
	}
	if name == "." || name == ".." || strings.ContainsAny(name, "/\\\x00") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFolderName, folderName)
	}

	base, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("resolving base directory: %w", err)
	}
	dir := filepath.Join(base, name)

	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: '%s' does not exist at %s", ErrFolderNotFound, name, dir)
		}
		return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrFolderNotFound, dir)
	}

	return newBundle(dir, name), nil
}

func newBundle(dir, name string) *Bundle {
	return &Bundle{
		Name:         name,
		Dir:          dir,
		TemplatePath: filepath.Join(dir, name+TemplateExt),
		DataPath:     filepath.Join(dir, DataFile),
		HeaderPath:   filepath.Join(dir, HeaderFile),
		FooterPath:   filepath.Join(dir, FooterFile),
		OptionsPath:  filepath.Join(dir, OptionsFile),
		OutputPath:   filepath.Join(dir, name+OutputExt),
	}
}
