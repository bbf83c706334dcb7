package main

import (
	"io"
	"net/http"
	"os"

	"github.com/rs/xid"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, process environment, executable location and transport.
type Environment struct {
	Stdout     io.Writer
	Stderr     io.Writer
	Getenv     func(string) string
	Environ    func() []string
	Executable func() (string, error)
	HTTPClient *http.Client // nil = pdfrender default client
	NewRunID   func() string
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Getenv:     os.Getenv,
		Environ:    os.Environ,
		Executable: os.Executable,
		NewRunID:   func() string { return xid.New().String() },
	}
}
