// Package vos provides the virtual OS surface the utilities run against:
// injected standard streams, a map-backed environment, an afero
// filesystem, and the process argument vector. Binding the real operating
// system and binding an in-memory one for tests use the same interface.
package vos

import (
	"io"

	"github.com/spf13/afero"
)

// VFS implements a virtual filesystem.
type VFS = afero.Fs

// VIO holds the standard I/O streams of a process.
type VIO interface {
	Stdin() io.ReadCloser
	Stdout() io.WriteCloser
	Stderr() io.WriteCloser
}

// VEnv represents a virtual environment.
type VEnv interface {
	// Setenv sets the value of the environment variable named by the key.
	Setenv(key, value string) error

	// Unsetenv unsets a single environment variable.
	Unsetenv(key string) error

	// LookupEnv retrieves the value of the environment variable named by
	// the key, reporting whether it was present.
	LookupEnv(key string) (string, bool)

	// Getenv retrieves the value of the environment variable named by the
	// key, or "" if unset.
	Getenv(key string) string

	// Environ returns a copy of strings representing the environment, in
	// the form "key=value".
	Environ() []string
}

// VProc exposes the process-level state of a running utility.
type VProc interface {
	// Args holds the command line, including the utility name as Args[0].
	Args() []string

	Getwd() string
	Chdir(dir string) error
}

// PTY describes the controlling terminal, if any.
type PTY struct {
	Width  int
	Height int
	Term   string
	IsPTY  bool
}

// VOS provides a virtual OS interface for a single process.
type VOS interface {
	VIO
	VEnv
	VProc
	VFS

	SetPTY(PTY)
	GetPTY() PTY
}

// ProcessFunc runs a utility against a virtual OS and returns its exit
// code.
type ProcessFunc func(virtOS VOS) int
