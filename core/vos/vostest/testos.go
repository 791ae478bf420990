// Package vostest provides a deterministic virtual OS and an os/exec
// style harness for testing utilities.
package vostest

import (
	"bytes"
	"io"

	"github.com/spf13/afero"
	"github.com/utilware/coreutils/core/vos"
)

// NewDeterministicOS returns a VOS over a fresh in-memory filesystem with
// a fixed environment, suitable for golden tests.
func NewDeterministicOS(args []string) *vos.ProcOS {
	env := vos.NewMapEnvFromEnvList([]string{
		"HOME=/root",
		"PATH=/usr/bin:/bin",
		"USER=root",
	})
	return vos.NewProcOS(afero.NewMemMapFs(), vos.NewNullIO(), env, args)
}

// Cmd is similar to exec.Cmd.
type Cmd struct {
	// Process function.
	Process vos.ProcessFunc
	// Process arguments; the first argument should be the process name.
	Argv []string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	ExitStatus int

	// VOS is the virtual OS the process will run in. It's created
	// eagerly so tests can seed files before calling Run.
	VOS *vos.ProcOS
}

// Command creates a runnable command with a deterministic OS attached.
func Command(process vos.ProcessFunc, name string, arg ...string) *Cmd {
	argv := append([]string{name}, arg...)
	return &Cmd{
		Process: process,
		Argv:    argv,
		VOS:     NewDeterministicOS(argv),
	}
}

// Run starts the command and waits for it to complete.
func (c *Cmd) Run() error {
	c.VOS.SetIO(vos.NewVIOAdapter(c.Stdin, c.Stdout, c.Stderr))
	c.ExitStatus = c.Process(c.VOS)
	return nil
}

// Output runs the command and returns its standard output.
func (c *Cmd) Output() ([]byte, error) {
	buf := &bytes.Buffer{}
	c.Stdout = buf

	err := c.Run()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CombinedOutput runs the command and returns its combined standard
// output and standard error.
func (c *Cmd) CombinedOutput() ([]byte, error) {
	buf := &bytes.Buffer{}
	c.Stdout = buf
	c.Stderr = buf

	err := c.Run()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
