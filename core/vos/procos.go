package vos

import (
	"io/fs"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
)

// ProcOS is the concrete VOS for one running utility.
type ProcOS struct {
	VFS
	*MapEnv
	VIO

	args []string

	mu  sync.Mutex
	wd  string
	pty PTY
}

var _ VOS = (*ProcOS)(nil)

// NewProcOS assembles a process over the given filesystem, I/O and
// environment.
func NewProcOS(vfs VFS, vio VIO, env *MapEnv, args []string) *ProcOS {
	return &ProcOS{
		VFS:    vfs,
		MapEnv: env,
		VIO:    vio,
		args:   args,
		wd:     "/",
	}
}

// NewHostOS binds a process to the real operating system.
func NewHostOS(args []string) *ProcOS {
	p := NewProcOS(
		afero.NewOsFs(),
		NewVIOAdapter(os.Stdin, os.Stdout, os.Stderr),
		NewMapEnvFromEnvList(os.Environ()),
		args,
	)
	if wd, err := os.Getwd(); err == nil {
		p.wd = wd
	}
	if isatty.IsTerminal(os.Stdout.Fd()) {
		p.pty = PTY{IsPTY: true, Term: os.Getenv("TERM")}
	}
	return p
}

func (p *ProcOS) Args() []string {
	return p.args
}

func (p *ProcOS) Getwd() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.wd
}

func (p *ProcOS) Chdir(dir string) error {
	info, err := p.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &fs.PathError{Op: "chdir", Path: dir, Err: fs.ErrInvalid}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.wd = dir
	return nil
}

func (p *ProcOS) SetPTY(pty PTY) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pty = pty
}

func (p *ProcOS) GetPTY() PTY {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pty
}

// SetIO swaps the process streams; the test harness uses this to capture
// output.
func (p *ProcOS) SetIO(vio VIO) {
	p.VIO = vio
}
