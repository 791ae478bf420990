package commands

import (
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	getopt "github.com/pborman/getopt/v2"
	"github.com/utilware/coreutils/core/vos"
)

// AllCommands holds every registered utility keyed by install path.
var AllCommands = make(map[string]vos.ProcessFunc)

// mustAddBinCmd registers a utility under /bin and /usr/bin, panicking on
// duplicate registration.
func mustAddBinCmd(name string, cmd vos.ProcessFunc) {
	for _, p := range []string{path.Join("/bin", name), path.Join("/usr/bin", name)} {
		if _, ok := AllCommands[p]; ok {
			panic("duplicate command registration: " + p)
		}
		AllCommands[p] = cmd
	}
}

// LookupCommand finds a utility by bare name or install path.
func LookupCommand(name string) (vos.ProcessFunc, bool) {
	if cmd, ok := AllCommands[name]; ok {
		return cmd, true
	}
	if cmd, ok := AllCommands[path.Join("/bin", name)]; ok {
		return cmd, true
	}
	cmd, ok := AllCommands[path.Join("/usr/bin", name)]
	return cmd, ok
}

// CommandEntry is one registered utility and the paths it's installed at.
type CommandEntry struct {
	Names []string
	Proc  vos.ProcessFunc
}

// ListBuiltinCommands returns every registered utility sorted by its
// first install path.
func ListBuiltinCommands() []CommandEntry {
	byName := make(map[string]*CommandEntry)
	for cmdPath, proc := range AllCommands {
		base := path.Base(cmdPath)
		entry, ok := byName[base]
		if !ok {
			entry = &CommandEntry{Proc: proc}
			byName[base] = entry
		}
		entry.Names = append(entry.Names, cmdPath)
	}

	var out []CommandEntry
	for _, entry := range byName {
		sort.Strings(entry.Names)
		out = append(out, *entry)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Names[0] < out[j].Names[0]
	})
	return out
}

// SimpleCommand wraps the getopt parse/help/run boilerplate shared by the
// utilities.
type SimpleCommand struct {
	// Use holds a one line usage string.
	Use string
	// Short holds a one line description of the command.
	Short string
	// ShowHelp sets whether help is displayed or not.
	// If this is non-nil when Run() is called, then the default help flag
	// isn't added.
	ShowHelp *bool
	// NeverBail skips interacting with stdout/stderr on failure and
	// always runs the callback.
	NeverBail bool

	flags *getopt.Set
}

// Flags gets the command's flag set.
func (s *SimpleCommand) Flags() *getopt.Set {
	if s.flags == nil {
		s.flags = getopt.New()
	}

	return s.flags
}

// Name returns the utility name, the first word of Use.
func (s *SimpleCommand) Name() string {
	if i := strings.IndexByte(s.Use, ' '); i > 0 {
		return s.Use[:i]
	}
	return s.Use
}

// PrintHelp writes help for the command to the given writer.
func (s *SimpleCommand) PrintHelp(w io.Writer) {
	fmt.Fprint(w, "usage: ")
	fmt.Fprintln(w, s.Use)
	fmt.Fprintln(w, s.Short)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	s.Flags().PrintOptions(w)
}

// Run the command; if flag parsing was successful call the callback.
func (s *SimpleCommand) Run(virtOS vos.VOS, callback func() int) int {
	opts := s.Flags()

	// Add help flag if not overridden.
	if s.ShowHelp == nil {
		s.ShowHelp = opts.BoolLong("help", 'h', "show this help and exit")
	}

	err := opts.Getopt(virtOS.Args(), nil)
	if err != nil && !s.NeverBail {
		fmt.Fprintf(virtOS.Stderr(), "error: %s\n\n", err)

		s.PrintHelp(virtOS.Stdout())
		return 1
	}

	if *s.ShowHelp {
		s.PrintHelp(virtOS.Stdout())
		return 0
	}

	return callback()
}

// RunE runs the command with an error-returning callback; a non-nil error
// is reported on stderr prefixed with the utility name and yields exit
// status 1.
func (s *SimpleCommand) RunE(virtOS vos.VOS, callback func() error) int {
	return s.Run(virtOS, func() int {
		if err := callback(); err != nil {
			fmt.Fprintf(virtOS.Stderr(), "%s: %v\n", s.Name(), err)
			return 1
		}
		return 0
	})
}
