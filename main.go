package main

import (
	"os"
	"path/filepath"

	"github.com/utilware/coreutils/cmd"
	"github.com/utilware/coreutils/commands"
	"github.com/utilware/coreutils/core/vos"
)

func main() {
	// Busybox-style dispatch: when installed or linked under a utility's
	// name, act as that utility.
	name := filepath.Base(os.Args[0])
	if proc, ok := commands.LookupCommand(name); ok {
		os.Exit(proc(vos.NewHostOS(os.Args)))
	}

	cmd.Execute()
}
