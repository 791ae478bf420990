package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/utilware/coreutils/commands"
	"github.com/utilware/coreutils/core/vos"
)

// runCmd executes one builtin utility against the host system. Flag
// parsing is disabled so the utility sees its own arguments untouched.
var runCmd = &cobra.Command{
	Use:                "run UTILITY [ARG]...",
	Short:              "Run a builtin utility against the host system.",
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 || args[0] == "--help" || args[0] == "-h" {
			return cmd.Help()
		}

		proc, ok := commands.LookupCommand(args[0])
		if !ok {
			return fmt.Errorf("unknown utility %q, try \"coreutils builtins\"", args[0])
		}

		cmd.SilenceUsage = true
		if code := proc(vos.NewHostOS(args)); code != 0 {
			os.Exit(code)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
