package cmd

import (
	"fmt"
	"os"

	"github.com/abiosoft/readline"
	shlex "github.com/anmitsu/go-shlex"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/utilware/coreutils/commands"
	"github.com/utilware/coreutils/core/vos"
)

// playgroundCmd runs the utilities interactively against a scratch
// in-memory filesystem, so they can be exercised without touching the
// host.
var playgroundCmd = &cobra.Command{
	Use:   "playground",
	Short: "Run the builtin utilities interactively on an in-memory filesystem.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		fs := afero.NewMemMapFs()
		if err := fs.MkdirAll("/root", 0755); err != nil {
			return err
		}
		env := vos.NewMapEnvFromEnvList([]string{
			"HOME=/root",
			"PATH=/usr/bin:/bin",
			"USER=root",
		})

		cfg := &readline.Config{
			Stdin:  readline.NewCancelableStdin(os.Stdin),
			Stdout: cmd.OutOrStdout(),
			Stderr: cmd.ErrOrStderr(),
		}
		if err := cfg.Init(); err != nil {
			return err
		}
		rl, err := readline.NewEx(cfg)
		if err != nil {
			return err
		}
		defer rl.Close()

		prompt := "playground$ "
		if isatty.IsTerminal(os.Stdout.Fd()) {
			prompt = color.New(color.FgGreen, color.Bold).Sprint("playground") + "$ "
		}
		rl.SetPrompt(prompt)

		for {
			line, err := rl.Readline()
			if err == readline.ErrInterrupt {
				continue
			}
			if err != nil {
				return nil
			}

			fields, err := shlex.Split(line, true)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "playground: %v\n", err)
				continue
			}
			if len(fields) == 0 {
				continue
			}
			if fields[0] == "exit" {
				return nil
			}

			proc, ok := commands.LookupCommand(fields[0])
			if !ok {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: command not found\n", fields[0])
				continue
			}

			// Stdin stays with readline; utilities read fail-closed.
			virtOS := vos.NewProcOS(fs,
				vos.NewVIOAdapter(nil, cmd.OutOrStdout(), cmd.ErrOrStderr()),
				env, fields)
			virtOS.SetPTY(vos.PTY{Width: 80, Height: 40, Term: "playground", IsPTY: true})

			if code := proc(virtOS); code != 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "exit status %d\n", code)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(playgroundCmd)
}
