package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/utilware/coreutils/commands"
)

// builtinsCmd lists every bundled utility.
var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "Show the builtin utilities and their install paths.",
	RunE: func(cmd *cobra.Command, args []string) error {
		var builtins []string

		for _, entry := range commands.ListBuiltinCommands() {
			builtins = append(builtins, strings.Join(entry.Names, ", "))
		}

		sort.Strings(builtins)

		for _, v := range builtins {
			fmt.Fprintln(cmd.OutOrStdout(), v)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(builtinsCmd)
}
