package cmd

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "coreutils",
	Short: "POSIX text-processing utilities in a single binary",
	Long: `A multi-call binary bundling POSIX text-processing utilities.

Utilities run via the "run" subcommand, or directly when the binary is
installed (or linked) under a utility's name.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
