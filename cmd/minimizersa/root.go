package main

import (
	"github.com/spf13/cobra"
)

// rootCmd is the top of the cobra.Command tree. Each subcommand validates
// its own positional arguments and returns a *cliError classifying any
// failure, per spec §6/§7's exit-code contract; rootCmd itself does no
// work beyond dispatch.
var rootCmd = &cobra.Command{
	Use:           "minimizersa",
	Short:         "Minimizer-space suffix array index for a reference genome",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(inspectCmd)
}
