package cmd

import (
	"github.com/JA3G3R/modescan/report"
	"github.com/JA3G3R/modescan/scanners"
	"github.com/spf13/cobra"
)

var snippetsCmd = &cobra.Command{
	Use:   "snippets",
	Short: "Print boilerplate for reading the global mode from session_state",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		report.PrintSnippets(cmd.OutOrStdout(), scanners.FixSnippets())
	},
}

func init() {
	rootCmd.AddCommand(snippetsCmd)
}
