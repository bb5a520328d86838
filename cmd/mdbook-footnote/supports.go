package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/mdbook-footnote/internal/footnote"
)

var supportsCmd = &cobra.Command{
	Use:   "supports <renderer>",
	Short: "Probe whether a renderer can use this preprocessor's output",
	Long: `Supports implements the host's capability probe. mdbook calls it with a
renderer name before each build and reads the answer from the exit
status: 0 means supported, 1 means not. Nothing is printed.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pre := footnote.New(footnote.Config{}, nil)
		if !pre.SupportsRenderer(args[0]) {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(supportsCmd)
}
