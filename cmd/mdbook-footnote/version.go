package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/mdbook-footnote/pkg/mdbook"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of mdbook-footnote",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mdbook-footnote %s (mdbook %s)\n", version, mdbook.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
