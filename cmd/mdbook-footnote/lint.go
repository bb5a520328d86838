// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/mdbook-footnote/internal/footnote"
)

var lintCmd = &cobra.Command{
	Use:   "lint [paths...]",
	Short: "Scan Markdown files for footnote marker problems",
	Long: `Lint scans Markdown files (or directories of them) for footnote markers
and reports unterminated ones: an opening {{footnote: with no closing }}
is left as literal text by the preprocessing pass, which is usually not
what the author meant.

Without arguments lint scans the book's source directory (book.src from
book.toml, default src/) under --book-root. The report lists per-file
marker counts and findings with line and column. Lint never modifies
files.`,
	RunE: runLint,
}

func init() {
	lintCmd.Flags().Bool("json", false, "output the report as JSON")
	lintCmd.Flags().Bool("yaml", false, "output the report as YAML")
	lintCmd.Flags().Bool("strict", false, "exit non-zero when findings exist")

	rootCmd.AddCommand(lintCmd)
}

func runLint(cmd *cobra.Command, args []string) error {
	paths := args
	if len(paths) == 0 {
		root, _ := rootCmd.PersistentFlags().GetString("book-root")
		src := viper.GetString("book.src")
		if src == "" {
			src = "src"
		}
		paths = []string{filepath.Join(root, src)}
	}

	report, err := footnote.ScanPaths(paths)
	if err != nil {
		return err
	}

	jsonOut, _ := cmd.Flags().GetBool("json")
	yamlOut, _ := cmd.Flags().GetBool("yaml")
	switch {
	case jsonOut:
		err = report.EncodeJSON(os.Stdout)
	case yamlOut:
		err = report.EncodeYAML(os.Stdout)
	default:
		report.WriteText(os.Stdout)
	}
	if err != nil {
		return err
	}

	if strict, _ := cmd.Flags().GetBool("strict"); strict && report.HasFindings() {
		return fmt.Errorf("%d finding(s)", report.Findings)
	}
	return nil
}
