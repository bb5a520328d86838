// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/mdbook-footnote/internal/footnote"
	"github.com/pdiddy/mdbook-footnote/internal/preview"
)

var previewCmd = &cobra.Command{
	Use:   "preview <file.md>",
	Short: "Expand one Markdown file and render it to HTML",
	Long: `Preview runs the footnote expansion on a single Markdown file and renders
the result to HTML the way the host's HTML renderer would: GFM plus
native footnotes, raw HTML passed through. The style comes from the
--markdown flag or, failing that, the [preprocessor.footnote] table in
the book.toml found via --book-root.

With --verify the rendered HTML is also checked for dangling fragment
links, so a broken anchor pair is caught before a build.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Bool("markdown", false, "emit native Markdown footnotes instead of hyperlink HTML")
	previewCmd.Flags().Bool("verify", false, "check the rendered HTML for dangling fragment links")
	previewCmd.Flags().StringP("output", "o", "", "write HTML to a file instead of stdout")

	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	style := previewStyle(cmd)
	expanded, n := footnote.Expand(string(data), style)
	fmt.Fprintf(os.Stderr, "%s: %d footnote(s), %s style\n", args[0], n, style)

	rendered, err := preview.Render([]byte(expanded))
	if err != nil {
		return err
	}

	if verify, _ := cmd.Flags().GetBool("verify"); verify {
		missing, err := preview.VerifyAnchors(rendered)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			return fmt.Errorf("dangling fragment links: #%s", strings.Join(missing, ", #"))
		}
	}

	out, _ := cmd.Flags().GetString("output")
	if out == "" {
		_, err := os.Stdout.Write(rendered)
		return err
	}
	if err := os.WriteFile(out, rendered, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	return nil
}

// previewStyle resolves the output style for standalone use: the
// --markdown flag wins, then whatever book.toml viper loaded says.
func previewStyle(cmd *cobra.Command) footnote.Style {
	if md, _ := cmd.Flags().GetBool("markdown"); md {
		return footnote.StyleMarkdown
	}
	if viper.GetBool("preprocessor.footnote.markdown") {
		return footnote.StyleMarkdown
	}
	return footnote.StyleHyperlink
}
