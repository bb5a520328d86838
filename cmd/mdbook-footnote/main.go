// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the mdbook-footnote preprocessor.
// mdbook invokes the binary twice per build: once as `mdbook-footnote
// supports <renderer>` to probe compatibility, then bare with the
// [context, book] JSON pair on stdin to transform the book.
// See docs/ARCHITECTURE § CLI Surface.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/mdbook-footnote/internal/footnote"
	"github.com/pdiddy/mdbook-footnote/pkg/mdbook"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command; invoked bare it runs one preprocessing
// pass over stdin and writes the processed book to stdout. Everything
// else the binary says goes to stderr.
var rootCmd = &cobra.Command{
	Use:   "mdbook-footnote",
	Short: "An mdbook preprocessor that expands {{footnote: ...}} markers",
	Long: `mdbook-footnote scans every chapter for {{footnote: ...}} markers,
replaces each with a numbered inline reference, and appends the collected
footnotes to the end of the chapter. Numbering restarts at 1 per chapter.

mdbook drives the binary through the preprocessor protocol: the
[context, book] pair arrives as JSON on stdin and the processed book
leaves on stdout. The lint and preview subcommands work on plain
Markdown files instead, for use outside a book build.`,
	Args: cobra.NoArgs,
	RunE: runPreprocess,
}

func runPreprocess(cmd *cobra.Command, args []string) error {
	ctx, book, err := mdbook.ParseInput(os.Stdin)
	if err != nil {
		return err
	}

	if !mdbook.Compatible(mdbook.Version, ctx.MdbookVersion) {
		fmt.Fprintf(os.Stderr,
			"Warning: the %s preprocessor was built against mdbook %s, but is being called from version %s\n",
			footnote.Name, mdbook.Version, ctx.MdbookVersion)
	}

	pre := footnote.New(footnote.ConfigFromContext(ctx), os.Stderr)
	if err := pre.Run(ctx, book); err != nil {
		return err
	}
	return mdbook.WriteBook(os.Stdout, book)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("book-root", ".", "book directory containing book.toml (used by lint and preview)")
}

// initConfig points viper at the book.toml of the target book so the
// standalone subcommands pick up [preprocessor.footnote] settings. The
// preprocessing run itself takes configuration from the protocol
// context, never from this file.
func initConfig() {
	root, _ := rootCmd.PersistentFlags().GetString("book-root")
	viper.SetConfigName("book")
	viper.SetConfigType("toml")
	viper.AddConfigPath(root)

	viper.SetEnvPrefix("MDBOOK_FOOTNOTE")
	viper.AutomaticEnv()

	// A missing book.toml is fine; lint and preview fall back to flags.
	_ = viper.ReadInConfig()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
