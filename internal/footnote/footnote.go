// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package footnote expands {{footnote: ...}} markers into automatically
// numbered footnotes with a per-chapter reference list.
// See docs/ARCHITECTURE § Marker Expansion.
package footnote

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/pdiddy/mdbook-footnote/pkg/mdbook"
)

// markerRe matches one footnote marker: the opening {{footnote: token,
// optional whitespace, then content captured non-greedily (newlines
// included) up to the first closing }}. Content containing a literal }}
// is cut at that first occurrence; there is no escape syntax.
var markerRe = regexp.MustCompile(`(?s)\{\{footnote:\s*(.*?)\}\}`)

// Name is the preprocessor's table name under [preprocessor.*] in
// book.toml.
const Name = "footnote"

// markdownKey is the config path of the style flag.
const markdownKey = "preprocessor.footnote.markdown"

// notSupportedRenderer is the sentinel renderer name the host uses in its
// conformance tests. Every other renderer is accepted, since expanded
// output is plain text or broadly embeddable HTML.
const notSupportedRenderer = "not-supported"

// htmlRenderers names the renderers known to consume the raw HTML that
// hyperlink style emits. Hyperlink output destined anywhere else draws an
// advisory notice.
var htmlRenderers = map[string]bool{
	"html": true,
}

// Style selects the output format for inline tokens and the trailing
// footnote list. It is fixed for a whole run.
type Style int

const (
	// StyleHyperlink renders superscript anchor pairs: the inline token
	// links to the entry and the entry links back. Output embeds HTML.
	StyleHyperlink Style = iota

	// StyleMarkdown renders native Markdown footnotes: [^n] references
	// with [^n]: definitions, for renderers that understand them.
	StyleMarkdown
)

// String returns the style name used in logs and lint reports.
func (s Style) String() string {
	if s == StyleMarkdown {
		return "markdown"
	}
	return "hyperlink"
}

// Config is the preprocessor's resolved configuration.
type Config struct {
	// Markdown selects native Markdown output instead of hyperlink HTML.
	Markdown bool
}

// ConfigFromContext resolves the typed configuration from the book.toml
// tables in the invocation context. An absent or mistyped key falls back
// to its default rather than failing, so a run never breaks on config.
func ConfigFromContext(ctx *mdbook.Context) Config {
	var cfg Config
	if md, ok := ctx.Config.Bool(markdownKey); ok {
		cfg.Markdown = md
	}
	return cfg
}

// Style returns the output style the configuration selects.
func (c Config) Style() Style {
	if c.Markdown {
		return StyleMarkdown
	}
	return StyleHyperlink
}

// Footnote is the preprocessor. It carries the resolved style and a
// destination for advisory notices.
type Footnote struct {
	style    Style
	warnings io.Writer
}

// New builds a preprocessor for the given configuration. Advisory notices
// go to w; nil suppresses them.
func New(cfg Config, w io.Writer) *Footnote {
	return &Footnote{style: cfg.Style(), warnings: w}
}

// Name implements mdbook.Preprocessor.
func (f *Footnote) Name() string { return Name }

// Style returns the output style the preprocessor runs with.
func (f *Footnote) Style() Style { return f.style }

// Run expands markers in every chapter of the book. Numbering restarts at
// 1 for each chapter and chapters never share entries, so chapters may be
// processed in any order. Separators and part titles pass through
// untouched.
func (f *Footnote) Run(ctx *mdbook.Context, book *mdbook.Book) error {
	if f.style == StyleHyperlink && !htmlRenderers[ctx.Renderer] {
		f.warnf("hyperlink footnotes embed HTML, which the %q renderer may not handle; set %s = true for native Markdown footnotes", ctx.Renderer, markdownKey)
	}
	book.WalkChapters(func(ch *mdbook.Chapter) {
		ch.Content, _ = Expand(ch.Content, f.style)
	})
	return nil
}

// SupportsRenderer implements mdbook.Preprocessor. Everything except the
// host's sentinel value is supported.
func (f *Footnote) SupportsRenderer(renderer string) bool {
	return renderer != notSupportedRenderer
}

func (f *Footnote) warnf(format string, args ...any) {
	if f.warnings == nil {
		return
	}
	fmt.Fprintf(f.warnings, "Warning: "+format+"\n", args...)
}

// Expand rewrites every marker in body to its inline replacement token
// and, when at least one marker matched, appends the rendered footnote
// list. It returns the rewritten body and the number of footnotes.
//
// Markers are numbered 1..n in order of appearance, locally to this call:
// the same body and style always produce the same output. A body without
// markers comes back unchanged, with no trailing list. Unterminated
// markers do not match and pass through as literal text.
func Expand(body string, style Style) (string, int) {
	var contents []string
	rewritten := markerRe.ReplaceAllStringFunc(body, func(match string) string {
		m := markerRe.FindStringSubmatch(match)
		contents = append(contents, m[1])
		return inlineToken(style, len(contents))
	})
	if len(contents) == 0 {
		return body, 0
	}

	var b strings.Builder
	b.WriteString(rewritten)
	b.WriteString(separator(style))
	for i, content := range contents {
		b.WriteString(entry(style, i+1, content))
	}
	return b.String(), len(contents)
}

// inlineToken renders the replacement for one marker occurrence. It
// depends only on the style and the assigned index, never the content.
func inlineToken(style Style, idx int) string {
	if style == StyleMarkdown {
		return fmt.Sprintf("[^%d]", idx)
	}
	return fmt.Sprintf(`<sup><a name="to-footnote-%d">[%d](#footnote-%d)</a></sup>`, idx, idx, idx)
}

// separator opens the trailing footnote list.
func separator(style Style) string {
	if style == StyleMarkdown {
		return "<p><hr/>\n"
	}
	return "\n---\n"
}

// entry renders one line of the trailing footnote list. In hyperlink
// style the anchor pair mirrors the inline token's: the entry is named
// footnote-n and links back to to-footnote-n.
func entry(style Style, idx int, content string) string {
	if style == StyleMarkdown {
		return fmt.Sprintf("\n\n[^%d]: %s", idx, content)
	}
	return fmt.Sprintf("\n\n<a name=\"footnote-%d\">[%d](#to-footnote-%d)</a>: %s", idx, idx, idx, content)
}
