// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package preview renders expanded Markdown to HTML so authors can check
// footnote output without driving a full book build.
// See docs/ARCHITECTURE § Preview.
package preview

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Render converts Markdown to HTML with the feature set the host's HTML
// renderer enables: GFM plus native footnotes, raw HTML passed through.
// Hyperlink-style output depends on the raw HTML pass-through; markdown
// style depends on the footnote extension.
func Render(markdown []byte) ([]byte, error) {
	engine := goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Footnote),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)

	var buf bytes.Buffer
	if err := engine.Convert(markdown, &buf); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.Bytes(), nil
}
