// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mdbook

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hostInputJSON is the two-element array mdbook writes to a
// preprocessor's stdin.
const hostInputJSON = `[
  {
    "root": "/tmp/book",
    "config": {
      "book": {"title": "Example Book", "src": "src"},
      "preprocessor": {"footnote": {"markdown": true}}
    },
    "renderer": "html",
    "mdbook_version": "0.4.40"
  },
  {
    "sections": [
      {"Chapter": {
        "name": "Chapter 1",
        "content": "Hello{{footnote: world}}",
        "number": [1],
        "sub_items": [],
        "path": "chapter_1.md",
        "source_path": "chapter_1.md",
        "parent_names": []
      }}
    ],
    "__non_exhaustive": null
  }
]`

func TestParseInput(t *testing.T) {
	ctx, book, err := ParseInput(strings.NewReader(hostInputJSON))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/book", ctx.Root)
	assert.Equal(t, "html", ctx.Renderer)
	assert.Equal(t, "0.4.40", ctx.MdbookVersion)

	md, ok := ctx.Config.Bool("preprocessor.footnote.markdown")
	require.True(t, ok)
	assert.True(t, md)

	require.Len(t, book.Sections, 1)
	require.NotNil(t, book.Sections[0].Chapter)
	assert.Equal(t, "Hello{{footnote: world}}", book.Sections[0].Chapter.Content)
}

func TestParseInput_WrongElementCount(t *testing.T) {
	_, _, err := ParseInput(strings.NewReader(`[{}]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want [context, book]")
}

func TestParseInput_NotJSON(t *testing.T) {
	_, _, err := ParseInput(strings.NewReader("not json at all"))
	assert.Error(t, err)
}

func TestParseInput_BadBook(t *testing.T) {
	_, _, err := ParseInput(strings.NewReader(`[{}, {"sections": [42]}]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding book")
}

func TestWriteBook(t *testing.T) {
	path := "one.md"
	book := &Book{Sections: []BookItem{
		{Chapter: &Chapter{
			Name:    "One",
			Content: "processed",
			Number:  []int{1},
			Path:    &path,
		}},
		{Separator: true},
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteBook(&buf, book))

	out := buf.String()
	assert.True(t, strings.HasSuffix(out, "\n"), "output should end with a newline")
	assert.JSONEq(t, `{
	  "sections": [
	    {"Chapter": {
	      "name": "One",
	      "content": "processed",
	      "number": [1],
	      "sub_items": [],
	      "path": "one.md",
	      "source_path": null,
	      "parent_names": []
	    }},
	    "Separator"
	  ],
	  "__non_exhaustive": null
	}`, out)
}
