// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mdbook

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hostBookJSON is a book serialized the way mdbook serializes one: a
// chapter without a number, a separator, a part title, and a numbered
// chapter with a nested sub-item.
const hostBookJSON = `{
  "sections": [
    {"Chapter": {
      "name": "Introduction",
      "content": "# Introduction\n",
      "number": null,
      "sub_items": [],
      "path": "intro.md",
      "source_path": "intro.md",
      "parent_names": []
    }},
    "Separator",
    {"PartTitle": "Guide"},
    {"Chapter": {
      "name": "Chapter 1",
      "content": "Text{{footnote: hi}}",
      "number": [1],
      "sub_items": [
        {"Chapter": {
          "name": "Section 1.1",
          "content": "",
          "number": [1, 1],
          "sub_items": [],
          "path": null,
          "source_path": null,
          "parent_names": ["Chapter 1"]
        }}
      ],
      "path": "ch1.md",
      "source_path": "ch1.md",
      "parent_names": []
    }}
  ],
  "__non_exhaustive": null
}`

func TestBook_HostRoundTrip(t *testing.T) {
	var book Book
	require.NoError(t, json.Unmarshal([]byte(hostBookJSON), &book))

	require.Len(t, book.Sections, 4)
	intro := book.Sections[0].Chapter
	require.NotNil(t, intro)
	assert.Equal(t, "Introduction", intro.Name)
	assert.Nil(t, intro.Number)
	require.NotNil(t, intro.Path)
	assert.Equal(t, "intro.md", *intro.Path)

	assert.True(t, book.Sections[1].Separator)
	assert.Equal(t, "Guide", book.Sections[2].PartTitle)

	ch1 := book.Sections[3].Chapter
	require.NotNil(t, ch1)
	assert.Equal(t, []int{1}, ch1.Number)
	require.Len(t, ch1.SubItems, 1)
	sub := ch1.SubItems[0].Chapter
	require.NotNil(t, sub)
	assert.Nil(t, sub.Path)
	assert.Equal(t, []string{"Chapter 1"}, sub.ParentNames)

	// Serializing the parsed book must reproduce the host's shape.
	out, err := json.Marshal(book)
	require.NoError(t, err)
	assert.JSONEq(t, hostBookJSON, string(out))
}

func TestBookItem_MarshalSeparator(t *testing.T) {
	out, err := json.Marshal(BookItem{Separator: true})
	require.NoError(t, err)
	assert.Equal(t, `"Separator"`, string(out))
}

func TestBookItem_MarshalPartTitle(t *testing.T) {
	out, err := json.Marshal(BookItem{PartTitle: "Appendices"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"PartTitle": "Appendices"}`, string(out))
}

func TestBookItem_MarshalEmptyFails(t *testing.T) {
	_, err := json.Marshal(BookItem{})
	assert.Error(t, err)
}

func TestBookItem_UnmarshalUnknownString(t *testing.T) {
	var it BookItem
	err := json.Unmarshal([]byte(`"Garbage"`), &it)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Garbage")
}

func TestBookItem_UnmarshalEmptyObject(t *testing.T) {
	var it BookItem
	assert.Error(t, json.Unmarshal([]byte(`{}`), &it))
}

func TestChapter_MarshalNormalizesNilLists(t *testing.T) {
	out, err := json.Marshal(Chapter{Name: "Draft", Content: "wip"})
	require.NoError(t, err)
	assert.JSONEq(t, `{
	  "name": "Draft",
	  "content": "wip",
	  "number": null,
	  "sub_items": [],
	  "path": null,
	  "source_path": null,
	  "parent_names": []
	}`, string(out))
}

func TestBook_MarshalNormalizesNilSections(t *testing.T) {
	out, err := json.Marshal(Book{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"sections": [], "__non_exhaustive": null}`, string(out))
}

func TestWalkChapters_DepthFirst(t *testing.T) {
	chapter := func(name string, sub ...BookItem) BookItem {
		return BookItem{Chapter: &Chapter{Name: name, SubItems: sub}}
	}
	book := &Book{Sections: []BookItem{
		chapter("A",
			chapter("A1", chapter("A1a")),
			chapter("A2")),
		{Separator: true},
		chapter("B"),
	}}

	var names []string
	book.WalkChapters(func(ch *Chapter) { names = append(names, ch.Name) })
	assert.Equal(t, []string{"A", "A1", "A1a", "A2", "B"}, names)
}

func TestWalkChapters_MutatesInPlace(t *testing.T) {
	book := &Book{Sections: []BookItem{
		{Chapter: &Chapter{Name: "One", Content: "old"}},
	}}
	book.WalkChapters(func(ch *Chapter) { ch.Content = "new" })
	assert.Equal(t, "new", book.Sections[0].Chapter.Content)
}
