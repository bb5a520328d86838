// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mdbook models the mdbook preprocessor protocol: the book tree,
// the invocation context, and the stdin/stdout JSON exchange between the
// host and a preprocessor.
// See docs/ARCHITECTURE § Preprocessor Protocol.
package mdbook

import (
	"encoding/json"
	"fmt"
)

// Book is the root of the document tree the host hands to a preprocessor.
// Sections nest through chapter sub-items; separators and part titles are
// structural markers a preprocessor passes through untouched.
type Book struct {
	// Sections holds the top-level entries of the book in reading order.
	Sections []BookItem `json:"sections"`

	// NonExhaustive mirrors the host's __non_exhaustive marker so a
	// processed book serializes the way mdbook itself serializes one.
	// It carries no information and is always null on the wire.
	NonExhaustive *struct{} `json:"__non_exhaustive"`
}

// MarshalJSON normalizes a nil section list to an empty array; the host
// deserializes sections as a plain list and rejects null.
func (b Book) MarshalJSON() ([]byte, error) {
	type alias Book
	a := alias(b)
	if a.Sections == nil {
		a.Sections = []BookItem{}
	}
	return json.Marshal(a)
}

// WalkChapters applies fn to every chapter in the book, depth-first in
// reading order, recursing into sub-items after the parent chapter.
// Separators and part titles are skipped.
func (b *Book) WalkChapters(fn func(*Chapter)) {
	walkItems(b.Sections, fn)
}

func walkItems(items []BookItem, fn func(*Chapter)) {
	for i := range items {
		ch := items[i].Chapter
		if ch == nil {
			continue
		}
		fn(ch)
		walkItems(ch.SubItems, fn)
	}
}

// BookItem is one entry in the book tree. Exactly one of the three
// variants is set: a chapter, a part title, or a separator. The wire
// format tags the variant the way serde tags Rust enums: chapters and
// part titles are single-key objects, separators are the bare string
// "Separator".
type BookItem struct {
	Chapter   *Chapter
	PartTitle string
	Separator bool
}

// separatorToken is the wire form of a separator item.
const separatorToken = "Separator"

// MarshalJSON encodes the item in the host's externally-tagged form.
func (it BookItem) MarshalJSON() ([]byte, error) {
	switch {
	case it.Chapter != nil:
		return json.Marshal(struct {
			Chapter *Chapter `json:"Chapter"`
		}{it.Chapter})
	case it.Separator:
		return json.Marshal(separatorToken)
	case it.PartTitle != "":
		return json.Marshal(struct {
			PartTitle string `json:"PartTitle"`
		}{it.PartTitle})
	}
	return nil, fmt.Errorf("book item has no variant set")
}

// UnmarshalJSON decodes either the "Separator" string token or a
// single-key {"Chapter": ...} / {"PartTitle": ...} object.
func (it *BookItem) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		if tag != separatorToken {
			return fmt.Errorf("unrecognized book item %q", tag)
		}
		*it = BookItem{Separator: true}
		return nil
	}

	var obj struct {
		Chapter   *Chapter `json:"Chapter"`
		PartTitle *string  `json:"PartTitle"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("decoding book item: %w", err)
	}
	switch {
	case obj.Chapter != nil:
		*it = BookItem{Chapter: obj.Chapter}
	case obj.PartTitle != nil:
		*it = BookItem{PartTitle: *obj.PartTitle}
	default:
		return fmt.Errorf("book item is neither a chapter, a part title, nor a separator")
	}
	return nil
}

// Chapter is one document unit: a titled block of Markdown content with
// optional nested sub-items.
type Chapter struct {
	// Name is the chapter title as listed in SUMMARY.md.
	Name string `json:"name"`

	// Content is the chapter's Markdown source. Preprocessors rewrite
	// this field in place.
	Content string `json:"content"`

	// Number is the hierarchical section number (e.g. [1, 2] for §1.2),
	// or nil for unnumbered chapters such as the preface.
	Number []int `json:"number"`

	// SubItems holds nested chapters, separators, and part titles.
	SubItems []BookItem `json:"sub_items"`

	// Path is the chapter source path relative to the book src directory,
	// or nil for draft chapters that have no file yet.
	Path *string `json:"path"`

	// SourcePath is the path the chapter was loaded from, or nil for
	// draft chapters.
	SourcePath *string `json:"source_path"`

	// ParentNames lists the titles of the enclosing chapters, outermost
	// first.
	ParentNames []string `json:"parent_names"`
}

// MarshalJSON normalizes nil list fields to empty arrays. The host
// deserializes sub_items and parent_names as plain lists and rejects
// null; number genuinely round-trips as null for unnumbered chapters.
func (c Chapter) MarshalJSON() ([]byte, error) {
	type alias Chapter
	a := alias(c)
	if a.SubItems == nil {
		a.SubItems = []BookItem{}
	}
	if a.ParentNames == nil {
		a.ParentNames = []string{}
	}
	return json.Marshal(a)
}
