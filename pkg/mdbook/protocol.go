// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mdbook

import (
	"encoding/json"
	"fmt"
	"io"
)

// Preprocessor transforms a book between load and render. Implementations
// must leave the tree structure intact: same items, same nesting, only
// chapter content rewritten.
type Preprocessor interface {
	// Name is the preprocessor's table name under [preprocessor.*] in
	// book.toml.
	Name() string

	// Run rewrites the book in place using the invocation context.
	Run(ctx *Context, book *Book) error

	// SupportsRenderer reports whether the preprocessor's output is
	// usable by the named renderer.
	SupportsRenderer(renderer string) bool
}

// ParseInput decodes the two-element [context, book] array the host
// writes to the preprocessor's stdin.
func ParseInput(r io.Reader) (*Context, *Book, error) {
	var pair []json.RawMessage
	if err := json.NewDecoder(r).Decode(&pair); err != nil {
		return nil, nil, fmt.Errorf("decoding preprocessor input: %w", err)
	}
	if len(pair) != 2 {
		return nil, nil, fmt.Errorf("malformed preprocessor input: got %d elements, want [context, book]", len(pair))
	}

	var ctx Context
	if err := json.Unmarshal(pair[0], &ctx); err != nil {
		return nil, nil, fmt.Errorf("decoding context: %w", err)
	}
	var book Book
	if err := json.Unmarshal(pair[1], &book); err != nil {
		return nil, nil, fmt.Errorf("decoding book: %w", err)
	}
	return &ctx, &book, nil
}

// WriteBook encodes the processed book to w. Only the book is written
// back; the host keeps its own context.
func WriteBook(w io.Writer, book *Book) error {
	if err := json.NewEncoder(w).Encode(book); err != nil {
		return fmt.Errorf("encoding book: %w", err)
	}
	return nil
}
