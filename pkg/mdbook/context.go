// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mdbook

import "strings"

// Context carries the host's invocation details: where the book lives,
// the full book.toml configuration, which renderer the output is destined
// for, and the host version.
type Context struct {
	// Root is the absolute path of the book directory.
	Root string `json:"root"`

	// Config is the deserialized book.toml, keyed by table name.
	Config Config `json:"config"`

	// Renderer is the name of the renderer the processed book feeds
	// (e.g. "html").
	Renderer string `json:"renderer"`

	// MdbookVersion is the version of the mdbook binary driving the run.
	MdbookVersion string `json:"mdbook_version"`
}

// Config is the book.toml contents as nested string-keyed tables, exactly
// as they arrive in the protocol JSON. Lookups take dotted key paths like
// "preprocessor.footnote.markdown".
type Config map[string]any

// Get resolves a dotted key path through nested tables. The second return
// is false when any path segment is missing or a non-table value is
// traversed.
func (c Config) Get(path string) (any, bool) {
	segments := strings.Split(path, ".")
	var current any = map[string]any(c)
	for _, seg := range segments {
		table, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = table[seg]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// Bool returns the boolean at path. The second return is false when the
// key is absent or holds a non-boolean value; callers fall back to their
// default in both cases rather than coercing.
func (c Config) Bool(path string) (bool, bool) {
	v, ok := c.Get(path)
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// String returns the string at path, with the same strictness as Bool.
func (c Config) String(path string) (string, bool) {
	v, ok := c.Get(path)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Table returns the nested table at path so callers can scope repeated
// lookups (e.g. the preprocessor's own table).
func (c Config) Table(path string) (Config, bool) {
	v, ok := c.Get(path)
	if !ok {
		return nil, false
	}
	t, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	return Config(t), true
}
