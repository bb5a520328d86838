// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package preview

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// VerifyAnchors parses rendered HTML and returns the fragment link
// targets that no element in the document defines, sorted. A clean
// expansion comes back empty: every to-footnote-n / footnote-n pair
// links to an anchor that exists.
func VerifyAnchors(doc []byte) ([]string, error) {
	root, err := html.Parse(bytes.NewReader(doc))
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}

	defined := make(map[string]bool)
	seen := make(map[string]bool)
	var targets []string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, attr := range n.Attr {
				switch {
				case attr.Key == "id":
					defined[attr.Val] = true
				case attr.Key == "name" && n.Data == "a":
					defined[attr.Val] = true
				case attr.Key == "href" && strings.HasPrefix(attr.Val, "#"):
					target := strings.TrimPrefix(attr.Val, "#")
					if target != "" && !seen[target] {
						seen[target] = true
						targets = append(targets, target)
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	var missing []string
	for _, t := range targets {
		if !defined[t] {
			missing = append(missing, t)
		}
	}
	sort.Strings(missing)
	return missing, nil
}
