// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mdbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompatible(t *testing.T) {
	tests := []struct {
		name  string
		built string
		host  string
		want  bool
	}{
		{name: "identical", built: "0.4.40", host: "0.4.40", want: true},
		{name: "patch drift pre-1.0", built: "0.4.40", host: "0.4.21", want: true},
		{name: "minor drift pre-1.0", built: "0.4.40", host: "0.5.0", want: false},
		{name: "major drift", built: "0.4.40", host: "1.0.0", want: false},
		{name: "minor drift post-1.0", built: "1.2.3", host: "1.9.0", want: true},
		{name: "major drift post-1.0", built: "2.0.0", host: "1.9.9", want: false},
		{name: "host unparseable", built: "0.4.40", host: "nightly", want: false},
		{name: "built unparseable", built: "", host: "0.4.40", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compatible(tt.built, tt.host),
				"Compatible(%q, %q)", tt.built, tt.host)
		})
	}
}
