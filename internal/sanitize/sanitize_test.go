package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlain(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text untouched", "Hello World", "Hello World"},
		{"tags stripped", "<p>Hello <b>World</b></p>", "Hello World"},
		{"script removed entirely", `<script>alert("x")</script>Hi`, "Hi"},
		{"attributes dropped with tag", `<a href="https://evil.example">link</a>`, "link"},
		{"whitespace trimmed", "  padded  ", "padded"},
		{"entities decoded", "fish &amp; chips", "fish & chips"},
		{"empty after stripping", "<img src=x>", ""},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Plain(tt.input))
		})
	}
}
