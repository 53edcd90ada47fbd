// Package frontmatter splits YAML frontmatter from qmd/markdown documents.
package frontmatter

import (
	"errors"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter is returned when a document opens a frontmatter
// block that is never closed.
var ErrMissingClosingDelimiter = errors.New("frontmatter: missing closing --- delimiter")

// Parse separates `---` delimited YAML frontmatter from the document body.
//
// If the document does not start with a frontmatter delimiter, had is false
// and body is the full input.
func Parse(content string) (fields map[string]any, body string, had bool, err error) {
	const open = "---\n"
	if !strings.HasPrefix(content, open) {
		return map[string]any{}, content, false, nil
	}

	rest := content[len(open):]
	var block string
	switch {
	case strings.HasPrefix(rest, "---\n"):
		// Empty frontmatter block.
		body = rest[len("---\n"):]
	default:
		idx := strings.Index(rest, "\n---\n")
		if idx < 0 {
			return nil, "", false, ErrMissingClosingDelimiter
		}
		block = rest[:idx+1]
		body = rest[idx+len("\n---\n"):]
	}

	fields = map[string]any{}
	if block != "" {
		if err := yaml.Unmarshal([]byte(block), &fields); err != nil {
			return nil, "", false, err
		}
		if fields == nil {
			fields = map[string]any{}
		}
	}
	return fields, body, true, nil
}
