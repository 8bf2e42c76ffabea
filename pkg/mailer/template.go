package mailer

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	frontmatterDelimiter = []byte("---")
	utf8BOM              = []byte("\xef\xbb\xbf")
)

// Template represents an email template with metadata and body.
type Template struct {
	Metadata map[string]any
	Body     string
}

// ParseTemplate splits template content into YAML frontmatter and markdown body.
// Content without a leading "---" has no metadata.
func ParseTemplate(content []byte) (*Template, error) {
	content = bytes.TrimPrefix(content, utf8BOM)

	rest, ok := bytes.CutPrefix(content, frontmatterDelimiter)
	if !ok {
		return &Template{Metadata: make(map[string]any), Body: string(content)}, nil
	}

	rest = bytes.TrimLeft(rest, "\n\r")
	if len(rest) == 0 {
		return nil, fmt.Errorf("%w: no content after opening delimiter", ErrInvalidFrontmatter)
	}

	frontmatter, body, found := bytes.Cut(rest, frontmatterDelimiter)
	if !found {
		return nil, fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
	}

	// One line break after the closing delimiter belongs to it.
	if b, ok := bytes.CutPrefix(body, []byte("\r\n")); ok {
		body = b
	} else {
		body = bytes.TrimPrefix(body, []byte("\n"))
	}

	metadata := make(map[string]any)
	if len(bytes.TrimSpace(frontmatter)) > 0 {
		if err := yaml.Unmarshal(frontmatter, &metadata); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
		}
	}

	return &Template{Metadata: metadata, Body: string(body)}, nil
}
