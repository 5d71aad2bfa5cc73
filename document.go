package pagemd

import (
	"context"
	"strings"
)

// Document is a converted page ready to be rendered as the final Markdown
// file.
type Document struct {
	Meta    *Metadata
	Content string
}

// Render assembles the final document: a quoted-value metadata header, an
// optional title heading, an optional article information section, then a
// horizontal rule followed by the converted content. Pages without any
// metadata render as just the rule and the content.
func (d *Document) Render() string {
	meta := d.Meta
	if meta == nil {
		meta = NewMetadata()
	}

	var lines []string

	if meta.Len() > 0 {
		lines = append(lines, "---")
		for _, key := range meta.Keys() {
			safe := strings.ReplaceAll(meta.Value(key), `"`, `\"`)
			lines = append(lines, key+`: "`+safe+`"`)
		}
		lines = append(lines, "---", "")
	}

	if title, ok := meta.Get(MetaTitle); ok {
		lines = append(lines, "# "+title, "")
	}

	_, hasAuthor := meta.Get(MetaAuthor)
	_, hasPublished := meta.Get(MetaPublished)
	_, hasURL := meta.Get(MetaURL)
	if hasAuthor || hasPublished || hasURL {
		lines = append(lines, "## Article Information", "")
		if v, ok := meta.Get(MetaAuthor); ok {
			lines = append(lines, "**Author:** "+v)
		}
		if v, ok := meta.Get(MetaPublished); ok {
			lines = append(lines, "**Published:** "+v)
		}
		if v, ok := meta.Get(MetaURL); ok {
			lines = append(lines, "**Original URL:** "+v)
		}
		lines = append(lines, "")
		if v, ok := meta.Get(MetaDescription); ok {
			lines = append(lines, "**Description:** "+v, "")
		}
	}

	lines = append(lines, "---", "", d.Content)

	return strings.Join(lines, "\n")
}

// WriteResult describes the outcome of persisting a rendered document.
type WriteResult struct {
	// Bytes is the size of the rendered document.
	Bytes int

	// ContentHash is a hash of the rendered document, useful for change
	// detection across runs.
	ContentHash string

	// Unchanged reports that an identical file was already in place and
	// no write was performed.
	Unchanged bool
}

// DocumentWriter persists rendered documents to storage.
type DocumentWriter interface {
	// WriteDocument stores content at path, replacing any previous file
	// in a single atomic step. Writing content identical to the existing
	// file is skipped and reported via WriteResult.Unchanged.
	WriteDocument(ctx context.Context, path string, content string) (*WriteResult, error)
}
