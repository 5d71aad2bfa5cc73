// Package goquery implements HTML document analysis and rewriting on top
// of goquery's CSS-selector DOM.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemd"
)

// Ensure MetadataExtractor implements pagemd.MetadataExtractor at compile time.
var _ pagemd.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor reads the page title and recognized meta tags from an
// HTML document's head.
type MetadataExtractor struct{}

// NewMetadataExtractor creates a new MetadataExtractor.
func NewMetadataExtractor() *MetadataExtractor {
	return &MetadataExtractor{}
}

// ExtractMetadata collects the title and meta tag values. Meta names are
// read from the name attribute, falling back to property, and mapped to a
// fixed set of keys. When several tags map to the same key the last one in
// document order wins.
func (e *MetadataExtractor) ExtractMetadata(html string) (*pagemd.Metadata, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, pagemd.Errorf(pagemd.EINVALID, "failed to parse HTML: %v", err)
	}

	meta := pagemd.NewMetadata()

	title := doc.Find("title").First()
	if title.Length() > 0 {
		meta.Set(pagemd.MetaTitle, cleanText(title.Text()))
	}

	doc.Find("meta").Each(func(_ int, sel *goquery.Selection) {
		name := sel.AttrOr("name", "")
		if name == "" {
			name = sel.AttrOr("property", "")
		}
		content := sel.AttrOr("content", "")
		if name == "" || content == "" {
			return
		}

		switch name {
		case "description", "og:description":
			meta.Set(pagemd.MetaDescription, content)
		case "author", "og:author":
			meta.Set(pagemd.MetaAuthor, content)
		case "keywords":
			meta.Set(pagemd.MetaKeywords, content)
		case "og:title":
			meta.Set(pagemd.MetaOGTitle, content)
		case "og:url":
			meta.Set(pagemd.MetaURL, content)
		case "article:published_time", "pubdate":
			meta.Set(pagemd.MetaPublished, content)
		}
	})

	return meta, nil
}

// cleanText decodes entity escapes that survive parsing in double-escaped
// pages, then collapses runs of whitespace to single spaces and trims the
// ends. Decoding comes first so escapes that turn into spaces collapse too.
func cleanText(s string) string {
	for _, e := range [...][2]string{
		{"&nbsp;", " "},
		{"&amp;", "&"},
		{"&lt;", "<"},
		{"&gt;", ">"},
		{"&quot;", `"`},
	} {
		s = strings.ReplaceAll(s, e[0], e[1])
	}
	return strings.Join(strings.Fields(s), " ")
}
