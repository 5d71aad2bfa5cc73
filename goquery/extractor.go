package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemd"
)

// stripSelectors match boilerplate removed from every page before content
// selection.
var stripSelectors = []string{
	"script", "style", "nav", "header", "footer",
	".advertisement", ".ad", ".popup", ".modal",
	".cookie-banner", ".newsletter-signup",
	`[class*="ad-"]`, `[id*="ad-"]`,
	".social-share", ".comments-section",
}

// contentSelectors locate the main content region, tried in order. The
// first selector that matches anything wins.
var contentSelectors = []string{
	"main", "article", `[role="main"]`,
	".post-content", ".article-content", ".entry-content",
	".content", ".main-content",
}

// Ensure Extractor implements pagemd.Extractor at compile time.
var _ pagemd.Extractor = (*Extractor)(nil)

// Extractor removes boilerplate from an HTML document and selects the main
// content region.
type Extractor struct {
	// StripSelectors are removed in addition to the built-in denylist.
	StripSelectors []string

	// ContentSelectors are tried after the built-in content candidates.
	ContentSelectors []string
}

// Extract deletes everything matching the denylist, then returns the first
// element matched by the content candidate list. Pages where nothing
// matches fall back to the body, then to the whole document.
func (e *Extractor) Extract(html string) (*pagemd.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, pagemd.Errorf(pagemd.EINVALID, "failed to parse HTML: %v", err)
	}

	for _, selector := range append(append([]string{}, stripSelectors...), e.StripSelectors...) {
		doc.Find(selector).Remove()
	}

	for _, selector := range append(append([]string{}, contentSelectors...), e.ContentSelectors...) {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		content, err := goquery.OuterHtml(sel)
		if err != nil {
			return nil, err
		}
		return &pagemd.ExtractResult{ContentHTML: content, Matched: selector}, nil
	}

	if body := doc.Find("body").First(); body.Length() > 0 {
		content, err := goquery.OuterHtml(body)
		if err != nil {
			return nil, err
		}
		return &pagemd.ExtractResult{ContentHTML: content, Matched: "body"}, nil
	}

	content, err := doc.Html()
	if err != nil {
		return nil, err
	}
	return &pagemd.ExtractResult{ContentHTML: content, Matched: "document"}, nil
}
