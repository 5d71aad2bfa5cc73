package goquery

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemd"
)

// Ensure Rewriter implements pagemd.Rewriter at compile time.
var _ pagemd.Rewriter = (*Rewriter)(nil)

// Rewriter rewrites img elements against local assets and folds pre/code
// blocks into fenced text so the Markdown renderer can emit them verbatim.
type Rewriter struct {
	// Images resolves local image references. Nil leaves every local
	// reference unresolved.
	Images pagemd.ImageLocalizer
}

// Rewrite processes the whole document: external image references are kept,
// data: URIs are dropped, local references are localized when resolvable,
// missing alt text is filled with a placeholder, and pre elements with a
// code child are replaced by fenced code text tagged with the detected
// language.
func (r *Rewriter) Rewrite(ctx context.Context, html string) (string, []pagemd.ImageRewrite, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", nil, pagemd.Errorf(pagemd.EINVALID, "failed to parse HTML: %v", err)
	}

	var rewrites []pagemd.ImageRewrite
	var rewriteErr error

	doc.Find("img").EachWithBreak(func(_ int, img *goquery.Selection) bool {
		src := img.AttrOr("src", "")
		if src == "" {
			return true
		}

		record, err := r.rewriteImage(ctx, img, src)
		if err != nil {
			rewriteErr = err
			return false
		}
		rewrites = append(rewrites, record)

		if img.AttrOr("alt", "") == "" {
			img.SetAttr("alt", "Image")
		}
		return true
	})
	if rewriteErr != nil {
		return "", nil, rewriteErr
	}

	doc.Find("pre").Each(func(_ int, pre *goquery.Selection) {
		code := pre.Find("code").First()
		if code.Length() == 0 {
			return
		}

		fence := "```" + detectLanguage(code.AttrOr("class", ""))
		pre.SetText(fence + "\n" + code.Text() + "\n```")
		pre.SetAttr("data-fenced", "true")
	})

	out, err := doc.Html()
	if err != nil {
		return "", nil, err
	}
	return out, rewrites, nil
}

func (r *Rewriter) rewriteImage(ctx context.Context, img *goquery.Selection, src string) (pagemd.ImageRewrite, error) {
	record := pagemd.ImageRewrite{Source: src, Target: src}

	switch {
	case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
		// External reference, not localized.

	case strings.HasPrefix(src, "data:"):
		// Inline image data is dropped rather than carried into the output.
		img.SetAttr("src", "")
		record.Target = ""

	default:
		if r.Images == nil {
			break
		}
		localized, err := r.Images.Localize(ctx, src)
		if err != nil {
			return record, err
		}
		if localized == nil {
			break
		}
		img.SetAttr("src", localized.Path)
		record.Target = localized.Path
		record.Localized = true
		record.Copied = localized.Copied
	}

	return record, nil
}

// detectLanguage scans a class attribute for the first class carrying a
// language- or lang- prefix and returns the suffix.
func detectLanguage(class string) string {
	for _, cls := range strings.Fields(class) {
		if strings.HasPrefix(cls, "language-") {
			return strings.TrimPrefix(cls, "language-")
		}
		if strings.HasPrefix(cls, "lang-") {
			return strings.TrimPrefix(cls, "lang-")
		}
	}
	return ""
}
