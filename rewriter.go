package pagemd

import "context"

// ImageRewrite records the outcome of rewriting a single img element.
type ImageRewrite struct {
	// Source is the original src attribute value.
	Source string

	// Target is the src value after rewriting: "images/<name>" for
	// localized images, "" for dropped data: URIs, and Source unchanged
	// for external or unresolved references.
	Target string

	// Localized reports whether the image file was resolved on disk and
	// referenced from the output images folder.
	Localized bool

	// Copied reports whether the image file was actually copied. False
	// for localized images whose target filename already existed.
	Copied bool
}

// Rewriter rewrites img and pre/code elements in a full HTML document so
// the downstream Markdown conversion produces self-contained output.
// Rewriting happens on the whole document, before content selection, so
// it also touches markup that selection later discards.
type Rewriter interface {
	// Rewrite localizes image references against the page's assets folder
	// and folds code blocks into fenced text tagged with their declared
	// language. It returns the rewritten document and one record per img
	// element that carried a non-empty src.
	Rewrite(ctx context.Context, html string) (string, []ImageRewrite, error)
}

// LocalizedImage describes an image resolved into the output images folder.
type LocalizedImage struct {
	// Path is the rewritten src value, e.g. "images/photo.png".
	Path string

	// Copied reports whether the file was copied. False when a file with
	// the same basename was already present; the first copy wins, since
	// copies are keyed by basename only.
	Copied bool
}

// ImageLocalizer resolves local image references against the saved page's
// assets and places matched files in the output images folder.
type ImageLocalizer interface {
	// Localize resolves src on disk and copies the matched file into the
	// images folder unless a file with the same basename is already
	// there. A nil result means the reference could not be resolved and
	// the original src should be kept.
	Localize(ctx context.Context, src string) (*LocalizedImage, error)
}
