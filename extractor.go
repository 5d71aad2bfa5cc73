package pagemd

// ExtractResult holds the main content selected from an HTML page.
type ExtractResult struct {
	// ContentHTML is the serialized HTML of the selected content region.
	// Boilerplate (nav, footer, ads, popups) has been removed.
	ContentHTML string

	// Matched names the selector that won the content search, "body" when
	// the search fell through to the document body, or "document" when no
	// body was present.
	Matched string
}

// Extractor selects the main content region of an HTML page, removing
// boilerplate.
type Extractor interface {
	// Extract strips unwanted elements from the document and returns the
	// most likely main-content region. A page where no candidate selector
	// matches falls back to the body, then to the whole document.
	Extract(html string) (*ExtractResult, error)
}
