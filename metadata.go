package pagemd

// Metadata keys produced by metadata extraction.
const (
	MetaTitle       = "title"
	MetaDescription = "description"
	MetaAuthor      = "author"
	MetaKeywords    = "keywords"
	MetaOGTitle     = "og_title"
	MetaURL         = "url"
	MetaPublished   = "published"
)

// Metadata is an insertion-ordered collection of page metadata fields.
// Setting an existing key overwrites its value but keeps the key's
// original position, so later duplicate meta tags win without reordering
// the header.
type Metadata struct {
	keys   []string
	values map[string]string
}

// NewMetadata returns an empty Metadata.
func NewMetadata() *Metadata {
	return &Metadata{values: make(map[string]string)}
}

// Set stores value under key, preserving first-insertion order.
func (m *Metadata) Set(key, value string) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key.
func (m *Metadata) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Value returns the value stored under key, or "" if absent.
func (m *Metadata) Value(key string) string {
	return m.values[key]
}

// Keys returns the keys in insertion order.
func (m *Metadata) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of stored keys.
func (m *Metadata) Len() int {
	return len(m.keys)
}

// MetadataExtractor extracts metadata fields from an HTML document.
type MetadataExtractor interface {
	// ExtractMetadata collects the page title and recognized meta tags.
	// A document without a head or without meta tags yields an empty,
	// non-nil Metadata.
	ExtractMetadata(html string) (*Metadata, error)
}
