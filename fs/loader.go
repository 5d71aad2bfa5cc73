// Package fs implements filesystem-backed page loading, asset resolution
// and document writing.
package fs

import (
	"os"
	"unicode/utf8"

	"github.com/fwojciec/pagemd"
	"golang.org/x/text/encoding/charmap"
)

// Ensure Loader implements pagemd.Loader at compile time.
var _ pagemd.Loader = (*Loader)(nil)

// Loader reads saved HTML pages from disk.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the file at path. Bytes that are not valid UTF-8 are decoded
// as Latin-1, so pages saved with legacy encodings still convert instead
// of failing.
func (l *Loader) Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", pagemd.Errorf(pagemd.ENOTFOUND, "input file %q not found", path)
		}
		return "", err
	}

	if utf8.Valid(data) {
		return string(data), nil
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", pagemd.Errorf(pagemd.EINVALID, "cannot decode %q: %s", path, err)
	}
	return string(decoded), nil
}
