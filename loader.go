package pagemd

// Loader reads a saved HTML page from disk and returns it as a UTF-8
// string.
type Loader interface {
	// Load reads the file at path. Files that are not valid UTF-8 are
	// decoded with a single-byte fallback encoding rather than rejected.
	// Returns ENOTFOUND if the file does not exist.
	Load(path string) (string, error)
}
