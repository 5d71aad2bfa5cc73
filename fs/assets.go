package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/pagemd"
)

// DiscoverAssets locates the assets folder a browser saved next to an HTML
// page. It tries, in order, "<stem>_files", "<stem>_assets" and
// "<filename>_files" in the input file's directory and returns the first
// existing directory, or "" when there is none.
func DiscoverAssets(inputFile string) string {
	dir := filepath.Dir(inputFile)
	base := filepath.Base(inputFile)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	candidates := []string{
		stem + "_files",
		stem + "_assets",
		base + "_files",
	}

	for _, name := range candidates {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}
	}
	return ""
}

// Prepare creates the output directory and the images folder for a
// conversion run.
func Prepare(paths pagemd.Paths) error {
	if err := os.MkdirAll(filepath.Dir(paths.OutputFile), 0755); err != nil {
		return err
	}
	return os.MkdirAll(paths.ImagesDir, 0755)
}
