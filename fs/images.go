package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/pagemd"
)

// Ensure ImageDir implements pagemd.ImageLocalizer at compile time.
var _ pagemd.ImageLocalizer = (*ImageDir)(nil)

// ImageDir resolves local image references against a saved page's assets
// folder and copies matches into the output images folder.
type ImageDir struct {
	// AssetsDir is the page's assets folder. When empty every reference
	// stays unresolved.
	AssetsDir string

	// InputDir is the directory of the input HTML file, tried last when
	// resolving a reference.
	InputDir string

	// ImagesDir is the output folder that receives copied images.
	ImagesDir string

	// DryRun reports what would be copied without touching the filesystem.
	DryRun bool
}

// Localize resolves src to a file on disk and copies it into the images
// folder under its basename. References are tried against the assets
// folder by basename, then by relative path, then against the input
// directory. Copies are skipped when the basename is already present, so
// the first copy wins.
func (d *ImageDir) Localize(ctx context.Context, src string) (*pagemd.LocalizedImage, error) {
	if d.AssetsDir == "" {
		return nil, nil
	}

	name := filepath.Base(src)
	stripped := strings.TrimLeft(src, "./")

	candidates := []string{
		filepath.Join(d.AssetsDir, name),
		filepath.Join(d.AssetsDir, stripped),
		filepath.Join(d.InputDir, stripped),
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err != nil {
			continue
		}

		copied, err := d.copyIfMissing(candidate, filepath.Join(d.ImagesDir, name))
		if err != nil {
			return nil, err
		}
		return &pagemd.LocalizedImage{
			Path:   "images/" + name,
			Copied: copied,
		}, nil
	}
	return nil, nil
}

func (d *ImageDir) copyIfMissing(src, dst string) (bool, error) {
	if d.DryRun {
		if _, err := os.Stat(dst); err == nil {
			return false, nil
		}
		return true, nil
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return false, err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return false, nil
		}
		return false, err
	}

	if _, err := out.Write(data); err != nil {
		out.Close()
		return false, err
	}
	return true, out.Close()
}
