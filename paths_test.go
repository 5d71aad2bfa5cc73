package pagemd_test

import (
	"path/filepath"
	"testing"

	"github.com/fwojciec/pagemd"
	"github.com/stretchr/testify/assert"
)

func TestResolvePaths(t *testing.T) {
	t.Parallel()

	t.Run("defaults to output dir named after input stem", func(t *testing.T) {
		t.Parallel()

		paths := pagemd.ResolvePaths("pages/article.html", "", "output")

		assert.Equal(t, "pages/article.html", paths.InputFile)
		assert.Equal(t, filepath.Join("output", "article.md"), paths.OutputFile)
		assert.Equal(t, filepath.Join("output", "images"), paths.ImagesDir)
	})

	t.Run("explicit output file wins over output dir", func(t *testing.T) {
		t.Parallel()

		paths := pagemd.ResolvePaths("article.html", filepath.Join("docs", "out.md"), "output")

		assert.Equal(t, filepath.Join("docs", "out.md"), paths.OutputFile)
		assert.Equal(t, filepath.Join("docs", "images"), paths.ImagesDir)
	})

	t.Run("images dir is a sibling of the output file", func(t *testing.T) {
		t.Parallel()

		paths := pagemd.ResolvePaths("a.html", "out.md", "")

		assert.Equal(t, "images", paths.ImagesDir)
	})

	t.Run("strips only the final extension", func(t *testing.T) {
		t.Parallel()

		paths := pagemd.ResolvePaths("saved.page.html", "", "out")

		assert.Equal(t, filepath.Join("out", "saved.page.md"), paths.OutputFile)
	})

	t.Run("leaves assets dir unset", func(t *testing.T) {
		t.Parallel()

		paths := pagemd.ResolvePaths("a.html", "", "out")

		assert.Empty(t, paths.AssetsDir)
	})
}
