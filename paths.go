package pagemd

import (
	"path/filepath"
	"strings"
)

// Paths holds the resolved filesystem locations for one conversion.
type Paths struct {
	// InputFile is the HTML file being converted.
	InputFile string

	// AssetsDir is the assets folder discovered next to the input file.
	// Empty when the page has no assets folder.
	AssetsDir string

	// OutputFile is the Markdown file to write.
	OutputFile string

	// ImagesDir receives copied local images. Always a sibling of
	// OutputFile.
	ImagesDir string
}

// ResolvePaths computes the output locations for inputFile. When
// outputFile is empty the document is written to outputDir under the
// working directory, named after the input file's stem.
func ResolvePaths(inputFile, outputFile, outputDir string) Paths {
	if outputFile == "" {
		base := filepath.Base(inputFile)
		stem := strings.TrimSuffix(base, filepath.Ext(base))
		outputFile = filepath.Join(outputDir, stem+".md")
	}

	return Paths{
		InputFile:  inputFile,
		OutputFile: outputFile,
		ImagesDir:  filepath.Join(filepath.Dir(outputFile), "images"),
	}
}
