package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fwojciec/pagemd"
	"github.com/fwojciec/pagemd/convert"
	"github.com/fwojciec/pagemd/fs"
	"github.com/fwojciec/pagemd/goquery"
	pagslog "github.com/fwojciec/pagemd/slog"
)

// Run executes the inspect command. It runs the conversion stages without
// touching the filesystem: no output directories, no image copies, no
// document write.
func (c *InspectCmd) Run(deps *Dependencies) error {
	outputDir := deps.Config.OutputDir
	if outputDir == "" {
		outputDir = pagemd.DefaultOutputDir
	}

	paths := pagemd.ResolvePaths(c.HTMLFile, "", outputDir)
	paths.AssetsDir = fs.DiscoverAssets(c.HTMLFile)

	rewriter := pagslog.NewLoggingRewriter(&goquery.Rewriter{
		Images: &fs.ImageDir{
			AssetsDir: paths.AssetsDir,
			InputDir:  filepath.Dir(c.HTMLFile),
			ImagesDir: paths.ImagesDir,
			DryRun:    true,
		},
	}, deps.Logger)

	pipeline := &convert.Pipeline{
		Loader:    deps.Loader,
		Metadata:  deps.Metadata,
		Rewriter:  rewriter,
		Extractor: deps.Extractor,
		Converter: deps.Converter,
		Writer:    deps.Writer,
	}

	result, err := pipeline.Preview(deps.Ctx, paths)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagemd.ErrorMessage(err))
		return err
	}

	assets := paths.AssetsDir
	if assets == "" {
		assets = "(none)"
	}

	fmt.Fprintf(deps.Stdout, "Input:   %s\n", paths.InputFile)
	fmt.Fprintf(deps.Stdout, "Assets:  %s\n", assets)
	fmt.Fprintf(deps.Stdout, "Output:  %s\n", paths.OutputFile)
	fmt.Fprintf(deps.Stdout, "Content: %s\n", result.Matched)
	fmt.Fprintf(deps.Stdout, "Size:    %s\n", convert.FormatBytes(result.Bytes))

	if result.Meta.Len() > 0 {
		fmt.Fprintf(deps.Stdout, "\nMetadata:\n")
		for _, key := range result.Meta.Keys() {
			fmt.Fprintf(deps.Stdout, "  %s: %s\n", key, result.Meta.Value(key))
		}
	}

	if len(result.Images) > 0 {
		fmt.Fprintf(deps.Stdout, "\nImages (%d):\n", len(result.Images))
		for _, img := range result.Images {
			src := convert.TruncateURL(img.Source, 60)
			switch {
			case img.Target == "":
				fmt.Fprintf(deps.Stdout, "  %s (dropped)\n", src)
			case img.Localized:
				fmt.Fprintf(deps.Stdout, "  %s -> %s\n", src, img.Target)
			default:
				fmt.Fprintf(deps.Stdout, "  %s (kept)\n", src)
			}
		}
	}

	if outline := pagemd.Outline(result.Content); len(outline) > 0 {
		fmt.Fprintf(deps.Stdout, "\nOutline:\n")
		for _, h := range outline {
			fmt.Fprintf(deps.Stdout, "  %s %s\n", strings.Repeat("#", h.Level), h.Title)
		}
	}

	return nil
}
