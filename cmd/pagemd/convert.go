package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/pagemd"
	"github.com/fwojciec/pagemd/convert"
	"github.com/fwojciec/pagemd/fs"
	"github.com/fwojciec/pagemd/goquery"
	pagslog "github.com/fwojciec/pagemd/slog"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	// Check the input before creating any output directories.
	if _, err := os.Stat(c.HTMLFile); err != nil {
		if os.IsNotExist(err) {
			err = pagemd.Errorf(pagemd.ENOTFOUND, "input file %q not found", c.HTMLFile)
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagemd.ErrorMessage(err))
		return err
	}

	outputDir := deps.Config.OutputDir
	if outputDir == "" {
		outputDir = pagemd.DefaultOutputDir
	}

	paths := pagemd.ResolvePaths(c.HTMLFile, c.OutputFile, outputDir)
	paths.AssetsDir = fs.DiscoverAssets(c.HTMLFile)

	if err := fs.Prepare(paths); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagemd.ErrorMessage(err))
		return err
	}

	rewriter := pagslog.NewLoggingRewriter(&goquery.Rewriter{
		Images: &fs.ImageDir{
			AssetsDir: paths.AssetsDir,
			InputDir:  filepath.Dir(c.HTMLFile),
			ImagesDir: paths.ImagesDir,
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

	result, err := pipeline.Run(deps.Ctx, paths)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagemd.ErrorMessage(err))
		return err
	}

	if result.Unchanged {
		fmt.Fprintf(deps.Stdout, "Unchanged %s (%s)\n", paths.OutputFile, convert.FormatBytes(result.Bytes))
	} else {
		fmt.Fprintf(deps.Stdout, "Wrote %s (%s)\n", paths.OutputFile, convert.FormatBytes(result.Bytes))
	}
	if len(result.Images) > 0 {
		fmt.Fprintf(deps.Stdout, "  Localized %d of %d images\n", result.Localized(), len(result.Images))
	}
	if deps.Verbose {
		assets := paths.AssetsDir
		if assets == "" {
			assets = "(none)"
		}
		fmt.Fprintf(deps.Stdout, "  Input:  %s\n", c.HTMLFile)
		fmt.Fprintf(deps.Stdout, "  Assets: %s\n", assets)
		fmt.Fprintf(deps.Stdout, "  Hash:   %s\n", result.Hash)
	}

	return nil
}
