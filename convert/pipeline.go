// Package convert provides the page conversion pipeline.
// It coordinates loading, metadata extraction, image rewriting,
// content selection and Markdown rendering of saved pages.
package convert

import (
	"context"
	"fmt"

	"github.com/fwojciec/pagemd"
)

// Pipeline orchestrates the conversion of one saved page to Markdown.
type Pipeline struct {
	Loader    pagemd.Loader
	Metadata  pagemd.MetadataExtractor
	Rewriter  pagemd.Rewriter
	Extractor pagemd.Extractor
	Converter pagemd.Converter
	Writer    pagemd.DocumentWriter
}

// Result holds the outcome of a conversion. Content is the converted
// Markdown body alone; Rendered is the full document including the
// metadata header.
type Result struct {
	Paths     pagemd.Paths
	Meta      *pagemd.Metadata
	Matched   string
	Images    []pagemd.ImageRewrite
	Content   string
	Rendered  string
	Bytes     int
	Hash      string
	Unchanged bool
}

// Localized returns the number of images that were resolved to local
// copies in the output images folder.
func (r *Result) Localized() int {
	var n int
	for _, img := range r.Images {
		if img.Localized {
			n++
		}
	}
	return n
}

// Run converts the page at paths.InputFile and writes the rendered
// document to paths.OutputFile.
func (p *Pipeline) Run(ctx context.Context, paths pagemd.Paths) (*Result, error) {
	result, err := p.convert(ctx, paths)
	if err != nil {
		return nil, err
	}

	wr, err := p.Writer.WriteDocument(ctx, paths.OutputFile, result.Rendered)
	if err != nil {
		return nil, fmt.Errorf("write: %w", err)
	}
	result.Bytes = wr.Bytes
	result.Hash = wr.ContentHash
	result.Unchanged = wr.Unchanged

	return result, nil
}

// Preview converts the page at paths.InputFile without writing anything.
func (p *Pipeline) Preview(ctx context.Context, paths pagemd.Paths) (*Result, error) {
	return p.convert(ctx, paths)
}

// convert runs the read-only stages of the pipeline. Metadata is taken
// from the original document; image rewriting happens before content
// selection so records cover the whole page.
func (p *Pipeline) convert(ctx context.Context, paths pagemd.Paths) (*Result, error) {
	html, err := p.Loader.Load(paths.InputFile)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	meta, err := p.Metadata.ExtractMetadata(html)
	if err != nil {
		return nil, fmt.Errorf("metadata: %w", err)
	}

	rewritten, images, err := p.Rewriter.Rewrite(ctx, html)
	if err != nil {
		return nil, fmt.Errorf("rewrite: %w", err)
	}

	extracted, err := p.Extractor.Extract(rewritten)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	markdown, err := p.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return nil, fmt.Errorf("convert: %w", err)
	}

	doc := &pagemd.Document{
		Meta:    meta,
		Content: pagemd.FormatMarkdown(markdown),
	}
	rendered := doc.Render()

	return &Result{
		Paths:    paths,
		Meta:     meta,
		Matched:  extracted.Matched,
		Images:   images,
		Content:  doc.Content,
		Rendered: rendered,
		Bytes:    len(rendered),
		Hash:     ComputeHash(rendered),
	}, nil
}
