package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/pagemd"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Verbose   bool
	Config    *pagemd.Config
	Loader    pagemd.Loader
	Metadata  pagemd.MetadataExtractor
	Extractor pagemd.Extractor
	Converter pagemd.Converter
	Writer    pagemd.DocumentWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool   `short:"v" help:"Log conversion stages to stderr"`
	Config  string `short:"C" help:"Path to a YAML config file"`
	Engine  string `short:"e" default:"selectors" enum:"selectors,readability,trafilatura" help:"Content selection engine (selectors, readability or trafilatura)"`

	Convert ConvertCmd `cmd:"" help:"Convert a saved HTML page to Markdown"`
	Inspect InspectCmd `cmd:"" help:"Show what a conversion would produce without writing"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	HTMLFile   string `arg:"" help:"Saved HTML page to convert"`
	OutputFile string `arg:"" optional:"" help:"Output Markdown file (default: <output dir>/<input stem>.md)"`
}

// InspectCmd is the "inspect" subcommand.
type InspectCmd struct {
	HTMLFile string `arg:"" help:"Saved HTML page to inspect"`
}
