package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagemd"
	"github.com/fwojciec/pagemd/fs"
	"github.com/fwojciec/pagemd/goquery"
	"github.com/fwojciec/pagemd/htmltomarkdown"
	"github.com/fwojciec/pagemd/readability"
	pagslog "github.com/fwojciec/pagemd/slog"
	"github.com/fwojciec/pagemd/trafilatura"
	"github.com/fwojciec/pagemd/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config file path. Set before calling Run(). Empty means no config
	// file is loaded and built-in defaults apply.
	ConfigPath string

	// ConfigLoader reads the config file. Swappable for tests.
	ConfigLoader pagemd.ConfigLoader
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath:   os.Getenv("PAGEMD_CONFIG"),
		ConfigLoader: yaml.NewConfigLoader(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagemd"),
		kong.Description("Convert saved HTML pages to Markdown documents"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagemd --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Logging goes to stderr so stdout stays clean for command output.
	// Stage logs are emitted at info level and hidden unless --verbose.
	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger
	deps.Verbose = cli.Verbose

	// Load the optional config file
	configPath := m.ConfigPath
	if cli.Config != "" {
		configPath = cli.Config
	}
	if configPath != "" {
		cfg, err := m.ConfigLoader.LoadConfig(configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Hint: Set PAGEMD_CONFIG or pass --config to point at a valid config file\n")
			return fmt.Errorf("failed to load config at %q: %w", configPath, err)
		}
		deps.Config = cfg
	} else {
		deps.Config = &pagemd.Config{}
	}

	// Wire conversion stages into dependencies. The image rewriter depends
	// on per-page paths, so commands build it themselves.
	var extractor pagemd.Extractor
	switch cli.Engine {
	case "readability":
		extractor = readability.NewExtractor()
	case "trafilatura":
		extractor = trafilatura.NewExtractor()
	default:
		extractor = &goquery.Extractor{
			StripSelectors:   deps.Config.StripSelectors,
			ContentSelectors: deps.Config.ContentSelectors,
		}
	}

	deps.Loader = fs.NewLoader()
	deps.Metadata = goquery.NewMetadataExtractor()
	deps.Extractor = pagslog.NewLoggingExtractor(extractor, logger)
	deps.Converter = pagslog.NewLoggingConverter(htmltomarkdown.NewConverter(), logger)
	deps.Writer = pagslog.NewLoggingWriter(fs.NewWriter(), logger)

	return kongCtx.Run(deps)
}
