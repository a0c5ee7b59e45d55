package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/citeneeded"
	"github.com/fwojciec/citeneeded/fs"
	"github.com/fwojciec/citeneeded/goquery"
	cnhttp "github.com/fwojciec/citeneeded/http"
	"github.com/fwojciec/citeneeded/rod"
	cnslog "github.com/fwojciec/citeneeded/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// DefaultURL is the article scanned when no URL is given.
const DefaultURL = "https://en.wikipedia.org/wiki/History_of_Mexico"

// DefaultUserAgent identifies the tool to Wikimedia servers.
const DefaultUserAgent = "citeneeded/1.0 (https://github.com/fwojciec/citeneeded)"

// Main represents the program.
type Main struct {
	// Fetcher overrides the fetcher selected from flags. Used by tests.
	Fetcher citeneeded.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("citeneeded"),
		kong.Description("Report the passages of a Wikipedia article marked \"citation needed\""),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{
			"default_url":        DefaultURL,
			"default_user_agent": DefaultUserAgent,
			"default_class":      citeneeded.MarkerClass,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	fetcher, target, err := m.openFetcher(cli, stderr)
	if err != nil {
		return err
	}
	defer fetcher.Close()

	scanner := goquery.NewScanner(
		goquery.WithMarkerClass(cli.Class),
		goquery.WithHeadingMode(citeneeded.HeadingMode(cli.Headings)),
	)

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Checker: &citeneeded.Checker{
			Fetcher: cnslog.NewLoggingFetcher(fetcher, logger),
			Scanner: cnslog.NewLoggingScanner(scanner, logger),
		},
	}

	cmd := &CheckCmd{URL: target}
	return cmd.Run(deps)
}

// openFetcher selects the fetcher for the parsed flags and returns it with
// the location to pass to Fetch.
func (m *Main) openFetcher(cli *CLI, stderr io.Writer) (citeneeded.Fetcher, string, error) {
	target := cli.URL
	if cli.File != "" {
		target = cli.File
	}

	if m.Fetcher != nil {
		return m.Fetcher, target, nil
	}

	switch {
	case cli.File != "":
		return fs.NewFetcher(), target, nil
	case cli.Render:
		f, err := rod.NewFetcher(rod.WithFetchTimeout(cli.Timeout))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return nil, "", fmt.Errorf("failed to start browser: %w", err)
		}
		return f, target, nil
	default:
		return cnhttp.NewFetcher(
			cnhttp.WithTimeout(cli.Timeout),
			cnhttp.WithUserAgent(cli.UserAgent),
		), target, nil
	}
}
