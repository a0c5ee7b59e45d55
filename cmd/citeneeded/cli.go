package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/citeneeded"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Checker *citeneeded.Checker
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL       string        `arg:"" optional:"" default:"${default_url}" help:"Wikipedia article URL"`
	File      string        `short:"f" xor:"source" help:"Read HTML from a local file instead of fetching"`
	Render    bool          `short:"r" xor:"source" help:"Render the page in headless Chrome before scanning"`
	Timeout   time.Duration `short:"t" default:"10s" help:"Fetch timeout"`
	UserAgent string        `name:"user-agent" default:"${default_user_agent}" help:"User-Agent header for HTTP requests"`
	Headings  string        `enum:"ancestor,preceding" default:"ancestor" help:"Section heading lookup: enclosing heading (ancestor) or last heading before the marker (preceding)"`
	Class     string        `default:"${default_class}" help:"Exact class attribute of the marker element"`
	Verbose   bool          `short:"v" help:"Log fetch and scan details to stderr"`
}

// CheckCmd reports the citation-needed passages of one page.
type CheckCmd struct {
	URL string
}
