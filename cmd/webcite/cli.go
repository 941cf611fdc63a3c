package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/webcite"
)

// Dependencies holds services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Service webcite.CitationService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Get GetCmd `cmd:"" help:"Generate BibTeX records for one or more URLs"`
}

// GetCmd is the "get" subcommand.
type GetCmd struct {
	URLs        []string      `arg:"" help:"Page or DOI URLs to cite"`
	Timeout     time.Duration `default:"10s" help:"Per-request HTTP timeout"`
	UserAgent   string        `name:"user-agent" help:"Override the outbound User-Agent"`
	Concurrency int           `short:"c" default:"4" help:"Concurrent fetch limit"`
	Verbose     bool          `short:"v" help:"Log each strategy decision to stderr"`
}
