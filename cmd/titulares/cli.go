package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/dfgomezp/titulares"
)

// CLI defines the command structure for Kong parsing.
type CLI struct {
	Config string `help:"Path to YAML config file." type:"path"`
	Bucket string `help:"Object store root directory." default:"data"`

	Download DownloadCmd `cmd:"" help:"Download each configured site's front page as raw HTML."`
	Process  ProcessCmd  `cmd:"" help:"Extract headlines from stored raw HTML and write partitioned CSV."`
}

// DownloadCmd downloads the configured sites.
type DownloadCmd struct {
	Concurrency int `help:"Maximum parallel site downloads." default:"2"`
}

// ProcessCmd processes stored raw HTML objects.
type ProcessCmd struct {
	Keys []string `arg:"" optional:"" help:"Object keys to process. Defaults to today's raw objects for all configured sites."`
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Sites      []titulares.Site
	Store      titulares.ObjectStore
	Fetcher    titulares.Fetcher
	Extractor  titulares.HeadlineExtractor
	Serializer titulares.BatchSerializer
}
