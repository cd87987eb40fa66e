package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/dfgomezp/titulares"
	"github.com/dfgomezp/titulares/csv"
	"github.com/dfgomezp/titulares/fs"
	"github.com/dfgomezp/titulares/goquery"
	titulareshttp "github.com/dfgomezp/titulares/http"
	titularesslog "github.com/dfgomezp/titulares/slog"
	"github.com/dfgomezp/titulares/text"
)

func main() {
	ctx := context.Background()

	if err := Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Run executes the CLI with the given arguments.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.NewTextHandler(stderr, nil)),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("titulares"),
		kong.Description("Extract news headlines into partitioned CSV tables."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'titulares --help' to see available commands")
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := LoadConfig(cli.Config)
	if err != nil {
		return fmt.Errorf("%s", titulares.ErrorMessage(err))
	}

	bucket := cli.Bucket
	if cfg.Bucket != "" {
		bucket = cfg.Bucket
	}
	deps.Sites = cfg.Sites
	if len(deps.Sites) == 0 {
		deps.Sites = titulares.DefaultSites()
	}

	deps.Store = titularesslog.NewLoggingStore(fs.NewStore(bucket), deps.Logger)
	deps.Fetcher = titulareshttp.NewFetcher()
	defer deps.Fetcher.Close()

	registry := titularesslog.NewLoggingRegistry(goquery.NewDefaultRegistry(), deps.Logger)
	deps.Extractor = goquery.NewExtractor(registry, text.NewNormalizer())
	deps.Serializer = csv.NewSerializer()

	return kongCtx.Run(deps)
}
