package main

import (
	"fmt"

	"github.com/dfgomezp/titulares/ingest"
)

// Run executes the download command.
func (c *DownloadCmd) Run(deps *Dependencies) error {
	d := ingest.NewDownloader(deps.Fetcher, deps.Store, deps.Logger)
	d.Concurrency = c.Concurrency

	results, err := d.Download(deps.Ctx, deps.Sites)
	if err != nil {
		return err
	}

	failed := 0
	for _, site := range deps.Sites {
		status := "ok"
		if !results[site.Source] {
			status = "failed"
			failed++
		}
		fmt.Fprintf(deps.Stdout, "%s\t%s\n", site.Source, status)
	}
	if failed == len(deps.Sites) && len(deps.Sites) > 0 {
		return fmt.Errorf("all %d site downloads failed", failed)
	}
	return nil
}
