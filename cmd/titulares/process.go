package main

import (
	"fmt"
	"time"

	"github.com/dfgomezp/titulares"
	"github.com/dfgomezp/titulares/process"
)

// Run executes the process command.
func (c *ProcessCmd) Run(deps *Dependencies) error {
	keys := c.Keys
	if len(keys) == 0 {
		// Default to today's raw object for every configured site.
		today := time.Now()
		for _, site := range deps.Sites {
			keys = append(keys, titulares.RawObjectKey(site.Source, today))
		}
	}

	refs := make([]titulares.ObjectRef, 0, len(keys))
	for _, key := range keys {
		refs = append(refs, titulares.ObjectRef{Key: key})
	}

	p := process.NewProcessor(deps.Store, deps.Extractor, deps.Serializer, deps.Logger)
	result, err := p.Run(deps.Ctx, refs)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "processed %d, skipped %d, failed %d, headlines %d\n",
		result.Processed, result.Skipped, result.Failed, result.Headlines)
	return nil
}
