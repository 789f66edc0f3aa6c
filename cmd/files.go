package cmd

import (
	"context"

	"github.com/jfmyers9/tagger/internal/tagfile"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// openedFile is the outcome of opening one file: either file or err is set
type openedFile struct {
	path string
	file *tagfile.File
	err  error
}

// openFiles opens paths concurrently, at most workers at a time. Results keep
// the order of paths. A file that fails to open is reported in its result
// rather than failing the batch; only cancellation aborts.
func openFiles(ctx context.Context, store tagfile.Store, paths []string, workers int, logger zerolog.Logger) ([]openedFile, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))

	results := make([]openedFile, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			f, err := tagfile.Open(ctx, store, path, logger)
			results[i] = openedFile{path: path, file: f, err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
