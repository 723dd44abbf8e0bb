// Package seed populates an empty album store from a JSON file at startup.
package seed

import (
	"context"
	"io"
	"os"
	"redis-music/internal"
	cl "redis-music/pkg/catalog"

	"github.com/pkg/errors"
	"github.com/twitsprout/tools"
	"github.com/twitsprout/tools/json"
)

// Load reads a JSON array of albums from r and saves them to the store, but
// only when the store holds no albums yet. It returns the number of albums
// saved. Albums failing validation are logged and skipped.
func Load(ctx context.Context, store internal.AlbumStore, r io.Reader, logger tools.Logger) (int, error) {
	existing, err := store.FindAll(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "check store for existing albums")
	}
	if len(existing) > 0 {
		logger.Info("store already populated, skipping seed",
			"albums", len(existing),
		)
		return 0, nil
	}

	var albums []cl.Album
	if err := json.Decode(r, &albums); err != nil {
		return 0, errors.Wrap(err, "decode seed albums")
	}

	var n int
	for i, a := range albums {
		if err := a.Validate(); err != nil {
			logger.Warn("skipping invalid seed album",
				"index", i,
				"details", err.Error(),
			)
			continue
		}
		if _, err := store.Save(ctx, a); err != nil {
			return n, errors.Wrapf(err, "save seed album %d", i)
		}
		n++
	}
	logger.Info("seeded album store",
		"albums", n,
	)
	return n, nil
}

// LoadFile opens path and calls Load with its contents.
func LoadFile(ctx context.Context, store internal.AlbumStore, path string, logger tools.Logger) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrap(err, "open seed file")
	}
	defer f.Close()
	return Load(ctx, store, f, logger)
}
