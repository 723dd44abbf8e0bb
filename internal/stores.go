package internal

import (
	"context"
	cl "redis-music/pkg/catalog"
)

// AlbumStore is the persistence contract for albums.
//
// Save inserts or fully replaces an album, generating an ID when it is empty.
// FindByID reports a missing album with a false bool rather than an error, and
// DeleteByID on a missing album is a no-op.
type AlbumStore interface {
	Save(ctx context.Context, album cl.Album) (cl.Album, error)
	FindAll(ctx context.Context) ([]cl.Album, error)
	FindByID(ctx context.Context, id string) (cl.Album, bool, error)
	DeleteByID(ctx context.Context, id string) error
	FindByArtist(ctx context.Context, artist string) ([]cl.Album, error)
}
