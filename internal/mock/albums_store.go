package mock

import (
	"context"
	"redis-music/internal"
	cl "redis-music/pkg/catalog"
)

// AlbumStore implements the internal AlbumStore interface for mocking purposes.
type AlbumStore struct {
	SaveFn         func(ctx context.Context, album cl.Album) (cl.Album, error)
	FindAllFn      func(ctx context.Context) ([]cl.Album, error)
	FindByIDFn     func(ctx context.Context, id string) (cl.Album, bool, error)
	DeleteByIDFn   func(ctx context.Context, id string) error
	FindByArtistFn func(ctx context.Context, artist string) ([]cl.Album, error)
}

// Save proxies the request to the SaveFn that's injected when the mock store
// is created.
func (s *AlbumStore) Save(ctx context.Context, album cl.Album) (cl.Album, error) {
	return s.SaveFn(ctx, album)
}

// FindAll proxies the request to the FindAllFn that's injected when the mock
// store is created.
func (s *AlbumStore) FindAll(ctx context.Context) ([]cl.Album, error) {
	return s.FindAllFn(ctx)
}

// FindByID proxies the request to the FindByIDFn that's injected when the mock
// store is created.
func (s *AlbumStore) FindByID(ctx context.Context, id string) (cl.Album, bool, error) {
	return s.FindByIDFn(ctx, id)
}

// DeleteByID proxies the request to the DeleteByIDFn that's injected when the
// mock store is created.
func (s *AlbumStore) DeleteByID(ctx context.Context, id string) error {
	return s.DeleteByIDFn(ctx, id)
}

// FindByArtist proxies the request to the FindByArtistFn that's injected when
// the mock store is created.
func (s *AlbumStore) FindByArtist(ctx context.Context, artist string) ([]cl.Album, error) {
	return s.FindByArtistFn(ctx, artist)
}

var _ internal.AlbumStore = (*AlbumStore)(nil)
