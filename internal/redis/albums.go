package redis

import (
	"context"
	cl "redis-music/pkg/catalog"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
)

// keyspaceAlbums is both the key prefix of every album hash and the key of the
// set holding all album IDs.
const keyspaceAlbums = "album"

// Index keys live under their own prefixes so that no client supplied ID or
// artist can make a data key and an index key equal.
const (
	prefixArtistIndex  = "album-artist:"
	prefixAlbumIndexes = "album-indexes:"
)

func albumKey(id string) string {
	return keyspaceAlbums + ":" + id
}

// albumIndexesKey holds the index keys an album is currently a member of, so
// stale entries can be removed when the indexed value changes.
func albumIndexesKey(id string) string {
	return prefixAlbumIndexes + id
}

func artistIndexKey(artist string) string {
	return prefixArtistIndex + artist
}

// Save inserts or fully replaces the album, generating an ID if none is set.
func (r *Redis) Save(ctx context.Context, album cl.Album) (cl.Album, error) {
	if album.ID == "" {
		album.ID = r.newID()
	}
	key := albumKey(album.ID)
	idxKey := albumIndexesKey(album.ID)

	oldIndexes, err := r.client.SMembers(ctx, idxKey).Result()
	if err != nil {
		return cl.Album{}, errors.Wrap(err, "read album indexes")
	}

	_, err = r.client.Pipelined(ctx, func(pipe goredis.Pipeliner) error {
		for _, ik := range oldIndexes {
			pipe.SRem(ctx, ik, album.ID)
		}
		// Drop the old hash first so fields cleared by this save don't survive.
		pipe.Del(ctx, key, idxKey)
		pipe.HSet(ctx, key, ToHash(album))
		pipe.SAdd(ctx, keyspaceAlbums, album.ID)
		if album.Artist != "" {
			ik := artistIndexKey(album.Artist)
			pipe.SAdd(ctx, ik, album.ID)
			pipe.SAdd(ctx, idxKey, ik)
		}
		return nil
	})
	if err != nil {
		return cl.Album{}, errors.Wrap(err, "execute save album pipeline")
	}
	return album, nil
}

// FindAll returns every stored album in no particular order.
func (r *Redis) FindAll(ctx context.Context) ([]cl.Album, error) {
	ids, err := r.client.SMembers(ctx, keyspaceAlbums).Result()
	if err != nil {
		return nil, errors.Wrap(err, "list album ids")
	}
	albums, err := r.findMany(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "find all albums")
	}
	return albums, nil
}

// FindByID returns the album with the given ID. The bool is false when no such
// album exists.
func (r *Redis) FindByID(ctx context.Context, id string) (cl.Album, bool, error) {
	h, err := r.client.HGetAll(ctx, albumKey(id)).Result()
	if err != nil {
		return cl.Album{}, false, errors.Wrap(err, "get album hash")
	}
	if len(h) == 0 {
		return cl.Album{}, false, nil
	}
	return FromHash(h), true, nil
}

// DeleteByID removes the album and its index entries. Deleting an unknown ID
// is not an error.
func (r *Redis) DeleteByID(ctx context.Context, id string) error {
	idxKey := albumIndexesKey(id)
	indexes, err := r.client.SMembers(ctx, idxKey).Result()
	if err != nil {
		return errors.Wrap(err, "read album indexes")
	}

	_, err = r.client.Pipelined(ctx, func(pipe goredis.Pipeliner) error {
		for _, ik := range indexes {
			pipe.SRem(ctx, ik, id)
		}
		pipe.SRem(ctx, keyspaceAlbums, id)
		pipe.Del(ctx, albumKey(id), idxKey)
		return nil
	})
	return errors.Wrap(err, "execute delete album pipeline")
}

// FindByArtist returns the albums whose artist matches exactly, read through
// the artist index.
func (r *Redis) FindByArtist(ctx context.Context, artist string) ([]cl.Album, error) {
	ids, err := r.client.SMembers(ctx, artistIndexKey(artist)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "read artist index")
	}
	albums, err := r.findMany(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "find albums by artist")
	}

	res := albums[:0]
	for _, a := range albums {
		if a.Artist == artist {
			res = append(res, a)
		}
	}
	return res, nil
}

// findMany fetches the hashes for ids in a single pipeline, skipping IDs whose
// hash no longer exists.
func (r *Redis) findMany(ctx context.Context, ids []string) ([]cl.Album, error) {
	albums := make([]cl.Album, 0, len(ids))
	if len(ids) == 0 {
		return albums, nil
	}

	cmds := make([]*goredis.MapStringStringCmd, 0, len(ids))
	_, err := r.client.Pipelined(ctx, func(pipe goredis.Pipeliner) error {
		for _, id := range ids {
			cmds = append(cmds, pipe.HGetAll(ctx, albumKey(id)))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, cmd := range cmds {
		h := cmd.Val()
		if len(h) == 0 {
			continue
		}
		albums = append(albums, FromHash(h))
	}
	return albums, nil
}
