package postgres

import (
	"context"
	cl "redis-music/pkg/catalog"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"gopkg.in/guregu/null.v3"

	"github.com/pkg/errors"
)

const tableAlbums = "albums"

const (
	albumsColumnID     = `"id"`
	albumsColumnTitle  = `"title"`
	albumsColumnArtist = `"artist"`
	albumsColumnYear   = `"year"`
	albumsColumnGenre  = `"genre"`
	albumsColumnCover  = `"cover"`
)

var albumsColumns = []string{
	albumsColumnID,
	albumsColumnTitle,
	albumsColumnArtist,
	albumsColumnYear,
	albumsColumnGenre,
	albumsColumnCover,
}

// albumRow is the database shape of an album. Optional fields are stored as
// NULL when empty.
type albumRow struct {
	ID     string      `db:"id"`
	Title  string      `db:"title"`
	Artist string      `db:"artist"`
	Year   null.String `db:"year"`
	Genre  null.String `db:"genre"`
	Cover  null.String `db:"cover"`
}

func (r albumRow) album() cl.Album {
	return cl.Album{
		ID:     r.ID,
		Title:  r.Title,
		Artist: r.Artist,
		Year:   r.Year.String,
		Genre:  r.Genre.String,
		Cover:  r.Cover.String,
	}
}

func optional(s string) null.String {
	return null.NewString(s, s != "")
}

func albumsFromRows(rows []albumRow) []cl.Album {
	albums := make([]cl.Album, 0, len(rows))
	for _, r := range rows {
		albums = append(albums, r.album())
	}
	return albums
}

func (p *Postgres) Save(ctx context.Context, album cl.Album) (cl.Album, error) {
	if album.ID == "" {
		album.ID = p.newID()
	}
	qv, err := buildSaveAlbumQuery(album)
	if err != nil {
		return cl.Album{}, errors.Wrap(err, "build save album query")
	}
	_, err = p.sqldb.ExecContext(ctx, qv.query, qv.args...)
	if err != nil {
		return cl.Album{}, errors.Wrap(err, "execute save album query")
	}
	return album, nil
}

// buildSaveAlbumQuery builds an upsert that replaces every column of an
// existing row.
func buildSaveAlbumQuery(a cl.Album) (QueryValues, error) {
	sets := make([]string, 0, len(albumsColumns)-1)
	for _, c := range albumsColumns[1:] {
		sets = append(sets, c+" = EXCLUDED."+c)
	}
	q, args, err := psql.
		Insert(tableAlbums).
		Columns(albumsColumns...).
		Values(a.ID, a.Title, a.Artist, optional(a.Year), optional(a.Genre), optional(a.Cover)).
		Suffix("ON CONFLICT (" + albumsColumnID + ") DO UPDATE SET " + strings.Join(sets, ", ")).
		ToSql()

	return QueryValues{q, args}, errors.Wrap(err, "save album build query into SQL string")
}

func (p *Postgres) FindAll(ctx context.Context) ([]cl.Album, error) {
	var r []albumRow
	qv, err := buildListAlbumsQuery()
	if err != nil {
		return nil, errors.Wrap(err, "build list albums query")
	}
	err = p.sqldb.SelectContext(ctx, &r, qv.query, qv.args...)
	if err != nil {
		return nil, errors.Wrap(err, "execute list albums query")
	}
	return albumsFromRows(r), nil
}

func buildListAlbumsQuery() (QueryValues, error) {
	q, args, err := psql.
		Select(tableColumns(tableAlbums, albumsColumns)...).
		From(tableAlbums).
		OrderBy(albumsColumnTitle + " ASC").
		ToSql()

	return QueryValues{q, args}, errors.Wrap(err, "list albums build query into SQL string")
}

func (p *Postgres) FindByID(ctx context.Context, id string) (cl.Album, bool, error) {
	var r []albumRow
	qv, err := buildGetAlbumQuery(id)
	if err != nil {
		return cl.Album{}, false, errors.Wrap(err, "build get album query")
	}
	err = p.sqldb.SelectContext(ctx, &r, qv.query, qv.args...)
	if err != nil {
		return cl.Album{}, false, errors.Wrap(err, "execute get album query")
	}

	if len(r) == 0 {
		return cl.Album{}, false, nil
	}
	return r[0].album(), true, nil
}

func buildGetAlbumQuery(id string) (QueryValues, error) {
	q, args, err := psql.
		Select(tableColumns(tableAlbums, albumsColumns)...).
		From(tableAlbums).
		Where(sq.Eq{albumsColumnID: id}).
		Limit(1).
		ToSql()

	return QueryValues{q, args}, errors.Wrap(err, "get album build query into SQL string")
}

func (p *Postgres) DeleteByID(ctx context.Context, id string) error {
	qv, err := buildDeleteAlbumQuery(id)
	if err != nil {
		return errors.Wrap(err, "build delete album query")
	}
	_, err = p.sqldb.ExecContext(ctx, qv.query, qv.args...)
	return errors.Wrap(err, "execute delete album query")
}

func buildDeleteAlbumQuery(id string) (QueryValues, error) {
	q, args, err := psql.
		Delete(tableAlbums).
		Where(sq.Eq{albumsColumnID: id}).
		ToSql()

	return QueryValues{q, args}, errors.Wrap(err, "delete album build query into SQL string")
}

// FindByArtist relies on the albums_artist_idx index.
func (p *Postgres) FindByArtist(ctx context.Context, artist string) ([]cl.Album, error) {
	var r []albumRow
	qv, err := buildFindAlbumsByArtistQuery(artist)
	if err != nil {
		return nil, errors.Wrap(err, "build find albums by artist query")
	}
	err = p.sqldb.SelectContext(ctx, &r, qv.query, qv.args...)
	if err != nil {
		return nil, errors.Wrap(err, "execute find albums by artist query")
	}
	return albumsFromRows(r), nil
}

func buildFindAlbumsByArtistQuery(artist string) (QueryValues, error) {
	q, args, err := psql.
		Select(tableColumns(tableAlbums, albumsColumns)...).
		From(tableAlbums).
		Where(sq.Eq{albumsColumnArtist: artist}).
		OrderBy(albumsColumnTitle + " ASC").
		ToSql()

	return QueryValues{q, args}, errors.Wrap(err, "find albums by artist build query into SQL string")
}
