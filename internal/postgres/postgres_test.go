package postgres

import (
	"context"
	"os"
	"strconv"
	"testing"

	cl "redis-music/pkg/catalog"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// newPostgres connects to the database named by the POSTGRES_* environment
// variables, skipping the test when none is configured. The albums table must
// already be migrated.
func newPostgres(t *testing.T) *Postgres {
	t.Helper()
	dbHost := os.Getenv("POSTGRES_HOST")
	dbPort, _ := strconv.Atoi(os.Getenv("POSTGRES_PORT"))

	if dbHost == "" {
		t.Skip("POSTGRES_HOST not set, skipping postgres integration test")
	}
	if dbPort == 0 {
		dbPort = 5432
	}

	p, err := New(Config{
		DisableSSL: true,
		Host:       dbHost,
		Port:       dbPort,
		Name:       "redis_music_test",
		Password:   os.Getenv("POSTGRES_PASS"),
		Username:   "postgres",
	})
	if err != nil {
		t.Fatalf("Unable to create postgres instance: %s", err.Error())
	}
	clearPostgres(p, t)
	t.Cleanup(func() { _ = p.Close() })
	return p
}

func clearPostgres(p *Postgres, t *testing.T) {
	_, err := p.sqldb.Exec(`TRUNCATE TABLE albums;`)
	if err != nil {
		t.Fatalf("Unable to clear postgres: %s", err.Error())
	}
}

func createTestAlbum(ctx context.Context, p *Postgres, t *testing.T, a cl.Album) cl.Album {
	t.Helper()
	res, err := p.Save(ctx, a)
	if err != nil {
		t.Fatalf("error creating album %q: %s", a.Title, err.Error())
	}
	return res
}

func TestAlbumsIntegration(t *testing.T) {
	ctx := context.Background()
	p := newPostgres(t)

	all, err := p.FindAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error returned: %s", err.Error())
	}
	if all == nil || len(all) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", all)
	}

	okc := createTestAlbum(ctx, p, t, cl.Album{Title: "OK Computer", Artist: "Radiohead", Year: "1997"})
	if okc.ID == "" {
		t.Fatalf("expected a generated id")
	}
	blue := createTestAlbum(ctx, p, t, cl.Album{Title: "Blue", Artist: "Joni Mitchell", Genre: "Folk"})

	found, ok, err := p.FindByID(ctx, okc.ID)
	if err != nil || !ok {
		t.Fatalf("expected album to be found, ok=%t err=%v", ok, err)
	}
	if !cmp.Equal(found, okc) {
		t.Fatalf("unexpected album returned: %s", cmp.Diff(okc, found))
	}

	byArtist, err := p.FindByArtist(ctx, "Radiohead")
	if err != nil {
		t.Fatalf("unexpected error returned: %s", err.Error())
	}
	if !cmp.Equal(byArtist, []cl.Album{okc}) {
		t.Fatalf("unexpected albums returned: %s", cmp.Diff([]cl.Album{okc}, byArtist))
	}

	replacement := cl.Album{ID: okc.ID, Title: "OK Computer", Artist: "Radiohead"}
	createTestAlbum(ctx, p, t, replacement)
	found, _, err = p.FindByID(ctx, okc.ID)
	if err != nil {
		t.Fatalf("unexpected error returned: %s", err.Error())
	}
	if !cmp.Equal(found, replacement) {
		t.Fatalf("stale fields survived the replace: %s", cmp.Diff(replacement, found))
	}

	all, err = p.FindAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error returned: %s", err.Error())
	}
	exp := []cl.Album{blue, replacement}
	sortAlbums := cmpopts.SortSlices(func(a, b cl.Album) bool { return a.ID < b.ID })
	if !cmp.Equal(all, exp, sortAlbums) {
		t.Fatalf("unexpected albums returned: %s", cmp.Diff(exp, all, sortAlbums))
	}

	if err := p.DeleteByID(ctx, okc.ID); err != nil {
		t.Fatalf("unexpected error returned: %s", err.Error())
	}
	if _, ok, err := p.FindByID(ctx, okc.ID); err != nil || ok {
		t.Fatalf("expected album to be gone, ok=%t err=%v", ok, err)
	}
	if err := p.DeleteByID(ctx, okc.ID); err != nil {
		t.Fatalf("unexpected error deleting a missing album: %s", err.Error())
	}
}
