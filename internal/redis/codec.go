package redis

import cl "redis-music/pkg/catalog"

const (
	fieldID     = "id"
	fieldTitle  = "title"
	fieldArtist = "artist"
	fieldYear   = "year"
	fieldGenre  = "genre"
	fieldCover  = "cover"
)

// ToHash flattens an album into the field map stored under its hash key.
// Empty fields are left out, matching how absent values are stored.
func ToHash(a cl.Album) map[string]interface{} {
	h := make(map[string]interface{}, 6)
	set := func(field, val string) {
		if val != "" {
			h[field] = val
		}
	}
	set(fieldID, a.ID)
	set(fieldTitle, a.Title)
	set(fieldArtist, a.Artist)
	set(fieldYear, a.Year)
	set(fieldGenre, a.Genre)
	set(fieldCover, a.Cover)
	return h
}

// FromHash builds an album from a hash's fields. Missing fields decode to the
// empty string and unknown fields are ignored.
func FromHash(h map[string]string) cl.Album {
	return cl.Album{
		ID:     h[fieldID],
		Title:  h[fieldTitle],
		Artist: h[fieldArtist],
		Year:   h[fieldYear],
		Genre:  h[fieldGenre],
		Cover:  h[fieldCover],
	}
}
