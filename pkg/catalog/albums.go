package catalog

import "strings"

// Album is a single catalog record. Artist is indexed by the stores so albums
// can be looked up by artist without a full scan.
type Album struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Artist string `json:"artist"`
	Year   string `json:"year"`
	Genre  string `json:"genre"`
	Cover  string `json:"cover"`
}

// Validate checks the fields required before an album can be saved.
func (a Album) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return &ValidationError{Field: "title"}
	}
	if strings.TrimSpace(a.Artist) == "" {
		return &ValidationError{Field: "artist"}
	}
	return nil
}
