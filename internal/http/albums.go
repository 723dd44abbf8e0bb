package http

import (
	"net/http"
	cl "redis-music/pkg/catalog"

	"github.com/gorilla/mux"
	httputils "github.com/twitsprout/tools/http"
	"github.com/twitsprout/tools/requestid"
)

// ListAlbums gets the list of all the albums, or only those of one artist when
// the "artist" query parameter is set.
func (h *Handler) ListAlbums(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	var res []cl.Album
	var err error
	if artist := v.Get("artist"); artist != "" {
		res, err = h.AlbumStore.FindByArtist(ctx, artist)
	} else {
		res, err = h.AlbumStore.FindAll(ctx)
	}
	if err != nil {
		h.Logger.Error("[ListAlbums] error getting albums list",
			"request_id", reqID,
			"details", err.Error(),
		)
		_ = httputils.WriteJSONError(w, v, err.Error(), http.StatusInternalServerError)
		return
	}

	if res == nil {
		res = []cl.Album{}
	}
	_ = httputils.WriteJSON(w, v, res, http.StatusOK)
}

// AddAlbum saves a new album, assigning an id when the body has none.
func (h *Handler) AddAlbum(w http.ResponseWriter, r *http.Request) {
	h.saveAlbum(w, r, "[AddAlbum]")
}

// UpdateAlbum saves the album in the body, replacing any album with the same
// id. It doesn't check that the album already exists.
func (h *Handler) UpdateAlbum(w http.ResponseWriter, r *http.Request) {
	h.saveAlbum(w, r, "[UpdateAlbum]")
}

func (h *Handler) saveAlbum(w http.ResponseWriter, r *http.Request, op string) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	album, err := parseSaveAlbumRequest(r)
	if err != nil {
		h.Logger.Error(op+" error parsing request",
			"request_id", reqID,
			"details", err.Error(),
		)
		_ = httputils.WriteJSONError(w, v, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := h.AlbumStore.Save(ctx, album)
	if err != nil {
		h.Logger.Error(op+" error saving album",
			"request_id", reqID,
			"details", err.Error(),
		)
		_ = httputils.WriteJSONError(w, v, err.Error(), http.StatusInternalServerError)
		return
	}

	_ = httputils.WriteJSON(w, v, res, http.StatusOK)
}

func parseSaveAlbumRequest(r *http.Request) (cl.Album, error) {
	var album cl.Album
	if err := httputils.ReadJSON(r.Body, &album); err != nil {
		return album, err
	}
	if err := album.Validate(); err != nil {
		return album, err
	}
	return album, nil
}

// GetAlbum gets the details of the album matching the id in the path. A
// missing album is answered with a JSON null.
func (h *Handler) GetAlbum(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	id := mux.Vars(r)["id"]
	res, ok, err := h.AlbumStore.FindByID(ctx, id)
	if err != nil {
		h.Logger.Error("[GetAlbum] error getting album",
			"request_id", reqID,
			"details", err.Error(),
		)
		_ = httputils.WriteJSONError(w, v, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		_ = httputils.WriteJSON(w, v, nil, http.StatusOK)
		return
	}

	_ = httputils.WriteJSON(w, v, res, http.StatusOK)
}

// DeleteAlbum deletes the album matching the id in the path. Deleting an
// unknown album still succeeds.
func (h *Handler) DeleteAlbum(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	id := mux.Vars(r)["id"]
	if err := h.AlbumStore.DeleteByID(ctx, id); err != nil {
		h.Logger.Error("[DeleteAlbum] error deleting album",
			"request_id", reqID,
			"details", err.Error(),
		)
		_ = httputils.WriteJSONError(w, v, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
