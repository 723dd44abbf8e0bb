package http

import (
	"redis-music/internal"

	"github.com/gorilla/mux"
	"github.com/twitsprout/tools"
)

type Handler struct {
	AppName    string
	Version    string
	router     *mux.Router
	Logger     tools.Logger
	AlbumStore internal.AlbumStore
}
