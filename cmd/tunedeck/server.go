package main

import (
	"net/http"

	"tunedeck/internal/app/albums"
	"tunedeck/internal/app/artists"
	"tunedeck/internal/app/songs"
	"tunedeck/internal/httpapi"
	"tunedeck/internal/middleware"
	"tunedeck/internal/store"
)

func newHTTPHandler(cfg Config, dataStore *store.Store) http.Handler {
	artistSvc := artists.New(dataStore)
	albumSvc := albums.New(dataStore)
	songSvc := songs.New(dataStore)

	handler := httpapi.New(artistSvc, albumSvc, songSvc).Routes()
	handler = middleware.CORS(cfg.AllowedOrigin)(handler)
	handler = middleware.RequestLogging()(handler)
	handler = middleware.Recovery()(handler)
	return handler
}
