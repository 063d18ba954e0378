package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"tunedeck/internal/store"
)

// ArtistService describes artist catalogue workflows.
type ArtistService interface {
	List(ctx context.Context) ([]store.Artist, error)
	Get(ctx context.Context, id int64) (store.Artist, error)
	Create(ctx context.Context, artist store.Artist) (int64, error)
	Update(ctx context.Context, id int64, artist store.Artist) error
	Delete(ctx context.Context, id int64) error
}

// AlbumService describes album catalogue workflows.
type AlbumService interface {
	List(ctx context.Context) ([]store.Album, error)
	Get(ctx context.Context, id int64) (store.Album, error)
	Create(ctx context.Context, album store.Album) (int64, error)
	Update(ctx context.Context, id int64, album store.Album) error
	Delete(ctx context.Context, id int64) error
}

// SongService describes song catalogue workflows.
type SongService interface {
	List(ctx context.Context) ([]store.Song, error)
	Get(ctx context.Context, id int64) (store.Song, error)
	Create(ctx context.Context, song store.Song) (int64, error)
	Update(ctx context.Context, id int64, song store.Song) error
	Delete(ctx context.Context, id int64) error
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	artists ArtistService
	albums  AlbumService
	songs   SongService
}

// New configures a Server with the given services.
func New(artists ArtistService, albums AlbumService, songs SongService) *Server {
	return &Server{
		artists: artists,
		albums:  albums,
		songs:   songs,
	}
}

// Routes exposes the HTTP handlers for the catalogue.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("GET /artists/get", s.handleListArtists)
	mux.HandleFunc("GET /artists/get/{id}", s.handleGetArtist)
	mux.HandleFunc("POST /artists/create", s.handleCreateArtist)
	mux.HandleFunc("PUT /artists/update/{id}", s.handleUpdateArtist)
	mux.HandleFunc("DELETE /artists/delete/{id}", s.handleDeleteArtist)

	mux.HandleFunc("GET /albums/get", s.handleListAlbums)
	mux.HandleFunc("GET /albums/get/{id}", s.handleGetAlbum)
	mux.HandleFunc("POST /albums/create", s.handleCreateAlbum)
	mux.HandleFunc("PUT /albums/update/{id}", s.handleUpdateAlbum)
	mux.HandleFunc("DELETE /albums/delete/{id}", s.handleDeleteAlbum)

	mux.HandleFunc("GET /songs/get", s.handleListSongs)
	mux.HandleFunc("GET /songs/get/{id}", s.handleGetSong)
	mux.HandleFunc("POST /songs/create", s.handleCreateSong)
	mux.HandleFunc("PUT /songs/update/{id}", s.handleUpdateSong)
	mux.HandleFunc("DELETE /songs/delete/{id}", s.handleDeleteSong)

	return mux
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, msg)
}

// writeStoreError maps store sentinels onto status codes; anything
// unrecognized is a plain 500 carrying the error text.
func writeStoreError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrArtistNotFound),
		errors.Is(err, store.ErrAlbumNotFound),
		errors.Is(err, store.ErrSongNotFound):
		status = http.StatusNotFound
	case errors.Is(err, store.ErrArtistInUse),
		errors.Is(err, store.ErrAlbumInUse):
		status = http.StatusConflict
	case errors.Is(err, store.ErrArtistUnknown),
		errors.Is(err, store.ErrAlbumUnknown):
		status = http.StatusBadRequest
	}
	writeText(w, status, err.Error())
}
