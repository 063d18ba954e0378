package httpapi

import (
	"encoding/json"
	"net/http"

	"tunedeck/internal/store"
)

func (s *Server) handleListAlbums(w http.ResponseWriter, r *http.Request) {
	albums, err := s.albums.List(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if albums == nil {
		albums = []store.Album{}
	}
	writeJSON(w, http.StatusOK, albums)
}

func (s *Server) handleGetAlbum(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeText(w, http.StatusBadRequest, "invalid album id")
		return
	}

	album, err := s.albums.Get(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, album)
}

func (s *Server) handleCreateAlbum(w http.ResponseWriter, r *http.Request) {
	var album store.Album
	if err := json.NewDecoder(r.Body).Decode(&album); err != nil {
		writeText(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	if _, err := s.albums.Create(r.Context(), album); err != nil {
		writeStoreError(w, err)
		return
	}
	writeText(w, http.StatusOK, "album created")
}

func (s *Server) handleUpdateAlbum(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeText(w, http.StatusBadRequest, "invalid album id")
		return
	}

	var album store.Album
	if err := json.NewDecoder(r.Body).Decode(&album); err != nil {
		writeText(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	if err := s.albums.Update(r.Context(), id, album); err != nil {
		writeStoreError(w, err)
		return
	}
	writeText(w, http.StatusOK, "album updated")
}

func (s *Server) handleDeleteAlbum(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeText(w, http.StatusBadRequest, "invalid album id")
		return
	}

	if err := s.albums.Delete(r.Context(), id); err != nil {
		writeStoreError(w, err)
		return
	}
	writeText(w, http.StatusOK, "album deleted")
}
