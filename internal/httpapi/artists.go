package httpapi

import (
	"encoding/json"
	"net/http"

	"tunedeck/internal/store"
)

func (s *Server) handleListArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := s.artists.List(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if artists == nil {
		artists = []store.Artist{}
	}
	writeJSON(w, http.StatusOK, artists)
}

func (s *Server) handleGetArtist(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeText(w, http.StatusBadRequest, "invalid artist id")
		return
	}

	artist, err := s.artists.Get(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, artist)
}

func (s *Server) handleCreateArtist(w http.ResponseWriter, r *http.Request) {
	var artist store.Artist
	if err := json.NewDecoder(r.Body).Decode(&artist); err != nil {
		writeText(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	if _, err := s.artists.Create(r.Context(), artist); err != nil {
		writeStoreError(w, err)
		return
	}
	writeText(w, http.StatusOK, "artist created")
}

func (s *Server) handleUpdateArtist(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeText(w, http.StatusBadRequest, "invalid artist id")
		return
	}

	var artist store.Artist
	if err := json.NewDecoder(r.Body).Decode(&artist); err != nil {
		writeText(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	if err := s.artists.Update(r.Context(), id, artist); err != nil {
		writeStoreError(w, err)
		return
	}
	writeText(w, http.StatusOK, "artist updated")
}

func (s *Server) handleDeleteArtist(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeText(w, http.StatusBadRequest, "invalid artist id")
		return
	}

	if err := s.artists.Delete(r.Context(), id); err != nil {
		writeStoreError(w, err)
		return
	}
	writeText(w, http.StatusOK, "artist deleted")
}
