package httpapi

import (
	"encoding/json"
	"net/http"

	"tunedeck/internal/store"
)

func (s *Server) handleListSongs(w http.ResponseWriter, r *http.Request) {
	songs, err := s.songs.List(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if songs == nil {
		songs = []store.Song{}
	}
	writeJSON(w, http.StatusOK, songs)
}

func (s *Server) handleGetSong(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeText(w, http.StatusBadRequest, "invalid song id")
		return
	}

	song, err := s.songs.Get(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, song)
}

func (s *Server) handleCreateSong(w http.ResponseWriter, r *http.Request) {
	var song store.Song
	if err := json.NewDecoder(r.Body).Decode(&song); err != nil {
		writeText(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	if _, err := s.songs.Create(r.Context(), song); err != nil {
		writeStoreError(w, err)
		return
	}
	writeText(w, http.StatusOK, "song created")
}

func (s *Server) handleUpdateSong(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeText(w, http.StatusBadRequest, "invalid song id")
		return
	}

	var song store.Song
	if err := json.NewDecoder(r.Body).Decode(&song); err != nil {
		writeText(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	if err := s.songs.Update(r.Context(), id, song); err != nil {
		writeStoreError(w, err)
		return
	}
	writeText(w, http.StatusOK, "song updated")
}

func (s *Server) handleDeleteSong(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeText(w, http.StatusBadRequest, "invalid song id")
		return
	}

	if err := s.songs.Delete(r.Context(), id); err != nil {
		writeStoreError(w, err)
		return
	}
	writeText(w, http.StatusOK, "song deleted")
}
