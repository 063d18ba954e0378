package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tunedeck/internal/store"
)

type stubArtistService struct {
	listResponse []store.Artist
	listErr      error

	getResponse store.Artist
	getErr      error

	createID  int64
	createErr error
	updateErr error
	deleteErr error

	lastID     int64
	lastArtist store.Artist
}

func (s *stubArtistService) List(ctx context.Context) ([]store.Artist, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.listResponse, nil
}

func (s *stubArtistService) Get(ctx context.Context, id int64) (store.Artist, error) {
	s.lastID = id
	if s.getErr != nil {
		return store.Artist{}, s.getErr
	}
	return s.getResponse, nil
}

func (s *stubArtistService) Create(ctx context.Context, artist store.Artist) (int64, error) {
	s.lastArtist = artist
	if s.createErr != nil {
		return 0, s.createErr
	}
	return s.createID, nil
}

func (s *stubArtistService) Update(ctx context.Context, id int64, artist store.Artist) error {
	s.lastID = id
	s.lastArtist = artist
	return s.updateErr
}

func (s *stubArtistService) Delete(ctx context.Context, id int64) error {
	s.lastID = id
	return s.deleteErr
}

type stubAlbumService struct {
	listResponse []store.Album
	listErr      error

	getResponse store.Album
	getErr      error

	createID  int64
	createErr error
	updateErr error
	deleteErr error

	lastID    int64
	lastAlbum store.Album
}

func (s *stubAlbumService) List(ctx context.Context) ([]store.Album, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.listResponse, nil
}

func (s *stubAlbumService) Get(ctx context.Context, id int64) (store.Album, error) {
	s.lastID = id
	if s.getErr != nil {
		return store.Album{}, s.getErr
	}
	return s.getResponse, nil
}

func (s *stubAlbumService) Create(ctx context.Context, album store.Album) (int64, error) {
	s.lastAlbum = album
	if s.createErr != nil {
		return 0, s.createErr
	}
	return s.createID, nil
}

func (s *stubAlbumService) Update(ctx context.Context, id int64, album store.Album) error {
	s.lastID = id
	s.lastAlbum = album
	return s.updateErr
}

func (s *stubAlbumService) Delete(ctx context.Context, id int64) error {
	s.lastID = id
	return s.deleteErr
}

type stubSongService struct {
	listResponse []store.Song
	listErr      error

	getResponse store.Song
	getErr      error

	createID  int64
	createErr error
	updateErr error
	deleteErr error

	lastID   int64
	lastSong store.Song
}

func (s *stubSongService) List(ctx context.Context) ([]store.Song, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.listResponse, nil
}

func (s *stubSongService) Get(ctx context.Context, id int64) (store.Song, error) {
	s.lastID = id
	if s.getErr != nil {
		return store.Song{}, s.getErr
	}
	return s.getResponse, nil
}

func (s *stubSongService) Create(ctx context.Context, song store.Song) (int64, error) {
	s.lastSong = song
	if s.createErr != nil {
		return 0, s.createErr
	}
	return s.createID, nil
}

func (s *stubSongService) Update(ctx context.Context, id int64, song store.Song) error {
	s.lastID = id
	s.lastSong = song
	return s.updateErr
}

func (s *stubSongService) Delete(ctx context.Context, id int64) error {
	s.lastID = id
	return s.deleteErr
}

func newTestServer(artists *stubArtistService, albums *stubAlbumService, songs *stubSongService) http.Handler {
	if artists == nil {
		artists = &stubArtistService{}
	}
	if albums == nil {
		albums = &stubAlbumService{}
	}
	if songs == nil {
		songs = &stubSongService{}
	}
	return New(artists, albums, songs).Routes()
}

func TestListArtists(t *testing.T) {
	artists := &stubArtistService{
		listResponse: []store.Artist{
			{ID: 1, Name: "Vera Luna", MonthlyListeners: 640000, Genre: "Electronic"},
		},
	}
	handler := newTestServer(artists, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/artists/get", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected JSON content type, got %q", ct)
	}

	var got []store.Artist
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Vera Luna" {
		t.Fatalf("unexpected response: %#v", got)
	}
}

func TestListArtistsEmptyIsJSONArray(t *testing.T) {
	handler := newTestServer(nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/artists/get", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != "[]\n" {
		t.Fatalf("expected empty JSON array, got %q", body)
	}
}

func TestGetArtistNotFound(t *testing.T) {
	artists := &stubArtistService{getErr: store.ErrArtistNotFound}
	handler := newTestServer(artists, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/artists/get/999", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if artists.lastID != 999 {
		t.Fatalf("expected lookup of ID 999, got %d", artists.lastID)
	}
	if body := rec.Body.String(); body != "artist not found" {
		t.Fatalf("unexpected body: %q", body)
	}
}

func TestGetArtistInvalidID(t *testing.T) {
	handler := newTestServer(nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/artists/get/abc", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCreateArtist(t *testing.T) {
	artists := &stubArtistService{createID: 7}
	handler := newTestServer(artists, nil, nil)

	payload, _ := json.Marshal(map[string]any{
		"artist_name":       "Vera Luna",
		"monthly_listeners": 640000,
		"genre":             "Electronic",
	})
	req := httptest.NewRequest(http.MethodPost, "/artists/create", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != "artist created" {
		t.Fatalf("unexpected ack: %q", body)
	}
	if artists.lastArtist.Name != "Vera Luna" || artists.lastArtist.MonthlyListeners != 640000 {
		t.Fatalf("unexpected decoded artist: %#v", artists.lastArtist)
	}
}

func TestCreateArtistBadJSON(t *testing.T) {
	handler := newTestServer(nil, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/artists/create", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUpdateArtist(t *testing.T) {
	artists := &stubArtistService{}
	handler := newTestServer(artists, nil, nil)

	payload, _ := json.Marshal(map[string]any{
		"artist_name":       "Vera Luna",
		"monthly_listeners": 700000,
		"genre":             "Electronic",
	})
	req := httptest.NewRequest(http.MethodPut, "/artists/update/7", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != "artist updated" {
		t.Fatalf("unexpected ack: %q", body)
	}
	if artists.lastID != 7 || artists.lastArtist.MonthlyListeners != 700000 {
		t.Fatalf("unexpected update call: id=%d artist=%#v", artists.lastID, artists.lastArtist)
	}
}

func TestDeleteArtistIdempotent(t *testing.T) {
	artists := &stubArtistService{}
	handler := newTestServer(artists, nil, nil)

	req := httptest.NewRequest(http.MethodDelete, "/artists/delete/404", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != "artist deleted" {
		t.Fatalf("unexpected ack: %q", body)
	}
}

func TestDeleteArtistWithDependents(t *testing.T) {
	artists := &stubArtistService{deleteErr: store.ErrArtistInUse}
	handler := newTestServer(artists, nil, nil)

	req := httptest.NewRequest(http.MethodDelete, "/artists/delete/1", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != "artist still has albums" {
		t.Fatalf("unexpected body: %q", body)
	}
}

func TestStorageErrorSurfacesAs500(t *testing.T) {
	artists := &stubArtistService{listErr: errors.New("select artists: connection refused")}
	handler := newTestServer(artists, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/artists/get", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != "select artists: connection refused" {
		t.Fatalf("expected raw error text, got %q", body)
	}
}

func TestCreateAlbumUnknownArtist(t *testing.T) {
	albums := &stubAlbumService{createErr: store.ErrArtistUnknown}
	handler := newTestServer(nil, albums, nil)

	payload, _ := json.Marshal(map[string]any{
		"album_name":   "Orphan",
		"release_year": 2020,
		"num_listens":  0,
		"artist_id":    77,
	})
	req := httptest.NewRequest(http.MethodPost, "/albums/create", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetAlbum(t *testing.T) {
	albums := &stubAlbumService{
		getResponse: store.Album{
			ID: 3, Name: "Afterglow", ReleaseYear: 2021, NumListens: 210000, ArtistID: 1,
			Songs: []store.SongSummary{{ID: 7, Name: "Satellite Heart", ReleaseYear: 2021}},
		},
	}
	handler := newTestServer(nil, albums, nil)

	req := httptest.NewRequest(http.MethodGet, "/albums/get/3", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got store.Album
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.ID != 3 || len(got.Songs) != 1 || got.Songs[0].Name != "Satellite Heart" {
		t.Fatalf("unexpected album: %#v", got)
	}
}

func TestSongRoutes(t *testing.T) {
	songs := &stubSongService{createID: 8}
	handler := newTestServer(nil, nil, songs)

	payload, _ := json.Marshal(map[string]any{
		"song_name":    "Copper Sky",
		"release_year": 2021,
		"album_id":     3,
	})
	req := httptest.NewRequest(http.MethodPost, "/songs/create", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != "song created" {
		t.Fatalf("unexpected ack: %q", body)
	}
	if songs.lastSong.AlbumID != 3 {
		t.Fatalf("unexpected decoded song: %#v", songs.lastSong)
	}
}

func TestUnknownRouteIs404(t *testing.T) {
	handler := newTestServer(nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/venues/get", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
