// Package client is the consumer side of the catalogue API: a typed HTTP
// client, a full-refetch snapshot of all three entity lists, and the
// form/table view state used to drive create/update/delete flows.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"tunedeck/internal/store"
)

// APIError carries a non-success response from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

// Client issues one HTTP call per catalogue operation. It applies no
// retries and no timeouts beyond those of the supplied http.Client.
type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a Client for the given base URL. A nil httpClient falls back
// to http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// ListArtists fetches all artists.
func (c *Client) ListArtists(ctx context.Context) ([]store.Artist, error) {
	var artists []store.Artist
	if err := c.getJSON(ctx, "/artists/get", &artists); err != nil {
		return nil, err
	}
	return artists, nil
}

// GetArtist fetches a single artist. A missing row reports found=false
// with a zero-value record rather than an error, so callers can default
// to a blank form.
func (c *Client) GetArtist(ctx context.Context, id int64) (store.Artist, bool, error) {
	var artist store.Artist
	err := c.getJSON(ctx, fmt.Sprintf("/artists/get/%d", id), &artist)
	if isNotFound(err) {
		return store.Artist{}, false, nil
	}
	if err != nil {
		return store.Artist{}, false, err
	}
	return artist, true, nil
}

// CreateArtist inserts a new artist.
func (c *Client) CreateArtist(ctx context.Context, artist store.Artist) error {
	return c.send(ctx, http.MethodPost, "/artists/create", artist)
}

// UpdateArtist replaces the mutable fields of an artist.
func (c *Client) UpdateArtist(ctx context.Context, id int64, artist store.Artist) error {
	return c.send(ctx, http.MethodPut, fmt.Sprintf("/artists/update/%d", id), artist)
}

// DeleteArtist removes an artist.
func (c *Client) DeleteArtist(ctx context.Context, id int64) error {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/artists/delete/%d", id), nil)
}

// ListAlbums fetches all albums.
func (c *Client) ListAlbums(ctx context.Context) ([]store.Album, error) {
	var albums []store.Album
	if err := c.getJSON(ctx, "/albums/get", &albums); err != nil {
		return nil, err
	}
	return albums, nil
}

// GetAlbum fetches a single album; found=false on a missing row.
func (c *Client) GetAlbum(ctx context.Context, id int64) (store.Album, bool, error) {
	var album store.Album
	err := c.getJSON(ctx, fmt.Sprintf("/albums/get/%d", id), &album)
	if isNotFound(err) {
		return store.Album{}, false, nil
	}
	if err != nil {
		return store.Album{}, false, err
	}
	return album, true, nil
}

// CreateAlbum inserts a new album.
func (c *Client) CreateAlbum(ctx context.Context, album store.Album) error {
	return c.send(ctx, http.MethodPost, "/albums/create", album)
}

// UpdateAlbum replaces the mutable fields of an album.
func (c *Client) UpdateAlbum(ctx context.Context, id int64, album store.Album) error {
	return c.send(ctx, http.MethodPut, fmt.Sprintf("/albums/update/%d", id), album)
}

// DeleteAlbum removes an album.
func (c *Client) DeleteAlbum(ctx context.Context, id int64) error {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/albums/delete/%d", id), nil)
}

// ListSongs fetches all songs.
func (c *Client) ListSongs(ctx context.Context) ([]store.Song, error) {
	var songs []store.Song
	if err := c.getJSON(ctx, "/songs/get", &songs); err != nil {
		return nil, err
	}
	return songs, nil
}

// GetSong fetches a single song; found=false on a missing row.
func (c *Client) GetSong(ctx context.Context, id int64) (store.Song, bool, error) {
	var song store.Song
	err := c.getJSON(ctx, fmt.Sprintf("/songs/get/%d", id), &song)
	if isNotFound(err) {
		return store.Song{}, false, nil
	}
	if err != nil {
		return store.Song{}, false, err
	}
	return song, true, nil
}

// CreateSong inserts a new song.
func (c *Client) CreateSong(ctx context.Context, song store.Song) error {
	return c.send(ctx, http.MethodPost, "/songs/create", song)
}

// UpdateSong replaces the mutable fields of a song.
func (c *Client) UpdateSong(ctx context.Context, id int64, song store.Song) error {
	return c.send(ctx, http.MethodPut, fmt.Sprintf("/songs/update/%d", id), song)
}

// DeleteSong removes a song.
func (c *Client) DeleteSong(ctx context.Context, id int64) error {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/songs/delete/%d", id), nil)
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return responseError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// send drives the acknowledgement-style endpoints; the plain-text ack body
// is discarded.
func (c *Client) send(ctx context.Context, method, path string, payload any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode payload: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return responseError(resp)
	}
	return nil
}

func responseError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return &APIError{
		Status:  resp.StatusCode,
		Message: strings.TrimSpace(string(body)),
	}
}

func isNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}
