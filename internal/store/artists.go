package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// Artist models a performer with aggregated child summaries for display.
type Artist struct {
	ID               int64          `json:"artist_id"`
	Name             string         `json:"artist_name"`
	MonthlyListeners int            `json:"monthly_listeners"`
	Genre            string         `json:"genre"`
	Songs            []SongSummary  `json:"songlists"`
	Albums           []AlbumSummary `json:"albumlists"`
}

// SongSummary is the compact song projection carried on parent rows.
type SongSummary struct {
	ID          int64  `json:"song_id"`
	Name        string `json:"song_name"`
	ReleaseYear int    `json:"release_year"`
}

// AlbumSummary is the compact album projection carried on artist rows.
type AlbumSummary struct {
	ID          int64  `json:"album_id"`
	Name        string `json:"album_name"`
	ReleaseYear int    `json:"release_year"`
	NumListens  int    `json:"num_listens"`
}

const artistColumns = `
	a.artist_id, a.artist_name, a.monthly_listeners, a.genre,
	COALESCE((
		SELECT json_agg(json_build_object(
			'song_id', s.song_id,
			'song_name', s.song_name,
			'release_year', s.release_year
		) ORDER BY s.song_id)
		FROM songs s
		JOIN albums al ON al.album_id = s.album_id
		WHERE al.artist_id = a.artist_id
	), '[]') AS songlists,
	COALESCE((
		SELECT json_agg(json_build_object(
			'album_id', al.album_id,
			'album_name', al.album_name,
			'release_year', al.release_year,
			'num_listens', al.num_listens
		) ORDER BY al.album_id)
		FROM albums al
		WHERE al.artist_id = a.artist_id
	), '[]') AS albumlists`

// ListArtists returns every artist ordered by ID.
func (s *Store) ListArtists(ctx context.Context) ([]Artist, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT`+artistColumns+`
		FROM artists a
		ORDER BY a.artist_id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("select artists: %w", err)
	}
	defer rows.Close()

	var artists []Artist
	for rows.Next() {
		artist, err := scanArtistRow(rows)
		if err != nil {
			return nil, err
		}
		artists = append(artists, artist)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artists: %w", err)
	}

	return artists, nil
}

// ArtistByID returns a single artist by its identifier.
func (s *Store) ArtistByID(ctx context.Context, id int64) (Artist, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT`+artistColumns+`
		FROM artists a
		WHERE a.artist_id = $1
	`, id)

	artist, err := scanArtistRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Artist{}, ErrArtistNotFound
		}
		return Artist{}, err
	}
	return artist, nil
}

// CreateArtist inserts a new artist and returns the generated ID.
func (s *Store) CreateArtist(ctx context.Context, artist Artist) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO artists (artist_name, monthly_listeners, genre)
		VALUES ($1, $2, $3)
		RETURNING artist_id
	`, artist.Name, artist.MonthlyListeners, artist.Genre).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert artist: %w", err)
	}
	return id, nil
}

// UpdateArtist replaces the mutable columns of an artist. Updating a
// nonexistent ID is a no-op that still succeeds.
func (s *Store) UpdateArtist(ctx context.Context, id int64, artist Artist) error {
	if _, err := s.db.ExecContext(ctx, `
		UPDATE artists
		SET artist_name = $1, monthly_listeners = $2, genre = $3
		WHERE artist_id = $4
	`, artist.Name, artist.MonthlyListeners, artist.Genre, id); err != nil {
		return fmt.Errorf("update artist: %w", err)
	}
	return nil
}

// DeleteArtist removes an artist. Deleting a nonexistent ID succeeds; an
// artist that still owns albums is rejected by the storage constraint.
func (s *Store) DeleteArtist(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `
		DELETE FROM artists
		WHERE artist_id = $1
	`, id); err != nil {
		if isForeignKeyViolation(err) {
			return ErrArtistInUse
		}
		return fmt.Errorf("delete artist: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArtistRow(scanner rowScanner) (Artist, error) {
	var (
		a          Artist
		songsJSON  []byte
		albumsJSON []byte
	)

	if err := scanner.Scan(&a.ID, &a.Name, &a.MonthlyListeners, &a.Genre, &songsJSON, &albumsJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Artist{}, err
		}
		return Artist{}, fmt.Errorf("scan artist: %w", err)
	}

	if err := json.Unmarshal(songsJSON, &a.Songs); err != nil {
		return Artist{}, fmt.Errorf("decode songlists: %w", err)
	}
	if err := json.Unmarshal(albumsJSON, &a.Albums); err != nil {
		return Artist{}, fmt.Errorf("decode albumlists: %w", err)
	}

	return a, nil
}
