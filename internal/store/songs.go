package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Song models a single track belonging to an album.
type Song struct {
	ID          int64  `json:"song_id"`
	Name        string `json:"song_name"`
	ReleaseYear int    `json:"release_year"`
	AlbumID     int64  `json:"album_id"`
}

// ListSongs returns every song ordered by ID.
func (s *Store) ListSongs(ctx context.Context) ([]Song, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT song_id, song_name, release_year, album_id
		FROM songs
		ORDER BY song_id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("select songs: %w", err)
	}
	defer rows.Close()

	var songs []Song
	for rows.Next() {
		var song Song
		if err := rows.Scan(&song.ID, &song.Name, &song.ReleaseYear, &song.AlbumID); err != nil {
			return nil, fmt.Errorf("scan song: %w", err)
		}
		songs = append(songs, song)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate songs: %w", err)
	}

	return songs, nil
}

// SongByID returns a single song by its identifier.
func (s *Store) SongByID(ctx context.Context, id int64) (Song, error) {
	var song Song
	err := s.db.QueryRowContext(ctx, `
		SELECT song_id, song_name, release_year, album_id
		FROM songs
		WHERE song_id = $1
	`, id).Scan(&song.ID, &song.Name, &song.ReleaseYear, &song.AlbumID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Song{}, ErrSongNotFound
		}
		return Song{}, fmt.Errorf("get song: %w", err)
	}
	return song, nil
}

// CreateSong inserts a new song and returns the generated ID. The album
// reference is validated by the foreign-key constraint.
func (s *Store) CreateSong(ctx context.Context, song Song) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO songs (song_name, release_year, album_id)
		VALUES ($1, $2, $3)
		RETURNING song_id
	`, song.Name, song.ReleaseYear, song.AlbumID).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, ErrAlbumUnknown
		}
		return 0, fmt.Errorf("insert song: %w", err)
	}
	return id, nil
}

// UpdateSong replaces the mutable columns of a song. The album reference is
// never part of the statement, so it stays as set at creation.
func (s *Store) UpdateSong(ctx context.Context, id int64, song Song) error {
	if _, err := s.db.ExecContext(ctx, `
		UPDATE songs
		SET song_name = $1, release_year = $2
		WHERE song_id = $3
	`, song.Name, song.ReleaseYear, id); err != nil {
		return fmt.Errorf("update song: %w", err)
	}
	return nil
}

// DeleteSong removes a song. Deleting a nonexistent ID still succeeds.
func (s *Store) DeleteSong(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `
		DELETE FROM songs
		WHERE song_id = $1
	`, id); err != nil {
		return fmt.Errorf("delete song: %w", err)
	}
	return nil
}
