package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// Album models a record release owned by an artist.
type Album struct {
	ID          int64         `json:"album_id"`
	Name        string        `json:"album_name"`
	ReleaseYear int           `json:"release_year"`
	NumListens  int           `json:"num_listens"`
	ArtistID    int64         `json:"artist_id"`
	Songs       []SongSummary `json:"songlists"`
}

const albumColumns = `
	al.album_id, al.album_name, al.release_year, al.num_listens, al.artist_id,
	COALESCE((
		SELECT json_agg(json_build_object(
			'song_id', s.song_id,
			'song_name', s.song_name,
			'release_year', s.release_year
		) ORDER BY s.song_id)
		FROM songs s
		WHERE s.album_id = al.album_id
	), '[]') AS songlists`

// ListAlbums returns every album ordered by ID.
func (s *Store) ListAlbums(ctx context.Context) ([]Album, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT`+albumColumns+`
		FROM albums al
		ORDER BY al.album_id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("select albums: %w", err)
	}
	defer rows.Close()

	var albums []Album
	for rows.Next() {
		album, err := scanAlbumRow(rows)
		if err != nil {
			return nil, err
		}
		albums = append(albums, album)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate albums: %w", err)
	}

	return albums, nil
}

// AlbumByID returns a single album by its identifier.
func (s *Store) AlbumByID(ctx context.Context, id int64) (Album, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT`+albumColumns+`
		FROM albums al
		WHERE al.album_id = $1
	`, id)

	album, err := scanAlbumRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Album{}, ErrAlbumNotFound
		}
		return Album{}, err
	}
	return album, nil
}

// CreateAlbum inserts a new album and returns the generated ID. The artist
// reference is validated by the foreign-key constraint.
func (s *Store) CreateAlbum(ctx context.Context, album Album) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO albums (album_name, release_year, num_listens, artist_id)
		VALUES ($1, $2, $3, $4)
		RETURNING album_id
	`, album.Name, album.ReleaseYear, album.NumListens, album.ArtistID).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, ErrArtistUnknown
		}
		return 0, fmt.Errorf("insert album: %w", err)
	}
	return id, nil
}

// UpdateAlbum replaces the mutable columns of an album. The artist reference
// is never part of the statement, so it stays as set at creation.
func (s *Store) UpdateAlbum(ctx context.Context, id int64, album Album) error {
	if _, err := s.db.ExecContext(ctx, `
		UPDATE albums
		SET album_name = $1, release_year = $2, num_listens = $3
		WHERE album_id = $4
	`, album.Name, album.ReleaseYear, album.NumListens, id); err != nil {
		return fmt.Errorf("update album: %w", err)
	}
	return nil
}

// DeleteAlbum removes an album. Deleting a nonexistent ID succeeds; an album
// that still owns songs is rejected by the storage constraint.
func (s *Store) DeleteAlbum(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `
		DELETE FROM albums
		WHERE album_id = $1
	`, id); err != nil {
		if isForeignKeyViolation(err) {
			return ErrAlbumInUse
		}
		return fmt.Errorf("delete album: %w", err)
	}
	return nil
}

func scanAlbumRow(scanner rowScanner) (Album, error) {
	var (
		a         Album
		songsJSON []byte
	)

	if err := scanner.Scan(&a.ID, &a.Name, &a.ReleaseYear, &a.NumListens, &a.ArtistID, &songsJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Album{}, err
		}
		return Album{}, fmt.Errorf("scan album: %w", err)
	}

	if err := json.Unmarshal(songsJSON, &a.Songs); err != nil {
		return Album{}, fmt.Errorf("decode songlists: %w", err)
	}

	return a, nil
}
