package store

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrArtistNotFound signals a missing artist record.
	ErrArtistNotFound = errors.New("artist not found")
	// ErrAlbumNotFound signals a missing album record.
	ErrAlbumNotFound = errors.New("album not found")
	// ErrSongNotFound signals a missing song record.
	ErrSongNotFound = errors.New("song not found")

	// ErrArtistInUse indicates the artist still owns albums.
	ErrArtistInUse = errors.New("artist still has albums")
	// ErrAlbumInUse indicates the album still owns songs.
	ErrAlbumInUse = errors.New("album still has songs")

	// ErrArtistUnknown indicates an album references a nonexistent artist.
	ErrArtistUnknown = errors.New("referenced artist does not exist")
	// ErrAlbumUnknown indicates a song references a nonexistent album.
	ErrAlbumUnknown = errors.New("referenced album does not exist")
)

// Store provides persistence backed by Postgres.
type Store struct {
	db *sql.DB
}

// New sets up a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}
