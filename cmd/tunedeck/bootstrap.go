package main

import (
	"context"
	"database/sql"
	"fmt"

	"tunedeck/internal/store"
)

func bootstrap(ctx context.Context, db *sql.DB, dataStore *store.Store) error {
	if err := ensureSchema(ctx, db); err != nil {
		return err
	}
	return seedDemoData(ctx, dataStore)
}

// ensureSchema provisions the three catalogue tables. Referential integrity
// is enforced here: deleting a parent with dependents fails at the storage
// layer rather than cascading.
func ensureSchema(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS artists (
			artist_id         BIGSERIAL PRIMARY KEY,
			artist_name       TEXT NOT NULL,
			monthly_listeners INTEGER NOT NULL,
			genre             TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS albums (
			album_id     BIGSERIAL PRIMARY KEY,
			album_name   TEXT NOT NULL,
			release_year INTEGER NOT NULL,
			num_listens  INTEGER NOT NULL,
			artist_id    BIGINT NOT NULL REFERENCES artists(artist_id) ON DELETE RESTRICT
		)`,
		`CREATE TABLE IF NOT EXISTS songs (
			song_id      BIGSERIAL PRIMARY KEY,
			song_name    TEXT NOT NULL,
			release_year INTEGER NOT NULL,
			album_id     BIGINT NOT NULL REFERENCES albums(album_id) ON DELETE RESTRICT
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// seedDemoData inserts a small starter catalogue on an empty database.
func seedDemoData(ctx context.Context, dataStore *store.Store) error {
	existing, err := dataStore.ListArtists(ctx)
	if err != nil {
		return fmt.Errorf("check existing artists: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	type seedSong struct {
		name string
		year int
	}
	type seedAlbum struct {
		name    string
		year    int
		listens int
		songs   []seedSong
	}
	type seedArtist struct {
		name      string
		listeners int
		genre     string
		albums    []seedAlbum
	}

	seeds := []seedArtist{
		{
			name:      "The Midnight Parade",
			listeners: 125000,
			genre:     "Indie Rock",
			albums: []seedAlbum{
				{
					name: "Neon Hours", year: 2019, listens: 48000,
					songs: []seedSong{
						{name: "Glass Streets", year: 2019},
						{name: "Last Train North", year: 2019},
					},
				},
				{
					name: "Quiet Engines", year: 2022, listens: 31000,
					songs: []seedSong{
						{name: "Slow Orbit", year: 2022},
					},
				},
			},
		},
		{
			name:      "Vera Luna",
			listeners: 640000,
			genre:     "Electronic",
			albums: []seedAlbum{
				{
					name: "Afterglow", year: 2021, listens: 210000,
					songs: []seedSong{
						{name: "Satellite Heart", year: 2021},
						{name: "Copper Sky", year: 2021},
					},
				},
			},
		},
	}

	for _, sa := range seeds {
		artistID, err := dataStore.CreateArtist(ctx, store.Artist{
			Name:             sa.name,
			MonthlyListeners: sa.listeners,
			Genre:            sa.genre,
		})
		if err != nil {
			return fmt.Errorf("seed artist %q: %w", sa.name, err)
		}

		for _, al := range sa.albums {
			albumID, err := dataStore.CreateAlbum(ctx, store.Album{
				Name:        al.name,
				ReleaseYear: al.year,
				NumListens:  al.listens,
				ArtistID:    artistID,
			})
			if err != nil {
				return fmt.Errorf("seed album %q: %w", al.name, err)
			}

			for _, sg := range al.songs {
				if _, err := dataStore.CreateSong(ctx, store.Song{
					Name:        sg.name,
					ReleaseYear: sg.year,
					AlbumID:     albumID,
				}); err != nil {
					return fmt.Errorf("seed song %q: %w", sg.name, err)
				}
			}
		}
	}

	return nil
}
