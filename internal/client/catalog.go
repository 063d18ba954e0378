package client

import (
	"context"

	"tunedeck/internal/store"
)

// Unknown is the placeholder shown when a foreign key resolves to nothing.
const Unknown = "Unknown"

// Catalog is a disposable snapshot of all three entity lists. It holds no
// authority: after every mutation Refresh replaces it wholesale, never
// patching individual rows.
type Catalog struct {
	client *Client

	artists []store.Artist
	albums  []store.Album
	songs   []store.Song

	artistByID map[int64]store.Artist
	albumByID  map[int64]store.Album
}

// NewCatalog builds an empty Catalog over the given client. Call Refresh
// before reading from it.
func NewCatalog(client *Client) *Catalog {
	return &Catalog{client: client}
}

// Refresh refetches every entity list and rebuilds the lookup maps.
func (c *Catalog) Refresh(ctx context.Context) error {
	artists, err := c.client.ListArtists(ctx)
	if err != nil {
		return err
	}
	albums, err := c.client.ListAlbums(ctx)
	if err != nil {
		return err
	}
	songs, err := c.client.ListSongs(ctx)
	if err != nil {
		return err
	}

	c.artists = artists
	c.albums = albums
	c.songs = songs

	c.artistByID = make(map[int64]store.Artist, len(artists))
	for _, artist := range artists {
		c.artistByID[artist.ID] = artist
	}
	c.albumByID = make(map[int64]store.Album, len(albums))
	for _, album := range albums {
		c.albumByID[album.ID] = album
	}

	return nil
}

// Artists returns the current artist snapshot.
func (c *Catalog) Artists() []store.Artist { return c.artists }

// Albums returns the current album snapshot.
func (c *Catalog) Albums() []store.Album { return c.albums }

// Songs returns the current song snapshot.
func (c *Catalog) Songs() []store.Song { return c.songs }

// Artist looks up a loaded artist by primary key.
func (c *Catalog) Artist(id int64) (store.Artist, bool) {
	artist, ok := c.artistByID[id]
	return artist, ok
}

// Album looks up a loaded album by primary key.
func (c *Catalog) Album(id int64) (store.Album, bool) {
	album, ok := c.albumByID[id]
	return album, ok
}

// ArtistName resolves an artist ID to its display name.
func (c *Catalog) ArtistName(artistID int64) string {
	if artist, ok := c.artistByID[artistID]; ok {
		return artist.Name
	}
	return Unknown
}

// AlbumName resolves an album ID to its display name.
func (c *Catalog) AlbumName(albumID int64) string {
	if album, ok := c.albumByID[albumID]; ok {
		return album.Name
	}
	return Unknown
}

// ArtistNameForAlbum resolves an album ID to its owning artist's display
// name. A dangling album reference makes the whole chain Unknown.
func (c *Catalog) ArtistNameForAlbum(albumID int64) string {
	album, ok := c.albumByID[albumID]
	if !ok {
		return Unknown
	}
	return c.ArtistName(album.ArtistID)
}

// AlbumRow is an album table row with the artist column resolved.
type AlbumRow struct {
	store.Album
	ArtistName string
}

// AlbumRows projects the album snapshot into display rows.
func (c *Catalog) AlbumRows() []AlbumRow {
	rows := make([]AlbumRow, 0, len(c.albums))
	for _, album := range c.albums {
		rows = append(rows, AlbumRow{
			Album:      album,
			ArtistName: c.ArtistName(album.ArtistID),
		})
	}
	return rows
}

// SongRow is a song table row with the album and artist columns resolved.
type SongRow struct {
	store.Song
	AlbumName  string
	ArtistName string
}

// SongRows projects the song snapshot into display rows.
func (c *Catalog) SongRows() []SongRow {
	rows := make([]SongRow, 0, len(c.songs))
	for _, song := range c.songs {
		rows = append(rows, SongRow{
			Song:       song,
			AlbumName:  c.AlbumName(song.AlbumID),
			ArtistName: c.ArtistNameForAlbum(song.AlbumID),
		})
	}
	return rows
}
