package client

import (
	"context"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"

	"tunedeck/internal/httpapi"
	"tunedeck/internal/store"
)

// fakeBackend is an in-memory stand-in for the Postgres store, mounted
// behind the real HTTP surface so client tests exercise the full wire
// format and status-code mapping.
type fakeBackend struct {
	mu      sync.Mutex
	artists map[int64]store.Artist
	albums  map[int64]store.Album
	songs   map[int64]store.Song
	nextID  int64
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		artists: make(map[int64]store.Artist),
		albums:  make(map[int64]store.Album),
		songs:   make(map[int64]store.Song),
	}
}

func (b *fakeBackend) newID() int64 {
	b.nextID++
	return b.nextID
}

func (b *fakeBackend) addArtist(name string, listeners int, genre string) int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.newID()
	b.artists[id] = store.Artist{ID: id, Name: name, MonthlyListeners: listeners, Genre: genre}
	return id
}

func (b *fakeBackend) addAlbum(name string, year, listens int, artistID int64) int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.newID()
	b.albums[id] = store.Album{ID: id, Name: name, ReleaseYear: year, NumListens: listens, ArtistID: artistID}
	return id
}

func (b *fakeBackend) addSong(name string, year int, albumID int64) int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.newID()
	b.songs[id] = store.Song{ID: id, Name: name, ReleaseYear: year, AlbumID: albumID}
	return id
}

func (b *fakeBackend) songSummaries(artistID, albumID int64, byArtist bool) []store.SongSummary {
	summaries := []store.SongSummary{}
	for _, song := range b.songs {
		album, ok := b.albums[song.AlbumID]
		if !ok {
			continue
		}
		if byArtist && album.ArtistID != artistID {
			continue
		}
		if !byArtist && song.AlbumID != albumID {
			continue
		}
		summaries = append(summaries, store.SongSummary{ID: song.ID, Name: song.Name, ReleaseYear: song.ReleaseYear})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].ID < summaries[j].ID })
	return summaries
}

func (b *fakeBackend) albumSummaries(artistID int64) []store.AlbumSummary {
	summaries := []store.AlbumSummary{}
	for _, album := range b.albums {
		if album.ArtistID != artistID {
			continue
		}
		summaries = append(summaries, store.AlbumSummary{
			ID: album.ID, Name: album.Name, ReleaseYear: album.ReleaseYear, NumListens: album.NumListens,
		})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].ID < summaries[j].ID })
	return summaries
}

func (b *fakeBackend) artistView(artist store.Artist) store.Artist {
	artist.Songs = b.songSummaries(artist.ID, 0, true)
	artist.Albums = b.albumSummaries(artist.ID)
	return artist
}

func (b *fakeBackend) albumView(album store.Album) store.Album {
	album.Songs = b.songSummaries(0, album.ID, false)
	return album
}

// fakeArtists, fakeAlbums and fakeSongs adapt the shared backend onto the
// per-entity service interfaces.
type fakeArtists struct{ b *fakeBackend }

func (f fakeArtists) List(ctx context.Context) ([]store.Artist, error) {
	f.b.mu.Lock()
	defer f.b.mu.Unlock()
	artists := make([]store.Artist, 0, len(f.b.artists))
	for _, artist := range f.b.artists {
		artists = append(artists, f.b.artistView(artist))
	}
	sort.Slice(artists, func(i, j int) bool { return artists[i].ID < artists[j].ID })
	return artists, nil
}

func (f fakeArtists) Get(ctx context.Context, id int64) (store.Artist, error) {
	f.b.mu.Lock()
	defer f.b.mu.Unlock()
	artist, ok := f.b.artists[id]
	if !ok {
		return store.Artist{}, store.ErrArtistNotFound
	}
	return f.b.artistView(artist), nil
}

func (f fakeArtists) Create(ctx context.Context, artist store.Artist) (int64, error) {
	f.b.mu.Lock()
	defer f.b.mu.Unlock()
	artist.ID = f.b.newID()
	artist.Songs, artist.Albums = nil, nil
	f.b.artists[artist.ID] = artist
	return artist.ID, nil
}

func (f fakeArtists) Update(ctx context.Context, id int64, artist store.Artist) error {
	f.b.mu.Lock()
	defer f.b.mu.Unlock()
	current, ok := f.b.artists[id]
	if !ok {
		return nil
	}
	current.Name = artist.Name
	current.MonthlyListeners = artist.MonthlyListeners
	current.Genre = artist.Genre
	f.b.artists[id] = current
	return nil
}

func (f fakeArtists) Delete(ctx context.Context, id int64) error {
	f.b.mu.Lock()
	defer f.b.mu.Unlock()
	for _, album := range f.b.albums {
		if album.ArtistID == id {
			return store.ErrArtistInUse
		}
	}
	delete(f.b.artists, id)
	return nil
}

type fakeAlbums struct{ b *fakeBackend }

func (f fakeAlbums) List(ctx context.Context) ([]store.Album, error) {
	f.b.mu.Lock()
	defer f.b.mu.Unlock()
	albums := make([]store.Album, 0, len(f.b.albums))
	for _, album := range f.b.albums {
		albums = append(albums, f.b.albumView(album))
	}
	sort.Slice(albums, func(i, j int) bool { return albums[i].ID < albums[j].ID })
	return albums, nil
}

func (f fakeAlbums) Get(ctx context.Context, id int64) (store.Album, error) {
	f.b.mu.Lock()
	defer f.b.mu.Unlock()
	album, ok := f.b.albums[id]
	if !ok {
		return store.Album{}, store.ErrAlbumNotFound
	}
	return f.b.albumView(album), nil
}

func (f fakeAlbums) Create(ctx context.Context, album store.Album) (int64, error) {
	f.b.mu.Lock()
	defer f.b.mu.Unlock()
	if _, ok := f.b.artists[album.ArtistID]; !ok {
		return 0, store.ErrArtistUnknown
	}
	album.ID = f.b.newID()
	album.Songs = nil
	f.b.albums[album.ID] = album
	return album.ID, nil
}

func (f fakeAlbums) Update(ctx context.Context, id int64, album store.Album) error {
	f.b.mu.Lock()
	defer f.b.mu.Unlock()
	current, ok := f.b.albums[id]
	if !ok {
		return nil
	}
	current.Name = album.Name
	current.ReleaseYear = album.ReleaseYear
	current.NumListens = album.NumListens
	f.b.albums[id] = current
	return nil
}

func (f fakeAlbums) Delete(ctx context.Context, id int64) error {
	f.b.mu.Lock()
	defer f.b.mu.Unlock()
	for _, song := range f.b.songs {
		if song.AlbumID == id {
			return store.ErrAlbumInUse
		}
	}
	delete(f.b.albums, id)
	return nil
}

type fakeSongs struct{ b *fakeBackend }

func (f fakeSongs) List(ctx context.Context) ([]store.Song, error) {
	f.b.mu.Lock()
	defer f.b.mu.Unlock()
	songs := make([]store.Song, 0, len(f.b.songs))
	for _, song := range f.b.songs {
		songs = append(songs, song)
	}
	sort.Slice(songs, func(i, j int) bool { return songs[i].ID < songs[j].ID })
	return songs, nil
}

func (f fakeSongs) Get(ctx context.Context, id int64) (store.Song, error) {
	f.b.mu.Lock()
	defer f.b.mu.Unlock()
	song, ok := f.b.songs[id]
	if !ok {
		return store.Song{}, store.ErrSongNotFound
	}
	return song, nil
}

func (f fakeSongs) Create(ctx context.Context, song store.Song) (int64, error) {
	f.b.mu.Lock()
	defer f.b.mu.Unlock()
	if _, ok := f.b.albums[song.AlbumID]; !ok {
		return 0, store.ErrAlbumUnknown
	}
	song.ID = f.b.newID()
	f.b.songs[song.ID] = song
	return song.ID, nil
}

func (f fakeSongs) Update(ctx context.Context, id int64, song store.Song) error {
	f.b.mu.Lock()
	defer f.b.mu.Unlock()
	current, ok := f.b.songs[id]
	if !ok {
		return nil
	}
	current.Name = song.Name
	current.ReleaseYear = song.ReleaseYear
	f.b.songs[id] = current
	return nil
}

func (f fakeSongs) Delete(ctx context.Context, id int64) error {
	f.b.mu.Lock()
	defer f.b.mu.Unlock()
	delete(f.b.songs, id)
	return nil
}

// newTestClient mounts the real HTTP routes over the fake backend and
// returns a Client pointed at it.
func newTestClient(t *testing.T) (*fakeBackend, *Client) {
	t.Helper()
	backend := newFakeBackend()
	server := httpapi.New(fakeArtists{backend}, fakeAlbums{backend}, fakeSongs{backend})
	srv := httptest.NewServer(server.Routes())
	t.Cleanup(srv.Close)
	return backend, New(srv.URL, srv.Client())
}
