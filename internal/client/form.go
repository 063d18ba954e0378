package client

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"tunedeck/internal/store"
)

// Modal identifies which child overlay a page is showing. The song and
// album views are mutually exclusive; an open modal blocks form submission.
type Modal int

const (
	ModalNone Modal = iota
	ModalSongs
	ModalAlbums
)

var (
	// ErrMissingFields aborts a submit before any network call is made.
	ErrMissingFields = errors.New("all required fields must be filled in")
	// ErrModalOpen rejects a submit while a child view is showing.
	ErrModalOpen = errors.New("close the open view before submitting")
)

// ArtistForm drives the artist page: a create/update form over the artist
// list. The zero editing ID means browsing; a set one means editing.
type ArtistForm struct {
	client  *Client
	catalog *Catalog

	Name             string
	MonthlyListeners string
	Genre            string

	editingID int64
	modal     Modal
}

// NewArtistForm builds a browsing-state artist form.
func NewArtistForm(client *Client, catalog *Catalog) *ArtistForm {
	return &ArtistForm{client: client, catalog: catalog}
}

// Editing reports whether an update is in progress.
func (f *ArtistForm) Editing() bool { return f.editingID != 0 }

// Modal reports which child view is open.
func (f *ArtistForm) Modal() Modal { return f.modal }

// BeginEdit loads the row's current values into the form. A row that has
// vanished since the last refresh loads as a blank form.
func (f *ArtistForm) BeginEdit(ctx context.Context, id int64) error {
	artist, found, err := f.client.GetArtist(ctx, id)
	if err != nil {
		return err
	}
	if found {
		f.Name = artist.Name
		f.MonthlyListeners = strconv.Itoa(artist.MonthlyListeners)
		f.Genre = artist.Genre
	} else {
		f.clear()
	}
	f.editingID = id
	return nil
}

// Validate checks that every required field is present.
func (f *ArtistForm) Validate() error {
	if f.Name == "" || f.MonthlyListeners == "" || f.Genre == "" {
		return ErrMissingFields
	}
	return nil
}

// Submit creates or updates depending on the edit state, then refetches
// the whole catalogue. A successful update returns the form to browsing.
func (f *ArtistForm) Submit(ctx context.Context) error {
	if f.modal != ModalNone {
		return ErrModalOpen
	}
	if err := f.Validate(); err != nil {
		return err
	}

	listeners, err := strconv.Atoi(f.MonthlyListeners)
	if err != nil {
		return fmt.Errorf("parse monthly listeners: %w", err)
	}
	artist := store.Artist{
		Name:             f.Name,
		MonthlyListeners: listeners,
		Genre:            f.Genre,
	}

	if f.editingID != 0 {
		err = f.client.UpdateArtist(ctx, f.editingID, artist)
	} else {
		err = f.client.CreateArtist(ctx, artist)
	}
	if err != nil {
		return err
	}

	f.clear()
	f.editingID = 0
	return f.catalog.Refresh(ctx)
}

// Delete removes a row and refetches the catalogue. It is available in any
// state, including mid-edit.
func (f *ArtistForm) Delete(ctx context.Context, id int64) error {
	if err := f.client.DeleteArtist(ctx, id); err != nil {
		return err
	}
	return f.catalog.Refresh(ctx)
}

// ShowSongs opens the song overlay for a loaded artist, replacing any open
// album overlay.
func (f *ArtistForm) ShowSongs(artistID int64) ([]store.SongSummary, bool) {
	artist, ok := f.catalog.Artist(artistID)
	if !ok {
		return nil, false
	}
	f.modal = ModalSongs
	return artist.Songs, true
}

// ShowAlbums opens the album overlay for a loaded artist, replacing any
// open song overlay.
func (f *ArtistForm) ShowAlbums(artistID int64) ([]store.AlbumSummary, bool) {
	artist, ok := f.catalog.Artist(artistID)
	if !ok {
		return nil, false
	}
	f.modal = ModalAlbums
	return artist.Albums, true
}

// CloseModal dismisses whichever overlay is open.
func (f *ArtistForm) CloseModal() { f.modal = ModalNone }

func (f *ArtistForm) clear() {
	f.Name = ""
	f.MonthlyListeners = ""
	f.Genre = ""
}

// AlbumForm drives the album page. The artist selector is locked once an
// edit begins; the owning artist never changes after creation.
type AlbumForm struct {
	client  *Client
	catalog *Catalog

	Name        string
	ArtistID    string
	ReleaseYear string
	NumListens  string

	editingID int64
	modal     Modal
}

// NewAlbumForm builds a browsing-state album form.
func NewAlbumForm(client *Client, catalog *Catalog) *AlbumForm {
	return &AlbumForm{client: client, catalog: catalog}
}

// Editing reports whether an update is in progress.
func (f *AlbumForm) Editing() bool { return f.editingID != 0 }

// ArtistLocked reports whether the artist selector is disabled.
func (f *AlbumForm) ArtistLocked() bool { return f.editingID != 0 }

// Modal reports which child view is open.
func (f *AlbumForm) Modal() Modal { return f.modal }

// BeginEdit loads the row's current values into the form; a vanished row
// loads blank.
func (f *AlbumForm) BeginEdit(ctx context.Context, id int64) error {
	album, found, err := f.client.GetAlbum(ctx, id)
	if err != nil {
		return err
	}
	if found {
		f.Name = album.Name
		f.ArtistID = strconv.FormatInt(album.ArtistID, 10)
		f.ReleaseYear = strconv.Itoa(album.ReleaseYear)
		f.NumListens = strconv.Itoa(album.NumListens)
	} else {
		f.clear()
	}
	f.editingID = id
	return nil
}

// Validate checks that every required field is present.
func (f *AlbumForm) Validate() error {
	if f.Name == "" || f.ArtistID == "" || f.ReleaseYear == "" || f.NumListens == "" {
		return ErrMissingFields
	}
	return nil
}

// Submit creates or updates depending on the edit state, then refetches
// the whole catalogue.
func (f *AlbumForm) Submit(ctx context.Context) error {
	if f.modal != ModalNone {
		return ErrModalOpen
	}
	if err := f.Validate(); err != nil {
		return err
	}

	artistID, err := strconv.ParseInt(f.ArtistID, 10, 64)
	if err != nil {
		return fmt.Errorf("parse artist id: %w", err)
	}
	year, err := strconv.Atoi(f.ReleaseYear)
	if err != nil {
		return fmt.Errorf("parse release year: %w", err)
	}
	listens, err := strconv.Atoi(f.NumListens)
	if err != nil {
		return fmt.Errorf("parse listens: %w", err)
	}
	album := store.Album{
		Name:        f.Name,
		ReleaseYear: year,
		NumListens:  listens,
		ArtistID:    artistID,
	}

	if f.editingID != 0 {
		err = f.client.UpdateAlbum(ctx, f.editingID, album)
	} else {
		err = f.client.CreateAlbum(ctx, album)
	}
	if err != nil {
		return err
	}

	f.clear()
	f.editingID = 0
	return f.catalog.Refresh(ctx)
}

// Delete removes a row and refetches the catalogue.
func (f *AlbumForm) Delete(ctx context.Context, id int64) error {
	if err := f.client.DeleteAlbum(ctx, id); err != nil {
		return err
	}
	return f.catalog.Refresh(ctx)
}

// ShowSongs opens the song overlay for a loaded album.
func (f *AlbumForm) ShowSongs(albumID int64) ([]store.SongSummary, bool) {
	album, ok := f.catalog.Album(albumID)
	if !ok {
		return nil, false
	}
	f.modal = ModalSongs
	return album.Songs, true
}

// CloseModal dismisses the overlay.
func (f *AlbumForm) CloseModal() { f.modal = ModalNone }

func (f *AlbumForm) clear() {
	f.Name = ""
	f.ArtistID = ""
	f.ReleaseYear = ""
	f.NumListens = ""
}

// SongForm drives the song page. The album selector is locked once an edit
// begins; the owning album never changes after creation.
type SongForm struct {
	client  *Client
	catalog *Catalog

	Name        string
	ReleaseYear string
	AlbumID     string

	editingID int64
}

// NewSongForm builds a browsing-state song form.
func NewSongForm(client *Client, catalog *Catalog) *SongForm {
	return &SongForm{client: client, catalog: catalog}
}

// Editing reports whether an update is in progress.
func (f *SongForm) Editing() bool { return f.editingID != 0 }

// AlbumLocked reports whether the album selector is disabled.
func (f *SongForm) AlbumLocked() bool { return f.editingID != 0 }

// BeginEdit loads the row's current values into the form; a vanished row
// loads blank.
func (f *SongForm) BeginEdit(ctx context.Context, id int64) error {
	song, found, err := f.client.GetSong(ctx, id)
	if err != nil {
		return err
	}
	if found {
		f.Name = song.Name
		f.ReleaseYear = strconv.Itoa(song.ReleaseYear)
		f.AlbumID = strconv.FormatInt(song.AlbumID, 10)
	} else {
		f.clear()
	}
	f.editingID = id
	return nil
}

// Validate checks that every required field is present.
func (f *SongForm) Validate() error {
	if f.Name == "" || f.ReleaseYear == "" || f.AlbumID == "" {
		return ErrMissingFields
	}
	return nil
}

// Submit creates or updates depending on the edit state, then refetches
// the whole catalogue.
func (f *SongForm) Submit(ctx context.Context) error {
	if err := f.Validate(); err != nil {
		return err
	}

	albumID, err := strconv.ParseInt(f.AlbumID, 10, 64)
	if err != nil {
		return fmt.Errorf("parse album id: %w", err)
	}
	year, err := strconv.Atoi(f.ReleaseYear)
	if err != nil {
		return fmt.Errorf("parse release year: %w", err)
	}
	song := store.Song{
		Name:        f.Name,
		ReleaseYear: year,
		AlbumID:     albumID,
	}

	if f.editingID != 0 {
		err = f.client.UpdateSong(ctx, f.editingID, song)
	} else {
		err = f.client.CreateSong(ctx, song)
	}
	if err != nil {
		return err
	}

	f.clear()
	f.editingID = 0
	return f.catalog.Refresh(ctx)
}

// Delete removes a row and refetches the catalogue.
func (f *SongForm) Delete(ctx context.Context, id int64) error {
	if err := f.client.DeleteSong(ctx, id); err != nil {
		return err
	}
	return f.catalog.Refresh(ctx)
}

func (f *SongForm) clear() {
	f.Name = ""
	f.ReleaseYear = ""
	f.AlbumID = ""
}
