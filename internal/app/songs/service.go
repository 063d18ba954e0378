package songs

import (
	"context"

	"tunedeck/internal/store"
)

// Store captures the persistence needs for song workflows.
type Store interface {
	ListSongs(ctx context.Context) ([]store.Song, error)
	SongByID(ctx context.Context, id int64) (store.Song, error)
	CreateSong(ctx context.Context, song store.Song) (int64, error)
	UpdateSong(ctx context.Context, id int64, song store.Song) error
	DeleteSong(ctx context.Context, id int64) error
}

// Service coordinates song-related operations.
type Service interface {
	List(ctx context.Context) ([]store.Song, error)
	Get(ctx context.Context, id int64) (store.Song, error)
	Create(ctx context.Context, song store.Song) (int64, error)
	Update(ctx context.Context, id int64, song store.Song) error
	Delete(ctx context.Context, id int64) error
}

type service struct {
	store Store
}

// New constructs a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) List(ctx context.Context) ([]store.Song, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListSongs(ctx)
}

func (s *service) Get(ctx context.Context, id int64) (store.Song, error) {
	if err := ctx.Err(); err != nil {
		return store.Song{}, err
	}
	return s.store.SongByID(ctx, id)
}

func (s *service) Create(ctx context.Context, song store.Song) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return s.store.CreateSong(ctx, song)
}

func (s *service) Update(ctx context.Context, id int64, song store.Song) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.UpdateSong(ctx, id, song)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteSong(ctx, id)
}
