package artists

import (
	"context"

	"tunedeck/internal/store"
)

// Store captures the persistence needs for artist workflows.
type Store interface {
	ListArtists(ctx context.Context) ([]store.Artist, error)
	ArtistByID(ctx context.Context, id int64) (store.Artist, error)
	CreateArtist(ctx context.Context, artist store.Artist) (int64, error)
	UpdateArtist(ctx context.Context, id int64, artist store.Artist) error
	DeleteArtist(ctx context.Context, id int64) error
}

// Service coordinates artist-related operations.
type Service interface {
	List(ctx context.Context) ([]store.Artist, error)
	Get(ctx context.Context, id int64) (store.Artist, error)
	Create(ctx context.Context, artist store.Artist) (int64, error)
	Update(ctx context.Context, id int64, artist store.Artist) error
	Delete(ctx context.Context, id int64) error
}

type service struct {
	store Store
}

// New constructs a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) List(ctx context.Context) ([]store.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListArtists(ctx)
}

func (s *service) Get(ctx context.Context, id int64) (store.Artist, error) {
	if err := ctx.Err(); err != nil {
		return store.Artist{}, err
	}
	return s.store.ArtistByID(ctx, id)
}

func (s *service) Create(ctx context.Context, artist store.Artist) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return s.store.CreateArtist(ctx, artist)
}

func (s *service) Update(ctx context.Context, id int64, artist store.Artist) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.UpdateArtist(ctx, id, artist)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteArtist(ctx, id)
}
