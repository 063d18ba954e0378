package albums

import (
	"context"

	"tunedeck/internal/store"
)

// Store captures the persistence needs for album workflows.
type Store interface {
	ListAlbums(ctx context.Context) ([]store.Album, error)
	AlbumByID(ctx context.Context, id int64) (store.Album, error)
	CreateAlbum(ctx context.Context, album store.Album) (int64, error)
	UpdateAlbum(ctx context.Context, id int64, album store.Album) error
	DeleteAlbum(ctx context.Context, id int64) error
}

// Service coordinates album-related operations.
type Service interface {
	List(ctx context.Context) ([]store.Album, error)
	Get(ctx context.Context, id int64) (store.Album, error)
	Create(ctx context.Context, album store.Album) (int64, error)
	Update(ctx context.Context, id int64, album store.Album) error
	Delete(ctx context.Context, id int64) error
}

type service struct {
	store Store
}

// New constructs a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) List(ctx context.Context) ([]store.Album, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListAlbums(ctx)
}

func (s *service) Get(ctx context.Context, id int64) (store.Album, error) {
	if err := ctx.Err(); err != nil {
		return store.Album{}, err
	}
	return s.store.AlbumByID(ctx, id)
}

func (s *service) Create(ctx context.Context, album store.Album) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return s.store.CreateAlbum(ctx, album)
}

func (s *service) Update(ctx context.Context, id int64, album store.Album) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.UpdateAlbum(ctx, id, album)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteAlbum(ctx, id)
}
