// Package repo combines the remote prototype backend with the local
// favorites overlay and keeps chat transcripts in memory.
package repo

import (
	"context"

	"prototype-creator/model"
)

// PrototypeService is the remote backend surface the repository needs.
// *supabase.Client satisfies it.
type PrototypeService interface {
	ListPrototypes(ctx context.Context) ([]model.Prototype, error)
	GetPrototype(ctx context.Context, id string) (model.Prototype, error)
	SavePrototype(ctx context.Context, p model.Prototype) (model.Prototype, error)
	DeletePrototype(ctx context.Context, id string) error
}

// FavoriteSet is the local favorites surface. *store.Favorites satisfies it.
type FavoriteSet interface {
	All() map[string]bool
	IsFavorite(id string) bool
	Toggle(id string) (bool, error)
}

// PrototypeRepository merges remote prototype data with the local favorite
// flags. The backend never stores favorite state.
type PrototypeRepository struct {
	service   PrototypeService
	favorites FavoriteSet
}

// NewPrototypeRepository wires the remote service to the favorites overlay.
func NewPrototypeRepository(service PrototypeService, favorites FavoriteSet) *PrototypeRepository {
	return &PrototypeRepository{service: service, favorites: favorites}
}

// List returns all prototypes in the backend's order, each flagged with its
// local favorite state.
func (r *PrototypeRepository) List(ctx context.Context) ([]model.Prototype, error) {
	prototypes, err := r.service.ListPrototypes(ctx)
	if err != nil {
		return nil, err
	}

	favs := r.favorites.All()
	for i := range prototypes {
		prototypes[i].IsFavorite = favs[prototypes[i].ID]
	}
	return prototypes, nil
}

// Get fetches a single prototype with its favorite flag applied.
func (r *PrototypeRepository) Get(ctx context.Context, id string) (model.Prototype, error) {
	p, err := r.service.GetPrototype(ctx, id)
	if err != nil {
		return model.Prototype{}, err
	}
	p.IsFavorite = r.favorites.IsFavorite(p.ID)
	return p, nil
}

// Save creates or updates a prototype remotely and re-applies the local
// favorite flag to the returned record.
func (r *PrototypeRepository) Save(ctx context.Context, p model.Prototype) (model.Prototype, error) {
	saved, err := r.service.SavePrototype(ctx, p)
	if err != nil {
		return model.Prototype{}, err
	}
	saved.IsFavorite = r.favorites.IsFavorite(saved.ID)
	return saved, nil
}

// Delete removes the remote record. The favorite flag is left alone; a stale
// entry for a deleted prototype is harmless.
func (r *PrototypeRepository) Delete(ctx context.Context, id string) error {
	return r.service.DeletePrototype(ctx, id)
}

// ToggleFavorite flips the local favorite state and returns the new state.
func (r *PrototypeRepository) ToggleFavorite(id string) (bool, error) {
	return r.favorites.Toggle(id)
}

// IsFavorite reports the local favorite state.
func (r *PrototypeRepository) IsFavorite(id string) bool {
	return r.favorites.IsFavorite(id)
}
