package user

import (
	"context"

	"columbus/internal/types"
)

// Service exposes preference reads and writes to the HTTP layer and to the
// itinerary generator.
type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) GetByUser(ctx context.Context, uid types.ID) (*Preferences, error) {
	return s.store.GetByUser(ctx, uid)
}

func (s *Service) Save(ctx context.Context, uid types.ID, p *Preferences) error {
	return s.store.Upsert(ctx, uid, p)
}
