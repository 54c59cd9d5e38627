package directory

import (
	"context"

	"github.com/Witchkitt/grabbit-clean-main/module/core/domain"
)

// StoreDirectory answers "which stores are near this coordinate". Store
// lists are replaced wholesale on Seed; a store's id stays stable across
// refreshes of the same physical place.
type StoreDirectory interface {
	Seed(ctx context.Context, stores []domain.Store) error
	Nearby(ctx context.Context, center domain.Coordinate, radiusMeters float64, category string) ([]domain.Store, error)
}
