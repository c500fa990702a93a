// Package store defines the datastore abstraction for foxdeal.
// Business logic depends on the Store interface, never on the Postgres
// implementation, so engine tests run against mocks.
package store

import (
	"context"
	"errors"

	domain "github.com/shrutirout/foxdeal/pkg/types"
)

// ErrNotFound is returned when a row does not exist or belongs to another owner.
var ErrNotFound = errors.New("not found")

// ProductQuery defines optional filters for tracked product queries.
type ProductQuery struct {
	OwnerID  string
	Platform string
	Search   string // case-insensitive name substring
	MinScore *float64
	Limit    int // default 50
	Offset   int
	OrderBy  string // "created_at", "updated_at", "score", "price"
}

// Store defines all data access operations for foxdeal.
type Store interface {
	// Tracked products
	GetTrackedProduct(ctx context.Context, id, ownerID string) (*domain.TrackedProduct, error)
	GetTrackedProductByURL(ctx context.Context, ownerID, url string) (*domain.TrackedProduct, error)
	QueryTrackedProducts(ctx context.Context, q *ProductQuery) ([]domain.TrackedProduct, int, error)
	ListAllTrackedProducts(ctx context.Context) ([]domain.TrackedProduct, error)
	DeleteTrackedProduct(ctx context.Context, id, ownerID string) error

	// Observations: the product row and, when pt is non-nil, its price
	// point are written atomically.
	RecordObservation(ctx context.Context, p *domain.TrackedProduct, pt *domain.PriceHistoryPoint) error

	// Price history
	ListPriceHistory(ctx context.Context, productID string) ([]domain.PriceHistoryPoint, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
