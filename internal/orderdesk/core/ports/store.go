package ports

import (
	"context"
	"time"

	"github.com/hoteldesk/orderdesk/internal/orderdesk/core/domain"
)

// OrderStore is the persistence port. The services and the scheduled jobs
// depend on this abstraction, not on SQLite directly, so the implementation
// can be swapped for Postgres, in-memory (tests), etc.
//
// All date ranges are half-open: start inclusive, end exclusive.
type OrderStore interface {
	// Insert persists the order and returns it with its store identity set.
	Insert(ctx context.Context, o *domain.Order) (*domain.Order, error)

	FindAll(ctx context.Context) ([]domain.Order, error)
	FindByStatus(ctx context.Context, status domain.Status) ([]domain.Order, error)
	FindByDateRangeAndStatus(ctx context.Context, start, end time.Time, status domain.Status) ([]domain.Order, error)

	// SumByStatus returns the sum of Total across matching orders.
	// It returns exactly 0 when nothing matches, never an absent value.
	SumByStatus(ctx context.Context, status domain.Status) (float64, error)
	SumByDateRangeAndStatus(ctx context.Context, start, end time.Time, status domain.Status) (float64, error)

	// Deletes return the number of rows removed.
	DeleteByIDs(ctx context.Context, ids []int64) (int64, error)
	DeleteByDateRangeAndStatus(ctx context.Context, start, end time.Time, status domain.Status) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)

	// Ping reports whether the store is reachable; the health endpoint and
	// the startup retry loop both use it.
	Ping(ctx context.Context) error
	Close() error
}
