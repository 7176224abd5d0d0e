// Package service holds the application services: order ingestion and the
// completed-total aggregations. Both sit between the HTTP layer (or a
// scheduled job) and the OrderStore port.
package service

import (
	"context"
	"time"

	"github.com/hoteldesk/orderdesk/internal/orderdesk/core/domain"
	"github.com/hoteldesk/orderdesk/internal/orderdesk/core/ports"
)

// defaultStatus is applied when an incoming order carries no status.
// Walk-in/cash orders are the common case at the counter, so they default
// to completed and are counted in the day's totals immediately.
const defaultStatus = domain.StatusCompleted

// IngestInput is the normalized shape of an incoming order payload.
// Pointer fields distinguish "absent" from zero values.
type IngestInput struct {
	// OrderID is the current field name; LegacyID carries the value when an
	// older client still sends "id". OrderID wins when both are present.
	OrderID  *int64
	LegacyID *int64

	Items        []domain.OrderItem
	Total        float64
	Date         *time.Time
	Status       *string
	TableNumber  *int64
	CustomerName string
}

// Service implements ingestion and aggregation on top of an OrderStore.
type Service struct {
	store ports.OrderStore
	now   func() time.Time
}

func New(store ports.OrderStore) *Service {
	return &Service{store: store, now: time.Now}
}

// NewWithClock is New with an injectable clock, for tests.
func NewWithClock(store ports.OrderStore, now func() time.Time) *Service {
	return &Service{store: store, now: now}
}

// Ingest validates and normalizes in, then persists it.
//
// Normalization, in order: the legacy "id" field is folded into orderId,
// a missing status becomes the default, a missing date becomes now.
// Validation is explicit here rather than delegated to the store so the
// contract holds independent of the storage choice.
func (s *Service) Ingest(ctx context.Context, in IngestInput) (*domain.Order, error) {
	orderID := in.OrderID
	if orderID == nil {
		orderID = in.LegacyID
	}
	if orderID == nil {
		return nil, domain.Validationf("orderId is required")
	}

	status := defaultStatus
	if in.Status != nil {
		status = domain.Status(*in.Status)
		if !status.Valid() {
			return nil, domain.Validationf("invalid status %q: must be pending, completed or cancelled", *in.Status)
		}
	}

	date := s.now()
	if in.Date != nil {
		date = *in.Date
	}

	// An order without items is stored and served as an empty list, never
	// null, so every reader sees the same wire shape.
	items := in.Items
	if items == nil {
		items = []domain.OrderItem{}
	}

	o := &domain.Order{
		OrderID:      *orderID,
		Items:        items,
		Total:        in.Total,
		Date:         date,
		Status:       status,
		TableNumber:  in.TableNumber,
		CustomerName: in.CustomerName,
	}
	return s.store.Insert(ctx, o)
}

// ListAll returns every stored order.
func (s *Service) ListAll(ctx context.Context) ([]domain.Order, error) {
	return s.store.FindAll(ctx)
}

// ListCompleted returns the orders with status completed.
func (s *Service) ListCompleted(ctx context.Context) ([]domain.Order, error) {
	return s.store.FindByStatus(ctx, domain.StatusCompleted)
}

// TotalCompleted sums Total across all completed orders in a single
// aggregation pass. Returns 0 when there are none.
func (s *Service) TotalCompleted(ctx context.Context) (float64, error) {
	return s.store.SumByStatus(ctx, domain.StatusCompleted)
}

// DailyTotal sums Total across completed orders dated within the half-open
// window [start, end).
func (s *Service) DailyTotal(ctx context.Context, start, end time.Time) (float64, error) {
	return s.store.SumByDateRangeAndStatus(ctx, start, end, domain.StatusCompleted)
}

// Ping reports store reachability for the health endpoint.
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}
