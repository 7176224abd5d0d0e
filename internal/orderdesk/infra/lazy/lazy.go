// Package lazy provides an OrderStore decorator whose backing store may
// attach after the process has started serving.
//
// The HTTP listener comes up before the database connection is established;
// until the real store is attached every operation fails with
// ErrNotConnected, so the health endpoint reports the store as disconnected
// instead of the whole process being unreachable.
package lazy

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/hoteldesk/orderdesk/internal/orderdesk/core/domain"
	"github.com/hoteldesk/orderdesk/internal/orderdesk/core/ports"
)

// ErrNotConnected is returned by every operation until Attach is called.
var ErrNotConnected = errors.New("store not connected")

var _ ports.OrderStore = (*Store)(nil)

// Store delegates to an OrderStore attached at runtime.
type Store struct {
	inner atomic.Pointer[ports.OrderStore]
}

func NewStore() *Store {
	return &Store{}
}

// Attach sets the backing store. Safe to call concurrently with requests;
// operations started before Attach fail with ErrNotConnected, operations
// started after it hit the real store.
func (s *Store) Attach(st ports.OrderStore) {
	s.inner.Store(&st)
}

func (s *Store) get() (ports.OrderStore, error) {
	if p := s.inner.Load(); p != nil {
		return *p, nil
	}
	return nil, ErrNotConnected
}

func (s *Store) Insert(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	st, err := s.get()
	if err != nil {
		return nil, err
	}
	return st.Insert(ctx, o)
}

func (s *Store) FindAll(ctx context.Context) ([]domain.Order, error) {
	st, err := s.get()
	if err != nil {
		return nil, err
	}
	return st.FindAll(ctx)
}

func (s *Store) FindByStatus(ctx context.Context, status domain.Status) ([]domain.Order, error) {
	st, err := s.get()
	if err != nil {
		return nil, err
	}
	return st.FindByStatus(ctx, status)
}

func (s *Store) FindByDateRangeAndStatus(ctx context.Context, start, end time.Time, status domain.Status) ([]domain.Order, error) {
	st, err := s.get()
	if err != nil {
		return nil, err
	}
	return st.FindByDateRangeAndStatus(ctx, start, end, status)
}

func (s *Store) SumByStatus(ctx context.Context, status domain.Status) (float64, error) {
	st, err := s.get()
	if err != nil {
		return 0, err
	}
	return st.SumByStatus(ctx, status)
}

func (s *Store) SumByDateRangeAndStatus(ctx context.Context, start, end time.Time, status domain.Status) (float64, error) {
	st, err := s.get()
	if err != nil {
		return 0, err
	}
	return st.SumByDateRangeAndStatus(ctx, start, end, status)
}

func (s *Store) DeleteByIDs(ctx context.Context, ids []int64) (int64, error) {
	st, err := s.get()
	if err != nil {
		return 0, err
	}
	return st.DeleteByIDs(ctx, ids)
}

func (s *Store) DeleteByDateRangeAndStatus(ctx context.Context, start, end time.Time, status domain.Status) (int64, error) {
	st, err := s.get()
	if err != nil {
		return 0, err
	}
	return st.DeleteByDateRangeAndStatus(ctx, start, end, status)
}

func (s *Store) DeleteAll(ctx context.Context) (int64, error) {
	st, err := s.get()
	if err != nil {
		return 0, err
	}
	return st.DeleteAll(ctx)
}

func (s *Store) Ping(ctx context.Context) error {
	st, err := s.get()
	if err != nil {
		return err
	}
	return st.Ping(ctx)
}

// Close closes the backing store if one ever attached.
func (s *Store) Close() error {
	st, err := s.get()
	if err != nil {
		return nil
	}
	return st.Close()
}
