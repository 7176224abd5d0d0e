package lazy

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hoteldesk/orderdesk/internal/orderdesk/core/domain"
	"github.com/hoteldesk/orderdesk/internal/orderdesk/infra/sqlite"
)

func TestOperationsBeforeAttach(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	if err := s.Ping(ctx); !errors.Is(err, ErrNotConnected) {
		t.Errorf("ping before attach: got %v, want ErrNotConnected", err)
	}
	if _, err := s.Insert(ctx, &domain.Order{OrderID: 1}); !errors.Is(err, ErrNotConnected) {
		t.Errorf("insert before attach: got %v, want ErrNotConnected", err)
	}
	if _, err := s.SumByStatus(ctx, domain.StatusCompleted); !errors.Is(err, ErrNotConnected) {
		t.Errorf("sum before attach: got %v, want ErrNotConnected", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("close before attach must be a no-op, got %v", err)
	}
}

func TestDelegatesAfterAttach(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	backing, err := sqlite.Open(":memory:")
	if err != nil {
		t.Fatalf("open backing store: %v", err)
	}
	t.Cleanup(func() { _ = backing.Close() })

	s.Attach(backing)

	if err := s.Ping(ctx); err != nil {
		t.Errorf("ping after attach: %v", err)
	}

	o, err := s.Insert(ctx, &domain.Order{
		OrderID: 7,
		Total:   42,
		Date:    time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
		Status:  domain.StatusCompleted,
	})
	if err != nil {
		t.Fatalf("insert after attach: %v", err)
	}
	if o.ID == 0 {
		t.Error("expected delegated insert to assign identity")
	}

	sum, err := s.SumByStatus(ctx, domain.StatusCompleted)
	if err != nil {
		t.Fatalf("sum after attach: %v", err)
	}
	if sum != 42 {
		t.Errorf("expected 42, got %v", sum)
	}
}
