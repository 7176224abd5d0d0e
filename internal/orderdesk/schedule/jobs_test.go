package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hoteldesk/orderdesk/internal/orderdesk/clock"
	"github.com/hoteldesk/orderdesk/internal/orderdesk/core/domain"
	"github.com/hoteldesk/orderdesk/internal/orderdesk/core/service"
	"github.com/hoteldesk/orderdesk/internal/orderdesk/infra/sqlite"
)

// fakeNotifier records sent bodies and optionally fails every send.
type fakeNotifier struct {
	sent []string
	fail bool
}

func (f *fakeNotifier) Send(_ context.Context, body string) error {
	if f.fail {
		return errors.New("gateway down")
	}
	f.sent = append(f.sent, body)
	return nil
}

func newTestJobs(t *testing.T, now time.Time) (*Jobs, *sqlite.Store, *fakeNotifier) {
	t.Helper()
	store, err := sqlite.Open(":memory:")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	clockFn := func() time.Time { return now }
	svc := service.NewWithClock(store, clockFn)
	notifier := &fakeNotifier{}
	return NewJobsWithClock(svc, store, notifier, clockFn), store, notifier
}

func seedOrder(t *testing.T, store *sqlite.Store, orderID int64, total float64, date time.Time, status domain.Status) {
	t.Helper()
	_, err := store.Insert(context.Background(), &domain.Order{
		OrderID: orderID,
		Total:   total,
		Date:    date,
		Status:  status,
	})
	if err != nil {
		t.Fatalf("seed order %d: %v", orderID, err)
	}
}

func TestResetSkipsOutsideWindow(t *testing.T) {
	// 10:00 IST is well outside [00:00, 00:05].
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, clock.IST)
	jobs, store, _ := newTestJobs(t, now)

	dayStart, _ := clock.DayWindow(now)
	seedOrder(t, store, 1, 100, dayStart.Add(time.Hour), domain.StatusCompleted)

	jobs.ResetCompleted()

	all, err := store.FindAll(context.Background())
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("reset outside the window must delete nothing, %d orders left", len(all))
	}
}

func TestResetDeletesInsideWindow(t *testing.T) {
	// 00:03 IST: inside the grace window, so the just-started day is swept.
	now := time.Date(2024, 6, 1, 0, 3, 0, 0, clock.IST)
	jobs, store, _ := newTestJobs(t, now)

	dayStart, _ := clock.DayWindow(now)
	seedOrder(t, store, 1, 100, dayStart.Add(time.Minute), domain.StatusCompleted)   // today: swept
	seedOrder(t, store, 2, 200, dayStart.Add(-time.Hour), domain.StatusCompleted)    // yesterday: kept
	seedOrder(t, store, 3, 50, dayStart.Add(2*time.Minute), domain.StatusPending)    // today but pending: kept
	seedOrder(t, store, 4, 75, dayStart.Add(2*time.Minute), domain.StatusCancelled)  // today but cancelled: kept

	jobs.ResetCompleted()

	all, err := store.FindAll(context.Background())
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 survivors, got %d", len(all))
	}
	for _, o := range all {
		if o.OrderID == 1 {
			t.Error("today's completed order should have been swept")
		}
	}
}

func TestResetBoundaryAtGrace(t *testing.T) {
	// Exactly 00:05 is still inside the window.
	now := time.Date(2024, 6, 1, 0, 5, 0, 0, clock.IST)
	jobs, store, _ := newTestJobs(t, now)

	dayStart, _ := clock.DayWindow(now)
	seedOrder(t, store, 1, 100, dayStart, domain.StatusCompleted)

	jobs.ResetCompleted()

	all, _ := store.FindAll(context.Background())
	if len(all) != 0 {
		t.Errorf("run at exactly 00:05 must still sweep, %d orders left", len(all))
	}
}

func TestNotifyDailyTotal(t *testing.T) {
	now := time.Date(2024, 6, 1, 23, 30, 0, 0, clock.IST)
	jobs, store, notifier := newTestJobs(t, now)

	dayStart, _ := clock.DayWindow(now)
	seedOrder(t, store, 1, 100.50, dayStart.Add(time.Hour), domain.StatusCompleted)
	seedOrder(t, store, 2, 200.25, dayStart.Add(-time.Hour), domain.StatusCompleted) // yesterday
	seedOrder(t, store, 3, 50.00, dayStart.Add(time.Hour), domain.StatusPending)

	jobs.NotifyDailyTotal()

	if len(notifier.sent) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifier.sent))
	}
	if want := "Today's sales total: ₹100.50"; notifier.sent[0] != want {
		t.Errorf("message: got %q, want %q", notifier.sent[0], want)
	}
}

func TestNotifyFailureIsSwallowed(t *testing.T) {
	now := time.Date(2024, 6, 1, 23, 30, 0, 0, clock.IST)
	jobs, _, notifier := newTestJobs(t, now)
	notifier.fail = true

	// Must not panic or propagate; the failure is the job's own problem.
	jobs.NotifyDailyTotal()
}

func TestDailyTotalMessage(t *testing.T) {
	cases := []struct {
		total float64
		want  string
	}{
		{0, "Today's sales total: ₹0.00"},
		{100.5, "Today's sales total: ₹100.50"},
		{1234.567, "Today's sales total: ₹1234.57"},
	}
	for _, c := range cases {
		if got := DailyTotalMessage(c.total); got != c.want {
			t.Errorf("DailyTotalMessage(%v) = %q, want %q", c.total, got, c.want)
		}
	}
}
