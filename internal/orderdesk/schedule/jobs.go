// Package schedule owns the recurring jobs: the nightly sales SMS and the
// after-midnight cleanup of completed orders. Job times are evaluated in
// the reference timezone (IST), not the host locale.
package schedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hoteldesk/orderdesk/internal/orderdesk/clock"
	"github.com/hoteldesk/orderdesk/internal/orderdesk/core/domain"
	"github.com/hoteldesk/orderdesk/internal/orderdesk/core/ports"
	"github.com/hoteldesk/orderdesk/internal/orderdesk/core/service"
)

// resetGrace is how far past IST midnight the reset poll still fires.
// The poll runs every five minutes; only the run that lands inside
// [00:00, 00:05] actually deletes.
const resetGrace = 5 * time.Minute

// Jobs bundles the collaborators the scheduled work needs.
type Jobs struct {
	svc      *service.Service
	store    ports.OrderStore
	notifier ports.Notifier
	now      func() time.Time
}

func NewJobs(svc *service.Service, store ports.OrderStore, notifier ports.Notifier) *Jobs {
	return &Jobs{svc: svc, store: store, notifier: notifier, now: time.Now}
}

// NewJobsWithClock is NewJobs with an injectable clock, for tests.
func NewJobsWithClock(svc *service.Service, store ports.OrderStore, notifier ports.Notifier, now func() time.Time) *Jobs {
	return &Jobs{svc: svc, store: store, notifier: notifier, now: now}
}

// NotifyDailyTotal computes the completed-order total for the current IST
// day and texts it to the operator. A notification failure is logged and
// swallowed; the job never retries and never fails the run because of it.
func (j *Jobs) NotifyDailyTotal() {
	ctx := context.Background()
	runID := uuid.NewString()

	start, end := clock.DayWindow(j.now())
	total, err := j.svc.DailyTotal(ctx, start, end)
	if err != nil {
		slog.Error("daily total job: aggregation failed", "run_id", runID, "error", err)
		return
	}

	err = j.notifier.Send(ctx, DailyTotalMessage(total))
	switch {
	case errors.Is(err, ports.ErrNotificationsDisabled):
		slog.Info("daily total job: notification skipped, sender disabled", "run_id", runID, "total", total)
	case err != nil:
		slog.Error("daily total job: notification failed", "run_id", runID, "error", err)
	default:
		slog.Info("daily total job: notified", "run_id", runID, "total", total)
	}
}

// ResetCompleted deletes the completed orders dated within the just-started
// IST day. The poll fires every five minutes around the clock but is a
// no-op unless the IST time-of-day is within [00:00, 00:05].
//
// The delete is filter-scoped and re-evaluated at delete time: an order
// ingested between the gate check and the delete is removed too if it is
// completed and dated today. That race is accepted behavior.
func (j *Jobs) ResetCompleted() {
	now := j.now()
	if clock.SinceMidnight(now) > resetGrace {
		return
	}

	ctx := context.Background()
	runID := uuid.NewString()

	start, end := clock.DayWindow(now)
	n, err := j.store.DeleteByDateRangeAndStatus(ctx, start, end, domain.StatusCompleted)
	if err != nil {
		slog.Error("reset job: delete failed", "run_id", runID, "error", err)
		return
	}
	slog.Info("reset job: completed orders cleared", "run_id", runID, "deleted", n)
}

// DailyTotalMessage formats the SMS body for a day's total.
func DailyTotalMessage(total float64) string {
	return fmt.Sprintf("Today's sales total: ₹%.2f", total)
}
