package schedule

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/hoteldesk/orderdesk/internal/orderdesk/clock"
)

// Cron specs, evaluated in IST.
const (
	// dailyTotalSpec fires the sales SMS at 23:30 IST, before the
	// after-midnight reset clears the day.
	dailyTotalSpec = "30 23 * * *"

	// resetPollSpec runs the reset poll every five minutes; the job itself
	// gates on the [00:00, 00:05] window.
	resetPollSpec = "*/5 * * * *"
)

// Scheduler runs the recurring jobs. Each firing runs on its own
// goroutine; a trigger that arrives while the same job is still executing
// is skipped, not run in parallel. Panics inside a job are contained.
type Scheduler struct {
	cron *cron.Cron
}

func New(jobs *Jobs) (*Scheduler, error) {
	logger := cronLogger{}
	c := cron.New(
		cron.WithLocation(clock.IST),
		cron.WithChain(
			cron.SkipIfStillRunning(logger),
			cron.Recover(logger),
		),
	)

	if _, err := c.AddFunc(dailyTotalSpec, jobs.NotifyDailyTotal); err != nil {
		return nil, err
	}
	if _, err := c.AddFunc(resetPollSpec, jobs.ResetCompleted); err != nil {
		return nil, err
	}

	return &Scheduler{cron: c}, nil
}

// Start begins firing jobs in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop prevents further firings and returns a context that is done once
// any in-flight job has finished.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// cronLogger adapts slog to the cron.Logger interface. Skip notices from
// SkipIfStillRunning come through Info; recovered panics through Error.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	slog.Debug("cron: "+msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	slog.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
