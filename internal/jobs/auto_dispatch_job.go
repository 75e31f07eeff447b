package jobs

import (
	"context"
	"errors"
	"log/slog"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// DefaultDispatchSchedule runs the sweep every five minutes (cron with seconds).
const DefaultDispatchSchedule = "0 */5 * * * *"

// DispatchDueOrdersHandler is the part of commands.DispatchDueOrdersCommandHandler the job needs.
type DispatchDueOrdersHandler interface {
	Handle(ctx context.Context, cmd commands.DispatchDueOrdersCommand) (int, error)
}

// AutoDispatchJob periodically moves today's unfinished orders to despachado
// once the dispatch hour has passed, so the transition happens even when
// nobody lists orders.
type AutoDispatchJob struct {
	handler  DispatchDueOrdersHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewAutoDispatchJob creates the job. An empty schedule falls back to DefaultDispatchSchedule.
func NewAutoDispatchJob(handler DispatchDueOrdersHandler, schedule string, logger *slog.Logger) *AutoDispatchJob {
	if schedule == "" {
		schedule = DefaultDispatchSchedule
	}
	return &AutoDispatchJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "auto_dispatch_job"),
	}
}

// Start registers the sweep on the schedule and starts the scheduler.
func (j *AutoDispatchJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Auto-dispatch job started", "schedule", j.schedule)
	return nil
}

// RunOnce performs a single sweep and returns how many orders were dispatched.
func (j *AutoDispatchJob) RunOnce(ctx context.Context) int {
	n, err := j.handler.Handle(ctx, commands.NewDispatchDueOrdersCommand())
	switch {
	case errors.Is(err, kernel.ErrTimezoneUnavailable):
		// Nothing can be decided without the business zone; the next tick retries.
		j.logger.DebugContext(ctx, "Auto-dispatch skipped", "error", err)
	case err != nil:
		j.logger.ErrorContext(ctx, "Auto-dispatch job failed", "error", err)
	case n > 0:
		j.logger.InfoContext(ctx, "Auto-dispatched orders", "count", n)
	}
	return n
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (j *AutoDispatchJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Auto-dispatch job stopped")
}
