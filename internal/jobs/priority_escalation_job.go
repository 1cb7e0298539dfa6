package jobs

import (
	"context"
	"log/slog"

	"kitchen/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PriorityEscalationJob periodically raises the priority of orders that have
// waited too long at their current level. Runs every minute; the escalation
// timeouts themselves are minutes, so a finer schedule buys nothing.
type PriorityEscalationJob struct {
	handler commands.EscalatePrioritiesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPriorityEscalationJob creates a new job for escalating waiting orders.
// Uses EscalatePrioritiesCommandHandler to sweep active orders once a minute.
func NewPriorityEscalationJob(handler commands.EscalatePrioritiesCommandHandler, logger *slog.Logger) *PriorityEscalationJob {
	return &PriorityEscalationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "priority_escalation_job"),
	}
}

// Start begins the escalation job to run every minute.
func (j *PriorityEscalationJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewEscalatePrioritiesCommand()

		escalated, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Priority escalation job failed", "error", err)
			return
		}

		if escalated > 0 {
			j.logger.InfoContext(ctx, "Escalated waiting orders", "count", escalated)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Priority escalation job started (running every minute)")
	return nil
}

// Stop stops the escalation job.
func (j *PriorityEscalationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Priority escalation job stopped")
}
