package jobs

import (
	"context"
	"errors"
	"log/slog"

	"shipping/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ShippingAssignmentJob manages the scheduled batch assignment of shipping
// services to pending orders. Each run decides every pending order at once.
type ShippingAssignmentJob struct {
	handler  commands.AssignShippingCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewShippingAssignmentJob creates a new batch assignment job.
// The schedule is a six-field cron expression with a seconds column.
func NewShippingAssignmentJob(
	handler commands.AssignShippingCommandHandler,
	schedule string,
	logger *slog.Logger,
) *ShippingAssignmentJob {
	return &ShippingAssignmentJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "shipping_assignment_job"),
	}
}

// Start begins the batch assignment job on its configured schedule.
func (j *ShippingAssignmentJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewAssignShippingCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoPendingOrders) && !errors.Is(err, commands.ErrNoCarriersFound) {
				j.logger.ErrorContext(ctx, "Shipping assignment job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Shipping assignment job started", "schedule", j.schedule)
	return nil
}

// Stop stops the batch assignment job.
func (j *ShippingAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Shipping assignment job stopped")
}
