package jobs

import (
	"context"
	"log/slog"
	"time"

	"giftmarket/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// PreparationReminderJob nags shops about paid orders whose scheduled
// preparation time has passed. Runs every minute; the reminder is a log
// event, a notification channel can hang off it later.
type PreparationReminderJob struct {
	handler queries.GetPreparationDueQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPreparationReminderJob creates a new job for overdue preparation
// reminders. Uses GetPreparationDueQueryHandler to find paid orders past
// their scheduled ready time.
func NewPreparationReminderJob(
	handler queries.GetPreparationDueQueryHandler,
	logger *slog.Logger,
) *PreparationReminderJob {
	return &PreparationReminderJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "preparation_reminder_job"),
	}
}

// Start begins the reminder job to run every minute.
func (j *PreparationReminderJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		query, err := queries.NewGetPreparationDueQuery(time.Now().UTC())
		if err != nil {
			j.logger.ErrorContext(ctx, "Preparation reminder job failed to build query", "error", err)
			return
		}

		overdue, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Preparation reminder job failed", "error", err)
			return
		}

		for _, due := range overdue {
			j.logger.WarnContext(ctx, "Order preparation overdue",
				"order_id", due.OrderID.String(),
				"shop_id", due.ShopID.String(),
				"buyer_name", due.BuyerName,
				"scheduled_ready", due.ScheduledReady,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Preparation reminder job started (running every minute)")
	return nil
}

// Stop stops the reminder job.
func (j *PreparationReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Preparation reminder job stopped")
}
