package jobs

import (
	"context"
	"log/slog"
	"time"

	"retail/internal/core/application/usecases/queries"
	"retail/internal/core/domain/model/delivery"

	"github.com/robfig/cron/v3"
)

type deliveryReader interface {
	Handle(ctx context.Context, query queries.GetDeliveriesQuery) ([]queries.DeliveryView, error)
}

// DeliveryBacklogJob warns about deliveries that have waited for a
// storekeeper longer than maxWait. Nothing is reassigned.
type DeliveryBacklogJob struct {
	handler  deliveryReader
	schedule string
	maxWait  time.Duration
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewDeliveryBacklogJob(handler deliveryReader, schedule string, maxWait time.Duration, logger *slog.Logger) *DeliveryBacklogJob {
	return &DeliveryBacklogJob{
		handler:  handler,
		schedule: schedule,
		maxWait:  maxWait,
		now:      time.Now,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "delivery_backlog_job"),
	}
}

func (j *DeliveryBacklogJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.check(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery backlog job started",
		"schedule", j.schedule, "max_wait", j.maxWait.String())
	return nil
}

func (j *DeliveryBacklogJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Delivery backlog job stopped")
}

// check returns how many pending deliveries are overdue.
func (j *DeliveryBacklogJob) check(ctx context.Context) int {
	pending := delivery.Pending
	query, err := queries.NewGetDeliveriesQuery(queries.DeliveryFilter{Status: &pending})
	if err != nil {
		j.logger.ErrorContext(ctx, "Delivery backlog query is invalid", "error", err)
		return 0
	}

	deliveries, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Delivery backlog job failed", "error", err)
		return 0
	}

	deadline := j.now().Add(-j.maxWait)
	overdue := 0
	for _, d := range deliveries {
		// Pending deliveries come oldest first.
		if !d.CreatedAt.Before(deadline) {
			break
		}
		overdue++
		j.logger.WarnContext(ctx, "Delivery is waiting for a storekeeper",
			"delivery_id", d.ID.String(),
			"warehouse", d.WarehouseName,
			"customer_phone", d.CustomerPhone,
			"waiting", j.now().Sub(d.CreatedAt).Round(time.Minute).String(),
		)
	}
	return overdue
}
