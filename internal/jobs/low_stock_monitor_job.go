package jobs

import (
	"context"
	"log/slog"

	"retail/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

type lowStockReader interface {
	Handle(ctx context.Context, query queries.GetLowStockQuery) ([]queries.LowStockView, error)
}

// LowStockMonitorJob reports every product that fell below its reorder
// threshold in any warehouse. It only logs.
type LowStockMonitorJob struct {
	handler  lowStockReader
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewLowStockMonitorJob(handler lowStockReader, schedule string, logger *slog.Logger) *LowStockMonitorJob {
	return &LowStockMonitorJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "low_stock_monitor_job"),
	}
}

func (j *LowStockMonitorJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.check(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock monitor job started", "schedule", j.schedule)
	return nil
}

func (j *LowStockMonitorJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Low stock monitor job stopped")
}

// check returns how many positions are short.
func (j *LowStockMonitorJob) check(ctx context.Context) int {
	query, err := queries.NewGetLowStockQuery(nil)
	if err != nil {
		j.logger.ErrorContext(ctx, "Low stock query is invalid", "error", err)
		return 0
	}

	items, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Low stock monitor job failed", "error", err)
		return 0
	}

	for _, item := range items {
		j.logger.WarnContext(ctx, "Product is running low",
			"warehouse", item.WarehouseName,
			"product", item.ProductName,
			"quantity", item.Quantity,
			"min_quantity", item.MinQuantity,
			"shortage", item.Shortage(),
		)
	}
	return len(items)
}
