// Package jobs provides scheduled background tasks for the retail back office.
//
// Jobs use github.com/robfig/cron/v3 with a seconds field and only read the
// query side. They report, they never change stock or deliveries.
//
// # Available Jobs
//
// 1. LowStockMonitorJob - logs every product below its reorder threshold, per warehouse
// 2. DeliveryBacklogJob - logs pending deliveries nobody has taken for too long
//
// # Usage
//
//	jobManager := jobs.NewJobManager(lowStockHandler, deliveriesHandler, jobs.Schedules{
//		LowStock:        "0 0 * * * *",
//		DeliveryBacklog: "0 */5 * * * *",
//		MaxPendingWait:  2 * time.Hour,
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Query failures are logged and the next tick tries again. A bad cron spec
// fails StartAll and stops the jobs already started.
package jobs
