package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Refresher periodically refetches the full collection and swaps it in. A
// failed fetch keeps the previous collection; the refresher never falls back
// to sample data on its own.
type Refresher struct {
	api        *ContractsAPI
	collection *Collection
	schedule   cron.Schedule
	stop       chan struct{}
}

// StartRefresher parses a standard 5-field cron expression and starts the
// refresh loop. An empty or invalid schedule disables refreshing (logged,
// not fatal) and returns nil.
func StartRefresher(scheduleExpr string, api *ContractsAPI, collection *Collection) *Refresher {
	if scheduleExpr == "" {
		slog.Info("scheduled refresh disabled (refresh_schedule not set)")
		return nil
	}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	sched, err := parser.Parse(scheduleExpr)
	if err != nil {
		slog.Warn("invalid refresh_schedule, scheduled refresh disabled",
			"schedule", scheduleExpr, "error", err)
		return nil
	}

	r := &Refresher{
		api:        api,
		collection: collection,
		schedule:   sched,
		stop:       make(chan struct{}),
	}
	slog.Info("scheduled refresh enabled", "schedule", scheduleExpr)
	go r.run()
	return r
}

func (r *Refresher) run() {
	for {
		next := r.schedule.Next(time.Now())
		timer := time.NewTimer(time.Until(next))
		select {
		case <-r.stop:
			timer.Stop()
			return
		case <-timer.C:
		}

		r.Refresh(context.Background())
	}
}

// Refresh performs one fetch-and-replace cycle. Also used for on-demand
// refetch after edits.
func (r *Refresher) Refresh(ctx context.Context) {
	contracts, err := r.api.FetchAll(ctx)
	if err != nil {
		slog.Warn("scheduled refresh failed, keeping current collection", "error", err)
		return
	}
	r.collection.ReplaceAll(contracts, false)
	slog.Info("collection refreshed", "contracts", len(contracts))
}

// Stop terminates the refresh loop.
func (r *Refresher) Stop() {
	if r == nil {
		return
	}
	close(r.stop)
}
