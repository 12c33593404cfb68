// Package jobs runs the scheduled batch work across every user.
package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/amirasaad/alphaquantum/pkg/service/analytics"
	"github.com/amirasaad/alphaquantum/pkg/service/calendar"
	"github.com/amirasaad/alphaquantum/pkg/service/cashflow"
	"github.com/amirasaad/alphaquantum/pkg/service/user"
	"github.com/amirasaad/alphaquantum/pkg/service/watchlist"
	"github.com/google/uuid"
)

// Runner bundles the services the jobs drive.
type Runner struct {
	Users     *user.Service
	Analytics *analytics.Service
	Calendar  *calendar.Service
	Cashflow  *cashflow.Service
	Watchlist *watchlist.Service
	Logger    *slog.Logger
}

// Report counts what a job touched.
type Report struct {
	Users int
	Items int64
}

// forEachUser runs fn for every user. A failing user is logged and the run
// continues; the failures are returned joined.
func (r *Runner) forEachUser(ctx context.Context, job string, fn func(uuid.UUID) error) (Report, error) {
	log := r.Logger.With("job", job)
	ids, err := r.Users.ListIDs(ctx)
	if err != nil {
		return Report{}, err
	}
	var (
		report Report
		errs   []error
	)
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if err := fn(id); err != nil {
			log.Error("Job failed for user", "userID", id, "error", err)
			errs = append(errs, fmt.Errorf("user %s: %w", id, err))
			continue
		}
		report.Users++
	}
	log.Info("Job finished", "users", report.Users, "failed", len(errs))
	return report, errors.Join(errs...)
}

// Snapshot stores today's valuation for every user.
func (r *Runner) Snapshot(ctx context.Context) (Report, error) {
	return r.forEachUser(ctx, "snapshot", func(id uuid.UUID) error {
		_, err := r.Analytics.TakeSnapshot(ctx, id)
		return err
	})
}

// Backfill stores days of snapshots for every user.
func (r *Runner) Backfill(ctx context.Context, days int) (Report, error) {
	var written int64
	report, err := r.forEachUser(ctx, "backfill", func(id uuid.UUID) error {
		n, err := r.Analytics.Backfill(ctx, id, days)
		written += int64(n)
		return err
	})
	report.Items = written
	return report, err
}

// RefreshPrices refreshes position prices per user, then every watchlist item.
func (r *Runner) RefreshPrices(ctx context.Context) (Report, error) {
	var fired int64
	report, err := r.forEachUser(ctx, "refresh-prices", func(id uuid.UUID) error {
		_, alarms, err := r.Analytics.RefreshPrices(ctx, id)
		fired += int64(len(alarms))
		return err
	})
	n, werr := r.Watchlist.RefreshAll(ctx)
	report.Items = int64(n)
	if werr != nil {
		r.Logger.Error("Watchlist refresh failed", "error", werr)
	}
	r.Logger.Info("Alarms fired", "count", fired)
	return report, errors.Join(err, werr)
}

// RefreshEvents imports calendar events for every watched ticker.
func (r *Runner) RefreshEvents(ctx context.Context) (Report, error) {
	n, err := r.Calendar.RefreshWatched(ctx)
	return Report{Items: int64(n)}, err
}

// DecrementMortgages runs the monthly mortgage countdown.
func (r *Runner) DecrementMortgages(ctx context.Context) (Report, error) {
	n, err := r.Cashflow.DecrementMortgages(ctx)
	return Report{Items: n}, err
}
