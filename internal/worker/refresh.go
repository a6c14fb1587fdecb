// Package worker holds the background jobs: the periodic catalog refresh
// that keeps the snapshots current.
package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"tarkov_market/internal/domain/service/tracker"
	"tarkov_market/pkg/logx"
)

const (
	TaskTypeRefreshCatalog = "catalog:refresh"

	QueueDefault = "default"
)

type RefreshWorker struct {
	tracker *tracker.Service
	metrics *Metrics
}

func NewRefreshWorker(trackerService *tracker.Service) *RefreshWorker {
	return &RefreshWorker{
		tracker: trackerService,
		metrics: newMetrics(),
	}
}

// NewRefreshTask builds the periodic refresh task. The payload is empty,
// the task type alone identifies the job.
func NewRefreshTask() *asynq.Task {
	return asynq.NewTask(TaskTypeRefreshCatalog, nil)
}

// HandleRefresh runs one refresh cycle. A failed cycle is reported to
// asynq for retry; the previously published snapshots stay live meanwhile.
func (w *RefreshWorker) HandleRefresh(ctx context.Context, _ *asynq.Task) error {
	started := time.Now()

	result, err := w.tracker.Refresh(ctx)
	if err != nil {
		w.metrics.cycles.WithLabelValues("error").Inc()

		logger(ctx).Error("catalog refresh failed", logx.Error(err))

		return fmt.Errorf("tracker.Refresh: %w", err)
	}

	w.metrics.cycles.WithLabelValues("ok").Inc()
	w.metrics.duration.Observe(time.Since(started).Seconds())
	w.metrics.requirements.Set(float64(result.Requirements))

	return nil
}

// Bootstrap runs the first refresh inline so the API does not answer
// SnapshotNotReady until the first cron tick.
func (w *RefreshWorker) Bootstrap(ctx context.Context) error {
	logger(ctx).Info("bootstrap refresh started")

	return w.HandleRefresh(ctx, nil)
}
