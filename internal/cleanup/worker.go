// Package cleanup retries blob deletions that failed on the request path.
//
// Media handlers delete a replaced or orphaned blob inline; when the object
// store refuses, the URL goes to the pending_blob_deletions table and the
// Worker keeps trying with exponential backoff until maxAttempts is reached.
package cleanup

import (
	"context"
	"errors"
	"time"

	"churchcms/internal/pkg/logger"
	"churchcms/internal/storage"
)

const (
	defaultBatchSize  = 50
	defaultBackoff    = 30 * time.Second
	maxBackoff        = 6 * time.Hour
	defaultInterval   = time.Minute
	defaultMaxAttempt = 10
)

type Worker struct {
	outbox      *Outbox
	store       storage.ObjectStore
	log         *logger.Logger
	interval    time.Duration
	maxAttempts int
	batchSize   int
	backoff     time.Duration
}

func NewWorker(outbox *Outbox, store storage.ObjectStore, log *logger.Logger, interval time.Duration, maxAttempts int) *Worker {
	if interval <= 0 {
		interval = defaultInterval
	}
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempt
	}
	return &Worker{
		outbox:      outbox,
		store:       store,
		log:         log.With("component", "blob_cleanup"),
		interval:    interval,
		maxAttempts: maxAttempts,
		batchSize:   defaultBatchSize,
		backoff:     defaultBackoff,
	}
}

// Run sweeps once immediately, then on every interval until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	w.Sweep(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			w.Sweep(ctx)
		case <-ctx.Done():
			return nil
		}
	}
}

// Sweep processes one batch of due deletions.
func (w *Worker) Sweep(ctx context.Context) (deleted, failed int) {
	rows, err := w.outbox.Due(ctx, w.maxAttempts, w.batchSize)
	if err != nil {
		if ctx.Err() == nil {
			w.log.Warn("cleanup: load pending deletions failed", "error", err)
		}
		return 0, 0
	}

	for _, row := range rows {
		if ctx.Err() != nil {
			return deleted, failed
		}

		err := w.store.Delete(ctx, row.URL)
		switch {
		case err == nil:
			deleted++
			if derr := w.outbox.Done(ctx, row.ID); derr != nil {
				w.log.Warn("cleanup: dequeue failed", "url", row.URL, "error", derr)
			}
		case errors.Is(err, storage.ErrInvalidReference):
			// cannot ever succeed
			w.log.Warn("cleanup: dropping unparseable url", "url", row.URL)
			_ = w.outbox.Done(ctx, row.ID)
		default:
			failed++
			next := w.outbox.now().Add(w.delay(row.Attempts + 1))
			if ferr := w.outbox.Failed(ctx, row, err, next); ferr != nil {
				w.log.Warn("cleanup: reschedule failed", "url", row.URL, "error", ferr)
			}
			if row.Attempts+1 >= w.maxAttempts {
				w.log.Error("cleanup: giving up on blob", "url", row.URL, "attempts", row.Attempts+1, "error", err)
			}
		}
	}

	if deleted > 0 || failed > 0 {
		w.log.Info("cleanup: cycle complete", "deleted", deleted, "failed", failed)
	}
	return deleted, failed
}

// delay is backoff * 2^(attempt-1), capped.
func (w *Worker) delay(attempt int) time.Duration {
	d := w.backoff
	for i := 1; i < attempt; i++ {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}
