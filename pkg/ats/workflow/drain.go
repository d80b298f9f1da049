package workflow

import (
	"context"
	"time"

	"talentbridge/pkg/ats/storage"
	"talentbridge/pkg/logx"
)

// DrainWorker periodically replays the pending-feedback queue. Replays
// are idempotent: an entry whose feedback already exists on the job is
// dropped without a second write. Entries older than maxAge are pruned.
type DrainWorker struct {
	store    storage.Store
	queue    FeedbackQueue
	interval time.Duration
	maxAge   time.Duration
}

func NewDrainWorker(store storage.Store, queue FeedbackQueue, interval, maxAge time.Duration) *DrainWorker {
	return &DrainWorker{
		store:    store,
		queue:    queue,
		interval: interval,
		maxAge:   maxAge,
	}
}

// Run blocks, draining on every tick until the context ends.
func (w *DrainWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	logx.Infof("pending feedback drain worker started, interval %s", w.interval)
	for {
		select {
		case <-ctx.Done():
			logx.Info("pending feedback drain worker stopped")
			return
		case <-ticker.C:
			w.DrainOnce(ctx)
		}
	}
}

// DrainOnce runs one prune-then-replay pass. Per-entry failures leave the
// entry queued for the next pass.
func (w *DrainWorker) DrainOnce(ctx context.Context) {
	if err := w.queue.Prune(ctx, w.maxAge); err != nil {
		logx.Warnf("pending feedback prune failed: %v", err)
	}

	pending, err := w.queue.List(ctx)
	if err != nil {
		logx.Warnf("pending feedback list failed: %v", err)
		return
	}

	repos := w.store.Repos()
	for _, p := range pending {
		exists, err := repos.ClientJobs.FeedbackExists(ctx, p.ClientJobID, p.Entry.Feedback, p.Entry.Remarks)
		if err != nil {
			logx.Warnf("pending feedback existence check failed for job %d: %v", p.ClientJobID, err)
			continue
		}

		if !exists {
			entry := p.Entry
			entry.ClientJobID = p.ClientJobID
			if err := repos.ClientJobs.AddFeedback(ctx, &entry); err != nil {
				logx.Warnf("pending feedback replay failed for job %d: %v", p.ClientJobID, err)
				continue
			}
		}

		if err := w.queue.Remove(ctx, p); err != nil {
			logx.Warnf("pending feedback remove failed for job %d: %v", p.ClientJobID, err)
		}
	}
}
