package workflowinfra

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"talentbridge/pkg/ats/workflow"
	"talentbridge/pkg/errx"
	"talentbridge/pkg/logx"
)

const pendingFeedbackKey = "pending_feedbacks"

// RedisFeedbackQueue keeps pending feedback entries in a Redis list so
// they survive process restarts. Corrupted payloads are removed on read
// instead of poisoning the queue.
type RedisFeedbackQueue struct {
	client *redis.Client
}

func NewRedisFeedbackQueue(client *redis.Client) workflow.FeedbackQueue {
	return &RedisFeedbackQueue{client: client}
}

func (q *RedisFeedbackQueue) Enqueue(ctx context.Context, p workflow.PendingFeedback) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return errx.Wrap(err, "failed to encode pending feedback", errx.TypeInternal)
	}
	if err := q.client.RPush(ctx, pendingFeedbackKey, payload).Err(); err != nil {
		return errx.Wrap(err, "failed to enqueue pending feedback", errx.TypeInternal)
	}
	return nil
}

func (q *RedisFeedbackQueue) List(ctx context.Context) ([]workflow.PendingFeedback, error) {
	raw, err := q.client.LRange(ctx, pendingFeedbackKey, 0, -1).Result()
	if err != nil {
		return nil, errx.Wrap(err, "failed to list pending feedback", errx.TypeInternal)
	}

	out := make([]workflow.PendingFeedback, 0, len(raw))
	for _, item := range raw {
		var p workflow.PendingFeedback
		if err := json.Unmarshal([]byte(item), &p); err != nil {
			logx.Warnf("dropping corrupted pending feedback entry: %v", err)
			q.client.LRem(ctx, pendingFeedbackKey, 1, item)
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (q *RedisFeedbackQueue) Remove(ctx context.Context, p workflow.PendingFeedback) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return errx.Wrap(err, "failed to encode pending feedback", errx.TypeInternal)
	}
	if err := q.client.LRem(ctx, pendingFeedbackKey, 1, payload).Err(); err != nil {
		return errx.Wrap(err, "failed to remove pending feedback", errx.TypeInternal)
	}
	return nil
}

func (q *RedisFeedbackQueue) Prune(ctx context.Context, maxAge time.Duration) error {
	pending, err := q.List(ctx)
	if err != nil {
		return err
	}

	cutoff := time.Now().Add(-maxAge)
	for _, p := range pending {
		if p.QueuedAt.Before(cutoff) {
			if err := q.Remove(ctx, p); err != nil {
				return err
			}
			logx.WithFields(logx.Fields{
				"client_job_id": p.ClientJobID,
				"queued_at":     p.QueuedAt,
			}).Info("pruned stale pending feedback")
		}
	}
	return nil
}
