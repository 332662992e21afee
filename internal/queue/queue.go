// Package queue is a thin Redis-list job queue: producers LPUSH JSON payloads,
// the worker BRPOPs them. Delivery is at-least-once at best; retry policy, if
// any, belongs to the consumer.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// QueueThumbnails carries thumbnail jobs for uploaded images.
	QueueThumbnails = "thumbnails"
	// QueueWelcome carries welcome notifications for new users.
	QueueWelcome = "welcomeNotifications"

	keyPrefix = "queue:"

	errFailedMarshalPayloadFmt = "failed to marshal job payload: %w"
	errFailedEnqueueFmt        = "failed to enqueue job: %w"
	errFailedDequeueFmt        = "failed to dequeue job: %w"
)

type ThumbnailJob struct {
	UserID uuid.UUID `json:"userId"`
	FileID uuid.UUID `json:"fileId"`
}

type WelcomeJob struct {
	UserID uuid.UUID `json:"userId"`
}

type Queue struct {
	rdb *redis.Client
}

func New(rdb *redis.Client) *Queue {
	return &Queue{rdb: rdb}
}

func (q *Queue) Enqueue(ctx context.Context, name string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf(errFailedMarshalPayloadFmt, err)
	}

	if err := q.rdb.LPush(ctx, keyPrefix+name, data).Err(); err != nil {
		return fmt.Errorf(errFailedEnqueueFmt, err)
	}

	return nil
}

// Dequeue blocks up to timeout for the next job on the named queue.
// A nil payload with nil error means the wait timed out with no job.
func (q *Queue) Dequeue(ctx context.Context, name string, timeout time.Duration) ([]byte, error) {
	res, err := q.rdb.BRPop(ctx, timeout, keyPrefix+name).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf(errFailedDequeueFmt, err)
	}

	// BRPOP returns [key, value]
	return []byte(res[1]), nil
}

// Alive reports whether Redis answers a ping, for the status surface.
func (q *Queue) Alive(ctx context.Context) bool {
	return q.rdb.Ping(ctx).Err() == nil
}
