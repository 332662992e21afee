// Package worker runs the background job consumers: thumbnail generation for
// uploaded images and welcome notifications for new users. Jobs are pulled
// one at a time per queue; a failed job is logged and dropped, retry policy
// belongs to whoever feeds the queue.
package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

const dequeueErrorBackoff = time.Second

// Processor handles one raw job payload.
type Processor interface {
	Process(ctx context.Context, payload []byte) error
}

// Dequeuer is the queue side consumed by the worker; implemented by
// queue.Queue.
type Dequeuer interface {
	Dequeue(ctx context.Context, name string, timeout time.Duration) ([]byte, error)
}

type Consumer struct {
	queue       Dequeuer
	pollTimeout time.Duration
	jobTimeout  time.Duration
	log         zerolog.Logger
}

func NewConsumer(queue Dequeuer, pollTimeout, jobTimeout time.Duration, log zerolog.Logger) *Consumer {
	return &Consumer{
		queue:       queue,
		pollTimeout: pollTimeout,
		jobTimeout:  jobTimeout,
		log:         log,
	}
}

// Run consumes the named queue until the context is cancelled. Each job gets
// its own bounded timeout so a stuck job can never wedge the loop.
func (c *Consumer) Run(ctx context.Context, name string, p Processor) error {
	log := c.log.With().Str("queue", name).Logger()
	log.Info().Msg("consumer started")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		payload, err := c.queue.Dequeue(ctx, name, c.pollTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			log.Error().Err(err).Msg("dequeue failed")
			time.Sleep(dequeueErrorBackoff)
			continue
		}

		if payload == nil {
			continue
		}

		jobCtx, cancel := context.WithTimeout(ctx, c.jobTimeout)
		if err := p.Process(jobCtx, payload); err != nil {
			log.Error().Err(err).Msg("job failed")
		}
		cancel()
	}
}
