package queue

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/prasanth-t0205/techblog/internal/application/notification"
	"github.com/prasanth-t0205/techblog/internal/application/ports"
)

// InlineEnqueuer runs fan-out synchronously when Redis/Asynq is not
// configured, so followers are still notified on single-node deploys.
type InlineEnqueuer struct {
	fanout *notification.FanOut
	log    zerolog.Logger
}

func NewInlineEnqueuer(fanout *notification.FanOut, log zerolog.Logger) *InlineEnqueuer {
	return &InlineEnqueuer{fanout: fanout, log: log}
}

func (q *InlineEnqueuer) EnqueueNewPostNotifications(ctx context.Context, t ports.NewPostTask) error {
	if err := q.fanout.Execute(ctx, t); err != nil {
		q.log.Warn().Err(err).Str("post_id", t.PostID).Msg("inline new post fan-out failed")
		return err
	}
	return nil
}

var _ ports.TaskEnqueuer = (*InlineEnqueuer)(nil)
