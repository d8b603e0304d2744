package queue

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/prasanth-t0205/techblog/internal/application/ports"
)

const TypeNewPost = "notification:new_post"

// TaskEnqueuer pushes follower fan-out work onto Asynq/Redis so that
// post creation does not block on one insert per follower.
type TaskEnqueuer struct {
	client *asynq.Client
	log    zerolog.Logger
}

func NewAsynqEnqueuer(redisOpt asynq.RedisClientOpt, log zerolog.Logger) *TaskEnqueuer {
	return &TaskEnqueuer{client: asynq.NewClient(redisOpt), log: log}
}

func (q *TaskEnqueuer) Close() error {
	return q.client.Close()
}

func (q *TaskEnqueuer) EnqueueNewPostNotifications(ctx context.Context, t ports.NewPostTask) error {
	payload, _ := json.Marshal(t)
	task := asynq.NewTask(TypeNewPost, payload)
	_, err := q.client.EnqueueContext(ctx, task)
	if err != nil {
		q.log.Warn().Err(err).Str("post_id", t.PostID).Msg("enqueue new post fan-out failed")
		return err
	}
	return nil
}

var _ ports.TaskEnqueuer = (*TaskEnqueuer)(nil)
