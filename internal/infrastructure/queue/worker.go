package queue

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/prasanth-t0205/techblog/internal/application/notification"
	"github.com/prasanth-t0205/techblog/internal/application/ports"
)

// Worker runs Asynq task handlers (follower fan-out). Call Run() to start.
type Worker struct {
	srv    *asynq.Server
	mux    *asynq.ServeMux
	fanout *notification.FanOut
	log    zerolog.Logger
}

func NewWorker(redisOpt asynq.RedisClientOpt, fanout *notification.FanOut, log zerolog.Logger) *Worker {
	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 2,
		LogLevel:    asynq.InfoLevel,
	})
	mux := asynq.NewServeMux()
	w := &Worker{srv: srv, mux: mux, fanout: fanout, log: log}
	mux.HandleFunc(TypeNewPost, w.handleNewPost)
	return w
}

func (w *Worker) handleNewPost(ctx context.Context, t *asynq.Task) error {
	var task ports.NewPostTask
	if err := json.Unmarshal(t.Payload(), &task); err != nil {
		w.log.Error().Err(err).Msg("new post task payload invalid")
		return err
	}
	if err := w.fanout.Execute(ctx, task); err != nil {
		w.log.Error().Err(err).Str("post_id", task.PostID).Msg("new post fan-out failed")
		return err
	}
	return nil
}

// Run blocks until shutdown. Use Shutdown for graceful stop.
func (w *Worker) Run() error {
	return w.srv.Run(w.mux)
}

func (w *Worker) Shutdown() {
	w.srv.Shutdown()
}
