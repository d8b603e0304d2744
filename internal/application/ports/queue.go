package ports

import "context"

// NewPostTask is the payload for follower fan-out after a post is created.
type NewPostTask struct {
	PostID   string `json:"post_id"`
	AuthorID string `json:"author_id"`
	Username string `json:"username"`
	Title    string `json:"title"`
}

// TaskEnqueuer enqueues async work (follower notification fan-out).
type TaskEnqueuer interface {
	EnqueueNewPostNotifications(ctx context.Context, task NewPostTask) error
}
