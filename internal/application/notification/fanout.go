package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/prasanth-t0205/techblog/internal/application/ports"
	"github.com/prasanth-t0205/techblog/internal/domain"
)

// FanOut writes one "new post" notification per follower of the
// author. It runs from the queue worker when redis is configured, or
// inline from the enqueuer fallback when it is not.
type FanOut struct {
	users         ports.UserRepository
	notifications ports.NotificationRepository
}

func NewFanOut(users ports.UserRepository, notifications ports.NotificationRepository) *FanOut {
	return &FanOut{users: users, notifications: notifications}
}

func (uc *FanOut) Execute(ctx context.Context, task ports.NewPostTask) error {
	authorID, err := domain.ParseUserID(task.AuthorID)
	if err != nil {
		return fmt.Errorf("fanout: bad author id %q: %w", task.AuthorID, err)
	}
	postID, err := domain.ParsePostID(task.PostID)
	if err != nil {
		return fmt.Errorf("fanout: bad post id %q: %w", task.PostID, err)
	}
	followers, err := uc.users.ListFollowerIDs(ctx, authorID)
	if err != nil {
		return err
	}
	content := fmt.Sprintf("%s created a new post: %q", task.Username, task.Title)
	for _, follower := range followers {
		related := postID
		if err := uc.notifications.Create(ctx, &domain.Notification{
			ID:          uuid.New(),
			From:        authorID,
			To:          follower,
			Type:        domain.NotificationPost,
			Content:     content,
			RelatedPost: &related,
			CreatedAt:   time.Now(),
		}); err != nil {
			return err
		}
	}
	return nil
}
