package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/prasanth-t0205/techblog/internal/application/ports"
	"github.com/prasanth-t0205/techblog/internal/domain"
	domerrors "github.com/prasanth-t0205/techblog/internal/domain/errors"
)

type FollowToggleResult struct {
	// Followed is true when the call created the follow edge, false
	// when it removed one.
	Followed bool
}

type FollowToggle struct {
	users         ports.UserRepository
	notifications ports.NotificationRepository
}

func NewFollowToggle(users ports.UserRepository, notifications ports.NotificationRepository) *FollowToggle {
	return &FollowToggle{users: users, notifications: notifications}
}

// Execute follows target when no edge exists, unfollows otherwise.
// Following yourself is rejected. A new follow leaves a notification
// in the target's inbox.
func (uc *FollowToggle) Execute(ctx context.Context, currentID, targetID domain.UserID) (*FollowToggleResult, error) {
	if currentID == targetID {
		return nil, domerrors.ErrSelfFollow
	}
	target, err := uc.users.GetPublicByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	current, err := uc.users.GetPublicByID(ctx, currentID)
	if err != nil {
		return nil, err
	}
	if target == nil || current == nil {
		return nil, domerrors.ErrUserNotFound
	}
	if current.IsFollowing(targetID) {
		if err := uc.users.Unfollow(ctx, currentID, targetID); err != nil {
			return nil, err
		}
		return &FollowToggleResult{Followed: false}, nil
	}
	if err := uc.users.Follow(ctx, currentID, targetID); err != nil {
		return nil, err
	}
	if err := uc.notifications.Create(ctx, &domain.Notification{
		ID:        uuid.New(),
		From:      currentID,
		To:        targetID,
		Type:      domain.NotificationFollow,
		Content:   fmt.Sprintf("%s started following you.", current.Username),
		CreatedAt: time.Now(),
	}); err != nil {
		return nil, err
	}
	return &FollowToggleResult{Followed: true}, nil
}
