package domain

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType enumerates the events a user can be notified about.
type NotificationType string

const (
	NotificationFollow  NotificationType = "follow"
	NotificationComment NotificationType = "comment"
	NotificationPost    NotificationType = "post"
	NotificationLike    NotificationType = "like"
)

// Notification is a message delivered to a user's inbox.
type Notification struct {
	ID          uuid.UUID
	From        UserID
	To          UserID
	Type        NotificationType
	Content     string
	Read        bool
	RelatedPost *PostID
	CreatedAt   time.Time
}
