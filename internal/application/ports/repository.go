package ports

import (
	"context"

	"github.com/prasanth-t0205/techblog/internal/domain"
)

// UserRepository defines persistence for accounts and follow edges.
type UserRepository interface {
	// Create persists a new account. Storage-level uniqueness on
	// username and email is translated to the domain conflict errors.
	Create(ctx context.Context, user *domain.User) error
	// GetByUsername returns the full record including the password
	// hash, or nil when no such user exists.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	// GetByEmail returns the full record, or nil when no such user exists.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// GetByID returns the full record including the password hash.
	GetByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	// GetPublicByID returns the record with the password hash excluded
	// at the query level. Used by the auth gate and /me.
	GetPublicByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	// GetPublicByUsername is GetPublicByID keyed by username.
	GetPublicByUsername(ctx context.Context, username string) (*domain.User, error)
	// Update persists profile fields and (when set) a new password hash.
	Update(ctx context.Context, user *domain.User) error
	Follow(ctx context.Context, follower, followee domain.UserID) error
	Unfollow(ctx context.Context, follower, followee domain.UserID) error
	// ListFollowerIDs returns the ids of users following the given user.
	ListFollowerIDs(ctx context.Context, id domain.UserID) ([]domain.UserID, error)
}

// PostRepository defines persistence for posts. Read methods populate
// Post.Author with the public author fields.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, id domain.PostID) (*domain.Post, error)
	ListAll(ctx context.Context) ([]*domain.Post, error)
	ListByUser(ctx context.Context, userID domain.UserID) ([]*domain.Post, error)
	ListRandom(ctx context.Context, count int) ([]*domain.Post, error)
	// Search matches query case-insensitively against title, content
	// and category, newest first.
	Search(ctx context.Context, query string) ([]*domain.Post, error)
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id domain.PostID) error
}

// NotificationRepository defines persistence for notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListByRecipient(ctx context.Context, to domain.UserID) ([]*domain.Notification, error)
	MarkAllRead(ctx context.Context, to domain.UserID) error
	DeleteAll(ctx context.Context, to domain.UserID) error
}
