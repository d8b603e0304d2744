package domain

import (
	"time"

	"github.com/google/uuid"
)

// PostID is a value object for post identity.
type PostID struct{ uuid.UUID }

// NewPostID creates a new PostID from uuid.
func NewPostID(id uuid.UUID) PostID { return PostID{UUID: id} }

// ParsePostID parses the canonical string form.
func ParsePostID(s string) (PostID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return PostID{}, err
	}
	return PostID{UUID: id}, nil
}

// String returns the canonical string form.
func (p PostID) String() string { return p.UUID.String() }

// Post is a blog entry. Author is populated on reads and carries the
// public author fields only (no credentials, no email).
type Post struct {
	ID        PostID
	UserID    UserID
	Title     string
	Content   string
	Img       string
	Category  string
	Author    *User
	CreatedAt time.Time
	UpdatedAt time.Time
}
