package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID is a value object for user identity.
type UserID struct{ uuid.UUID }

// NewUserID creates a new UserID from uuid.
func NewUserID(id uuid.UUID) UserID { return UserID{UUID: id} }

// ParseUserID parses the canonical string form.
func ParseUserID(s string) (UserID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UserID{}, err
	}
	return UserID{UUID: id}, nil
}

// String returns the canonical string form.
func (u UserID) String() string { return u.UUID.String() }

// User is a registered account. PasswordHash is empty on records loaded
// through lookups that exclude credentials (profile reads, the auth gate).
type User struct {
	ID           UserID
	Fullname     string
	Username     string
	Email        string
	PasswordHash string
	Bio          string
	ProfileImg   string
	SocialLinks  map[string]string
	Followers    []UserID
	Following    []UserID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsFollowing reports whether the user follows target.
func (u *User) IsFollowing(target UserID) bool {
	for _, id := range u.Following {
		if id == target {
			return true
		}
	}
	return false
}
