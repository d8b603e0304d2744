package user

import (
	"context"
	"time"

	"github.com/prasanth-t0205/techblog/internal/application/auth"
	"github.com/prasanth-t0205/techblog/internal/application/ports"
	"github.com/prasanth-t0205/techblog/internal/domain"
	domerrors "github.com/prasanth-t0205/techblog/internal/domain/errors"
)

type UpdateProfileInput struct {
	Fullname           string
	Username           string
	Email              string
	CurrentPassword    string
	NewPassword        string
	Bio                string
	SocialLinks        map[string]string
	ProfileImg         string
	DeleteProfileImage bool
}

type UpdateProfile struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	images ports.ImageStorage
}

func NewUpdateProfile(users ports.UserRepository, hasher ports.PasswordHasher, images ports.ImageStorage) *UpdateProfile {
	return &UpdateProfile{users: users, hasher: hasher, images: images}
}

// Execute applies a partial profile update. Empty fields keep their
// stored value. A password change requires the current password to
// verify against the stored hash before a new hash is computed.
func (uc *UpdateProfile) Execute(ctx context.Context, userID domain.UserID, input UpdateProfileInput) (*domain.User, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domerrors.ErrUserNotFound
	}

	if input.CurrentPassword != "" && input.NewPassword != "" {
		if !uc.hasher.Verify(input.CurrentPassword, user.PasswordHash) {
			return nil, domerrors.ErrWrongPassword
		}
		if len(input.NewPassword) < auth.MinPasswordLength {
			return nil, domerrors.ErrPasswordTooShort
		}
		hash, err := uc.hasher.Hash(input.NewPassword)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if input.DeleteProfileImage {
		if user.ProfileImg != "" {
			_ = uc.images.Delete(ctx, user.ProfileImg)
		}
		user.ProfileImg = ""
	} else if input.ProfileImg != "" && input.ProfileImg != user.ProfileImg {
		if user.ProfileImg != "" {
			_ = uc.images.Delete(ctx, user.ProfileImg)
		}
		url, err := uc.images.Upload(ctx, input.ProfileImg)
		if err != nil {
			return nil, err
		}
		user.ProfileImg = url
	}

	if input.Fullname != "" {
		user.Fullname = input.Fullname
	}
	if input.Username != "" {
		user.Username = input.Username
	}
	if input.Email != "" {
		user.Email = input.Email
	}
	if input.Bio != "" {
		user.Bio = input.Bio
	}
	if input.SocialLinks != nil {
		user.SocialLinks = input.SocialLinks
	}
	user.UpdatedAt = time.Now()

	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}
