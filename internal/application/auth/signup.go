package auth

import (
	"context"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/prasanth-t0205/techblog/internal/application/ports"
	"github.com/prasanth-t0205/techblog/internal/domain"
	domerrors "github.com/prasanth-t0205/techblog/internal/domain/errors"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// MinPasswordLength is enforced at signup and at password change,
// before any hashing happens.
const MinPasswordLength = 6

type SignupInput struct {
	Fullname string
	Username string
	Email    string
	Password string
}

type SignupResult struct {
	User      *domain.User
	Token     string
	ExpiresIn int64
}

type Signup struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	issuer ports.TokenIssuer
}

func NewSignup(users ports.UserRepository, hasher ports.PasswordHasher, issuer ports.TokenIssuer) *Signup {
	return &Signup{users: users, hasher: hasher, issuer: issuer}
}

// Execute validates in a fixed order so the first violation determines
// the reported error: email shape, username taken, email taken,
// password length. The record is persisted before a session token is
// minted, so a failed insert never leaves the caller with a session
// for an account that does not exist.
func (uc *Signup) Execute(ctx context.Context, input SignupInput) (*SignupResult, error) {
	if !emailRegex.MatchString(input.Email) {
		return nil, domerrors.ErrInvalidEmail
	}
	existing, err := uc.users.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domerrors.ErrUsernameExists
	}
	existing, err = uc.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domerrors.ErrEmailExists
	}
	if len(input.Password) < MinPasswordLength {
		return nil, domerrors.ErrPasswordTooShort
	}
	hash, err := uc.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &domain.User{
		ID:           domain.NewUserID(uuid.New()),
		Fullname:     input.Fullname,
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	// Create relies on the storage-level unique constraints as well:
	// a racing signup that passed the checks above still surfaces as
	// ErrUsernameExists/ErrEmailExists, not a server fault.
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	token, expiresIn, err := uc.issuer.Issue(user.ID.String())
	if err != nil {
		return nil, err
	}
	return &SignupResult{User: user, Token: token, ExpiresIn: expiresIn}, nil
}
