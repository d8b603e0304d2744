package auth

import (
	"context"

	"github.com/prasanth-t0205/techblog/internal/application/ports"
	"github.com/prasanth-t0205/techblog/internal/domain"
	domerrors "github.com/prasanth-t0205/techblog/internal/domain/errors"
)

type LoginInput struct {
	Username string
	Password string
}

type LoginResult struct {
	User      *domain.User
	Token     string
	ExpiresIn int64
}

type Login struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	issuer ports.TokenIssuer

	// placeholderHash is verified against when the username lookup
	// misses, so a miss costs the same as a mismatch and response
	// timing does not reveal whether the username exists.
	placeholderHash string
}

func NewLogin(users ports.UserRepository, hasher ports.PasswordHasher, issuer ports.TokenIssuer) *Login {
	placeholder, _ := hasher.Hash("techblog-placeholder-credential")
	return &Login{users: users, hasher: hasher, issuer: issuer, placeholderHash: placeholder}
}

// Execute rejects a bad username and a bad password with the same
// error, deliberately indistinguishable to the caller.
func (uc *Login) Execute(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := uc.users.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	stored := uc.placeholderHash
	if user != nil {
		stored = user.PasswordHash
	}
	ok := uc.hasher.Verify(input.Password, stored)
	if user == nil || !ok {
		return nil, domerrors.ErrInvalidCredentials
	}
	token, expiresIn, err := uc.issuer.Issue(user.ID.String())
	if err != nil {
		return nil, err
	}
	return &LoginResult{User: user, Token: token, ExpiresIn: expiresIn}, nil
}
