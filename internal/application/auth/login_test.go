package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prasanth-t0205/techblog/internal/domain"
	domerrors "github.com/prasanth-t0205/techblog/internal/domain/errors"
)

func TestLoginSuccess(t *testing.T) {
	user := &domain.User{
		ID:           domain.NewUserID(uuid.New()),
		Username:     "jane",
		PasswordHash: "hashed:secret1",
	}
	uc := NewLogin(newFakeUserRepo(user), fakeHasher{}, &fakeIssuer{})

	result, err := uc.Execute(context.Background(), LoginInput{Username: "jane", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, result.User.ID)
	assert.Equal(t, "token-for-"+user.ID.String(), result.Token)
	assert.Equal(t, int64(3600), result.ExpiresIn)
}

func TestLoginUniformFailure(t *testing.T) {
	user := &domain.User{
		ID:           domain.NewUserID(uuid.New()),
		Username:     "jane",
		PasswordHash: "hashed:secret1",
	}

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"unknown username", "nobody", "secret1"},
		{"wrong password", "jane", "wrong"},
		{"empty password", "jane", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issuer := &fakeIssuer{}
			uc := NewLogin(newFakeUserRepo(user), fakeHasher{}, issuer)
			_, err := uc.Execute(context.Background(), LoginInput{Username: tt.username, Password: tt.password})
			assert.ErrorIs(t, err, domerrors.ErrInvalidCredentials)
			assert.Empty(t, issuer.issued)
		})
	}
}
