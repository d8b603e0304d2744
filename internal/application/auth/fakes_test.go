package auth

import (
	"context"
	"fmt"

	"github.com/prasanth-t0205/techblog/internal/domain"
)

// fakeUserRepo is an in-memory UserRepository for use case tests.
type fakeUserRepo struct {
	users     map[string]*domain.User // by username
	createErr error
	created   []*domain.User
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: map[string]*domain.User{}}
	for _, u := range users {
		repo.users[u.Username] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.users[user.Username] = user
	r.created = append(r.created, user)
	return nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	return r.users[username], nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id domain.UserID) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetPublicByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeUserRepo) GetPublicByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.GetByUsername(ctx, username)
}

func (r *fakeUserRepo) Update(context.Context, *domain.User) error { return nil }

func (r *fakeUserRepo) Follow(context.Context, domain.UserID, domain.UserID) error { return nil }

func (r *fakeUserRepo) Unfollow(context.Context, domain.UserID, domain.UserID) error { return nil }

func (r *fakeUserRepo) ListFollowerIDs(context.Context, domain.UserID) ([]domain.UserID, error) {
	return nil, nil
}

// fakeHasher prefixes instead of hashing so tests can assert on the
// stored value.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (fakeHasher) Verify(password, hash string) bool { return hash == "hashed:"+password }

// fakeIssuer records issued subjects.
type fakeIssuer struct {
	issued []string
	err    error
}

func (i *fakeIssuer) Issue(userID string) (string, int64, error) {
	if i.err != nil {
		return "", 0, i.err
	}
	i.issued = append(i.issued, userID)
	return fmt.Sprintf("token-for-%s", userID), 3600, nil
}

func (i *fakeIssuer) Verify(token string) (string, error) {
	const prefix = "token-for-"
	if len(token) <= len(prefix) || token[:len(prefix)] != prefix {
		return "", fmt.Errorf("bad token")
	}
	return token[len(prefix):], nil
}
