package user

import (
	"context"

	"github.com/prasanth-t0205/techblog/internal/domain"
)

type fakeUserRepo struct {
	byID       map[domain.UserID]*domain.User
	follows    []pair
	unfollows  []pair
	updated    []*domain.User
}

type pair struct{ follower, followee domain.UserID }

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{byID: map[domain.UserID]*domain.User{}}
	for _, u := range users {
		repo.byID[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(context.Context, *domain.User) error { return nil }

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(context.Context, string) (*domain.User, error) { return nil, nil }

func (r *fakeUserRepo) GetByID(_ context.Context, id domain.UserID) (*domain.User, error) {
	return r.byID[id], nil
}

func (r *fakeUserRepo) GetPublicByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeUserRepo) GetPublicByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.GetByUsername(ctx, username)
}

func (r *fakeUserRepo) Update(_ context.Context, u *domain.User) error {
	r.updated = append(r.updated, u)
	return nil
}

func (r *fakeUserRepo) Follow(_ context.Context, follower, followee domain.UserID) error {
	r.follows = append(r.follows, pair{follower, followee})
	return nil
}

func (r *fakeUserRepo) Unfollow(_ context.Context, follower, followee domain.UserID) error {
	r.unfollows = append(r.unfollows, pair{follower, followee})
	return nil
}

func (r *fakeUserRepo) ListFollowerIDs(context.Context, domain.UserID) ([]domain.UserID, error) {
	return nil, nil
}

type fakeNotificationRepo struct {
	created []*domain.Notification
}

func (r *fakeNotificationRepo) Create(_ context.Context, n *domain.Notification) error {
	r.created = append(r.created, n)
	return nil
}

func (r *fakeNotificationRepo) ListByRecipient(context.Context, domain.UserID) ([]*domain.Notification, error) {
	return nil, nil
}

func (r *fakeNotificationRepo) MarkAllRead(context.Context, domain.UserID) error { return nil }

func (r *fakeNotificationRepo) DeleteAll(context.Context, domain.UserID) error { return nil }

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (fakeHasher) Verify(password, hash string) bool { return hash == "hashed:"+password }

type fakeImageStorage struct {
	uploads []string
	deletes []string
}

func (s *fakeImageStorage) Upload(_ context.Context, data string) (string, error) {
	s.uploads = append(s.uploads, data)
	return "https://img.example.com/" + data, nil
}

func (s *fakeImageStorage) Delete(_ context.Context, url string) error {
	s.deletes = append(s.deletes, url)
	return nil
}
