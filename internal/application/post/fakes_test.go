package post

import (
	"context"

	"github.com/prasanth-t0205/techblog/internal/application/ports"
	"github.com/prasanth-t0205/techblog/internal/domain"
)

type fakeUserRepo struct {
	byID map[domain.UserID]*domain.User
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{byID: map[domain.UserID]*domain.User{}}
	for _, u := range users {
		repo.byID[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(context.Context, *domain.User) error { return nil }

func (r *fakeUserRepo) GetByUsername(context.Context, string) (*domain.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(context.Context, string) (*domain.User, error) { return nil, nil }

func (r *fakeUserRepo) GetByID(_ context.Context, id domain.UserID) (*domain.User, error) {
	return r.byID[id], nil
}

func (r *fakeUserRepo) GetPublicByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeUserRepo) GetPublicByUsername(context.Context, string) (*domain.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) Update(context.Context, *domain.User) error { return nil }

func (r *fakeUserRepo) Follow(context.Context, domain.UserID, domain.UserID) error { return nil }

func (r *fakeUserRepo) Unfollow(context.Context, domain.UserID, domain.UserID) error { return nil }

func (r *fakeUserRepo) ListFollowerIDs(context.Context, domain.UserID) ([]domain.UserID, error) {
	return nil, nil
}

type fakePostRepo struct {
	byID    map[domain.PostID]*domain.Post
	created []*domain.Post
	updated []*domain.Post
	deleted []domain.PostID
}

func newFakePostRepo(posts ...*domain.Post) *fakePostRepo {
	repo := &fakePostRepo{byID: map[domain.PostID]*domain.Post{}}
	for _, p := range posts {
		repo.byID[p.ID] = p
	}
	return repo
}

func (r *fakePostRepo) Create(_ context.Context, post *domain.Post) error {
	r.byID[post.ID] = post
	r.created = append(r.created, post)
	return nil
}

func (r *fakePostRepo) GetByID(_ context.Context, id domain.PostID) (*domain.Post, error) {
	return r.byID[id], nil
}

func (r *fakePostRepo) ListAll(context.Context) ([]*domain.Post, error) { return nil, nil }

func (r *fakePostRepo) ListByUser(context.Context, domain.UserID) ([]*domain.Post, error) {
	return nil, nil
}

func (r *fakePostRepo) ListRandom(context.Context, int) ([]*domain.Post, error) { return nil, nil }

func (r *fakePostRepo) Search(context.Context, string) ([]*domain.Post, error) { return nil, nil }

func (r *fakePostRepo) Update(_ context.Context, post *domain.Post) error {
	r.updated = append(r.updated, post)
	return nil
}

func (r *fakePostRepo) Delete(_ context.Context, id domain.PostID) error {
	r.deleted = append(r.deleted, id)
	delete(r.byID, id)
	return nil
}

type fakeImageStorage struct {
	uploads   []string
	deletes   []string
	uploadErr error
}

func (s *fakeImageStorage) Upload(_ context.Context, data string) (string, error) {
	if s.uploadErr != nil {
		return "", s.uploadErr
	}
	s.uploads = append(s.uploads, data)
	return "https://img.example.com/" + data, nil
}

func (s *fakeImageStorage) Delete(_ context.Context, url string) error {
	s.deletes = append(s.deletes, url)
	return nil
}

type fakeEnqueuer struct {
	tasks []ports.NewPostTask
	err   error
}

func (q *fakeEnqueuer) EnqueueNewPostNotifications(_ context.Context, t ports.NewPostTask) error {
	if q.err != nil {
		return q.err
	}
	q.tasks = append(q.tasks, t)
	return nil
}
