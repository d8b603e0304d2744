package post

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/prasanth-t0205/techblog/internal/application/ports"
	"github.com/prasanth-t0205/techblog/internal/domain"
	domerrors "github.com/prasanth-t0205/techblog/internal/domain/errors"
)

type CreatePostInput struct {
	UserID   domain.UserID
	Title    string
	Content  string
	Category string
	Img      string
}

type CreatePost struct {
	users    ports.UserRepository
	posts    ports.PostRepository
	images   ports.ImageStorage
	enqueuer ports.TaskEnqueuer
}

func NewCreatePost(users ports.UserRepository, posts ports.PostRepository, images ports.ImageStorage, enqueuer ports.TaskEnqueuer) *CreatePost {
	return &CreatePost{users: users, posts: posts, images: images, enqueuer: enqueuer}
}

// Execute stores the post image, persists the post, and enqueues the
// follower fan-out. Fan-out failure does not fail the request; the
// post is already durable at that point.
func (uc *CreatePost) Execute(ctx context.Context, input CreatePostInput) (*domain.Post, error) {
	author, err := uc.users.GetPublicByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, domerrors.ErrUserNotFound
	}
	if input.Title == "" || input.Content == "" || input.Category == "" {
		return nil, domerrors.ErrMissingPostFields
	}
	if input.Img == "" {
		return nil, domerrors.ErrMissingPostImage
	}
	imgURL, err := uc.images.Upload(ctx, input.Img)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	post := &domain.Post{
		ID:        domain.NewPostID(uuid.New()),
		UserID:    input.UserID,
		Title:     input.Title,
		Content:   input.Content,
		Img:       imgURL,
		Category:  input.Category,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	_ = uc.enqueuer.EnqueueNewPostNotifications(ctx, ports.NewPostTask{
		PostID:   post.ID.String(),
		AuthorID: author.ID.String(),
		Username: author.Username,
		Title:    post.Title,
	})
	post.Author = author
	return post, nil
}
