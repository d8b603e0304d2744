package post

import (
	"context"
	"time"

	"github.com/prasanth-t0205/techblog/internal/application/ports"
	"github.com/prasanth-t0205/techblog/internal/domain"
	domerrors "github.com/prasanth-t0205/techblog/internal/domain/errors"
)

type EditPostInput struct {
	PostID   domain.PostID
	CallerID domain.UserID
	Title    string
	Content  string
	Category string
	Img      string
}

type EditPost struct {
	posts  ports.PostRepository
	images ports.ImageStorage
}

func NewEditPost(posts ports.PostRepository, images ports.ImageStorage) *EditPost {
	return &EditPost{posts: posts, images: images}
}

// Execute updates a post owned by the caller. A changed image replaces
// the stored one; the old object is removed first.
func (uc *EditPost) Execute(ctx context.Context, input EditPostInput) (*domain.Post, error) {
	post, err := uc.posts.GetByID(ctx, input.PostID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, domerrors.ErrPostNotFound
	}
	if post.UserID != input.CallerID {
		return nil, domerrors.ErrNotPostOwner
	}
	if input.Img != "" && input.Img != post.Img {
		if post.Img != "" {
			_ = uc.images.Delete(ctx, post.Img)
		}
		url, err := uc.images.Upload(ctx, input.Img)
		if err != nil {
			return nil, err
		}
		post.Img = url
	}
	post.Title = input.Title
	post.Content = input.Content
	post.Category = input.Category
	post.UpdatedAt = time.Now()
	if err := uc.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}
