package post

import (
	"context"

	"github.com/prasanth-t0205/techblog/internal/application/ports"
	"github.com/prasanth-t0205/techblog/internal/domain"
	domerrors "github.com/prasanth-t0205/techblog/internal/domain/errors"
)

type DeletePost struct {
	posts  ports.PostRepository
	images ports.ImageStorage
}

func NewDeletePost(posts ports.PostRepository, images ports.ImageStorage) *DeletePost {
	return &DeletePost{posts: posts, images: images}
}

// Execute deletes a post owned by the caller. Removing the stored
// image is best-effort; a storage hiccup must not keep the post alive.
func (uc *DeletePost) Execute(ctx context.Context, postID domain.PostID, callerID domain.UserID) error {
	post, err := uc.posts.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return domerrors.ErrPostNotFound
	}
	if post.UserID != callerID {
		return domerrors.ErrNotPostOwner
	}
	if post.Img != "" {
		_ = uc.images.Delete(ctx, post.Img)
	}
	return uc.posts.Delete(ctx, postID)
}
