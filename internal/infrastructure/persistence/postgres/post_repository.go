package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prasanth-t0205/techblog/internal/application/ports"
	"github.com/prasanth-t0205/techblog/internal/domain"
)

const (
	insertPostSQL = `INSERT INTO posts (id, user_id, title, content, img, category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	// Every read joins the public author fields; the password hash and
	// email never leave the users table on these paths.
	postSelectSQL = `SELECT p.id, p.user_id, p.title, p.content, p.img, p.category, p.created_at, p.updated_at,
		u.fullname, u.username, u.profile_img
		FROM posts p JOIN users u ON u.id = p.user_id`

	getPostByIDSQL   = postSelectSQL + ` WHERE p.id = $1`
	listPostsSQL     = postSelectSQL + ` ORDER BY p.created_at DESC`
	listUserPostsSQL = postSelectSQL + ` WHERE p.user_id = $1 ORDER BY p.created_at DESC`
	randomPostsSQL   = postSelectSQL + ` ORDER BY random() LIMIT $1`
	searchPostsSQL   = postSelectSQL + ` WHERE p.title ILIKE $1 OR p.content ILIKE $1 OR p.category ILIKE $1 ORDER BY p.created_at DESC`

	updatePostSQL = `UPDATE posts SET title = $2, content = $3, img = $4, category = $5, updated_at = $6 WHERE id = $1`
	deletePostSQL = `DELETE FROM posts WHERE id = $1`
)

type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) error {
	_, err := r.pool.Exec(ctx, insertPostSQL,
		post.ID.UUID, post.UserID.UUID, post.Title, post.Content, post.Img, post.Category,
		post.CreatedAt, post.UpdatedAt)
	return err
}

func (r *PostRepository) GetByID(ctx context.Context, id domain.PostID) (*domain.Post, error) {
	post, err := scanPost(r.pool.QueryRow(ctx, getPostByIDSQL, id.UUID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return post, nil
}

func (r *PostRepository) ListAll(ctx context.Context) ([]*domain.Post, error) {
	return r.list(ctx, listPostsSQL)
}

func (r *PostRepository) ListByUser(ctx context.Context, userID domain.UserID) ([]*domain.Post, error) {
	return r.list(ctx, listUserPostsSQL, userID.UUID)
}

func (r *PostRepository) ListRandom(ctx context.Context, count int) ([]*domain.Post, error) {
	return r.list(ctx, randomPostsSQL, count)
}

func (r *PostRepository) Search(ctx context.Context, query string) ([]*domain.Post, error) {
	return r.list(ctx, searchPostsSQL, "%"+query+"%")
}

func (r *PostRepository) Update(ctx context.Context, post *domain.Post) error {
	_, err := r.pool.Exec(ctx, updatePostSQL,
		post.ID.UUID, post.Title, post.Content, post.Img, post.Category, post.UpdatedAt)
	return err
}

func (r *PostRepository) Delete(ctx context.Context, id domain.PostID) error {
	_, err := r.pool.Exec(ctx, deletePostSQL, id.UUID)
	return err
}

func (r *PostRepository) list(ctx context.Context, query string, args ...interface{}) ([]*domain.Post, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	posts := make([]*domain.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

func scanPost(row pgx.Row) (*domain.Post, error) {
	var p domain.Post
	var author domain.User
	err := row.Scan(
		&p.ID.UUID, &p.UserID.UUID, &p.Title, &p.Content, &p.Img, &p.Category,
		&p.CreatedAt, &p.UpdatedAt,
		&author.Fullname, &author.Username, &author.ProfileImg)
	if err != nil {
		return nil, err
	}
	author.ID = p.UserID
	p.Author = &author
	return &p, nil
}

var _ ports.PostRepository = (*PostRepository)(nil)
