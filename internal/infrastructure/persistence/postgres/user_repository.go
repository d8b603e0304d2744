package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prasanth-t0205/techblog/internal/application/ports"
	"github.com/prasanth-t0205/techblog/internal/domain"
	domerrors "github.com/prasanth-t0205/techblog/internal/domain/errors"
)

const (
	insertUserSQL = `INSERT INTO users (id, fullname, username, email, password_hash, bio, profile_img, social_links, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	userColumns       = `id, fullname, username, email, password_hash, bio, profile_img, COALESCE(social_links, '{}'::jsonb), created_at, updated_at`
	userPublicColumns = `id, fullname, username, email, bio, profile_img, COALESCE(social_links, '{}'::jsonb), created_at, updated_at`

	getUserByUsernameSQL       = `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	getUserByEmailSQL          = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	getUserByIDSQL             = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	getPublicUserByIDSQL       = `SELECT ` + userPublicColumns + ` FROM users WHERE id = $1`
	getPublicUserByUsernameSQL = `SELECT ` + userPublicColumns + ` FROM users WHERE username = $1`

	updateUserSQL = `UPDATE users SET fullname = $2, username = $3, email = $4, password_hash = $5, bio = $6, profile_img = $7, social_links = $8, updated_at = $9 WHERE id = $1`

	followSQL       = `INSERT INTO follows (follower_id, followee_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	unfollowSQL     = `DELETE FROM follows WHERE follower_id = $1 AND followee_id = $2`
	followerIDsSQL  = `SELECT follower_id FROM follows WHERE followee_id = $1 ORDER BY created_at`
	followingIDsSQL = `SELECT followee_id FROM follows WHERE follower_id = $1 ORDER BY created_at`

	uniqueViolationCode = "23505"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	links, err := marshalLinks(user.SocialLinks)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, insertUserSQL,
		user.ID.UUID, user.Fullname, user.Username, user.Email, user.PasswordHash,
		user.Bio, user.ProfileImg, links, user.CreatedAt, user.UpdatedAt)
	return mapUniqueViolation(err)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getFull(ctx, getUserByUsernameSQL, username)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getFull(ctx, getUserByEmailSQL, email)
}

func (r *UserRepository) GetByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	return r.getFull(ctx, getUserByIDSQL, id.UUID)
}

func (r *UserRepository) GetPublicByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	return r.getPublic(ctx, getPublicUserByIDSQL, id.UUID)
}

func (r *UserRepository) GetPublicByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getPublic(ctx, getPublicUserByUsernameSQL, username)
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	links, err := marshalLinks(user.SocialLinks)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, updateUserSQL,
		user.ID.UUID, user.Fullname, user.Username, user.Email, user.PasswordHash,
		user.Bio, user.ProfileImg, links, user.UpdatedAt)
	return mapUniqueViolation(err)
}

func (r *UserRepository) Follow(ctx context.Context, follower, followee domain.UserID) error {
	_, err := r.pool.Exec(ctx, followSQL, follower.UUID, followee.UUID)
	return err
}

func (r *UserRepository) Unfollow(ctx context.Context, follower, followee domain.UserID) error {
	_, err := r.pool.Exec(ctx, unfollowSQL, follower.UUID, followee.UUID)
	return err
}

func (r *UserRepository) ListFollowerIDs(ctx context.Context, id domain.UserID) ([]domain.UserID, error) {
	return r.listIDs(ctx, followerIDsSQL, id)
}

func (r *UserRepository) getFull(ctx context.Context, query string, arg interface{}) (*domain.User, error) {
	var u domain.User
	var links []byte
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID.UUID, &u.Fullname, &u.Username, &u.Email, &u.PasswordHash,
		&u.Bio, &u.ProfileImg, &links, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if err := unmarshalLinks(links, &u); err != nil {
		return nil, err
	}
	return r.withFollows(ctx, &u)
}

func (r *UserRepository) getPublic(ctx context.Context, query string, arg interface{}) (*domain.User, error) {
	var u domain.User
	var links []byte
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID.UUID, &u.Fullname, &u.Username, &u.Email,
		&u.Bio, &u.ProfileImg, &links, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if err := unmarshalLinks(links, &u); err != nil {
		return nil, err
	}
	return r.withFollows(ctx, &u)
}

func (r *UserRepository) withFollows(ctx context.Context, u *domain.User) (*domain.User, error) {
	followers, err := r.listIDs(ctx, followerIDsSQL, u.ID)
	if err != nil {
		return nil, err
	}
	following, err := r.listIDs(ctx, followingIDsSQL, u.ID)
	if err != nil {
		return nil, err
	}
	u.Followers = followers
	u.Following = following
	return u, nil
}

func (r *UserRepository) listIDs(ctx context.Context, query string, id domain.UserID) ([]domain.UserID, error) {
	rows, err := r.pool.Query(ctx, query, id.UUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ids := make([]domain.UserID, 0)
	for rows.Next() {
		var u domain.UserID
		if err := rows.Scan(&u.UUID); err != nil {
			return nil, err
		}
		ids = append(ids, u)
	}
	return ids, rows.Err()
}

func marshalLinks(links map[string]string) ([]byte, error) {
	if links == nil {
		links = map[string]string{}
	}
	return json.Marshal(links)
}

func unmarshalLinks(links []byte, u *domain.User) error {
	if len(links) == 0 {
		return nil
	}
	return json.Unmarshal(links, &u.SocialLinks)
}

// mapUniqueViolation translates the storage-level uniqueness
// constraints into the conflict errors signup reports, so a racing
// insert that slipped past the existence checks still yields Conflict.
func mapUniqueViolation(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		switch pgErr.ConstraintName {
		case "users_username_key":
			return domerrors.ErrUsernameExists
		case "users_email_key":
			return domerrors.ErrEmailExists
		}
	}
	return err
}

var _ ports.UserRepository = (*UserRepository)(nil)
