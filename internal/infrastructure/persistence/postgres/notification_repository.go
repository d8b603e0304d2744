package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prasanth-t0205/techblog/internal/application/ports"
	"github.com/prasanth-t0205/techblog/internal/domain"
)

const (
	insertNotificationSQL = `INSERT INTO notifications (id, from_id, to_id, type, content, read, related_post, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	listNotificationsSQL = `SELECT id, from_id, to_id, type, content, read, related_post, created_at
		FROM notifications WHERE to_id = $1 ORDER BY created_at DESC`
	markNotificationsReadSQL = `UPDATE notifications SET read = TRUE WHERE to_id = $1 AND read = FALSE`
	deleteNotificationsSQL   = `DELETE FROM notifications WHERE to_id = $1`
)

type NotificationRepository struct {
	pool *pgxpool.Pool
}

func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	var related *uuid.UUID
	if n.RelatedPost != nil {
		related = &n.RelatedPost.UUID
	}
	_, err := r.pool.Exec(ctx, insertNotificationSQL,
		n.ID, n.From.UUID, n.To.UUID, string(n.Type), n.Content, n.Read, related, n.CreatedAt)
	return err
}

func (r *NotificationRepository) ListByRecipient(ctx context.Context, to domain.UserID) ([]*domain.Notification, error) {
	rows, err := r.pool.Query(ctx, listNotificationsSQL, to.UUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	list := make([]*domain.Notification, 0)
	for rows.Next() {
		var n domain.Notification
		var typ string
		var related *uuid.UUID
		if err := rows.Scan(&n.ID, &n.From.UUID, &n.To.UUID, &typ, &n.Content, &n.Read, &related, &n.CreatedAt); err != nil {
			return nil, err
		}
		n.Type = domain.NotificationType(typ)
		if related != nil {
			p := domain.NewPostID(*related)
			n.RelatedPost = &p
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, to domain.UserID) error {
	_, err := r.pool.Exec(ctx, markNotificationsReadSQL, to.UUID)
	return err
}

func (r *NotificationRepository) DeleteAll(ctx context.Context, to domain.UserID) error {
	_, err := r.pool.Exec(ctx, deleteNotificationsSQL, to.UUID)
	return err
}

var _ ports.NotificationRepository = (*NotificationRepository)(nil)
