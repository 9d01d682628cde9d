package notification

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) InsertNotification(ctx context.Context, n Notification) (Notification, error) {
	sql := `
			INSERT INTO rental.notification(recipient, message, type, "isRead", "bookingId")
			VALUES ($1, $2, $3, false, $4)
			RETURNING id, "createdAt";
		`

	err := r.pool.QueryRow(ctx, sql, n.Recipient, n.Message, n.Type, n.BookingID).Scan(&n.ID, &n.CreatedAt)

	if err != nil {
		return Notification{}, fmt.Errorf("failed to insert notification: %w", err)
	}

	n.IsRead = false

	return n, nil
}

func (r *Repository) GetNotifications(ctx context.Context, recipient string, unreadOnly bool) ([]Notification, error) {
	sql := `
            SELECT id, recipient, message, type, "isRead", "bookingId", "createdAt"
            FROM rental.notification
            WHERE recipient=$1 AND ($2 = false OR "isRead" = false)
            ORDER BY "createdAt" DESC
            LIMIT 100;
        `

	rows, err := r.pool.Query(ctx, sql, recipient, unreadOnly)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch notifications for '%v': %w", recipient, err)
	}

	notifications, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Notification, error) {
		var n Notification
		err := row.Scan(&n.ID, &n.Recipient, &n.Message, &n.Type, &n.IsRead, &n.BookingID, &n.CreatedAt)
		return n, err
	})

	if err != nil {
		return nil, fmt.Errorf("error scanning notification rows: %w", err)
	}

	return notifications, nil
}

func (r *Repository) CountUnread(ctx context.Context, recipient string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM rental.notification WHERE recipient=$1 AND "isRead" = false;`,
		recipient,
	).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}

func (r *Repository) MarkRead(ctx context.Context, id, recipient string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE rental.notification SET "isRead" = true WHERE id=$1 AND recipient=$2;`,
		id, recipient,
	)

	if err != nil {
		return fmt.Errorf("failed to mark notification '%v' read: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

func (r *Repository) MarkAllRead(ctx context.Context, recipient string) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE rental.notification SET "isRead" = true WHERE recipient=$1 AND "isRead" = false;`,
		recipient,
	)

	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *Repository) DeleteNotification(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM rental.notification WHERE id=$1;`, id)

	if err != nil {
		return fmt.Errorf("failed to delete notification '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrNotificationNotFound
	}

	return nil
}
