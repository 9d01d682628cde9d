package push

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

func scanSubscriptions(rows pgx.Rows) ([]Subscription, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Subscription, error) {
		var s Subscription
		err := row.Scan(&s.ID, &s.UserID, &s.Endpoint, &s.P256dh, &s.Auth, &s.CreatedAt)
		return s, err
	})
}

// SaveSubscription upserts by endpoint: a browser re-subscribing keeps one row.
func (r *Repository) SaveSubscription(ctx context.Context, sub Subscription) (Subscription, error) {
	sql := `
			INSERT INTO rental.push_subscription("userId", endpoint, p256dh, auth)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (endpoint) DO UPDATE
			SET "userId" = EXCLUDED."userId", p256dh = EXCLUDED.p256dh, auth = EXCLUDED.auth
			RETURNING id, "createdAt";
		`

	err := r.pool.QueryRow(ctx, sql, sub.UserID, sub.Endpoint, sub.P256dh, sub.Auth).Scan(&sub.ID, &sub.CreatedAt)

	if err != nil {
		return Subscription{}, fmt.Errorf("failed to save push subscription: %w", err)
	}

	return sub, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID string) ([]Subscription, error) {
	rows, err := r.pool.Query(ctx, `
            SELECT id, "userId", endpoint, p256dh, auth, "createdAt"
            FROM rental.push_subscription
            WHERE "userId"=$1;
        `, userID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch push subscriptions for '%v': %w", userID, err)
	}

	subs, err := scanSubscriptions(rows)

	if err != nil {
		return nil, fmt.Errorf("error scanning push subscription rows: %w", err)
	}

	return subs, nil
}

// ListBroadcastable returns every device whose owner has notifications on.
func (r *Repository) ListBroadcastable(ctx context.Context) ([]Subscription, error) {
	rows, err := r.pool.Query(ctx, `
            SELECT s.id, s."userId", s.endpoint, s.p256dh, s.auth, s."createdAt"
            FROM rental.push_subscription s
            JOIN rental.account a ON a.id = s."userId"
            WHERE a."notificationsEnabled" = true;
        `)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch broadcast subscriptions: %w", err)
	}

	subs, err := scanSubscriptions(rows)

	if err != nil {
		return nil, fmt.Errorf("error scanning push subscription rows: %w", err)
	}

	return subs, nil
}

func (r *Repository) RemoveSubscription(ctx context.Context, userID, endpoint string) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM rental.push_subscription WHERE "userId"=$1 AND endpoint=$2;`,
		userID, endpoint,
	)

	if err != nil {
		return fmt.Errorf("failed to remove push subscription: %w", err)
	}

	return nil
}
