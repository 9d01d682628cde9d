package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) FindByID(ctx context.Context, id string) (User, error) {
	var u User
	err := r.pool.QueryRow(ctx, `
            SELECT id, name, contact, role, "notificationsEnabled"
            FROM rental.account
            WHERE id=$1;
        `, id).Scan(&u.ID, &u.Name, &u.Contact, &u.Role, &u.NotificationsEnabled)

	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrUserNotFound
	}

	if err != nil {
		return User{}, fmt.Errorf("failed to fetch account '%v': %w", id, err)
	}

	return u, nil
}

// contact must already be normalized.
func (r *Repository) FindOrCreateCustomer(ctx context.Context, name, contact string) (string, error) {
	sql := `
			INSERT INTO rental.account(name, contact, role, "notificationsEnabled")
			VALUES ($1, $2, 'customer', true)
			ON CONFLICT (contact) WHERE role = 'customer'
			DO UPDATE SET contact = EXCLUDED.contact
			RETURNING id;
		`

	var id string
	err := r.pool.QueryRow(ctx, sql, name, contact).Scan(&id)

	if err != nil {
		return "", fmt.Errorf("failed to find or create customer '%v': %w", contact, err)
	}

	return id, nil
}

func (r *Repository) FindCustomerByContact(ctx context.Context, contact string) (string, bool, error) {
	var id string
	err := r.pool.QueryRow(ctx,
		`SELECT id FROM rental.account WHERE contact=$1 AND role='customer';`,
		contact,
	).Scan(&id)

	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}

	if err != nil {
		return "", false, fmt.Errorf("failed to look up customer '%v': %w", contact, err)
	}

	return id, true, nil
}

func (r *Repository) ListStaff(ctx context.Context) ([]User, error) {
	rows, err := r.pool.Query(ctx, `
            SELECT id, name, contact, role, "notificationsEnabled"
            FROM rental.account
            WHERE role IN ('admin', 'superadmin')
            ORDER BY name;
        `)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff accounts: %w", err)
	}

	users, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (User, error) {
		var u User
		err := row.Scan(&u.ID, &u.Name, &u.Contact, &u.Role, &u.NotificationsEnabled)
		return u, err
	})

	if err != nil {
		return nil, fmt.Errorf("error scanning account rows: %w", err)
	}

	return users, nil
}

func (r *Repository) SetNotificationsEnabled(ctx context.Context, id string, enabled bool) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE rental.account SET "notificationsEnabled"=$2 WHERE id=$1;`,
		id, enabled,
	)

	if err != nil {
		return fmt.Errorf("failed to update notification preference of '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}
