package announcement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) GetSettings(ctx context.Context) (Settings, error) {
	sql := `
            SELECT enabled, sentences, "sentencesPerPopup", "triggerTimes", "lastTriggeredAt"
            FROM rental.announcement_settings
            WHERE id = 1;
        `

	var s Settings
	err := r.pool.QueryRow(ctx, sql).Scan(&s.Enabled, &s.Sentences, &s.SentencesPerPopup, &s.TriggerTimes, &s.LastTriggeredAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return DefaultSettings(), nil
	}

	if err != nil {
		return Settings{}, fmt.Errorf("failed to fetch announcement settings: %w", err)
	}

	return s, nil
}

// SaveSettings writes everything but the last trigger timestamp.
func (r *Repository) SaveSettings(ctx context.Context, s Settings) error {
	sql := `
			INSERT INTO rental.announcement_settings(id, enabled, sentences, "sentencesPerPopup", "triggerTimes")
			VALUES (1, $1, $2, $3, $4)
			ON CONFLICT (id) DO UPDATE
			SET enabled = EXCLUDED.enabled,
				sentences = EXCLUDED.sentences,
				"sentencesPerPopup" = EXCLUDED."sentencesPerPopup",
				"triggerTimes" = EXCLUDED."triggerTimes";
		`

	_, err := r.pool.Exec(ctx, sql, s.Enabled, s.Sentences, s.SentencesPerPopup, s.TriggerTimes)

	if err != nil {
		return fmt.Errorf("failed to save announcement settings: %w", err)
	}

	return nil
}

func (r *Repository) SetLastTriggeredAt(ctx context.Context, at time.Time) error {
	sql := `
			INSERT INTO rental.announcement_settings(id, "lastTriggeredAt")
			VALUES (1, $1)
			ON CONFLICT (id) DO UPDATE SET "lastTriggeredAt" = EXCLUDED."lastTriggeredAt";
		`

	_, err := r.pool.Exec(ctx, sql, at)

	if err != nil {
		return fmt.Errorf("failed to record announcement trigger: %w", err)
	}

	return nil
}
