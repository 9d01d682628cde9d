package booking

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Locker runs fn while holding every key.
type Locker interface {
	WithLock(ctx context.Context, keys []string, fn func(ctx context.Context) error) error
}

func normalizeKeys(keys []string) []string {
	sorted := slices.Clone(keys)
	slices.Sort(sorted)
	return slices.Compact(sorted)
}

type KeyedMutex struct {
	mu    sync.Mutex
	slots map[string]*keySlot
}

type keySlot struct {
	ch   chan struct{}
	refs int
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{slots: make(map[string]*keySlot)}
}

func (m *KeyedMutex) WithLock(ctx context.Context, keys []string, fn func(ctx context.Context) error) error {
	unlock, err := m.Lock(ctx, keys)

	if err != nil {
		return err
	}

	defer unlock()

	return fn(ctx)
}

func (m *KeyedMutex) Lock(ctx context.Context, keys []string) (func(), error) {
	keys = normalizeKeys(keys)
	held := make([]string, 0, len(keys))

	release := func() {
		for i := len(held) - 1; i >= 0; i-- {
			m.release(held[i])
		}
	}

	for _, key := range keys {
		if err := m.acquire(ctx, key); err != nil {
			release()
			return nil, fmt.Errorf("failed to lock %v: %w", key, err)
		}
		held = append(held, key)
	}

	return release, nil
}

func (m *KeyedMutex) acquire(ctx context.Context, key string) error {
	m.mu.Lock()
	slot, ok := m.slots[key]
	if !ok {
		slot = &keySlot{ch: make(chan struct{}, 1)}
		m.slots[key] = slot
	}
	slot.refs++
	m.mu.Unlock()

	select {
	case slot.ch <- struct{}{}:
		return nil
	case <-ctx.Done():
		m.unref(key, slot)
		return ctx.Err()
	}
}

func (m *KeyedMutex) release(key string) {
	m.mu.Lock()
	slot := m.slots[key]
	m.mu.Unlock()

	<-slot.ch
	m.unref(key, slot)
}

func (m *KeyedMutex) unref(key string, slot *keySlot) {
	m.mu.Lock()
	defer m.mu.Unlock()

	slot.refs--
	if slot.refs == 0 {
		delete(m.slots, key)
	}
}

// PgLocker runs fn in the transaction holding the advisory locks.
type PgLocker struct {
	pool        *pgxpool.Pool
	lockTimeout time.Duration
}

func NewPgLocker(pool *pgxpool.Pool, lockTimeout time.Duration) *PgLocker {
	if lockTimeout <= 0 {
		lockTimeout = 10 * time.Second
	}
	return &PgLocker{pool: pool, lockTimeout: lockTimeout}
}

func (l *PgLocker) WithLock(ctx context.Context, keys []string, fn func(ctx context.Context) error) error {
	tx, err := l.pool.Begin(ctx)

	if err != nil {
		return fmt.Errorf("failed to begin locked transaction: %w", err)
	}

	defer tx.Rollback(context.WithoutCancel(ctx))

	_, err = tx.Exec(ctx, fmt.Sprintf("SET LOCAL lock_timeout = %d", l.lockTimeout.Milliseconds()))

	if err != nil {
		return fmt.Errorf("failed to set lock timeout: %w", err)
	}

	for _, key := range normalizeKeys(keys) {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, key); err != nil {
			return fmt.Errorf("failed to lock %v: %w", key, err)
		}
	}

	if err := fn(withTx(ctx, tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit locked transaction: %w", err)
	}

	return nil
}
