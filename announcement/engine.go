package announcement

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/hanksha/car-rental-booking-backend/metrics"
	"github.com/hanksha/car-rental-booking-backend/push"
)

//go:generate mockgen -source=engine.go -destination=mocks/engine_mock.go -package=mocks

type SettingsStore interface {
	GetSettings(ctx context.Context) (Settings, error)
	SaveSettings(ctx context.Context, s Settings) error
	SetLastTriggeredAt(ctx context.Context, at time.Time) error
}

type Audience interface {
	ListBroadcastable(ctx context.Context) ([]push.Subscription, error)
}

type Deliverer interface {
	Deliver(ctx context.Context, subs []push.Subscription, payload push.Payload) (push.Result, error)
}

type Guard interface {
	Acquire(ctx context.Context, key string) (bool, error)
}

const (
	TypeAnnouncement = "announcement"
	title            = "Announcement"
	link             = "/notifications"
)

type Options struct {
	Tick     time.Duration
	Location *time.Location
}

type Engine struct {
	store     SettingsStore
	audience  Audience
	deliverer Deliverer
	guard     Guard
	tick      time.Duration
	location  *time.Location
	shuffle   func(n int, swap func(i, j int))
	mu        sync.Mutex
	logger    *slog.Logger
}

func NewEngine(store SettingsStore, audience Audience, deliverer Deliverer, guard Guard, opts Options) *Engine {
	if opts.Tick <= 0 {
		opts.Tick = time.Minute
	}

	if opts.Location == nil {
		opts.Location = time.Local
	}

	if guard == nil {
		guard = LocalGuard{}
	}

	return &Engine{
		store:     store,
		audience:  audience,
		deliverer: deliverer,
		guard:     guard,
		tick:      opts.Tick,
		location:  opts.Location,
		shuffle:   rand.Shuffle,
		logger:    slog.Default().With("component", "announcement"),
	}
}

func (e *Engine) WithShuffle(shuffle func(n int, swap func(i, j int))) *Engine {
	e.shuffle = shuffle
	return e
}

func (e *Engine) Run(ctx context.Context) {
	ticker := time.NewTicker(e.tick)
	defer ticker.Stop()

	e.logger.Info("announcement engine started", "tick", e.tick, "location", e.location.String())

	for {
		select {
		case <-ctx.Done():
			e.logger.Info("announcement engine stopped")
			return
		case now := <-ticker.C:
			if _, err := e.Tick(ctx, now); err != nil {
				e.logger.Error("announcement tick failed", "err", err)
			}
		}
	}
}

// Tick reports whether a broadcast was sent.
func (e *Engine) Tick(ctx context.Context, now time.Time) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	settings, err := e.store.GetSettings(ctx)

	if err != nil {
		return false, err
	}

	if !settings.Enabled {
		return false, nil
	}

	local := now.In(e.location)

	if !slices.Contains(settings.TriggerTimes, local.Format(triggerLayout)) {
		return false, nil
	}

	if settings.LastTriggeredAt != nil && sameMinute(*settings.LastTriggeredAt, now) {
		return false, nil
	}

	message := e.Compose(settings)

	if len(message) == 0 {
		e.logger.Warn("announcement pool is empty", "minute", local.Format(triggerLayout))
		return false, nil
	}

	claimed, err := e.guard.Acquire(ctx, local.Format("2006-01-02T15:04"))

	if err != nil {
		e.logger.Warn("announcement guard unavailable, relying on last trigger", "err", err)
		claimed = true
	}

	if !claimed {
		e.logger.Info("announcement minute claimed by another instance", "minute", local.Format(triggerLayout))
		return false, nil
	}

	if _, err := e.send(ctx, message); err != nil {
		return false, err
	}

	if err := e.store.SetLastTriggeredAt(ctx, now); err != nil {
		return true, err
	}

	return true, nil
}

func (e *Engine) TriggerNow(ctx context.Context, sentence string) (push.Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	message := strings.TrimSpace(sentence)

	if len(message) == 0 {
		settings, err := e.store.GetSettings(ctx)

		if err != nil {
			return push.Result{}, err
		}

		message = e.Compose(settings)
	}

	if len(message) == 0 {
		return push.Result{}, nil
	}

	return e.send(ctx, message)
}

func (e *Engine) Compose(settings Settings) string {
	if len(settings.Sentences) == 0 {
		return ""
	}

	pool := slices.Clone(settings.Sentences)
	e.shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	n := max(settings.SentencesPerPopup, 1)
	n = min(n, len(pool))

	return strings.Join(pool[:n], " ")
}

func (e *Engine) GetSettings(ctx context.Context) (Settings, error) {
	return e.store.GetSettings(ctx)
}

func (e *Engine) UpdateSettings(ctx context.Context, settings Settings) (Settings, error) {
	settings, err := settings.normalize()

	if err != nil {
		return Settings{}, err
	}

	if err := e.store.SaveSettings(ctx, settings); err != nil {
		return Settings{}, err
	}

	return e.store.GetSettings(ctx)
}

func (e *Engine) send(ctx context.Context, message string) (push.Result, error) {
	subs, err := e.audience.ListBroadcastable(ctx)

	if err != nil {
		return push.Result{}, err
	}

	result, err := e.deliverer.Deliver(ctx, subs, push.Payload{
		Title: title,
		Body:  message,
		URL:   link,
		Type:  TypeAnnouncement,
	})

	if err != nil {
		return push.Result{}, err
	}

	metrics.AnnouncementsBroadcast.Inc()

	e.logger.Info("announcement broadcast",
		"devices", len(subs),
		"sent", result.Sent,
		"pruned", result.Pruned,
		"failed", result.Failed,
	)

	return result, nil
}

func sameMinute(a, b time.Time) bool {
	return a.Truncate(time.Minute).Equal(b.Truncate(time.Minute))
}
