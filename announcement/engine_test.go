package announcement_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hanksha/car-rental-booking-backend/announcement"
	an_mocks "github.com/hanksha/car-rental-booking-backend/announcement/mocks"
	"github.com/hanksha/car-rental-booking-backend/push"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	store     *an_mocks.MockSettingsStore
	audience  *an_mocks.MockAudience
	deliverer *an_mocks.MockDeliverer
	guard     *an_mocks.MockGuard
	engine    *announcement.Engine
	ctx       context.Context
}

func keepOrder(int, func(i, j int)) {}

func newTestDeps(t *testing.T, loc *time.Location) (*gomock.Controller, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	store := an_mocks.NewMockSettingsStore(ctrl)
	audience := an_mocks.NewMockAudience(ctrl)
	deliverer := an_mocks.NewMockDeliverer(ctrl)
	guard := an_mocks.NewMockGuard(ctrl)
	engine := announcement.NewEngine(store, audience, deliverer, guard, announcement.Options{Location: loc}).WithShuffle(keepOrder)

	return ctrl, testDeps{
		store: store, audience: audience, deliverer: deliverer, guard: guard, engine: engine, ctx: context.Background(),
	}
}

func clock(hour, minute, second int) time.Time {
	return time.Date(2026, time.March, 10, hour, minute, second, 0, time.UTC)
}

var devices = []push.Subscription{
	{UserID: "u1", Endpoint: "https://push.example.com/1"},
	{UserID: "u2", Endpoint: "https://push.example.com/2"},
}

func enabledSettings() announcement.Settings {
	return announcement.Settings{
		Enabled:           true,
		Sentences:         []string{"Drive safe.", "Book early for weekends."},
		SentencesPerPopup: 1,
		TriggerTimes:      []string{"09:00", "18:30"},
	}
}

func TestTick(t *testing.T) {

	t.Run("broadcasts once per trigger minute", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t, time.UTC)
		defer ctrl.Finish()

		settings := enabledSettings()

		testDeps.store.EXPECT().GetSettings(testDeps.ctx).DoAndReturn(func(context.Context) (announcement.Settings, error) {
			return settings, nil
		}).Times(3)
		testDeps.store.EXPECT().SetLastTriggeredAt(testDeps.ctx, clock(9, 0, 0)).DoAndReturn(func(_ context.Context, at time.Time) error {
			settings.LastTriggeredAt = &at
			return nil
		}).Times(1)
		testDeps.guard.EXPECT().Acquire(testDeps.ctx, "2026-03-10T09:00").Return(true, nil).Times(1)
		testDeps.audience.EXPECT().ListBroadcastable(testDeps.ctx).Return(devices, nil).Times(1)
		testDeps.deliverer.EXPECT().Deliver(testDeps.ctx, devices, push.Payload{
			Title: "Announcement",
			Body:  "Drive safe.",
			URL:   "/notifications",
			Type:  announcement.TypeAnnouncement,
		}).Return(push.Result{Sent: 2}, nil).Times(1)

		sent, err := testDeps.engine.Tick(testDeps.ctx, clock(9, 0, 0))
		require.Nil(t, err)
		require.True(t, sent)

		sent, err = testDeps.engine.Tick(testDeps.ctx, clock(9, 0, 40))
		require.Nil(t, err)
		require.False(t, sent)

		sent, err = testDeps.engine.Tick(testDeps.ctx, clock(9, 1, 0))
		require.Nil(t, err)
		require.False(t, sent)
	})

	t.Run("trigger times are local to the configured zone", func(t *testing.T) {
		ist := time.FixedZone("IST", 5*3600+1800)

		ctrl, testDeps := newTestDeps(t, ist)
		defer ctrl.Finish()

		testDeps.store.EXPECT().GetSettings(testDeps.ctx).Return(enabledSettings(), nil).Times(1)
		testDeps.guard.EXPECT().Acquire(testDeps.ctx, "2026-03-10T09:00").Return(true, nil).Times(1)
		testDeps.audience.EXPECT().ListBroadcastable(testDeps.ctx).Return(devices, nil).Times(1)
		testDeps.deliverer.EXPECT().Deliver(testDeps.ctx, devices, gomock.Any()).Return(push.Result{Sent: 2}, nil).Times(1)
		testDeps.store.EXPECT().SetLastTriggeredAt(testDeps.ctx, clock(3, 30, 0)).Return(nil).Times(1)

		sent, err := testDeps.engine.Tick(testDeps.ctx, clock(3, 30, 0))

		require.Nil(t, err)
		require.True(t, sent)
	})

	t.Run("disabled", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t, time.UTC)
		defer ctrl.Finish()

		settings := enabledSettings()
		settings.Enabled = false

		testDeps.store.EXPECT().GetSettings(testDeps.ctx).Return(settings, nil).Times(1)
		testDeps.deliverer.EXPECT().Deliver(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		sent, err := testDeps.engine.Tick(testDeps.ctx, clock(9, 0, 0))

		require.Nil(t, err)
		require.False(t, sent)
	})

	t.Run("empty pool", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t, time.UTC)
		defer ctrl.Finish()

		settings := enabledSettings()
		settings.Sentences = nil

		testDeps.store.EXPECT().GetSettings(testDeps.ctx).Return(settings, nil).Times(1)
		testDeps.guard.EXPECT().Acquire(gomock.Any(), gomock.Any()).Times(0)
		testDeps.deliverer.EXPECT().Deliver(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		testDeps.store.EXPECT().SetLastTriggeredAt(gomock.Any(), gomock.Any()).Times(0)

		sent, err := testDeps.engine.Tick(testDeps.ctx, clock(9, 0, 0))

		require.Nil(t, err)
		require.False(t, sent)
	})

	t.Run("minute claimed by another instance", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t, time.UTC)
		defer ctrl.Finish()

		testDeps.store.EXPECT().GetSettings(testDeps.ctx).Return(enabledSettings(), nil).Times(1)
		testDeps.guard.EXPECT().Acquire(testDeps.ctx, "2026-03-10T18:30").Return(false, nil).Times(1)
		testDeps.deliverer.EXPECT().Deliver(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		testDeps.store.EXPECT().SetLastTriggeredAt(gomock.Any(), gomock.Any()).Times(0)

		sent, err := testDeps.engine.Tick(testDeps.ctx, clock(18, 30, 5))

		require.Nil(t, err)
		require.False(t, sent)
	})

	t.Run("guard failure falls back to the last trigger", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t, time.UTC)
		defer ctrl.Finish()

		testDeps.store.EXPECT().GetSettings(testDeps.ctx).Return(enabledSettings(), nil).Times(1)
		testDeps.guard.EXPECT().Acquire(testDeps.ctx, gomock.Any()).Return(false, errors.New("redis down")).Times(1)
		testDeps.audience.EXPECT().ListBroadcastable(testDeps.ctx).Return(devices, nil).Times(1)
		testDeps.deliverer.EXPECT().Deliver(testDeps.ctx, devices, gomock.Any()).Return(push.Result{Sent: 2}, nil).Times(1)
		testDeps.store.EXPECT().SetLastTriggeredAt(testDeps.ctx, gomock.Any()).Return(nil).Times(1)

		sent, err := testDeps.engine.Tick(testDeps.ctx, clock(9, 0, 0))

		require.Nil(t, err)
		require.True(t, sent)
	})

	t.Run("settings error", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t, time.UTC)
		defer ctrl.Finish()

		testDeps.store.EXPECT().GetSettings(testDeps.ctx).Return(announcement.Settings{}, errors.New("repo error")).Times(1)

		_, err := testDeps.engine.Tick(testDeps.ctx, clock(9, 0, 0))

		require.Error(t, err)
	})

	t.Run("delivery error keeps the minute open", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t, time.UTC)
		defer ctrl.Finish()

		testDeps.store.EXPECT().GetSettings(testDeps.ctx).Return(enabledSettings(), nil).Times(1)
		testDeps.guard.EXPECT().Acquire(testDeps.ctx, gomock.Any()).Return(true, nil).Times(1)
		testDeps.audience.EXPECT().ListBroadcastable(testDeps.ctx).Return(nil, errors.New("repo error")).Times(1)
		testDeps.store.EXPECT().SetLastTriggeredAt(gomock.Any(), gomock.Any()).Times(0)

		sent, err := testDeps.engine.Tick(testDeps.ctx, clock(9, 0, 0))

		require.Error(t, err)
		require.False(t, sent)
	})
}

func TestCompose(t *testing.T) {
	ctrl, testDeps := newTestDeps(t, time.UTC)
	defer ctrl.Finish()

	settings := announcement.Settings{Sentences: []string{"One.", "Two.", "Three."}}

	settings.SentencesPerPopup = 2
	require.Equal(t, "One. Two.", testDeps.engine.Compose(settings))

	settings.SentencesPerPopup = 0
	require.Equal(t, "One.", testDeps.engine.Compose(settings))

	settings.SentencesPerPopup = 10
	require.Equal(t, "One. Two. Three.", testDeps.engine.Compose(settings))

	require.Equal(t, "", testDeps.engine.Compose(announcement.Settings{SentencesPerPopup: 1}))
}

func TestComposeShuffles(t *testing.T) {
	engine := announcement.NewEngine(nil, nil, nil, nil, announcement.Options{})
	settings := announcement.Settings{Sentences: []string{"One.", "Two.", "Three."}, SentencesPerPopup: 1}

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		seen[engine.Compose(settings)] = true
	}

	require.Subset(t, []string{"One.", "Two.", "Three."}, keys(seen))
	require.Greater(t, len(seen), 1)
	// the pool itself is left untouched
	require.Equal(t, []string{"One.", "Two.", "Three."}, settings.Sentences)
}

func keys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestTriggerNow(t *testing.T) {

	t.Run("specific sentence skips the pool", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t, time.UTC)
		defer ctrl.Finish()

		testDeps.store.EXPECT().GetSettings(gomock.Any()).Times(0)
		testDeps.guard.EXPECT().Acquire(gomock.Any(), gomock.Any()).Times(0)
		testDeps.audience.EXPECT().ListBroadcastable(testDeps.ctx).Return(devices, nil).Times(1)
		testDeps.deliverer.EXPECT().Deliver(testDeps.ctx, devices, push.Payload{
			Title: "Announcement",
			Body:  "Test message",
			URL:   "/notifications",
			Type:  announcement.TypeAnnouncement,
		}).Return(push.Result{Sent: 1, Pruned: 1}, nil).Times(1)
		testDeps.store.EXPECT().SetLastTriggeredAt(gomock.Any(), gomock.Any()).Times(0)

		result, err := testDeps.engine.TriggerNow(testDeps.ctx, "  Test message ")

		require.Nil(t, err)
		require.Equal(t, push.Result{Sent: 1, Pruned: 1}, result)
	})

	t.Run("composes from the pool even when disabled", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t, time.UTC)
		defer ctrl.Finish()

		settings := enabledSettings()
		settings.Enabled = false

		testDeps.store.EXPECT().GetSettings(testDeps.ctx).Return(settings, nil).Times(1)
		testDeps.audience.EXPECT().ListBroadcastable(testDeps.ctx).Return(devices, nil).Times(1)
		testDeps.deliverer.EXPECT().Deliver(testDeps.ctx, devices, gomock.Any()).DoAndReturn(func(_ context.Context, _ []push.Subscription, p push.Payload) (push.Result, error) {
			require.Equal(t, "Drive safe.", p.Body)
			return push.Result{Sent: 2}, nil
		}).Times(1)

		_, err := testDeps.engine.TriggerNow(testDeps.ctx, "")

		require.Nil(t, err)
	})

	t.Run("empty pool sends nothing", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t, time.UTC)
		defer ctrl.Finish()

		testDeps.store.EXPECT().GetSettings(testDeps.ctx).Return(announcement.DefaultSettings(), nil).Times(1)
		testDeps.deliverer.EXPECT().Deliver(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		result, err := testDeps.engine.TriggerNow(testDeps.ctx, "")

		require.Nil(t, err)
		require.Equal(t, push.Result{}, result)
	})
}

func TestUpdateSettings(t *testing.T) {

	t.Run("normalizes before saving", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t, time.UTC)
		defer ctrl.Finish()

		input := announcement.Settings{
			Enabled:      true,
			Sentences:    []string{" Drive safe. ", "", "Book early."},
			TriggerTimes: []string{"09:00", "09:00", "21:15"},
		}
		want := announcement.Settings{
			Enabled:           true,
			Sentences:         []string{"Drive safe.", "Book early."},
			SentencesPerPopup: 1,
			TriggerTimes:      []string{"09:00", "21:15"},
		}

		testDeps.store.EXPECT().SaveSettings(testDeps.ctx, want).Return(nil).Times(1)
		testDeps.store.EXPECT().GetSettings(testDeps.ctx).Return(want, nil).Times(1)

		got, err := testDeps.engine.UpdateSettings(testDeps.ctx, input)

		require.Nil(t, err)
		require.Equal(t, want, got)
	})

	t.Run("invalid trigger time", func(t *testing.T) {
		for _, bad := range []string{"9:00", "24:00", "09:60", "nine"} {
			ctrl, testDeps := newTestDeps(t, time.UTC)

			testDeps.store.EXPECT().SaveSettings(gomock.Any(), gomock.Any()).Times(0)

			_, err := testDeps.engine.UpdateSettings(testDeps.ctx, announcement.Settings{TriggerTimes: []string{bad}})

			require.ErrorIs(t, err, announcement.ErrInvalidSettings, bad)
			ctrl.Finish()
		}
	})
}

func TestRunStopsWithContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := an_mocks.NewMockSettingsStore(ctrl)
	store.EXPECT().GetSettings(gomock.Any()).Return(announcement.DefaultSettings(), nil).AnyTimes()

	engine := announcement.NewEngine(store, nil, nil, nil, announcement.Options{Tick: 5 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		engine.Run(ctx)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("engine did not stop")
	}
}

func TestLocalGuard(t *testing.T) {
	ok, err := announcement.LocalGuard{}.Acquire(context.Background(), "2026-03-10T09:00")

	require.Nil(t, err)
	require.True(t, ok)
}
