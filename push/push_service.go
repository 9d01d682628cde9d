package push

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/hanksha/car-rental-booking-backend/metrics"
)

//go:generate mockgen -source=push_service.go -destination=mocks/push_service_mock.go -package=mocks

type Sender interface {
	Send(ctx context.Context, sub Subscription, payload []byte) error
}

type SubscriptionStore interface {
	SaveSubscription(ctx context.Context, sub Subscription) (Subscription, error)
	ListByUser(ctx context.Context, userID string) ([]Subscription, error)
	RemoveSubscription(ctx context.Context, userID, endpoint string) error
}

type Result struct {
	Sent   int `json:"sent"`
	Pruned int `json:"pruned"`
	Failed int `json:"failed"`
}

type Service struct {
	sender  Sender
	store   SubscriptionStore
	timeout time.Duration
	logger  *slog.Logger
}

func NewService(sender Sender, store SubscriptionStore, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Service{
		sender:  sender,
		store:   store,
		timeout: timeout,
		logger:  slog.Default().With("component", "push"),
	}
}

func (s *Service) Subscribe(ctx context.Context, sub Subscription) (Subscription, error) {
	if len(strings.TrimSpace(sub.Endpoint)) == 0 || len(sub.P256dh) == 0 || len(sub.Auth) == 0 {
		return Subscription{}, ErrInvalidSubscription
	}

	return s.store.SaveSubscription(ctx, sub)
}

func (s *Service) Unsubscribe(ctx context.Context, userID, endpoint string) error {
	return s.store.RemoveSubscription(ctx, userID, endpoint)
}

func (s *Service) DeliverToUser(ctx context.Context, userID string, payload Payload) (Result, error) {
	subs, err := s.store.ListByUser(ctx, userID)

	if err != nil {
		return Result{}, err
	}

	return s.Deliver(ctx, subs, payload)
}

// Deliver removes subscriptions reported gone.
func (s *Service) Deliver(ctx context.Context, subs []Subscription, payload Payload) (Result, error) {
	if len(subs) == 0 {
		return Result{}, nil
	}

	body, err := json.Marshal(payload)

	if err != nil {
		return Result{}, fmt.Errorf("failed to marshal push payload: %w", err)
	}

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		result Result
	)

	for _, sub := range subs {
		wg.Add(1)

		go func(sub Subscription) {
			defer wg.Done()

			outcome := s.deliverOne(ctx, sub, body)

			mu.Lock()
			defer mu.Unlock()

			switch outcome {
			case outcomeSent:
				result.Sent++
			case outcomeGone:
				result.Pruned++
			default:
				result.Failed++
			}
		}(sub)
	}

	wg.Wait()

	return result, nil
}

const (
	outcomeSent   = "sent"
	outcomeGone   = "gone"
	outcomeFailed = "failed"
)

func (s *Service) deliverOne(ctx context.Context, sub Subscription, body []byte) string {
	sendCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	err := s.sender.Send(sendCtx, sub, body)

	switch {
	case err == nil:
		metrics.PushDeliveries.WithLabelValues(outcomeSent).Inc()
		return outcomeSent
	case errors.Is(err, ErrSubscriptionGone):
		metrics.PushDeliveries.WithLabelValues(outcomeGone).Inc()

		if err := s.store.RemoveSubscription(ctx, sub.UserID, sub.Endpoint); err != nil {
			s.logger.Error("failed to prune stale subscription", "user", sub.UserID, "endpoint", sub.Endpoint, "err", err)
		} else {
			s.logger.Info("pruned stale subscription", "user", sub.UserID, "endpoint", sub.Endpoint)
		}

		return outcomeGone
	default:
		metrics.PushDeliveries.WithLabelValues(outcomeFailed).Inc()
		s.logger.Warn("push delivery failed", "user", sub.UserID, "endpoint", sub.Endpoint, "err", err)
		return outcomeFailed
	}
}
