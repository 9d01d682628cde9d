package push

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/SherClockHolmes/webpush-go"
)

type VAPIDConfig struct {
	PublicKey  string
	PrivateKey string
	Subscriber string
	TTL        int
}

type WebPushSender struct {
	vapid  VAPIDConfig
	client *http.Client
}

func NewWebPushSender(vapid VAPIDConfig, client *http.Client) *WebPushSender {
	if client == nil {
		client = http.DefaultClient
	}

	if vapid.TTL <= 0 {
		vapid.TTL = 60
	}

	return &WebPushSender{vapid: vapid, client: client}
}

// GenerateVAPIDKeys returns a fresh (private, public) key pair.
func GenerateVAPIDKeys() (string, string, error) {
	return webpush.GenerateVAPIDKeys()
}

func (s *WebPushSender) PublicKey() string {
	return s.vapid.PublicKey
}

func (s *WebPushSender) Send(ctx context.Context, sub Subscription, payload []byte) error {
	res, err := webpush.SendNotificationWithContext(ctx, payload, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256dh,
			Auth:   sub.Auth,
		},
	}, &webpush.Options{
		HTTPClient:      s.client,
		Subscriber:      s.vapid.Subscriber,
		VAPIDPublicKey:  s.vapid.PublicKey,
		VAPIDPrivateKey: s.vapid.PrivateKey,
		TTL:             s.vapid.TTL,
		Urgency:         webpush.UrgencyHigh,
	})

	if err != nil {
		return fmt.Errorf("failed to send push: %w", err)
	}

	defer res.Body.Close()

	return classifyResponse(res)
}

func classifyResponse(res *http.Response) error {
	switch {
	case res.StatusCode == http.StatusNotFound || res.StatusCode == http.StatusGone:
		return fmt.Errorf("push service answered %d: %w", res.StatusCode, ErrSubscriptionGone)
	case res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices:
		body, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return fmt.Errorf("push service answered %d: %v", res.StatusCode, strings.TrimSpace(string(body)))
	default:
		return nil
	}
}
