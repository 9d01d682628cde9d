package push

import (
	"errors"
	"time"
)

// ErrSubscriptionGone means the push service expired the endpoint.
var ErrSubscriptionGone = errors.New("push subscription gone")

var ErrInvalidSubscription = errors.New("invalid push subscription")

type Subscription struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Endpoint  string    `json:"endpoint"`
	P256dh    string    `json:"p256dh"`
	Auth      string    `json:"auth"`
	CreatedAt time.Time `json:"createdAt"`
}

type Payload struct {
	Title     string `json:"title"`
	Body      string `json:"body"`
	URL       string `json:"url"`
	Type      string `json:"type,omitempty"`
	BookingID string `json:"bookingId,omitempty"`
}
