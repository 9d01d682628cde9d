package notification

import (
	"errors"
	"time"
)

const (
	TypeBookingCreated   = "booking_created"
	TypeBookingApproved  = "booking_approved"
	TypeBookingRejected  = "booking_rejected"
	TypeBookingCancelled = "booking_cancelled"
)

const EventNotification = "notification"

var ErrNotificationNotFound = errors.New("notification not found")

type Notification struct {
	ID        string    `json:"id"`
	Recipient string    `json:"recipient"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"isRead"`
	BookingID *string   `json:"bookingId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Notice struct {
	Recipient string
	Message   string
	Type      string
	BookingID string
}

// InboxPath is the push click target for notices without a booking.
const InboxPath = "/notifications"

func linkFor(bookingID *string) string {
	if bookingID == nil || len(*bookingID) == 0 {
		return InboxPath
	}
	return "/bookings/" + *bookingID
}

func titleFor(notifType string) string {
	switch notifType {
	case TypeBookingCreated:
		return "New booking request"
	case TypeBookingApproved:
		return "Booking approved"
	case TypeBookingRejected:
		return "Booking rejected"
	case TypeBookingCancelled:
		return "Booking cancelled"
	default:
		return "Notification"
	}
}
