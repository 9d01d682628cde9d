package notification

import (
	"context"
	"log/slog"
	"sync"

	"github.com/hanksha/car-rental-booking-backend/account"
	"github.com/hanksha/car-rental-booking-backend/metrics"
	"github.com/hanksha/car-rental-booking-backend/push"
)

//go:generate mockgen -source=dispatcher.go -destination=mocks/dispatcher_mock.go -package=mocks

type NotificationRepository interface {
	InsertNotification(ctx context.Context, n Notification) (Notification, error)
	GetNotifications(ctx context.Context, recipient string, unreadOnly bool) ([]Notification, error)
	CountUnread(ctx context.Context, recipient string) (int, error)
	MarkRead(ctx context.Context, id, recipient string) error
	MarkAllRead(ctx context.Context, recipient string) (int64, error)
	DeleteNotification(ctx context.Context, id string) error
}

type LiveChannel interface {
	Emit(userID, event string, payload any) int
}

type PushChannel interface {
	DeliverToUser(ctx context.Context, userID string, payload push.Payload) (push.Result, error)
}

type StaffDirectory interface {
	ListStaff(ctx context.Context) ([]account.User, error)
}

type RecipientPolicy func(user account.User) bool

// SuperadminOptOut lets superadmins silence staff notices.
func SuperadminOptOut(user account.User) bool {
	if user.Role == account.RoleSuperadmin {
		return user.NotificationsEnabled
	}
	return true
}

type Dispatcher struct {
	repo     NotificationRepository
	live     LiveChannel
	push     PushChannel
	staff    StaffDirectory
	policies []RecipientPolicy
	logger   *slog.Logger
}

func NewDispatcher(repo NotificationRepository, live LiveChannel, push PushChannel, staff StaffDirectory, policies ...RecipientPolicy) *Dispatcher {
	if len(policies) == 0 {
		policies = []RecipientPolicy{SuperadminOptOut}
	}

	return &Dispatcher{
		repo:     repo,
		live:     live,
		push:     push,
		staff:    staff,
		policies: policies,
		logger:   slog.Default().With("component", "notification"),
	}
}

// Only the persistence error is returned.
func (d *Dispatcher) Dispatch(ctx context.Context, notice Notice) (Notification, error) {
	n, err := d.persist(ctx, notice)

	if err != nil {
		return Notification{}, err
	}

	d.deliver(ctx, n)

	return n, nil
}

func (d *Dispatcher) persist(ctx context.Context, notice Notice) (Notification, error) {
	n := Notification{
		Recipient: notice.Recipient,
		Message:   notice.Message,
		Type:      notice.Type,
	}

	if len(notice.BookingID) > 0 {
		n.BookingID = &notice.BookingID
	}

	n, err := d.repo.InsertNotification(ctx, n)

	if err != nil {
		return Notification{}, err
	}

	metrics.NotificationsDispatched.WithLabelValues(n.Type).Inc()

	return n, nil
}

func (d *Dispatcher) deliver(ctx context.Context, n Notification) {
	if d.live != nil {
		if delivered := d.live.Emit(n.Recipient, EventNotification, n); delivered == 0 {
			d.logger.Debug("recipient has no live connection", "recipient", n.Recipient, "id", n.ID)
		}
	}

	if d.push == nil {
		return
	}

	payload := push.Payload{
		Title: titleFor(n.Type),
		Body:  n.Message,
		URL:   linkFor(n.BookingID),
		Type:  n.Type,
	}

	if n.BookingID != nil {
		payload.BookingID = *n.BookingID
	}

	result, err := d.push.DeliverToUser(ctx, n.Recipient, payload)

	if err != nil {
		d.logger.Warn("push delivery failed", "recipient", n.Recipient, "id", n.ID, "err", err)
	} else if result.Failed > 0 {
		d.logger.Warn("some push deliveries failed", "recipient", n.Recipient, "id", n.ID, "failed", result.Failed)
	}
}

func (d *Dispatcher) Notify(ctx context.Context, recipient, message, notifType, bookingID string) error {
	_, err := d.Dispatch(ctx, Notice{
		Recipient: recipient,
		Message:   message,
		Type:      notifType,
		BookingID: bookingID,
	})
	return err
}

func (d *Dispatcher) NotifyStaff(ctx context.Context, message, notifType, bookingID string) error {
	staff, err := d.staff.ListStaff(ctx)

	if err != nil {
		return err
	}

	var stored []Notification

	for _, user := range staff {
		if !d.allowed(user) {
			d.logger.Debug("staff member opted out", "user", user.ID, "type", notifType)
			continue
		}

		n, err := d.persist(ctx, Notice{Recipient: user.ID, Message: message, Type: notifType, BookingID: bookingID})

		if err != nil {
			d.logger.Error("failed to notify staff member", "user", user.ID, "type", notifType, "err", err)
			continue
		}

		stored = append(stored, n)
	}

	var wg sync.WaitGroup

	for _, n := range stored {
		wg.Add(1)

		go func(n Notification) {
			defer wg.Done()
			d.deliver(ctx, n)
		}(n)
	}

	wg.Wait()

	return nil
}

func (d *Dispatcher) allowed(user account.User) bool {
	for _, policy := range d.policies {
		if !policy(user) {
			return false
		}
	}
	return true
}

func (d *Dispatcher) List(ctx context.Context, recipient string, unreadOnly bool) ([]Notification, error) {
	notifications, err := d.repo.GetNotifications(ctx, recipient, unreadOnly)

	if err != nil {
		return nil, err
	}

	if notifications == nil {
		notifications = []Notification{}
	}

	return notifications, nil
}

func (d *Dispatcher) UnreadCount(ctx context.Context, recipient string) (int, error) {
	return d.repo.CountUnread(ctx, recipient)
}

func (d *Dispatcher) MarkRead(ctx context.Context, id, recipient string) error {
	return d.repo.MarkRead(ctx, id, recipient)
}

func (d *Dispatcher) MarkAllRead(ctx context.Context, recipient string) (int64, error) {
	return d.repo.MarkAllRead(ctx, recipient)
}

func (d *Dispatcher) Delete(ctx context.Context, id string) error {
	return d.repo.DeleteNotification(ctx, id)
}
