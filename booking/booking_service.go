package booking

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hanksha/car-rental-booking-backend/metrics"
	"github.com/hanksha/car-rental-booking-backend/notification"
)

//go:generate mockgen -source=booking_service.go -destination=mocks/booking_service_mock.go -package=mocks

type BookingRepository interface {
	GetActiveBookings(ctx context.Context) ([]Booking, error)
	GetBookingByID(ctx context.Context, id string) (Booking, error)
	GetBookingsPerCustomer(ctx context.Context, customerID string) ([]Booking, error)
	FindActiveOverlapping(ctx context.Context, kind ResourceKind, resourceID string, interval Interval) ([]Booking, error)
	GetCarStatus(ctx context.Context, carID string) (string, error)
	InsertBooking(ctx context.Context, b Booking) (Booking, error)
	UpdateBooking(ctx context.Context, b Booking, fromStatus string) error
	SetBookingStatus(ctx context.Context, id string, fromStatus, toStatus string) error
	GetBookingCountPerCar(ctx context.Context) ([]CarBookingCount, error)
	GetBookingCountPerWeekDay(ctx context.Context) ([]WeekDayBookingCount, error)
}

type CustomerDirectory interface {
	FindOrCreateCustomer(ctx context.Context, name, contact string) (string, error)
	FindCustomerByContact(ctx context.Context, contact string) (string, bool, error)
}

type Notifier interface {
	Notify(ctx context.Context, recipient, message, notifType, bookingID string) error
	NotifyStaff(ctx context.Context, message, notifType, bookingID string) error
}

type Options struct {
	CancelWindow        time.Duration
	AvailabilityWindow  time.Duration
	NotifyTimeout       time.Duration
	NotifyStaffOnCancel bool
}

func (o Options) withDefaults() Options {
	if o.CancelWindow <= 0 {
		o.CancelWindow = 10 * time.Minute
	}
	if o.AvailabilityWindow <= 0 {
		o.AvailabilityWindow = 7 * 24 * time.Hour
	}
	if o.NotifyTimeout <= 0 {
		o.NotifyTimeout = 30 * time.Second
	}
	return o
}

type Service struct {
	repo      BookingRepository
	customers CustomerDirectory
	notifier  Notifier
	locker    Locker
	opts      Options
	now       func() time.Time
	logger    *slog.Logger
	tasks     sync.WaitGroup
}

func NewService(repo BookingRepository, customers CustomerDirectory, notifier Notifier, locker Locker, opts Options) *Service {
	return &Service{
		repo:      repo,
		customers: customers,
		notifier:  notifier,
		locker:    locker,
		opts:      opts.withDefaults(),
		now:       time.Now,
		logger:    slog.Default().With("component", "booking"),
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) Drain() {
	s.tasks.Wait()
}

func (s *Service) GetActiveBookings(ctx context.Context) ([]Booking, error) {
	return s.repo.GetActiveBookings(ctx)
}

func (s *Service) FindBookingByID(ctx context.Context, id string) (Booking, error) {
	return s.repo.GetBookingByID(ctx, id)
}

func (s *Service) FindBookingsPerCustomer(ctx context.Context, customerID string) ([]Booking, error) {
	return s.repo.GetBookingsPerCustomer(ctx, customerID)
}

func (s *Service) GetBookingCountPerCar(ctx context.Context) ([]CarBookingCount, error) {
	return s.repo.GetBookingCountPerCar(ctx)
}

func (s *Service) GetBookingCountPerWeekDay(ctx context.Context) ([]WeekDayBookingCount, error) {
	return s.repo.GetBookingCountPerWeekDay(ctx)
}

func (s *Service) CreateBooking(ctx context.Context, candidate Booking, requester Requester) (Booking, error) {
	interval := candidate.Interval()

	if !interval.Valid() {
		return Booking{}, ErrInvalidInterval
	}

	if err := validateKind(candidate); err != nil {
		return Booking{}, err
	}

	if candidate.CarID != nil {
		status, err := s.repo.GetCarStatus(ctx, *candidate.CarID)

		if err != nil {
			return Booking{}, err
		}

		if status != CarStatusAvailable {
			return Booking{}, fmt.Errorf("car %v is %v: %w", *candidate.CarID, status, ErrResourceUnavailable)
		}
	}

	candidate.CustomerContact = NormalizeContact(candidate.CustomerContact)

	if requester.Staff {
		if len(candidate.AdminID) == 0 {
			candidate.AdminID = requester.ID
		}
	} else if len(requester.ID) != 0 {
		candidate.CustomerID = &requester.ID
	}

	if candidate.CustomerID == nil && len(candidate.CustomerContact) != 0 {
		customerID, err := s.customers.FindOrCreateCustomer(ctx, candidate.CustomerName, candidate.CustomerContact)

		if err != nil {
			s.logger.Warn("failed to link customer account", "contact", candidate.CustomerContact, "err", err)
		} else {
			candidate.CustomerID = &customerID
		}
	}

	var booking Booking

	err := s.locker.WithLock(ctx, resourceKeys(candidate), func(ctx context.Context) error {
		for _, kind := range []ResourceKind{ResourceCar, ResourceDriver} {
			ref := candidate.resource(kind)

			if ref == nil {
				continue
			}

			if err := s.checkConflict(ctx, kind, *ref, interval); err != nil {
				return err
			}
		}

		candidate.ID = uuid.NewString()
		candidate.Status = StatusPending
		candidate.CreatedAt = s.now()

		inserted, err := s.repo.InsertBooking(ctx, candidate)

		if err != nil {
			return err
		}

		booking = inserted
		return nil
	})

	if err != nil {
		return Booking{}, err
	}

	metrics.BookingsCreated.Inc()

	message := fmt.Sprintf("New booking request from %v (%v to %v)",
		booking.CustomerName,
		booking.Start.Format(time.DateTime),
		booking.End.Format(time.DateTime),
	)

	s.background(ctx, "notify staff of new booking", func(ctx context.Context) error {
		return s.notifier.NotifyStaff(ctx, message, notification.TypeBookingCreated, booking.ID)
	})

	return booking, nil
}

func (s *Service) checkConflict(ctx context.Context, kind ResourceKind, resourceID string, interval Interval) error {
	existing, err := s.repo.FindActiveOverlapping(ctx, kind, resourceID, interval)

	if err != nil {
		return err
	}

	if clash, found := conflicting(existing, kind, resourceID, interval); found {
		metrics.BookingConflicts.WithLabelValues(string(kind)).Inc()
		s.logger.Info("booking conflict", "resource", kind, "resourceId", resourceID, "existing", clash.ID)
		return &ConflictError{Kind: kind, ResourceID: resourceID}
	}

	return nil
}

func (s *Service) UpdateBooking(ctx context.Context, id string, patch Patch) (Booking, error) {
	var booking Booking
	statusChanged := false

	err := s.locker.WithLock(ctx, []string{bookingKey(id)}, func(ctx context.Context) error {
		current, err := s.repo.GetBookingByID(ctx, id)

		if err != nil {
			return err
		}

		booking = current

		if patch.Status != nil && *patch.Status != current.Status {
			if !canTransition(current.Status, *patch.Status) {
				return fmt.Errorf("%v -> %v: %w", current.Status, *patch.Status, ErrInvalidBookingState)
			}

			booking.Status = *patch.Status
			statusChanged = true
		}

		if !statusChanged && !patch.hasAmounts() {
			return nil
		}

		booking.Amounts.apply(patch.Amounts)

		return s.repo.UpdateBooking(ctx, booking, current.Status)
	})

	if err != nil {
		return Booking{}, err
	}

	if statusChanged {
		s.notifyCustomer(ctx, booking)
	}

	return booking, nil
}

func (s *Service) ApproveBooking(ctx context.Context, id string, amounts Amounts) (Booking, error) {
	status := StatusConfirmed
	return s.UpdateBooking(ctx, id, Patch{Status: &status, Amounts: amounts})
}

func (s *Service) RejectBooking(ctx context.Context, id string) (Booking, error) {
	status := StatusRejected
	return s.UpdateBooking(ctx, id, Patch{Status: &status})
}

func (s *Service) CompleteBooking(ctx context.Context, id string) (Booking, error) {
	status := StatusCompleted
	return s.UpdateBooking(ctx, id, Patch{Status: &status})
}

// CancelBooking does not notify the customer.
func (s *Service) CancelBooking(ctx context.Context, id string, requester Requester) error {
	var booking Booking

	err := s.locker.WithLock(ctx, []string{bookingKey(id)}, func(ctx context.Context) error {
		current, err := s.repo.GetBookingByID(ctx, id)

		if err != nil {
			return err
		}

		booking = current

		if current.Status == StatusCancelled {
			return ErrAlreadyCancelled
		}

		if !requester.Staff && !ownedBy(current, requester) {
			return ErrNotAllowed
		}

		if s.now().Sub(current.CreatedAt) > s.opts.CancelWindow {
			return ErrWindowExpired
		}

		if !canTransition(current.Status, StatusCancelled) {
			return ErrInvalidBookingState
		}

		if err := s.repo.SetBookingStatus(ctx, id, current.Status, StatusCancelled); err != nil {
			return fmt.Errorf("failed to cancel booking: %w", err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	if s.opts.NotifyStaffOnCancel {
		message := fmt.Sprintf("Booking by %v was cancelled by the customer", booking.CustomerName)

		s.background(ctx, "notify staff of cancellation", func(ctx context.Context) error {
			return s.notifier.NotifyStaff(ctx, message, notification.TypeBookingCancelled, booking.ID)
		})
	}

	return nil
}

func (s *Service) GetCarAvailability(ctx context.Context, carID string) ([]Slot, error) {
	now := s.now()
	window := Interval{Start: now, End: now.Add(s.opts.AvailabilityWindow)}

	bookings, err := s.repo.FindActiveOverlapping(ctx, ResourceCar, carID, window)

	if err != nil {
		return nil, err
	}

	slots := []Slot{}

	for _, b := range bookings {
		if !IsActive(b.Status) || !Overlaps(b.Interval(), window) {
			continue
		}
		slots = append(slots, Slot{Start: b.Start, End: b.End, Status: b.Status})
	}

	return slots, nil
}

func (s *Service) notifyCustomer(ctx context.Context, booking Booking) {
	notifType, message := customerNotice(booking)

	if len(notifType) == 0 {
		return
	}

	s.background(ctx, "notify customer of status change", func(ctx context.Context) error {
		recipient, err := s.resolveRecipient(ctx, booking)

		if err != nil {
			return err
		}

		if len(recipient) == 0 {
			s.logger.Warn("no recipient for booking notification", "booking", booking.ID, "type", notifType)
			return nil
		}

		return s.notifier.Notify(ctx, recipient, message, notifType, booking.ID)
	})
}

func (s *Service) resolveRecipient(ctx context.Context, booking Booking) (string, error) {
	if booking.CustomerID != nil && len(*booking.CustomerID) != 0 {
		return *booking.CustomerID, nil
	}

	contact := NormalizeContact(booking.CustomerContact)

	if len(contact) == 0 {
		return "", nil
	}

	id, found, err := s.customers.FindCustomerByContact(ctx, contact)

	if err != nil {
		return "", fmt.Errorf("failed to resolve recipient: %w", err)
	}

	if !found {
		return "", nil
	}

	return id, nil
}

func (s *Service) background(ctx context.Context, name string, fn func(ctx context.Context) error) {
	s.tasks.Add(1)

	go func() {
		defer s.tasks.Done()

		taskCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.opts.NotifyTimeout)
		defer cancel()

		if err := fn(taskCtx); err != nil {
			s.logger.Warn("background task failed", "task", name, "err", err)
		}
	}()
}

func customerNotice(booking Booking) (string, string) {
	switch booking.Status {
	case StatusConfirmed:
		message := "Your booking has been approved"
		if booking.TotalAmount != nil {
			message = fmt.Sprintf("%v. Total amount: %.2f", message, *booking.TotalAmount)
		}
		return notification.TypeBookingApproved, message
	case StatusRejected:
		return notification.TypeBookingRejected, "Your booking request has been rejected"
	case StatusCancelled:
		return notification.TypeBookingCancelled, "Your booking has been cancelled"
	default:
		return "", ""
	}
}

var transitions = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusRejected, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusRejected, StatusCancelled},
}

func canTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func validateKind(b Booking) error {
	hasCar := b.CarID != nil && len(*b.CarID) != 0
	hasDriver := b.DriverID != nil && len(*b.DriverID) != 0

	switch b.Kind {
	case KindCarOnly:
		if !hasCar {
			return fmt.Errorf("%v requires a car: %w", b.Kind, ErrInvalidBooking)
		}
	case KindDriverOnly:
		if !hasDriver {
			return fmt.Errorf("%v requires a driver: %w", b.Kind, ErrInvalidBooking)
		}
	case KindCarWithDriver:
		if !hasCar || !hasDriver {
			return fmt.Errorf("%v requires a car and a driver: %w", b.Kind, ErrInvalidBooking)
		}
	default:
		return fmt.Errorf("unknown booking type '%v': %w", b.Kind, ErrInvalidBooking)
	}

	return nil
}

func resourceKeys(b Booking) []string {
	keys := []string{}

	if b.CarID != nil {
		keys = append(keys, lockKey(ResourceCar, *b.CarID))
	}

	if b.DriverID != nil {
		keys = append(keys, lockKey(ResourceDriver, *b.DriverID))
	}

	return keys
}

func ownedBy(booking Booking, requester Requester) bool {
	return booking.CustomerID != nil && *booking.CustomerID == requester.ID
}

// NormalizeContact keeps the last 10 digits of a phone number.
func NormalizeContact(contact string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, contact)

	if len(digits) > 10 {
		digits = digits[len(digits)-10:]
	}

	return digits
}
