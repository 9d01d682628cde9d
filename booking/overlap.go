package booking

import "time"

type ResourceKind string

const (
	ResourceCar    ResourceKind = "car"
	ResourceDriver ResourceKind = "driver"
)

// Interval is half-open: [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

func (i Interval) Valid() bool {
	return i.End.After(i.Start)
}

func Overlaps(a, b Interval) bool {
	return a.Start.Before(b.End) && a.End.After(b.Start)
}

func IsActive(status string) bool {
	return status != StatusCancelled && status != StatusRejected
}

func (b Booking) Interval() Interval {
	return Interval{Start: b.Start, End: b.End}
}

func (b Booking) resource(kind ResourceKind) *string {
	if kind == ResourceCar {
		return b.CarID
	}
	return b.DriverID
}

func conflicting(existing []Booking, kind ResourceKind, resourceID string, candidate Interval) (Booking, bool) {
	for _, b := range existing {
		ref := b.resource(kind)
		if ref == nil || *ref != resourceID {
			continue
		}
		if IsActive(b.Status) && Overlaps(b.Interval(), candidate) {
			return b, true
		}
	}
	return Booking{}, false
}

func lockKey(kind ResourceKind, resourceID string) string {
	return string(kind) + ":" + resourceID
}

func bookingKey(id string) string {
	return "booking:" + id
}
