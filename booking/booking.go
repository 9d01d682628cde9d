package booking

import "time"

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusRejected  = "rejected"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

const (
	KindCarOnly       = "car_only"
	KindDriverOnly    = "driver_only"
	KindCarWithDriver = "car_with_driver"
)

const CarStatusAvailable = "available"

type Booking struct {
	ID              string    `json:"id"`
	CustomerName    string    `json:"customerName"`
	CustomerContact string    `json:"customerContact"`
	Kind            string    `json:"bookingType"`
	CarID           *string   `json:"carId,omitempty"`
	DriverID        *string   `json:"driverId,omitempty"`
	Start           time.Time `json:"startDate"`
	End             time.Time `json:"endDate"`
	Status          string    `json:"status"` // pending, confirmed, rejected, completed, cancelled
	PickupLocation  string    `json:"pickupLocation"`
	DropLocation    string    `json:"dropLocation"`
	Amounts
	AdminID    string    `json:"adminId"`
	CustomerID *string   `json:"customerId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Amounts stays nil until an admin prices the booking.
type Amounts struct {
	TotalAmount    *float64 `json:"totalAmount"`
	CarRate        *float64 `json:"carRate,omitempty"`
	DriverRate     *float64 `json:"driverRate,omitempty"`
	ExtraKmPrice   *float64 `json:"extraKmPrice,omitempty"`
	ExtraTimePrice *float64 `json:"extraTimePrice,omitempty"`
}

// Patch is a partial update; nil fields are left untouched.
type Patch struct {
	Status *string `json:"status,omitempty"`
	Amounts
}

func (p Patch) hasAmounts() bool {
	return p.TotalAmount != nil || p.CarRate != nil || p.DriverRate != nil ||
		p.ExtraKmPrice != nil || p.ExtraTimePrice != nil
}

func (a *Amounts) apply(p Amounts) {
	if p.TotalAmount != nil {
		a.TotalAmount = p.TotalAmount
	}
	if p.CarRate != nil {
		a.CarRate = p.CarRate
	}
	if p.DriverRate != nil {
		a.DriverRate = p.DriverRate
	}
	if p.ExtraKmPrice != nil {
		a.ExtraKmPrice = p.ExtraKmPrice
	}
	if p.ExtraTimePrice != nil {
		a.ExtraTimePrice = p.ExtraTimePrice
	}
}

type Slot struct {
	Start  time.Time `json:"startDate"`
	End    time.Time `json:"endDate"`
	Status string    `json:"status"`
}

type Requester struct {
	ID    string
	Staff bool
}

type CarBookingCount struct {
	CarID string `json:"carId"`
	Count int    `json:"bookingCount"`
}

type WeekDayBookingCount struct {
	WeekDay string `json:"dayOfWeek"`
	Count   int    `json:"bookingCount"`
}
