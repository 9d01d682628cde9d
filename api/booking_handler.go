package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	bk "github.com/hanksha/car-rental-booking-backend/booking"
)

//go:generate mockgen -source=booking_handler.go -destination=mocks/booking_handler_mock.go -package=mocks

type BookingService interface {
	GetActiveBookings(ctx context.Context) ([]bk.Booking, error)
	FindBookingByID(ctx context.Context, id string) (bk.Booking, error)
	FindBookingsPerCustomer(ctx context.Context, customerID string) ([]bk.Booking, error)
	CreateBooking(ctx context.Context, candidate bk.Booking, requester bk.Requester) (bk.Booking, error)
	UpdateBooking(ctx context.Context, id string, patch bk.Patch) (bk.Booking, error)
	ApproveBooking(ctx context.Context, id string, amounts bk.Amounts) (bk.Booking, error)
	RejectBooking(ctx context.Context, id string) (bk.Booking, error)
	CompleteBooking(ctx context.Context, id string) (bk.Booking, error)
	CancelBooking(ctx context.Context, id string, requester bk.Requester) error
	GetCarAvailability(ctx context.Context, carID string) ([]bk.Slot, error)
	GetBookingCountPerCar(ctx context.Context) ([]bk.CarBookingCount, error)
	GetBookingCountPerWeekDay(ctx context.Context) ([]bk.WeekDayBookingCount, error)
}

type BookingHandler struct {
	service BookingService
}

func NewBookingHandler(service BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(rg *gin.RouterGroup) {
	staffOnly := StaffOnly()
	rg.GET("", staffOnly, h.ListActive)
	rg.GET("/booking/:id", h.GetByID)
	rg.POST("", h.Create)
	rg.PUT("/:id", staffOnly, h.Update)
	rg.PUT("/:id/approve", staffOnly, h.Approve)
	rg.PUT("/:id/reject", staffOnly, h.Reject)
	rg.PUT("/:id/complete", staffOnly, h.Complete)
	rg.PUT("/:id/cancel", h.Cancel)

	rg.GET("/stats/car", staffOnly, h.GetCarStats)
	rg.GET("/stats/day", staffOnly, h.GetDayStats)

	rg.GET("/customer/:customerId", h.GetByCustomer)
}

func (h *BookingHandler) RegisterCars(rg *gin.RouterGroup) {
	rg.GET("/:id/availability", h.GetAvailability)
}

func (h *BookingHandler) ListActive(c *gin.Context) {
	if bookings, err := h.service.GetActiveBookings(c.Request.Context()); err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to retrieve bookings",
		})
	} else {
		c.IndentedJSON(http.StatusOK, bookings)
	}
}

func (h *BookingHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	booking, err := h.service.FindBookingByID(c.Request.Context(), id)

	if err != nil {
		writeBookingError(c, err, "failed to fetch booking")
		return
	}

	user := currentUser(c)

	if !user.Staff() && (booking.CustomerID == nil || *booking.CustomerID != user.ID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}

	c.IndentedJSON(http.StatusOK, booking)
}

func (h *BookingHandler) GetByCustomer(c *gin.Context) {
	customerID := c.Param("customerId")
	user := currentUser(c)

	if !user.Staff() && customerID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed"})
		return
	}

	bookings, err := h.service.FindBookingsPerCustomer(c.Request.Context(), customerID)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to get bookings",
		})
		return
	}

	c.IndentedJSON(http.StatusOK, bookings)
}

type createBookingRequest struct {
	CustomerName    string    `json:"customerName"`
	CustomerContact string    `json:"customerContact"`
	Kind            string    `json:"bookingType"`
	CarID           *string   `json:"carId"`
	DriverID        *string   `json:"driverId"`
	Start           time.Time `json:"startDate"`
	End             time.Time `json:"endDate"`
	PickupLocation  string    `json:"pickupLocation"`
	DropLocation    string    `json:"dropLocation"`
}

func (r createBookingRequest) booking() bk.Booking {
	return bk.Booking{
		CustomerName:    r.CustomerName,
		CustomerContact: r.CustomerContact,
		Kind:            r.Kind,
		CarID:           r.CarID,
		DriverID:        r.DriverID,
		Start:           r.Start,
		End:             r.End,
		PickupLocation:  r.PickupLocation,
		DropLocation:    r.DropLocation,
	}
}

func (h *BookingHandler) Create(c *gin.Context) {
	var request createBookingRequest

	if err := c.BindJSON(&request); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse JSON body",
		})
		return
	}

	inserted, err := h.service.CreateBooking(c.Request.Context(), request.booking(), currentUser(c).Requester())

	if err != nil {
		writeBookingError(c, err, "failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, inserted)
}

func (h *BookingHandler) Update(c *gin.Context) {
	var patch bk.Patch

	if err := c.BindJSON(&patch); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	updated, err := h.service.UpdateBooking(c.Request.Context(), c.Param("id"), patch)

	if err != nil {
		writeBookingError(c, err, "failed to update booking")
		return
	}

	c.IndentedJSON(http.StatusOK, updated)
}

func (h *BookingHandler) Approve(c *gin.Context) {
	var amounts bk.Amounts

	if c.Request.ContentLength != 0 {
		if err := c.BindJSON(&amounts); err != nil {
			c.Error(err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
			return
		}
	}

	approved, err := h.service.ApproveBooking(c.Request.Context(), c.Param("id"), amounts)

	if err != nil {
		writeBookingError(c, err, "failed to approve booking")
		return
	}

	c.IndentedJSON(http.StatusOK, approved)
}

func (h *BookingHandler) Reject(c *gin.Context) {
	rejected, err := h.service.RejectBooking(c.Request.Context(), c.Param("id"))

	if err != nil {
		writeBookingError(c, err, "failed to reject booking")
		return
	}

	c.IndentedJSON(http.StatusOK, rejected)
}

func (h *BookingHandler) Complete(c *gin.Context) {
	completed, err := h.service.CompleteBooking(c.Request.Context(), c.Param("id"))

	if err != nil {
		writeBookingError(c, err, "failed to complete booking")
		return
	}

	c.IndentedJSON(http.StatusOK, completed)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	id := c.Param("id")

	err := h.service.CancelBooking(c.Request.Context(), id, currentUser(c).Requester())

	if err != nil {
		writeBookingError(c, err, "failed to cancel booking")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "booking cancelled"})
}

func (h *BookingHandler) GetAvailability(c *gin.Context) {
	slots, err := h.service.GetCarAvailability(c.Request.Context(), c.Param("id"))

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get availability"})
		return
	}

	c.IndentedJSON(http.StatusOK, slots)
}

func (h *BookingHandler) GetCarStats(c *gin.Context) {
	stats, err := h.service.GetBookingCountPerCar(c.Request.Context())

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get stats"})
		return
	}

	c.IndentedJSON(http.StatusOK, stats)
}

func (h *BookingHandler) GetDayStats(c *gin.Context) {
	stats, err := h.service.GetBookingCountPerWeekDay(c.Request.Context())

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get stats"})
		return
	}

	c.IndentedJSON(http.StatusOK, stats)
}

func writeBookingError(c *gin.Context, err error, fallback string) {
	c.Error(err)

	var conflict *bk.ConflictError

	switch {
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": fmt.Sprintf("%v %v is already booked for this period", conflict.Kind, conflict.ResourceID),
		})
	case errors.Is(err, bk.ErrResourceConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "resource already booked for this period"})
	case errors.Is(err, bk.ErrInvalidInterval):
		c.JSON(http.StatusBadRequest, gin.H{"error": "end date must be after start date"})
	case errors.Is(err, bk.ErrInvalidBooking):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking"})
	case errors.Is(err, bk.ErrInvalidBookingState):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking state"})
	case errors.Is(err, bk.ErrAlreadyCancelled):
		c.JSON(http.StatusBadRequest, gin.H{"error": "booking already cancelled"})
	case errors.Is(err, bk.ErrNotAllowed):
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed"})
	case errors.Is(err, bk.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
	case errors.Is(err, bk.ErrResourceUnavailable):
		c.JSON(http.StatusConflict, gin.H{"error": "car is not available"})
	case errors.Is(err, bk.ErrBookingChanged):
		c.JSON(http.StatusConflict, gin.H{"error": "booking was modified, reload and retry"})
	case errors.Is(err, bk.ErrWindowExpired):
		c.JSON(http.StatusConflict, gin.H{"error": "cancellation window has expired"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
