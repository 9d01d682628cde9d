package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/car-rental-booking-backend/account"
	"github.com/hanksha/car-rental-booking-backend/api"
	mock_api "github.com/hanksha/car-rental-booking-backend/api/mocks"
	bk "github.com/hanksha/car-rental-booking-backend/booking"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var (
	admin    = api.AuthUser{ID: "admin1", Name: "Admin", Role: account.RoleAdmin}
	customer = api.AuthUser{ID: "cust1", Name: "Asha", Role: account.RoleCustomer}
)

func ptr[T any](v T) *T {
	return &v
}

func setUserInContext(user api.AuthUser) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user", user)
		c.Next()
	}
}

func setupRouterWithUser(t *testing.T, user api.AuthUser) (*gin.Engine, *gomock.Controller, *mock_api.MockBookingService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	gin.SetMode(gin.TestMode)
	router := gin.Default()
	mockService := mock_api.NewMockBookingService(ctrl)
	handler := api.NewBookingHandler(mockService)

	rg := router.Group("/api/v1")
	rg.Use(setUserInContext(user))
	handler.Register(rg.Group("/bookings"))
	handler.RegisterCars(rg.Group("/cars"))

	return router, ctrl, mockService
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func sampleBooking() bk.Booking {
	return bk.Booking{
		ID:              "b1",
		CustomerName:    "Asha",
		CustomerContact: "9876543210",
		Kind:            bk.KindCarOnly,
		CarID:           ptr("car1"),
		Start:           time.Date(2026, time.March, 12, 9, 0, 0, 0, time.UTC),
		End:             time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC),
		Status:          bk.StatusPending,
		CustomerID:      ptr("cust1"),
	}
}

func TestGetAllActiveBookings(t *testing.T) {
	t.Run("staff", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithUser(t, admin)
		defer ctrl.Finish()

		bookings := []bk.Booking{sampleBooking()}
		mockService.EXPECT().GetActiveBookings(gomock.Any()).Return(bookings, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/bookings", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, mustJSON(t, bookings), w.Body.String())
	})

	t.Run("customer is forbidden", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithUser(t, customer)
		defer ctrl.Finish()

		mockService.EXPECT().GetActiveBookings(gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/bookings", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 403, w.Code)
		assert.JSONEq(t, `{"error":"not allowed"}`, w.Body.String())
	})

	t.Run("error", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithUser(t, admin)
		defer ctrl.Finish()

		mockService.EXPECT().GetActiveBookings(gomock.Any()).Return(nil, assert.AnError).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/bookings", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 500, w.Code)
		assert.JSONEq(t, `{"error":"failed to retrieve bookings"}`, w.Body.String())
	})
}

func TestGetByID(t *testing.T) {
	t.Run("owner", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithUser(t, customer)
		defer ctrl.Finish()

		b := sampleBooking()
		mockService.EXPECT().FindBookingByID(gomock.Any(), "b1").Return(b, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/bookings/booking/b1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, mustJSON(t, b), w.Body.String())
	})

	t.Run("someone else's booking is hidden", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithUser(t, api.AuthUser{ID: "cust2", Role: account.RoleCustomer})
		defer ctrl.Finish()

		mockService.EXPECT().FindBookingByID(gomock.Any(), "b1").Return(sampleBooking(), nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/bookings/booking/b1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 404, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithUser(t, admin)
		defer ctrl.Finish()

		mockService.EXPECT().FindBookingByID(gomock.Any(), "nope").Return(bk.Booking{}, bk.ErrBookingNotFound).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/bookings/booking/nope", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 404, w.Code)
		assert.JSONEq(t, `{"error":"booking not found"}`, w.Body.String())
	})
}

func TestGetByCustomer(t *testing.T) {
	t.Run("self", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithUser(t, customer)
		defer ctrl.Finish()

		mockService.EXPECT().FindBookingsPerCustomer(gomock.Any(), "cust1").Return([]bk.Booking{}, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/bookings/customer/cust1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("other customer", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithUser(t, customer)
		defer ctrl.Finish()

		mockService.EXPECT().FindBookingsPerCustomer(gomock.Any(), gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/bookings/customer/cust2", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 403, w.Code)
	})
}

func TestCreate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithUser(t, customer)
		defer ctrl.Finish()

		candidate := sampleBooking()
		candidate.ID = ""
		candidate.Status = ""
		candidate.CustomerID = nil

		inserted := sampleBooking()

		mockService.EXPECT().CreateBooking(gomock.Any(), candidate, bk.Requester{ID: "cust1"}).Return(inserted, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings", bytes.NewBufferString(mustJSON(t, candidate)))
		router.ServeHTTP(w, req)

		assert.Equal(t, 201, w.Code)
		assert.JSONEq(t, mustJSON(t, inserted), w.Body.String())
	})

	t.Run("server owned fields are ignored", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithUser(t, customer)
		defer ctrl.Finish()

		body := `{
			"id": "forged",
			"customerName": "Asha",
			"customerContact": "9876543210",
			"bookingType": "car_only",
			"carId": "car1",
			"startDate": "2026-03-12T09:00:00Z",
			"endDate": "2026-03-14T09:00:00Z",
			"status": "confirmed",
			"adminId": "admin1",
			"customerId": "someone-else",
			"totalAmount": 1,
			"carRate": 1,
			"createdAt": "2020-01-01T00:00:00Z"
		}`

		expected := sampleBooking()
		expected.ID = ""
		expected.Status = ""
		expected.CustomerID = nil

		mockService.EXPECT().CreateBooking(gomock.Any(), expected, bk.Requester{ID: "cust1"}).Return(sampleBooking(), nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings", bytes.NewBufferString(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, 201, w.Code)
	})

	t.Run("invalid body", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithUser(t, customer)
		defer ctrl.Finish()

		mockService.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings", bytes.NewBufferString("{"))
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"failed to parse JSON body"}`, w.Body.String())
	})

	errorCases := []struct {
		name string
		err  error
		code int
		body string
	}{
		{"car conflict", &bk.ConflictError{Kind: bk.ResourceCar, ResourceID: "car1"}, 409, `{"error":"car car1 is already booked for this period"}`},
		{"driver conflict", &bk.ConflictError{Kind: bk.ResourceDriver, ResourceID: "drv1"}, 409, `{"error":"driver drv1 is already booked for this period"}`},
		{"invalid interval", bk.ErrInvalidInterval, 400, `{"error":"end date must be after start date"}`},
		{"invalid booking", fmt.Errorf("car id missing: %w", bk.ErrInvalidBooking), 400, `{"error":"invalid booking"}`},
		{"car unavailable", bk.ErrResourceUnavailable, 409, `{"error":"car is not available"}`},
		{"unexpected", assert.AnError, 500, `{"error":"failed to create booking"}`},
	}

	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			router, ctrl, mockService := setupRouterWithUser(t, customer)
			defer ctrl.Finish()

			mockService.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).Return(bk.Booking{}, tc.err).Times(1)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest("POST", "/api/v1/bookings", bytes.NewBufferString(mustJSON(t, sampleBooking())))
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.code, w.Code)
			assert.JSONEq(t, tc.body, w.Body.String())
		})
	}
}

func TestUpdate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithUser(t, admin)
		defer ctrl.Finish()

		patch := bk.Patch{Status: ptr(bk.StatusConfirmed)}
		updated := sampleBooking()
		updated.Status = bk.StatusConfirmed

		mockService.EXPECT().UpdateBooking(gomock.Any(), "b1", patch).Return(updated, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/bookings/b1", bytes.NewBufferString(`{"status":"confirmed"}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, mustJSON(t, updated), w.Body.String())
	})

	t.Run("illegal transition", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithUser(t, admin)
		defer ctrl.Finish()

		mockService.EXPECT().UpdateBooking(gomock.Any(), "b1", gomock.Any()).Return(bk.Booking{}, bk.ErrInvalidBookingState).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/bookings/b1", bytes.NewBufferString(`{"status":"pending"}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"invalid booking state"}`, w.Body.String())
	})

	t.Run("customer is forbidden", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithUser(t, customer)
		defer ctrl.Finish()

		mockService.EXPECT().UpdateBooking(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/bookings/b1", bytes.NewBufferString(`{"status":"confirmed"}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, 403, w.Code)
	})
}

func TestApprove(t *testing.T) {
	t.Run("without amounts", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithUser(t, admin)
		defer ctrl.Finish()

		approved := sampleBooking()
		approved.Status = bk.StatusConfirmed

		mockService.EXPECT().ApproveBooking(gomock.Any(), "b1", bk.Amounts{}).Return(approved, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/bookings/b1/approve", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, mustJSON(t, approved), w.Body.String())
	})

	t.Run("with amounts", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithUser(t, admin)
		defer ctrl.Finish()

		mockService.EXPECT().ApproveBooking(gomock.Any(), "b1", bk.Amounts{TotalAmount: ptr(4500.0), CarRate: ptr(1500.0)}).Return(sampleBooking(), nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/bookings/b1/approve", bytes.NewBufferString(`{"totalAmount":4500,"carRate":1500}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
	})
}

func TestRejectAndComplete(t *testing.T) {
	router, ctrl, mockService := setupRouterWithUser(t, admin)
	defer ctrl.Finish()

	mockService.EXPECT().RejectBooking(gomock.Any(), "b1").Return(sampleBooking(), nil).Times(1)
	mockService.EXPECT().CompleteBooking(gomock.Any(), "b2").Return(bk.Booking{}, bk.ErrInvalidBookingState).Times(1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/v1/bookings/b1/reject", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, 200, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("PUT", "/api/v1/bookings/b2/complete", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, 400, w.Code)
}

func TestCancel(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		body string
	}{
		{"success", nil, 200, `{"message":"booking cancelled"}`},
		{"not found", bk.ErrBookingNotFound, 404, `{"error":"booking not found"}`},
		{"already cancelled", bk.ErrAlreadyCancelled, 400, `{"error":"booking already cancelled"}`},
		{"not owner", bk.ErrNotAllowed, 403, `{"error":"not allowed"}`},
		{"window expired", bk.ErrWindowExpired, 409, `{"error":"cancellation window has expired"}`},
		{"wrong state", bk.ErrInvalidBookingState, 400, `{"error":"invalid booking state"}`},
		{"concurrent change", bk.ErrBookingChanged, 409, `{"error":"booking was modified, reload and retry"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router, ctrl, mockService := setupRouterWithUser(t, customer)
			defer ctrl.Finish()

			mockService.EXPECT().CancelBooking(gomock.Any(), "b1", bk.Requester{ID: "cust1", Staff: false}).Return(tc.err).Times(1)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest("PUT", "/api/v1/bookings/b1/cancel", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.code, w.Code)
			assert.JSONEq(t, tc.body, w.Body.String())
		})
	}
}

func TestGetAvailability(t *testing.T) {
	router, ctrl, mockService := setupRouterWithUser(t, customer)
	defer ctrl.Finish()

	slots := []bk.Slot{{
		Start:  time.Date(2026, time.March, 12, 9, 0, 0, 0, time.UTC),
		End:    time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC),
		Status: bk.StatusConfirmed,
	}}

	mockService.EXPECT().GetCarAvailability(gomock.Any(), "car1").Return(slots, nil).Times(1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/cars/car1/availability", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, mustJSON(t, slots), w.Body.String())
}

func TestStats(t *testing.T) {
	router, ctrl, mockService := setupRouterWithUser(t, admin)
	defer ctrl.Finish()

	perCar := []bk.CarBookingCount{{CarID: "car1", Count: 3}}
	perDay := []bk.WeekDayBookingCount{{WeekDay: "Monday", Count: 2}}

	mockService.EXPECT().GetBookingCountPerCar(gomock.Any()).Return(perCar, nil).Times(1)
	mockService.EXPECT().GetBookingCountPerWeekDay(gomock.Any()).Return(perDay, nil).Times(1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/bookings/stats/car", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `[{"carId":"car1","bookingCount":3}]`, w.Body.String())

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/v1/bookings/stats/day", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `[{"dayOfWeek":"Monday","bookingCount":2}]`, w.Body.String())
}
