package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/car-rental-booking-backend/api"
	mock_api "github.com/hanksha/car-rental-booking-backend/api/mocks"
	"github.com/hanksha/car-rental-booking-backend/notification"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupNotificationRouter(t *testing.T, user api.AuthUser) (*gin.Engine, *gomock.Controller, *mock_api.MockNotificationService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	gin.SetMode(gin.TestMode)
	router := gin.Default()
	mockService := mock_api.NewMockNotificationService(ctrl)

	rg := router.Group("/api/v1/notifications")
	rg.Use(setUserInContext(user))
	api.NewNotificationHandler(mockService).Register(rg)

	return router, ctrl, mockService
}

func TestListNotifications(t *testing.T) {
	t.Run("all", func(t *testing.T) {
		router, ctrl, mockService := setupNotificationRouter(t, customer)
		defer ctrl.Finish()

		notifications := []notification.Notification{{
			ID:        "n1",
			Recipient: "cust1",
			Message:   "Your booking has been approved.",
			Type:      notification.TypeBookingApproved,
			BookingID: ptr("b1"),
			CreatedAt: time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC),
		}}

		mockService.EXPECT().List(gomock.Any(), "cust1", false).Return(notifications, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/notifications", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, mustJSON(t, notifications), w.Body.String())
	})

	t.Run("unread only", func(t *testing.T) {
		router, ctrl, mockService := setupNotificationRouter(t, customer)
		defer ctrl.Finish()

		mockService.EXPECT().List(gomock.Any(), "cust1", true).Return([]notification.Notification{}, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/notifications?unread=true", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("error", func(t *testing.T) {
		router, ctrl, mockService := setupNotificationRouter(t, customer)
		defer ctrl.Finish()

		mockService.EXPECT().List(gomock.Any(), "cust1", false).Return(nil, assert.AnError).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/notifications", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 500, w.Code)
	})
}

func TestUnreadCount(t *testing.T) {
	router, ctrl, mockService := setupNotificationRouter(t, customer)
	defer ctrl.Finish()

	mockService.EXPECT().UnreadCount(gomock.Any(), "cust1").Return(3, nil).Times(1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/notifications/unread-count", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `{"count":3}`, w.Body.String())
}

func TestMarkRead(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupNotificationRouter(t, customer)
		defer ctrl.Finish()

		mockService.EXPECT().MarkRead(gomock.Any(), "n1", "cust1").Return(nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/notifications/n1/read", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
	})

	t.Run("not the recipient", func(t *testing.T) {
		router, ctrl, mockService := setupNotificationRouter(t, customer)
		defer ctrl.Finish()

		mockService.EXPECT().MarkRead(gomock.Any(), "n2", "cust1").Return(notification.ErrNotificationNotFound).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/notifications/n2/read", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 404, w.Code)
		assert.JSONEq(t, `{"error":"notification not found"}`, w.Body.String())
	})
}

func TestMarkAllRead(t *testing.T) {
	router, ctrl, mockService := setupNotificationRouter(t, customer)
	defer ctrl.Finish()

	mockService.EXPECT().MarkAllRead(gomock.Any(), "cust1").Return(int64(4), nil).Times(1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/v1/notifications/read-all", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `{"updated":4}`, w.Body.String())
}

func TestDeleteNotification(t *testing.T) {
	t.Run("staff", func(t *testing.T) {
		router, ctrl, mockService := setupNotificationRouter(t, admin)
		defer ctrl.Finish()

		mockService.EXPECT().Delete(gomock.Any(), "n1").Return(nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/api/v1/notifications/n1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 204, w.Code)
	})

	t.Run("customer is forbidden", func(t *testing.T) {
		router, ctrl, mockService := setupNotificationRouter(t, customer)
		defer ctrl.Finish()

		mockService.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/api/v1/notifications/n1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 403, w.Code)
	})
}
