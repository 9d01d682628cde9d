package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/car-rental-booking-backend/account"
)

//go:generate mockgen -source=account_handler.go -destination=mocks/account_handler_mock.go -package=mocks

type AccountService interface {
	SetNotificationsEnabled(ctx context.Context, id string, enabled bool) error
}

type AccountHandler struct {
	service AccountService
}

func NewAccountHandler(service AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

func (h *AccountHandler) Register(rg *gin.RouterGroup) {
	rg.PUT("/notifications", h.SetNotifications)
}

func (h *AccountHandler) SetNotifications(c *gin.Context) {
	var req struct {
		Enabled *bool `json:"enabled"`
	}

	if err := c.BindJSON(&req); err != nil || req.Enabled == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "enabled is required"})
		return
	}

	err := h.service.SetNotificationsEnabled(c.Request.Context(), currentUser(c).ID, *req.Enabled)

	if err != nil {
		c.Error(err)
		if errors.Is(err, account.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update notification preference"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notificationsEnabled": *req.Enabled})
}
