package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/car-rental-booking-backend/push"
)

//go:generate mockgen -source=push_handler.go -destination=mocks/push_handler_mock.go -package=mocks

type PushService interface {
	Subscribe(ctx context.Context, sub push.Subscription) (push.Subscription, error)
	Unsubscribe(ctx context.Context, userID, endpoint string) error
}

// subscriptionRequest mirrors the browser's PushSubscription.toJSON().
type subscriptionRequest struct {
	Endpoint string `json:"endpoint"`
	Keys     struct {
		P256dh string `json:"p256dh"`
		Auth   string `json:"auth"`
	} `json:"keys"`
}

type PushHandler struct {
	service   PushService
	publicKey string
}

func NewPushHandler(service PushService, publicKey string) *PushHandler {
	return &PushHandler{service: service, publicKey: publicKey}
}

func (h *PushHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/vapid-key", h.PublicKey)
	rg.POST("/subscribe", h.Subscribe)
	rg.DELETE("/subscribe", h.Unsubscribe)
}

func (h *PushHandler) PublicKey(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"publicKey": h.publicKey})
}

func (h *PushHandler) Subscribe(c *gin.Context) {
	var req subscriptionRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	sub, err := h.service.Subscribe(c.Request.Context(), push.Subscription{
		UserID:   currentUser(c).ID,
		Endpoint: req.Endpoint,
		P256dh:   req.Keys.P256dh,
		Auth:     req.Keys.Auth,
	})

	if err != nil {
		c.Error(err)
		if errors.Is(err, push.ErrInvalidSubscription) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid push subscription"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save push subscription"})
		return
	}

	c.JSON(http.StatusCreated, sub)
}

func (h *PushHandler) Unsubscribe(c *gin.Context) {
	var req subscriptionRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	if err := h.service.Unsubscribe(c.Request.Context(), currentUser(c).ID, req.Endpoint); err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove push subscription"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "push subscription removed"})
}
