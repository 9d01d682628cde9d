package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/car-rental-booking-backend/announcement"
	"github.com/hanksha/car-rental-booking-backend/push"
)

//go:generate mockgen -source=announcement_handler.go -destination=mocks/announcement_handler_mock.go -package=mocks

type AnnouncementService interface {
	GetSettings(ctx context.Context) (announcement.Settings, error)
	UpdateSettings(ctx context.Context, settings announcement.Settings) (announcement.Settings, error)
	TriggerNow(ctx context.Context, sentence string) (push.Result, error)
}

type AnnouncementHandler struct {
	service AnnouncementService
}

func NewAnnouncementHandler(service AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{service: service}
}

func (h *AnnouncementHandler) Register(rg *gin.RouterGroup) {
	rg.Use(StaffOnly())
	rg.GET("/settings", h.GetSettings)
	rg.PUT("/settings", h.UpdateSettings)
	rg.POST("/trigger", h.Trigger)
}

func (h *AnnouncementHandler) GetSettings(c *gin.Context) {
	settings, err := h.service.GetSettings(c.Request.Context())

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get announcement settings"})
		return
	}

	c.IndentedJSON(http.StatusOK, settings)
}

func (h *AnnouncementHandler) UpdateSettings(c *gin.Context) {
	var settings announcement.Settings

	if err := c.BindJSON(&settings); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	saved, err := h.service.UpdateSettings(c.Request.Context(), settings)

	if err != nil {
		c.Error(err)
		if errors.Is(err, announcement.ErrInvalidSettings) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save announcement settings"})
		return
	}

	c.IndentedJSON(http.StatusOK, saved)
}

func (h *AnnouncementHandler) Trigger(c *gin.Context) {
	var req struct {
		Sentence string `json:"sentence"`
	}

	if c.Request.ContentLength != 0 {
		if err := c.BindJSON(&req); err != nil {
			c.Error(err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
			return
		}
	}

	result, err := h.service.TriggerNow(c.Request.Context(), req.Sentence)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to trigger announcement"})
		return
	}

	c.JSON(http.StatusOK, result)
}
