package handler

import (
	"net/http"

	"hostel_manager/internal/model"
	"hostel_manager/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// NotificationHandler handles announcement requests
type NotificationHandler struct {
	service service.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(s service.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: s}
}

func (h *NotificationHandler) List(c *gin.Context) {
	notes, err := h.service.ListNotifications(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to list notifications")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve notifications"})
		return
	}
	if notes == nil {
		notes = []model.Notification{}
	}
	c.JSON(http.StatusOK, notes)
}

func (h *NotificationHandler) Create(c *gin.Context) {
	var req model.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	note, err := h.service.CreateNotification(c.Request.Context(), req)
	if err != nil {
		logrus.WithError(err).Error("Failed to create notification")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create notification"})
		return
	}
	c.JSON(http.StatusCreated, note)
}

// RegisterRoutes registers notification routes. Reading is public.
func (h *NotificationHandler) RegisterRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	rg.GET("/notifications", h.List)
	rg.POST("/notifications", authMW, adminMW, h.Create)
}
