package handler

import (
	"net/http"

	"hostel_manager/internal/model"
	"hostel_manager/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// MenuHandler handles weekly menu requests
type MenuHandler struct {
	service service.MenuService
}

// NewMenuHandler creates a new MenuHandler
func NewMenuHandler(s service.MenuService) *MenuHandler {
	return &MenuHandler{service: s}
}

func (h *MenuHandler) List(c *gin.Context) {
	items, err := h.service.ListMenu(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to list menu")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve menu"})
		return
	}
	if items == nil {
		items = []model.MenuItem{}
	}
	c.JSON(http.StatusOK, items)
}

func (h *MenuHandler) Upsert(c *gin.Context) {
	var req model.UpsertMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	item, err := h.service.UpsertMenu(c.Request.Context(), req)
	if err != nil {
		logrus.WithError(err).WithField("day", req.Day).Error("Failed to upsert menu")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// RegisterRoutes registers menu routes. Reading the menu is public.
func (h *MenuHandler) RegisterRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	rg.GET("/menu", h.List)
	rg.POST("/menu", authMW, adminMW, h.Upsert)
}
