package handler

import (
	"errors"
	"net/http"
	"strconv"

	"hostel_manager/internal/model"
	"hostel_manager/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RentHandler handles rent demand requests
type RentHandler struct {
	service service.RentService
}

// NewRentHandler creates a new RentHandler
func NewRentHandler(s service.RentService) *RentHandler {
	return &RentHandler{service: s}
}

func (h *RentHandler) List(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	role, err := getAuthUserRole(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	records, err := h.service.ListRentFor(c.Request.Context(), userID, role)
	if err != nil {
		logrus.WithError(err).Error("Failed to list rent records")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rent records"})
		return
	}
	if records == nil {
		records = []model.RentRecord{}
	}
	c.JSON(http.StatusOK, records)
}

func (h *RentHandler) Create(c *gin.Context) {
	var req model.CreateRentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	rent, err := h.service.CreateRent(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			logrus.WithError(err).WithField("student_id", req.StudentID).Error("Failed to create rent record")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create rent record"})
		}
		return
	}
	c.JSON(http.StatusCreated, rent)
}

func (h *RentHandler) MarkPaid(c *gin.Context) {
	actorID, err := getAuthUserID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	actorRole, err := getAuthUserRole(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rent record ID"})
		return
	}

	rent, err := h.service.MarkPaid(c.Request.Context(), id, actorID, actorRole)
	if err != nil {
		if errors.Is(err, service.ErrRentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, service.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		} else {
			logrus.WithError(err).WithField("rent_id", id).Error("Failed to mark rent paid")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark rent paid"})
		}
		return
	}
	c.JSON(http.StatusOK, rent)
}

// RegisterRoutes registers rent routes
func (h *RentHandler) RegisterRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	rg.GET("/rent", authMW, h.List)
	rg.POST("/rent", authMW, adminMW, h.Create)
	rg.PATCH("/rent/:id/pay", authMW, h.MarkPaid) // Service layer allows admin or owner
}
