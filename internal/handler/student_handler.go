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

// StudentHandler handles roster requests
type StudentHandler struct {
	service service.StudentService
}

// NewStudentHandler creates a new StudentHandler
func NewStudentHandler(s service.StudentService) *StudentHandler {
	return &StudentHandler{service: s}
}

func (h *StudentHandler) List(c *gin.Context) {
	students, err := h.service.ListStudents(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to list students")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve students"})
		return
	}
	if students == nil {
		students = []model.User{}
	}
	c.JSON(http.StatusOK, students)
}

func (h *StudentHandler) Update(c *gin.Context) {
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

	targetID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid student ID"})
		return
	}

	var req model.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	user, err := h.service.UpdateStudent(c.Request.Context(), targetID, actorID, actorRole, req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, service.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		} else {
			logrus.WithError(err).WithField("student_id", targetID).Error("Failed to update student")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update student"})
		}
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *StudentHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid student ID"})
		return
	}

	if err := h.service.DeleteStudent(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			logrus.WithError(err).WithField("student_id", id).Error("Failed to delete student")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete student"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Student deleted"})
}

// RegisterRoutes registers roster routes
func (h *StudentHandler) RegisterRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	rg.GET("/students", authMW, h.List)
	rg.PATCH("/students/:id", authMW, h.Update) // Service layer allows admin or self
	rg.DELETE("/students/:id", authMW, adminMW, h.Delete)
}
