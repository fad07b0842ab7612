package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/javatech/cim-portal/models"
	"github.com/javatech/cim-portal/services"
)

// StatusController handles CRUD endpoints for workflow statuses
type StatusController struct {
	statuses *services.StatusService
}

// NewStatusController creates a new status controller
func NewStatusController(statuses *services.StatusService) *StatusController {
	return &StatusController{statuses: statuses}
}

// RegisterRoutes registers status routes; mutations require admin
func (s *StatusController) RegisterRoutes(router, admin *gin.RouterGroup) {
	router.GET("/statuses", s.ListStatuses)
	router.GET("/statuses/:id", s.GetStatus)
	admin.POST("/statuses", s.CreateStatus)
	admin.PUT("/statuses/:id", s.UpdateStatus)
	admin.DELETE("/statuses/:id", s.DeleteStatus)
}

// ListStatuses retrieves all statuses
func (s *StatusController) ListStatuses(ctx *gin.Context) {
	statuses, err := s.statuses.ListStatuses()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "data": statuses})
}

// GetStatus retrieves a status by id
func (s *StatusController) GetStatus(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}
	status, err := s.statuses.GetStatus(id)
	if err != nil {
		respondNotFoundOr500(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "data": status})
}

// CreateStatus stores a new status
func (s *StatusController) CreateStatus(ctx *gin.Context) {
	var status models.Status
	if err := ctx.ShouldBindJSON(&status); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request body", "error": err.Error()})
		return
	}
	status.ID = 0
	created, err := s.statuses.CreateStatus(status)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"status": "success", "data": created})
}

// UpdateStatus modifies an existing status
func (s *StatusController) UpdateStatus(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}
	var status models.Status
	if err := ctx.ShouldBindJSON(&status); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request body", "error": err.Error()})
		return
	}
	updated, err := s.statuses.UpdateStatus(id, status)
	if err != nil {
		respondNotFoundOr500(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "data": updated})
}

// DeleteStatus removes a status
func (s *StatusController) DeleteStatus(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}
	if err := s.statuses.DeleteStatus(id); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "message": "Status deleted"})
}
