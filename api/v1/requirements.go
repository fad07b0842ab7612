package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/javatech/cim-portal/models"
	"github.com/javatech/cim-portal/services"
)

// RequirementController handles CRUD endpoints for requirements
type RequirementController struct {
	requirements *services.RequirementService
}

// NewRequirementController creates a new requirement controller
func NewRequirementController(requirements *services.RequirementService) *RequirementController {
	return &RequirementController{requirements: requirements}
}

// RegisterRoutes registers requirement routes; mutations require admin
func (r *RequirementController) RegisterRoutes(router, admin *gin.RouterGroup) {
	router.GET("/requirements", r.ListRequirements)
	router.GET("/requirements/:id", r.GetRequirement)
	admin.POST("/requirements", r.CreateRequirement)
	admin.PUT("/requirements/:id", r.UpdateRequirement)
	admin.DELETE("/requirements/:id", r.DeleteRequirement)
}

// ListRequirements retrieves all requirements
func (r *RequirementController) ListRequirements(ctx *gin.Context) {
	requirements, err := r.requirements.ListRequirements()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "data": requirements})
}

// GetRequirement retrieves a requirement by id
func (r *RequirementController) GetRequirement(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}
	requirement, err := r.requirements.GetRequirement(id)
	if err != nil {
		respondNotFoundOr500(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "data": requirement})
}

// CreateRequirement stores a new requirement
func (r *RequirementController) CreateRequirement(ctx *gin.Context) {
	var requirement models.Requirement
	if err := ctx.ShouldBindJSON(&requirement); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request body", "error": err.Error()})
		return
	}
	requirement.ID = 0
	created, err := r.requirements.CreateRequirement(requirement)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"status": "success", "data": created})
}

// UpdateRequirement modifies an existing requirement
func (r *RequirementController) UpdateRequirement(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}
	var requirement models.Requirement
	if err := ctx.ShouldBindJSON(&requirement); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request body", "error": err.Error()})
		return
	}
	updated, err := r.requirements.UpdateRequirement(id, requirement)
	if err != nil {
		respondNotFoundOr500(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "data": updated})
}

// DeleteRequirement removes a requirement
func (r *RequirementController) DeleteRequirement(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}
	if err := r.requirements.DeleteRequirement(id); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "message": "Requirement deleted"})
}
