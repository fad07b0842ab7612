package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/javatech/cim-portal/dto"
	"github.com/javatech/cim-portal/services"
)

// SettingsController exposes the global moderation settings to admins
type SettingsController struct {
	settings *services.SettingsService
}

// NewSettingsController creates a new settings controller
func NewSettingsController(settings *services.SettingsService) *SettingsController {
	return &SettingsController{settings: settings}
}

// RegisterRoutes registers the admin settings routes
func (s *SettingsController) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/settings")
	{
		group.GET("", s.GetSettings)
		group.PUT("", s.UpdateSettings)
	}
}

// GetSettings returns the global settings, creating defaults on first access
func (s *SettingsController) GetSettings(ctx *gin.Context) {
	settings, err := s.settings.GetSettings()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "data": settings})
}

// UpdateSettings persists new registration/auto-approval flags
func (s *SettingsController) UpdateSettings(ctx *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	settings, err := s.settings.UpdateSettings(*req.RegistrationEnabled, *req.AutoApprovalEnabled)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "data": settings})
}
