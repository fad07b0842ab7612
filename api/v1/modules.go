package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/javatech/cim-portal/models"
	"github.com/javatech/cim-portal/services"
)

// ModuleController handles CRUD endpoints for portal modules
type ModuleController struct {
	modules *services.ModuleService
}

// NewModuleController creates a new module controller
func NewModuleController(modules *services.ModuleService) *ModuleController {
	return &ModuleController{modules: modules}
}

// RegisterRoutes registers module routes; mutations require admin
func (m *ModuleController) RegisterRoutes(router, admin *gin.RouterGroup) {
	router.GET("/modules", m.ListModules)
	router.GET("/modules/:id", m.GetModule)
	admin.POST("/modules", m.CreateModule)
	admin.PUT("/modules/:id", m.UpdateModule)
	admin.DELETE("/modules/:id", m.DeleteModule)
}

// ListModules retrieves all modules
func (m *ModuleController) ListModules(ctx *gin.Context) {
	modules, err := m.modules.ListModules()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "data": modules})
}

// GetModule retrieves a module by id
func (m *ModuleController) GetModule(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}
	module, err := m.modules.GetModule(id)
	if err != nil {
		respondNotFoundOr500(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "data": module})
}

// CreateModule stores a new module
func (m *ModuleController) CreateModule(ctx *gin.Context) {
	var module models.Module
	if err := ctx.ShouldBindJSON(&module); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request body", "error": err.Error()})
		return
	}
	module.ID = 0
	created, err := m.modules.CreateModule(module)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"status": "success", "data": created})
}

// UpdateModule modifies an existing module
func (m *ModuleController) UpdateModule(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}
	var module models.Module
	if err := ctx.ShouldBindJSON(&module); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request body", "error": err.Error()})
		return
	}
	updated, err := m.modules.UpdateModule(id, module)
	if err != nil {
		respondNotFoundOr500(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "data": updated})
}

// DeleteModule removes a module
func (m *ModuleController) DeleteModule(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}
	if err := m.modules.DeleteModule(id); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "message": "Module deleted"})
}
