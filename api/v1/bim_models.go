package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/javatech/cim-portal/models"
	"github.com/javatech/cim-portal/services"
)

// BimModelController handles CRUD endpoints for BIM models
type BimModelController struct {
	bimModels *services.BimModelService
}

// NewBimModelController creates a new BIM model controller
func NewBimModelController(bimModels *services.BimModelService) *BimModelController {
	return &BimModelController{bimModels: bimModels}
}

// RegisterRoutes registers BIM model routes; mutations require admin
func (b *BimModelController) RegisterRoutes(router, admin *gin.RouterGroup) {
	router.GET("/bim-models", b.ListBimModels)
	router.GET("/bim-models/:id", b.GetBimModel)
	admin.POST("/bim-models", b.CreateBimModel)
	admin.PUT("/bim-models/:id", b.UpdateBimModel)
	admin.DELETE("/bim-models/:id", b.DeleteBimModel)
}

// ListBimModels retrieves all BIM models
func (b *BimModelController) ListBimModels(ctx *gin.Context) {
	bimModels, err := b.bimModels.ListBimModels()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "data": bimModels})
}

// GetBimModel retrieves a BIM model by id
func (b *BimModelController) GetBimModel(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}
	bimModel, err := b.bimModels.GetBimModel(id)
	if err != nil {
		respondNotFoundOr500(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "data": bimModel})
}

// CreateBimModel stores a new BIM model
func (b *BimModelController) CreateBimModel(ctx *gin.Context) {
	var bimModel models.BimModel
	if err := ctx.ShouldBindJSON(&bimModel); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request body", "error": err.Error()})
		return
	}
	bimModel.ID = 0
	created, err := b.bimModels.CreateBimModel(bimModel)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"status": "success", "data": created})
}

// UpdateBimModel modifies an existing BIM model
func (b *BimModelController) UpdateBimModel(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}
	var bimModel models.BimModel
	if err := ctx.ShouldBindJSON(&bimModel); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request body", "error": err.Error()})
		return
	}
	updated, err := b.bimModels.UpdateBimModel(id, bimModel)
	if err != nil {
		respondNotFoundOr500(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "data": updated})
}

// DeleteBimModel removes a BIM model
func (b *BimModelController) DeleteBimModel(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}
	if err := b.bimModels.DeleteBimModel(id); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "message": "BIM model deleted"})
}
