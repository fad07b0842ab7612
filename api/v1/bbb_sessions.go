package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/javatech/cim-portal/models"
	"github.com/javatech/cim-portal/services"
)

// BbbSessionController handles CRUD endpoints for BBB video sessions
type BbbSessionController struct {
	sessions *services.BbbSessionService
}

// NewBbbSessionController creates a new BBB session controller
func NewBbbSessionController(sessions *services.BbbSessionService) *BbbSessionController {
	return &BbbSessionController{sessions: sessions}
}

// RegisterRoutes registers session routes; mutations require admin
func (b *BbbSessionController) RegisterRoutes(router, admin *gin.RouterGroup) {
	router.GET("/bbb-sessions", b.ListSessions)
	router.GET("/bbb-sessions/:id", b.GetSession)
	admin.POST("/bbb-sessions", b.CreateSession)
	admin.DELETE("/bbb-sessions/:id", b.DeleteSession)
}

// ListSessions retrieves all sessions
func (b *BbbSessionController) ListSessions(ctx *gin.Context) {
	sessions, err := b.sessions.ListSessions()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "data": sessions})
}

// GetSession retrieves a session by id
func (b *BbbSessionController) GetSession(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}
	session, err := b.sessions.GetSession(id)
	if err != nil {
		respondNotFoundOr500(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "data": session})
}

// CreateSession stores a new session; a meeting id is generated when absent
func (b *BbbSessionController) CreateSession(ctx *gin.Context) {
	var session models.BbbSession
	if err := ctx.ShouldBindJSON(&session); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request body", "error": err.Error()})
		return
	}
	session.ID = 0
	created, err := b.sessions.CreateSession(session)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"status": "success", "data": created})
}

// DeleteSession removes a session
func (b *BbbSessionController) DeleteSession(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}
	if err := b.sessions.DeleteSession(id); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "message": "Session deleted"})
}
