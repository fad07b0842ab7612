package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/javatech/cim-portal/dto"
	"github.com/javatech/cim-portal/metrics"
	"github.com/javatech/cim-portal/services"
)

// ChatController handles the REST side of the chat: history, send, delete,
// and the online-presence records.
type ChatController struct {
	chat     *services.ChatService
	presence *services.PresenceService
}

// NewChatController creates a new chat controller
func NewChatController(chat *services.ChatService, presence *services.PresenceService) *ChatController {
	return &ChatController{chat: chat, presence: presence}
}

// RegisterRoutes registers the authenticated chat routes
func (ch *ChatController) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/chat")
	{
		group.GET("/messages", ch.GetMessages)
		group.GET("/messages/latest", ch.GetLatestMessages)
		group.POST("/messages", ch.SendMessage)
		group.DELETE("/messages/:id", ch.DeleteMessage)
		group.GET("/user-statuses", ch.GetPresence)
		group.POST("/user-statuses", ch.UpdatePresence)
	}
}

// GetMessages returns one page of non-deleted messages, newest first
func (ch *ChatController) GetMessages(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "100"))

	result, err := ch.chat.GetMessages(page, size)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "data": result})
}

// GetLatestMessages returns the newest messages, capped at 100
func (ch *ChatController) GetLatestMessages(ctx *gin.Context) {
	msgs, err := ch.chat.GetLatestMessages()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "data": msgs})
}

// SendMessage posts a new message as the authenticated user
func (ch *ChatController) SendMessage(ctx *gin.Context) {
	var req dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	username, _ := callerIdentity(ctx)
	msg, err := ch.chat.SendMessage(username, req.Content, req.ReplyToID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	metrics.ChatMessagesTotal.Inc()
	ctx.JSON(http.StatusCreated, gin.H{"status": "success", "data": msg})
}

// DeleteMessage soft-deletes a message, subject to ownership and time window
func (ch *ChatController) DeleteMessage(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}

	username, isAdmin := callerIdentity(ctx)
	msg, err := ch.chat.DeleteMessage(id, username, isAdmin)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "data": msg})
}

// GetPresence lists every known online/offline record
func (ch *ChatController) GetPresence(ctx *gin.Context) {
	statuses, err := ch.presence.GetAll()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "data": statuses})
}

// UpdatePresence marks a user online or offline
func (ch *ChatController) UpdatePresence(ctx *gin.Context) {
	var req dto.PresenceUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	if err := ch.presence.SetOnline(req.UserID, req.Online); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success"})
}
