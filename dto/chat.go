package dto

import (
	"time"

	"github.com/javatech/cim-portal/models"
)

// SendMessageRequest represents a new chat message payload
type SendMessageRequest struct {
	Content   string `json:"content" binding:"required"`
	ReplyToID *uint  `json:"replyToId"`
}

// MessagePage is one page of chat history, newest first
type MessagePage struct {
	Messages   []models.ChatMessage `json:"messages"`
	Page       int                  `json:"page"`
	Size       int                  `json:"size"`
	TotalCount int64                `json:"totalCount"`
}

// PresenceUpdateRequest marks a user online or offline
type PresenceUpdateRequest struct {
	UserID uint `json:"userId" binding:"required"`
	Online bool `json:"online"`
}

// ChatEvent is the envelope exchanged over the chat websocket
type ChatEvent struct {
	Type      string    `json:"type"` // "message", "delete", "typing"
	ID        uint      `json:"id,omitempty"`
	Content   string    `json:"content,omitempty"`
	Sender    string    `json:"sender,omitempty"`
	ReplyToID *uint     `json:"replyToId,omitempty"`
	IsTyping  bool      `json:"isTyping,omitempty"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}
