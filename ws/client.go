package ws

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/javatech/cim-portal/dto"
	"github.com/javatech/cim-portal/metrics"
	"github.com/javatech/cim-portal/services"
	"github.com/rs/zerolog/log"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Client is one websocket connection bound to an authenticated user
type Client struct {
	hub      *Hub
	conn     *websocket.Conn
	send     chan []byte
	username string
	isAdmin  bool
	userID   uint

	chat     *services.ChatService
	presence *services.PresenceService
}

// inboundEvent is what the browser sends over the socket
type inboundEvent struct {
	Type      string `json:"type"`
	Content   string `json:"content"`
	ReplyToID *uint  `json:"replyToId"`
	ID        uint   `json:"id"`
	IsTyping  bool   `json:"isTyping"`
}

// Serve upgrades the connection after validating the JWT from the
// Authorization header or the token query parameter.
func Serve(hub *Hub, tokens *services.TokenService, users *services.UserService, chat *services.ChatService, presence *services.PresenceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			authz := c.GetHeader("Authorization")
			if strings.HasPrefix(authz, "Bearer ") || strings.HasPrefix(authz, "bearer ") {
				token = authz[7:]
			}
		}
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Missing token"})
			return
		}

		claims, err := tokens.Validate(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Invalid token"})
			return
		}
		user, err := users.GetUserByUsername(claims.Username)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not found"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}

		client := &Client{
			hub:      hub,
			conn:     conn,
			send:     make(chan []byte, 256),
			username: user.Username,
			isAdmin:  user.HasRole("ADMIN"),
			userID:   user.ID,
			chat:     chat,
			presence: presence,
		}
		hub.register <- client
		if err := presence.SetOnline(user.ID, true); err != nil {
			log.Warn().Err(err).Str("username", user.Username).Msg("presence online")
		}

		go client.writePump()
		client.readPump()
	}
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		_ = c.conn.Close()
		if err := c.presence.SetOnline(c.userID, false); err != nil {
			log.Warn().Err(err).Str("username", c.username).Msg("presence offline")
		}
	}()
	c.conn.SetReadLimit(1 << 16)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			break
		}
		var in inboundEvent
		if err := json.Unmarshal(data, &in); err != nil {
			continue
		}
		c.handle(in)
	}
}

func (c *Client) handle(in inboundEvent) {
	switch in.Type {
	case "typing":
		c.broadcastEvent(dto.ChatEvent{Type: "typing", Sender: c.username, IsTyping: in.IsTyping})
	case "message":
		if in.Content == "" {
			return
		}
		msg, err := c.chat.SendMessage(c.username, in.Content, in.ReplyToID)
		if err != nil {
			c.sendError(err)
			return
		}
		metrics.ChatMessagesTotal.Inc()
		c.broadcastEvent(dto.ChatEvent{
			Type:      "message",
			ID:        msg.ID,
			Content:   msg.Content,
			Sender:    msg.SenderUsername,
			ReplyToID: msg.ReplyToID,
			Timestamp: msg.Timestamp,
		})
	case "delete":
		msg, err := c.chat.DeleteMessage(in.ID, c.username, c.isAdmin)
		if err != nil {
			c.sendError(err)
			return
		}
		c.broadcastEvent(dto.ChatEvent{Type: "delete", ID: msg.ID, Sender: c.username})
	}
}

func (c *Client) broadcastEvent(evt dto.ChatEvent) {
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	c.hub.Broadcast(b)
}

// sendError reports a rejected operation back to this client only
func (c *Client) sendError(err error) {
	msg := "internal error"
	if isBusinessError(err) {
		msg = err.Error()
	}
	b, _ := json.Marshal(dto.ChatEvent{Type: "error", Content: msg})
	select {
	case c.send <- b:
	default:
	}
}

func isBusinessError(err error) bool {
	for _, known := range []error{
		services.ErrUserNotFound,
		services.ErrSenderNotApproved,
		services.ErrMessageNotFound,
		services.ErrAlreadyDeleted,
		services.ErrNotOwner,
		services.ErrDeleteWindowExpired,
	} {
		if errors.Is(err, known) {
			return true
		}
	}
	return false
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
