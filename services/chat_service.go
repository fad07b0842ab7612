package services

import (
	"time"

	"github.com/javatech/cim-portal/dto"
	"github.com/javatech/cim-portal/metrics"
	"github.com/javatech/cim-portal/models"
	"github.com/javatech/cim-portal/repositories"
	"gorm.io/gorm"
)

// latestPageSize is the size of the convenience "latest messages" view
const latestPageSize = 100

// ChatService gates message creation by sender status, enforces deletion
// authorization, and bounds the stored history.
type ChatService struct {
	db           *gorm.DB
	msgRepo      *repositories.ChatMessageRepository
	userRepo     *repositories.UserRepository
	historyLimit int
	deleteWindow time.Duration
	now          func() time.Time
}

// NewChatService creates a new chat service instance
func NewChatService(db *gorm.DB, historyLimit int, deleteWindow time.Duration) *ChatService {
	return &ChatService{
		db:           db,
		msgRepo:      repositories.NewChatMessageRepository(db),
		userRepo:     repositories.NewUserRepository(db),
		historyLimit: historyLimit,
		deleteWindow: deleteWindow,
		now:          time.Now,
	}
}

// SendMessage persists a new message for an approved sender and runs the
// retention sweep in the same transaction. The timestamp is server-assigned.
func (s *ChatService) SendMessage(senderUsername, content string, replyToID *uint) (models.ChatMessage, error) {
	var msg models.ChatMessage

	err := s.db.Transaction(func(tx *gorm.DB) error {
		userRepo := repositories.NewUserRepository(tx)
		msgRepo := repositories.NewChatMessageRepository(tx)

		sender, err := userRepo.FindByUsername(senderUsername)
		if err != nil {
			if repositories.IsNotFound(err) {
				return ErrUserNotFound
			}
			return err
		}
		if sender.Status != models.StatusApproved {
			return ErrSenderNotApproved
		}

		msg = models.ChatMessage{
			Content:        content,
			SenderUsername: sender.Username,
			Timestamp:      s.now(),
			ReplyToID:      replyToID,
			Deleted:        false,
		}
		msg, err = msgRepo.Create(msg)
		if err != nil {
			return err
		}

		trimmed, err := msgRepo.TrimBeyondLimit(s.historyLimit)
		if err != nil {
			return err
		}
		if trimmed > 0 {
			metrics.ChatMessagesTrimmed.Add(float64(trimmed))
		}
		return nil
	})

	return msg, err
}

// DeleteMessage soft-deletes a message. Non-admins may only delete their
// own messages and only within the configured window after posting.
func (s *ChatService) DeleteMessage(id uint, actingUsername string, isAdmin bool) (models.ChatMessage, error) {
	var msg models.ChatMessage

	err := s.db.Transaction(func(tx *gorm.DB) error {
		msgRepo := repositories.NewChatMessageRepository(tx)

		var err error
		msg, err = msgRepo.FindByID(id)
		if err != nil {
			if repositories.IsNotFound(err) {
				return ErrMessageNotFound
			}
			return err
		}
		if msg.Deleted {
			return ErrAlreadyDeleted
		}
		if !isAdmin {
			if msg.SenderUsername != actingUsername {
				return ErrNotOwner
			}
			if s.now().After(msg.Timestamp.Add(s.deleteWindow)) {
				return ErrDeleteWindowExpired
			}
		}

		msg.Deleted = true
		return msgRepo.Update(msg)
	})

	return msg, err
}

// GetMessages returns one page of non-deleted messages, newest first
func (s *ChatService) GetMessages(page, size int) (dto.MessagePage, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 || size > 200 {
		size = latestPageSize
	}

	msgs, total, err := s.msgRepo.FindPage(page, size)
	if err != nil {
		return dto.MessagePage{}, err
	}
	return dto.MessagePage{Messages: msgs, Page: page, Size: size, TotalCount: total}, nil
}

// GetLatestMessages returns the newest messages, capped at 100
func (s *ChatService) GetLatestMessages() ([]models.ChatMessage, error) {
	msgs, _, err := s.msgRepo.FindPage(0, latestPageSize)
	return msgs, err
}

// GetMessageByID resolves a message directly, deleted or not
func (s *ChatService) GetMessageByID(id uint) (models.ChatMessage, error) {
	msg, err := s.msgRepo.FindByID(id)
	if repositories.IsNotFound(err) {
		return msg, ErrMessageNotFound
	}
	return msg, err
}
