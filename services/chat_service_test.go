package services

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/javatech/cim-portal/models"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, db *gorm.DB, username string, status models.UserStatus) models.User {
	t.Helper()
	user := models.User{Username: username, Password: "hash", Status: status}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return user
}

func newTestChatService(db *gorm.DB, limit int) (*ChatService, *time.Time) {
	svc := NewChatService(db, limit, 5*time.Minute)
	current := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	now := &current
	svc.now = func() time.Time { return *now }
	return svc, now
}

func TestSendMessageAssignsTimestamp(t *testing.T) {
	db := setupTestDB(t, t.Name())
	seedUser(t, db, "alice", models.StatusApproved)
	svc, now := newTestChatService(db, 2500)

	msg, err := svc.SendMessage("alice", "hi", nil)
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if msg.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if !msg.Timestamp.Equal(*now) {
		t.Fatalf("expected server-assigned timestamp %v, got %v", *now, msg.Timestamp)
	}
	if msg.Deleted {
		t.Fatal("new message must not be marked deleted")
	}
}

func TestSendMessageRejectsUnapprovedSenders(t *testing.T) {
	db := setupTestDB(t, t.Name())
	seedUser(t, db, "pending", models.StatusPending)
	seedUser(t, db, "blocked", models.StatusBlocked)
	svc, _ := newTestChatService(db, 2500)

	for _, sender := range []string{"pending", "blocked"} {
		if _, err := svc.SendMessage(sender, "hi", nil); !errors.Is(err, ErrSenderNotApproved) {
			t.Fatalf("%s: expected ErrSenderNotApproved, got %v", sender, err)
		}
	}
	if _, err := svc.SendMessage("ghost", "hi", nil); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("unknown sender: expected ErrUserNotFound, got %v", err)
	}

	var count int64
	if err := db.Model(&models.ChatMessage{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no persisted messages, got %d", count)
	}
}

func TestDeleteWindowBoundary(t *testing.T) {
	db := setupTestDB(t, t.Name())
	seedUser(t, db, "alice", models.StatusApproved)
	svc, now := newTestChatService(db, 2500)

	msg, err := svc.SendMessage("alice", "hi", nil)
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	// 4m59s after posting: allowed
	*now = msg.Timestamp.Add(4*time.Minute + 59*time.Second)
	deleted, err := svc.DeleteMessage(msg.ID, "alice", false)
	if err != nil {
		t.Fatalf("delete within window: %v", err)
	}
	if !deleted.Deleted {
		t.Fatal("expected deleted flag set")
	}

	// Second message, 5m01s after posting: rejected
	*now = msg.Timestamp
	msg2, err := svc.SendMessage("alice", "again", nil)
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	*now = msg2.Timestamp.Add(5*time.Minute + time.Second)
	if _, err := svc.DeleteMessage(msg2.ID, "alice", false); !errors.Is(err, ErrDeleteWindowExpired) {
		t.Fatalf("expected ErrDeleteWindowExpired, got %v", err)
	}
}

func TestDeleteAuthorization(t *testing.T) {
	db := setupTestDB(t, t.Name())
	seedUser(t, db, "alice", models.StatusApproved)
	seedUser(t, db, "bob", models.StatusApproved)
	svc, now := newTestChatService(db, 2500)

	msg, err := svc.SendMessage("bob", "hi", nil)
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	// Non-owner, non-admin: rejected even inside the window
	if _, err := svc.DeleteMessage(msg.ID, "alice", false); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}

	// Admin bypasses ownership and the window
	*now = msg.Timestamp.Add(10 * time.Minute)
	deleted, err := svc.DeleteMessage(msg.ID, "alice", true)
	if err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	if !deleted.Deleted {
		t.Fatal("expected deleted flag set")
	}

	if _, err := svc.DeleteMessage(msg.ID, "alice", true); !errors.Is(err, ErrAlreadyDeleted) {
		t.Fatalf("expected ErrAlreadyDeleted, got %v", err)
	}
	if _, err := svc.DeleteMessage(999, "alice", true); !errors.Is(err, ErrMessageNotFound) {
		t.Fatalf("expected ErrMessageNotFound, got %v", err)
	}
}

func TestRetentionSweepRemovesOldest(t *testing.T) {
	db := setupTestDB(t, t.Name())
	seedUser(t, db, "alice", models.StatusApproved)
	svc, now := newTestChatService(db, 5)

	var first models.ChatMessage
	for i := 0; i < 6; i++ {
		*now = now.Add(time.Second)
		msg, err := svc.SendMessage("alice", fmt.Sprintf("msg %d", i), nil)
		if err != nil {
			t.Fatalf("send %d: %v", i, err)
		}
		if i == 0 {
			first = msg
		}
	}

	var count int64
	if err := db.Model(&models.ChatMessage{}).Where("deleted = ?", false).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Fatalf("expected exactly 5 non-deleted messages after sweep, got %d", count)
	}
	// The oldest message is hard-deleted, not soft-deleted
	if _, err := svc.GetMessageByID(first.ID); !errors.Is(err, ErrMessageNotFound) {
		t.Fatalf("expected oldest message hard-deleted, got %v", err)
	}
}

func TestListExcludesDeletedButIDLookupResolves(t *testing.T) {
	db := setupTestDB(t, t.Name())
	seedUser(t, db, "alice", models.StatusApproved)
	svc, now := newTestChatService(db, 2500)

	msg, err := svc.SendMessage("alice", "hi", nil)
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	*now = now.Add(time.Second)
	if _, err := svc.SendMessage("alice", "there", nil); err != nil {
		t.Fatalf("send: %v", err)
	}
	if _, err := svc.DeleteMessage(msg.ID, "alice", false); err != nil {
		t.Fatalf("delete: %v", err)
	}

	page, err := svc.GetMessages(0, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page.Messages) != 1 || page.TotalCount != 1 {
		t.Fatalf("expected 1 visible message, got %d (total %d)", len(page.Messages), page.TotalCount)
	}
	for _, m := range page.Messages {
		if m.ID == msg.ID {
			t.Fatal("deleted message leaked into listing")
		}
	}

	// Soft delete keeps the row resolvable by id
	got, err := svc.GetMessageByID(msg.ID)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if !got.Deleted {
		t.Fatal("expected deleted flag on direct lookup")
	}
}

func TestListOrderingAndPagination(t *testing.T) {
	db := setupTestDB(t, t.Name())
	seedUser(t, db, "alice", models.StatusApproved)
	svc, now := newTestChatService(db, 2500)

	for i := 0; i < 5; i++ {
		*now = now.Add(time.Minute)
		if _, err := svc.SendMessage("alice", fmt.Sprintf("msg %d", i), nil); err != nil {
			t.Fatalf("send %d: %v", i, err)
		}
	}

	page, err := svc.GetMessages(0, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page.Messages) != 2 {
		t.Fatalf("expected page of 2, got %d", len(page.Messages))
	}
	if page.Messages[0].Content != "msg 4" || page.Messages[1].Content != "msg 3" {
		t.Fatalf("expected newest first, got %q then %q", page.Messages[0].Content, page.Messages[1].Content)
	}

	page2, err := svc.GetMessages(1, 2)
	if err != nil {
		t.Fatalf("list page 2: %v", err)
	}
	if page2.Messages[0].Content != "msg 2" {
		t.Fatalf("expected msg 2 on page 2, got %q", page2.Messages[0].Content)
	}

	latest, err := svc.GetLatestMessages()
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if len(latest) != 5 || latest[0].Content != "msg 4" {
		t.Fatalf("latest view wrong: %d messages, first %q", len(latest), latest[0].Content)
	}
}
