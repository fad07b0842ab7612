package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/javatech/cim-portal/config"
	"github.com/javatech/cim-portal/models"
	"github.com/javatech/cim-portal/ws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Role{}, &models.User{}, &models.AppSettings{},
		&models.ChatMessage{}, &models.UserPresence{},
		&models.Module{}, &models.Status{}, &models.Requirement{},
		&models.BimModel{}, &models.BbbSession{},
	))

	cfg := config.Config{
		JWTSecret:           "test-secret",
		TokenTTLHours:       1,
		ChatHistoryLimit:    2500,
		ChatDeleteWindowMin: 5,
		AuthRatePerMinute:   6000,
		AuthRateBurst:       100,
	}

	router := gin.New()
	RegisterRoutes(router.Group("/api/v1"), db, cfg, ws.NewHub())
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type authPayload struct {
	Status string `json:"status"`
	Data   struct {
		Token string `json:"token"`
		User  struct {
			ID       uint   `json:"id"`
			Username string `json:"username"`
			Status   string `json:"status"`
			Roles    []struct {
				Name string `json:"name"`
			} `json:"roles"`
		} `json:"user"`
		Message string `json:"message"`
	} `json:"data"`
}

func register(t *testing.T, router *gin.Engine, username string, roles ...string) authPayload {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/v1/users/register", "", gin.H{
		"user":      gin.H{"username": username, "password": "secret123"},
		"roleNames": roles,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var payload authPayload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	return payload
}

func TestRegisterAndLoginFlow(t *testing.T) {
	router := setupRouter(t)

	// First account bootstraps the admin regardless of requested roles
	alice := register(t, router, "alice", "USER")
	assert.Equal(t, "APPROVED", alice.Data.User.Status)
	require.Len(t, alice.Data.User.Roles, 1)
	assert.Equal(t, "ADMIN", alice.Data.User.Roles[0].Name)
	assert.NotEmpty(t, alice.Data.Token)

	// Wrong password is a plain 401 without status details
	w := doJSON(t, router, http.MethodPost, "/api/v1/users/login", "", gin.H{
		"username": "alice", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid username or password")

	w = doJSON(t, router, http.MethodPost, "/api/v1/users/login", "", gin.H{
		"username": "alice", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestModerationFlow(t *testing.T) {
	router := setupRouter(t)
	alice := register(t, router, "alice")
	adminToken := alice.Data.Token

	// Turn off auto-approval, then bob registers and lands in PENDING
	w := doJSON(t, router, http.MethodPut, "/api/v1/settings", adminToken, gin.H{
		"registrationEnabled": true, "autoApprovalEnabled": false,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	bob := register(t, router, "bob", "USER")
	assert.Equal(t, "PENDING", bob.Data.User.Status)

	// Pending accounts cannot log in, and the message says why
	w = doJSON(t, router, http.MethodPost, "/api/v1/users/login", "", gin.H{
		"username": "bob", "password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "approval")

	// A pending sender cannot post to the chat
	w = doJSON(t, router, http.MethodPost, "/api/v1/chat/messages", bob.Data.Token, gin.H{
		"content": "hi",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Admin approves bob; login and chat now succeed
	w = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/v1/users/%d/approve", bob.Data.User.ID), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/api/v1/users/login", "", gin.H{
		"username": "bob", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/api/v1/chat/messages", bob.Data.Token, gin.H{
		"content": "hi",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var sent struct {
		Data models.ChatMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sent))
	assert.Equal(t, "bob", sent.Data.SenderUsername)
	assert.False(t, sent.Data.Timestamp.IsZero())

	// Alice is not the owner but is an admin, so deletion succeeds
	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/v1/chat/messages/%d", sent.Data.ID), adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestAdminEndpointsRequireAdmin(t *testing.T) {
	router := setupRouter(t)
	register(t, router, "alice")
	bob := register(t, router, "bob", "USER")

	// No token at all
	w := doJSON(t, router, http.MethodGet, "/api/v1/users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Authenticated but not an admin
	w = doJSON(t, router, http.MethodGet, "/api/v1/users", bob.Data.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, router, http.MethodPut, "/api/v1/settings", bob.Data.Token, gin.H{
		"registrationEnabled": false, "autoApprovalEnabled": false,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRegistrationClosed(t *testing.T) {
	router := setupRouter(t)
	alice := register(t, router, "alice")

	w := doJSON(t, router, http.MethodPut, "/api/v1/settings", alice.Data.Token, gin.H{
		"registrationEnabled": false, "autoApprovalEnabled": true,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/api/v1/users/register", "", gin.H{
		"user": gin.H{"username": "bob", "password": "secret123"},
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "closed")
}

func TestDuplicateRegistrationConflicts(t *testing.T) {
	router := setupRouter(t)
	register(t, router, "alice")

	w := doJSON(t, router, http.MethodPost, "/api/v1/users/register", "", gin.H{
		"user": gin.H{"username": "alice", "password": "secret123"},
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestModuleCrud(t *testing.T) {
	router := setupRouter(t)
	alice := register(t, router, "alice")
	token := alice.Data.Token

	w := doJSON(t, router, http.MethodPost, "/api/v1/modules", token, gin.H{
		"name": "Architecture", "description": "Architectural model slice",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Data models.Module `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/modules/%d", created.Data.ID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/modules/999", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/v1/modules/%d", created.Data.ID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
