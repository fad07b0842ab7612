package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/javatech/cim-portal/dto"
	"github.com/javatech/cim-portal/models"
	"github.com/javatech/cim-portal/services"
)

// AuthController handles registration, login and the current-user endpoint
type AuthController struct {
	users  *services.UserService
	tokens *services.TokenService
}

// NewAuthController creates a new auth controller
func NewAuthController(users *services.UserService, tokens *services.TokenService) *AuthController {
	return &AuthController{users: users, tokens: tokens}
}

// Register handles user registration
func (a *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	user, err := a.users.Register(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	token, _, err := a.tokens.Issue(user.Username, user.RoleNames())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to issue token",
		})
		return
	}

	message := "Registration successful, you can sign in now"
	if user.Status == models.StatusPending {
		message = "Account created, wait for administrator approval before signing in"
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   dto.AuthResponse{Token: token, User: user, Message: message},
	})
}

// Login handles user authentication
func (a *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	user, err := a.users.Authenticate(req.Username, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	token, expiresAt, err := a.tokens.Issue(user.Username, user.RoleNames())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to issue token",
		})
		return
	}

	// Set token as HttpOnly cookie as well, for browser clients
	maxAge := int(time.Until(expiresAt).Seconds())
	if maxAge <= 0 {
		maxAge = 86400
	}
	c.SetCookie("access_token", token, maxAge, "/", "", true, true)

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   dto.AuthResponse{Token: token, User: user},
	})
}

// Logout clears the access token cookie
func (a *AuthController) Logout(c *gin.Context) {
	c.SetCookie("access_token", "", -1, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Logged out",
	})
}

// GetCurrentUser returns the currently authenticated user's profile
func (a *AuthController) GetCurrentUser(c *gin.Context) {
	username, _ := callerIdentity(c)
	if username == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "User not authenticated",
		})
		return
	}

	user, err := a.users.GetUserByUsername(username)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"user":   user,
	})
}
