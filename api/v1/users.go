package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/javatech/cim-portal/dto"
	"github.com/javatech/cim-portal/models"
	"github.com/javatech/cim-portal/services"
)

// UserController handles user listing and moderation endpoints
type UserController struct {
	users *services.UserService
}

// NewUserController creates a new user controller
func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

// RegisterRoutes registers the admin user-management routes
func (u *UserController) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.GET("", u.ListUsers)
		users.GET("/:id", u.GetUser)
		users.POST("", u.CreateUser)
		users.PUT("/:id/approve", u.ApproveUser)
		users.PUT("/:id/block", u.BlockUser)
		users.PUT("/:id/unblock", u.UnblockUser)
		users.PUT("/:id/roles", u.AssignRoles)
		users.DELETE("/:id", u.DeleteUser)
	}
}

// ListUsers retrieves all accounts
func (u *UserController) ListUsers(ctx *gin.Context) {
	users, err := u.users.GetAllUsers()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "data": users})
}

// GetUser retrieves one account by id
func (u *UserController) GetUser(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}
	user, err := u.users.GetUserByID(id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "data": user})
}

// CreateUser is the admin manual-create path; the account is approved immediately
func (u *UserController) CreateUser(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	user, err := u.users.CreateUser(req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"status": "success", "data": user})
}

// ApproveUser sets an account to APPROVED
func (u *UserController) ApproveUser(ctx *gin.Context) {
	u.moderate(ctx, u.users.ApproveUser)
}

// BlockUser sets an account to BLOCKED
func (u *UserController) BlockUser(ctx *gin.Context) {
	u.moderate(ctx, u.users.BlockUser)
}

// UnblockUser returns a blocked account to APPROVED
func (u *UserController) UnblockUser(ctx *gin.Context) {
	u.moderate(ctx, u.users.UnblockUser)
}

func (u *UserController) moderate(ctx *gin.Context, transition func(uint) (models.User, error)) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}
	user, err := transition(id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "data": user})
}

// AssignRoles replaces an account's role set
func (u *UserController) AssignRoles(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}
	var req dto.AssignRolesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	user, err := u.users.AssignRoles(id, req.RoleNames)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "data": user})
}

// DeleteUser removes an account permanently
func (u *UserController) DeleteUser(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}
	if err := u.users.DeleteUser(id); err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "message": "User deleted"})
}
