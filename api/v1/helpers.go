package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/javatech/cim-portal/repositories"
	"github.com/javatech/cim-portal/services"
)

// respondServiceError maps service-layer errors onto HTTP status codes
func respondServiceError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrMessageNotFound),
		errors.Is(err, services.ErrRoleNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrAlreadyDeleted):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, services.ErrRegistrationClosed),
		errors.Is(err, services.ErrSenderNotApproved),
		errors.Is(err, services.ErrNotOwner),
		errors.Is(err, services.ErrDeleteWindowExpired):
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrAccountPending),
		errors.Is(err, services.ErrAccountBlocked):
		status = http.StatusUnauthorized
		message = err.Error()
	}

	ctx.JSON(status, gin.H{
		"status":  "error",
		"message": message,
	})
}

// respondNotFoundOr500 is for plain CRUD lookups that surface gorm errors
func respondNotFoundOr500(ctx *gin.Context, err error) {
	if repositories.IsNotFound(err) {
		ctx.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Record not found",
		})
		return
	}
	ctx.JSON(http.StatusInternalServerError, gin.H{
		"status":  "error",
		"message": err.Error(),
	})
}

// paramID parses the :id path parameter
func paramID(ctx *gin.Context) (uint, bool) {
	id64, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid id",
		})
		return 0, false
	}
	return uint(id64), true
}

// callerIdentity reads the identity placed on the context by AuthMiddleware
func callerIdentity(ctx *gin.Context) (username string, isAdmin bool) {
	if v, ok := ctx.Get("username"); ok {
		username, _ = v.(string)
	}
	if v, ok := ctx.Get("isAdmin"); ok {
		isAdmin, _ = v.(bool)
	}
	return username, isAdmin
}
