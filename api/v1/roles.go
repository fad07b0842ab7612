package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/javatech/cim-portal/services"
)

// RoleController exposes the role catalogue to admins
type RoleController struct {
	roles *services.RoleService
}

// NewRoleController creates a new role controller
func NewRoleController(roles *services.RoleService) *RoleController {
	return &RoleController{roles: roles}
}

// ListRoles retrieves all known roles
func (r *RoleController) ListRoles(ctx *gin.Context) {
	roles, err := r.roles.ListRoles()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "data": roles})
}
