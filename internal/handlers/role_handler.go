package handlers

import (
	"github.com/gin-gonic/gin"

	"luvo_backend/internal/services"
	"luvo_backend/internal/services/dto"
)

type RoleHandler struct {
	*BaseHandler
	roleService services.RoleService
}

func NewRoleHandler(base *BaseHandler, roleService services.RoleService) *RoleHandler {
	return &RoleHandler{BaseHandler: base, roleService: roleService}
}

func (h *RoleHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/current", h.GetCurrentRole)
	r.PUT("/update", h.UpdateRole)
}

func (h *RoleHandler) GetCurrentRole(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.roleService.GetCurrentRole(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Current role fetched", resp)
}

func (h *RoleHandler) UpdateRole(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateRoleRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.roleService.UpdateRole(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Role updated", resp)
}
