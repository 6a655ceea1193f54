package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"civix/internal/models/request_models"
	"civix/internal/services"
	"civix/pkg/utils"
)

type AdminController struct {
	userService services.UserServiceInterface
}

func NewAdminController(userService services.UserServiceInterface) *AdminController {
	return &AdminController{
		userService: userService,
	}
}

// GetProfile returns the calling user's own account.
func (a *AdminController) GetProfile(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	user, err := a.userService.GetUserById(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "Profile fetched successfully")
}

func (a *AdminController) GetAllUsers(c *gin.Context) {
	users, err := a.userService.GetAllUsers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, users, "Users fetched successfully")
}

func (a *AdminController) GetUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := a.userService.GetUserById(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "User fetched successfully")
}

func (a *AdminController) UpdateUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := a.userService.UpdateProfile(c.Request.Context(), c.GetString("role"), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "User profile updated successfully")
}

func (a *AdminController) UpdateRole(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid role")
		return
	}

	user, err := a.userService.UpdateRole(c.Request.Context(), id, req.Role)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "User role updated successfully")
}

func (a *AdminController) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := a.userService.DeleteUser(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "User deleted successfully")
}
