package request_models

type UpdateProfileRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email" binding:"omitempty,email"`
	Phone        string `json:"phone"`
	Password     string `json:"password" binding:"omitempty,min=6"`
	Organization string `json:"organization" binding:"omitempty,uuid"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}
