package request

type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=admin cashier chef"`
}

type UpdateUserRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Role     string  `json:"role" binding:"required,oneof=admin cashier chef"`
	IsActive bool    `json:"is_active"`
	Password *string `json:"password,omitempty" binding:"omitempty,min=8"`
}
