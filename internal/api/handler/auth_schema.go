package handler

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type profileResponse struct {
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}

type createRoleRequest struct {
	Name string `json:"name" validate:"required"`
}
