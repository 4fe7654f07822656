package dto

type RegisterRequest struct {
	LastName  string `json:"last_name" binding:"required,max=100"`
	FirstName string `json:"first_name" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email,max=150"`
	Password  string `json:"password" binding:"required,min=8"`
	Role      string `json:"role" binding:"required,oneof=Professeur Etudiant Administrateur"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	LastName  *string `json:"last_name" binding:"omitempty,max=100"`
	FirstName *string `json:"first_name" binding:"omitempty,max=100"`
	Email     *string `json:"email" binding:"omitempty,email,max=150"`
	Password  *string `json:"password" binding:"omitempty,min=8"`
}

type UserResponse struct {
	ID        uint   `json:"id"`
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User  interface{} `json:"user"`
	Token string      `json:"token"`
}
