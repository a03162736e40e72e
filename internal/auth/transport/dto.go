package transport

import "github.com/google/uuid"

// RegisterRequest contains data for creating a new account.
type RegisterRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100,personname"`
	PhoneNumber string  `json:"phoneNumber" validate:"required,phonenum"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email,max=254"`
	Password    string  `json:"password" validate:"required,min=6"`
}

// LoginRequest contains credentials for signing in.
type LoginRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required,phonenum"`
	Password    string `json:"password" validate:"required"`
}

// UserResponse represents an account in API responses.
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phoneNumber"`
	Email       *string   `json:"email"`
	CreatedAt   string    `json:"createdAt,omitempty"`
}

// AuthResponse is returned from register and login.
type AuthResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token"`
}
