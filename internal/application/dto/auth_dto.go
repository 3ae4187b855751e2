package dto

import "time"

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Usuario  string `json:"usuario" form:"usuario"`
	Password string `json:"password" form:"password"`
}

// UserResponse usuario sin hash de password.
type UserResponse struct {
	ID        string    `json:"id"`
	Usuario   string    `json:"usuario"`
	Rol       string    `json:"rol"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse token + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
