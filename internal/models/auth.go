package models

import "github.com/golang-jwt/jwt/v5"

// LoginRequest holds credentials for authenticating a teacher.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest holds the fields for creating a teacher account.
type RegisterRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	Department string `json:"department" validate:"required"`
}

// AuthResponse returns the issued token and the redacted teacher view.
type AuthResponse struct {
	Token   string      `json:"token"`
	Teacher TeacherInfo `json:"teacher"`
}

// JWTClaims represents the bearer token payload.
type JWTClaims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}
