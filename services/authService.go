package services

import (
	"context"
)

// LoginResult is the body of a successful login
type LoginResult struct {
	Username string `json:"username"`
	Message  string `json:"message"`
}

// AuthService is the service for interactions with the session endpoints of the backend
type AuthService interface {
	// GetCurrentUser returns the authenticated user, or an empty string when there is none
	GetCurrentUser(context.Context) (string, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Logout(context.Context) error
}
