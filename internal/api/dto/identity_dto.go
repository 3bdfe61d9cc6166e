package dto

import (
	"time"

	"github.com/spec-kit/auth-service/internal/domain"
)

// RegisterRequest payload for new identities.
type RegisterRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer-prefixed token.
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// IdentityResponse is the external representation of a persisted identity.
// It never carries the password hash.
type IdentityResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	AvatarURL string    `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
}

// NewIdentityResponse maps a domain identity to its external form.
func NewIdentityResponse(identity *domain.Identity) IdentityResponse {
	return IdentityResponse{
		ID:        identity.ID,
		Name:      identity.Name,
		Email:     identity.Email,
		AvatarURL: identity.AvatarURL,
		CreatedAt: identity.CreatedAt,
	}
}

// CurrentResponse describes the authenticated caller.
type CurrentResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
