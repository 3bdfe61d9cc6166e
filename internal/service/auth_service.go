package service

import (
	"context"
	"errors"
	"time"

	"github.com/spec-kit/auth-service/internal/auth"
	"github.com/spec-kit/auth-service/internal/avatar"
	"github.com/spec-kit/auth-service/internal/cache"
	"github.com/spec-kit/auth-service/internal/config"
	"github.com/spec-kit/auth-service/internal/domain"
	"github.com/spec-kit/auth-service/internal/repository"
	"github.com/spec-kit/auth-service/internal/validation"
	apperrors "github.com/spec-kit/auth-service/pkg/util"
)

// AuthService coordinates the registration, login, and identify flows.
type AuthService struct {
	identities repository.IdentityRepository
	cache      *cache.IdentityCache
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// AuthDependencies encapsulates collaborator requirements for the service.
type AuthDependencies struct {
	IdentityRepo repository.IdentityRepository
	Cache        *cache.IdentityCache
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		identities: deps.IdentityRepo,
		cache:      deps.Cache,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTLSeconds),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Register creates a new identity. Validation and the duplicate check run
// before any side effect; a hashing or store failure aborts the flow without
// persisting anything.
func (s *AuthService) Register(ctx context.Context, name, email, password, passwordConfirmation string) (*domain.Identity, error) {
	result := validation.Register(validation.RegisterInput{
		Name:                 name,
		Email:                email,
		Password:             password,
		PasswordConfirmation: passwordConfirmation,
	})
	if !result.Valid() {
		return nil, apperrors.NewValidationFailed(result.FieldErrors)
	}

	if _, err := s.identities.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewDuplicateEmail()
	} else if !errors.Is(err, repository.ErrIdentityNotFound) {
		return nil, apperrors.NewInternalError(err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	identity := &domain.Identity{
		Name:         name,
		Email:        email,
		AvatarURL:    avatar.URL(email),
		PasswordHash: hash,
	}
	if err := s.identities.Create(ctx, identity); err != nil {
		// The unique index closes the race between the existence check and
		// this insert; a concurrent duplicate surfaces here.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperrors.NewDuplicateEmail()
		}
		return nil, apperrors.NewInternalError(err)
	}

	return identity, nil
}

// Login authenticates an identity by email and password and issues a bearer
// token. Unknown email and wrong password are distinct outcomes.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	result := validation.Login(validation.LoginInput{Email: email, Password: password})
	if !result.Valid() {
		return "", time.Time{}, apperrors.NewValidationFailed(result.FieldErrors)
	}

	identity, err := s.identities.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrIdentityNotFound) {
			return "", time.Time{}, apperrors.NewIdentityNotFound()
		}
		return "", time.Time{}, apperrors.NewInternalError(err)
	}

	if !auth.CheckPassword(identity.PasswordHash, password) {
		return "", time.Time{}, apperrors.NewInvalidCredentials()
	}

	token, expiresAt, err := s.tokenMgr.Issue(identity.ID, identity.Name, identity.AvatarURL)
	if err != nil {
		return "", time.Time{}, apperrors.NewInternalError(err)
	}
	return token, expiresAt, nil
}

// Identify resolves an already-authenticated caller from a presented token.
// The stored identity is loaded (cache first) rather than trusting claims
// alone, so callers see the authoritative email. Every token failure maps to
// the same unauthenticated outcome.
func (s *AuthService) Identify(ctx context.Context, token string) (*domain.Identity, error) {
	claims, err := s.tokenMgr.Parse(token)
	if err != nil {
		return nil, apperrors.NewUnauthenticated("invalid token")
	}

	if cached, _ := s.cache.Get(ctx, claims.ID); cached != nil {
		return cached, nil
	}

	identity, err := s.identities.GetByID(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, repository.ErrIdentityNotFound) {
			return nil, apperrors.NewUnauthenticated("identity not found")
		}
		return nil, apperrors.NewInternalError(err)
	}

	_ = s.cache.Set(ctx, identity)
	return identity, nil
}

// TokenManager exposes the underlying token manager for wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
