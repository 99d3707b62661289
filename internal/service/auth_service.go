package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spec-kit/news-service/internal/auth"
	"github.com/spec-kit/news-service/internal/config"
	"github.com/spec-kit/news-service/internal/domain"
	"github.com/spec-kit/news-service/internal/repository"
)

// AuthService coordinates registration and login flows. It keeps no
// per-request state; every response value is freshly allocated.
type AuthService struct {
	credentials repository.CredentialRepository
	verifier    auth.SecretVerifier
	tokenMgr    *auth.TokenManager
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, credentials repository.CredentialRepository) *AuthService {
	return &AuthService{
		credentials: credentials,
		verifier:    auth.NewBcryptVerifier(cfg.Auth.BcryptCost),
		tokenMgr:    auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL()),
	}
}

// Register creates a credential for a new user id. Uniqueness is keyed
// on the id alone; a taken id is rejected regardless of the secret.
func (s *AuthService) Register(ctx context.Context, userID, password string) (*domain.Credential, error) {
	if userID == "" || password == "" {
		return nil, domain.ErrMissingCredentials
	}

	taken, err := s.credentials.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("user %q: %w", userID, domain.ErrUserExists)
	}

	hash, err := s.verifier.Hash(password)
	if err != nil {
		return nil, err
	}

	cred := &domain.Credential{
		UserID:     userID,
		SecretHash: hash,
		CreatedAt:  time.Now(),
	}
	if err := s.credentials.Create(ctx, cred); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, fmt.Errorf("user %q: %w", userID, domain.ErrUserExists)
		}
		return nil, err
	}
	return cred, nil
}

// Login checks the credentials and mints a token with the user id as
// subject. Empty fields are rejected before any store access.
func (s *AuthService) Login(ctx context.Context, userID, password string) (string, time.Time, error) {
	if userID == "" || password == "" {
		return "", time.Time{}, domain.ErrMissingCredentials
	}

	cred, err := s.credentials.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", time.Time{}, domain.ErrInvalidCredentials
		}
		return "", time.Time{}, err
	}
	if err := s.verifier.Verify(cred.SecretHash, password); err != nil {
		return "", time.Time{}, domain.ErrInvalidCredentials
	}

	return s.tokenMgr.GenerateToken(userID)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
