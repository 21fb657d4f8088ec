package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/tasklist-service/internal/auth"
	"github.com/spec-kit/tasklist-service/internal/config"
	"github.com/spec-kit/tasklist-service/internal/domain"
	"github.com/spec-kit/tasklist-service/internal/events"
	"github.com/spec-kit/tasklist-service/internal/repository"
	apperrors "github.com/spec-kit/tasklist-service/pkg/util"
)

// UserService coordinates registration and login flows and is the only
// producer of tokens.
type UserService struct {
	users    repository.UserRepository
	tokenMgr *auth.TokenManager
	events   events.Dispatcher
}

// NewUserService builds the service.
func NewUserService(cfg config.Config, users repository.UserRepository, dispatcher events.Dispatcher) *UserService {
	return &UserService{
		users:    users,
		tokenMgr: auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL()),
		events:   dispatcher,
	}
}

// Register creates a new account. The name must be unique.
func (s *UserService) Register(ctx context.Context, name, password string) (*domain.User, error) {
	if _, err := s.users.GetByName(ctx, name); err == nil {
		return nil, apperrors.NewNameTaken(name)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	// Secrets are kept plaintext for compatibility with the existing
	// credential data; see DESIGN.md.
	user := &domain.User{Name: name, Password: password}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	_ = s.events.Publish(ctx, events.Event{
		Type:       events.EventUserRegistered,
		ActorID:    user.ID,
		ResourceID: user.ID,
	})
	return user, nil
}

// Login authenticates a name/secret pair and issues a token. Unknown names
// and wrong secrets fail identically so usernames cannot be enumerated.
func (s *UserService) Login(ctx context.Context, name, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
		}
		return nil, "", time.Time{}, err
	}

	if subtle.ConstantTimeCompare([]byte(user.Password), []byte(password)) != 1 {
		return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
	}

	token, expiresAt, err := s.tokenMgr.Issue(user.ID)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, expiresAt, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *UserService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
