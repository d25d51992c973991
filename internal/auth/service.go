package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/theegirlieshub/girlieshub-backend/pkg/config"
	"github.com/theegirlieshub/girlieshub-backend/pkg/db/models"
	pkgerrors "github.com/theegirlieshub/girlieshub-backend/pkg/errors"
	"github.com/theegirlieshub/girlieshub-backend/pkg/logger"
	"github.com/theegirlieshub/girlieshub-backend/pkg/redis"
	"github.com/theegirlieshub/girlieshub-backend/pkg/security"
	"gorm.io/gorm"
)

type adminUserRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.AdminUser, error)
}

// Service handles back-office login and session tokens.
type Service interface {
	Login(ctx context.Context, password string) (*Session, error)
	Validate(ctx context.Context, token string) error
	Logout(ctx context.Context, token string) error
}

// Session is an issued admin session.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type service struct {
	cfg      config.AdminConfig
	users    adminUserRepository
	sessions redis.SessionStore
	logg     *logger.Logger
}

// NewService builds the admin auth service. The user repository is
// optional; without it only the configured password hash is accepted.
func NewService(cfg config.AdminConfig, users adminUserRepository, sessions redis.SessionStore, logg *logger.Logger) (Service, error) {
	if sessions == nil {
		return nil, fmt.Errorf("session store required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{cfg: cfg, users: users, sessions: sessions, logg: logg}, nil
}

// defaultAdminUsername is the row consulted when no password hash is
// configured.
const defaultAdminUsername = "admin"

// Login verifies the shared admin password and issues an opaque
// session token with a TTL.
func (s *service) Login(ctx context.Context, password string) (*Session, error) {
	if password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "password is required")
	}

	hash, err := s.passwordHash(ctx)
	if err != nil {
		return nil, err
	}

	ok, err := security.VerifyPassword(password, hash)
	if err != nil {
		s.logg.Error(ctx, "admin password hash unreadable", err)
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "login unavailable")
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid password")
	}

	token := uuid.NewString()
	ttl := s.cfg.SessionTTL()
	if err := s.sessions.Set(ctx, s.sessions.AdminSessionKey(token), "1", ttl); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store session")
	}

	s.logg.Info(ctx, "admin session issued")
	return &Session{Token: token, ExpiresAt: time.Now().Add(ttl)}, nil
}

// Validate checks that the token names a live session.
func (s *service) Validate(ctx context.Context, token string) error {
	if token == "" {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "session token required")
	}
	_, err := s.sessions.Get(ctx, s.sessions.AdminSessionKey(token))
	if errors.Is(err, redis.Nil) {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "session expired")
	}
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read session")
	}
	return nil
}

// Logout drops the session, if any.
func (s *service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Del(ctx, s.sessions.AdminSessionKey(token)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "drop session")
	}
	return nil
}

// passwordHash prefers the configured hash and falls back to the
// admin_users row.
func (s *service) passwordHash(ctx context.Context) (string, error) {
	if s.cfg.PasswordHash != "" {
		return s.cfg.PasswordHash, nil
	}
	if s.users == nil {
		return "", pkgerrors.New(pkgerrors.CodeInternal, "no admin credential configured")
	}
	user, err := s.users.FindByUsername(ctx, defaultAdminUsername)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid password")
		}
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load admin user")
	}
	return user.PasswordHash, nil
}
