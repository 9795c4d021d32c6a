package auth

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/oicpanel/backend/domain"
	"github.com/oicpanel/backend/pkg/password"
	"github.com/oicpanel/backend/pkg/token"
	"github.com/oicpanel/backend/repository"
)

// Service orchestrates credential verification and stateless session
// checks against the credential store.
type Service struct {
	users  repository.UserRepository
	tokens *token.Issuer
	logger *zap.Logger
}

func New(users repository.UserRepository, tokens *token.Issuer, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

// LoginResult bundles the sanitized user with the issued session token.
type LoginResult struct {
	User  *domain.User
	Token string
}

// Login verifies credentials and issues a session token. Every rejection
// path returns domain.ErrInvalidCredentials so callers cannot enumerate
// accounts; the specific cause is only logged.
func (s *Service) Login(ctx context.Context, email, plain string) (*LoginResult, error) {
	if email == "" || plain == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			s.logger.Warn("login rejected: unknown email", zap.String("email", email))
			return nil, domain.ErrInvalidCredentials
		}
		return nil, domain.WrapError(domain.ErrCodeInternal, "credential lookup failed", err)
	}

	if !user.IsActive() {
		s.logger.Warn("login rejected: inactive account", zap.String("email", email))
		return nil, domain.ErrInvalidCredentials
	}

	if !password.Verify(user.PasswordHash, plain) {
		s.logger.Warn("login rejected: password mismatch", zap.String("email", email))
		return nil, domain.ErrInvalidCredentials
	}

	// Best effort: a failed timestamp update must not fail the login.
	now := time.Now()
	if err := s.users.TouchLastAccess(ctx, user.ID, now); err != nil {
		s.logger.Warn("last access update failed",
			zap.String("user_id", user.ID),
			zap.Error(err))
	} else {
		user.LastAccessAt = &now
	}

	signed, err := s.tokens.Issue(user)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "token issuance failed", err)
	}

	s.logger.Info("login succeeded",
		zap.String("user_id", user.ID),
		zap.String("role", string(user.Role)))

	return &LoginResult{User: user.Sanitized(), Token: signed}, nil
}

// VerifyToken validates a session token and re-reads the user record by
// the embedded id. The embedded role is never trusted on its own: role
// changes and deactivation take effect at the next verification.
func (s *Service) VerifyToken(ctx context.Context, raw string) (*domain.User, error) {
	claims, err := s.tokens.Verify(raw)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, domain.WrapError(domain.ErrCodeInternal, "user lookup failed", err)
	}

	if !user.IsActive() {
		return nil, domain.ErrUnauthenticated
	}

	return user.Sanitized(), nil
}
