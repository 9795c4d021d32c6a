package user

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/oicpanel/backend/domain"
	"github.com/oicpanel/backend/pkg/password"
	"github.com/oicpanel/backend/repository"
)

// UseCase covers administrator-only user management.
type UseCase struct {
	users  repository.UserRepository
	logger *zap.Logger
}

func New(users repository.UserRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:  users,
		logger: logger,
	}
}

func (uc *UseCase) List(ctx context.Context, filter repository.UserFilter) ([]domain.User, error) {
	users, err := uc.users.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

func (uc *UseCase) Get(ctx context.Context, id string) (*domain.User, error) {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Sanitized(), nil
}

func (uc *UseCase) Create(ctx context.Context, email, plain string, role domain.Role) (*domain.User, error) {
	if email == "" || plain == "" || !role.Valid() {
		return nil, domain.ErrInvalidPayload
	}

	hash, err := password.Hash(plain)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "password hashing failed", err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Active:       true,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}

	uc.logger.Info("user created",
		zap.String("user_id", user.ID),
		zap.String("role", string(role)))
	return user.Sanitized(), nil
}

func (uc *UseCase) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user == nil || user.ID == "" || user.Email == "" || !user.Role.Valid() {
		return nil, domain.ErrInvalidPayload
	}
	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user.Sanitized(), nil
}

func (uc *UseCase) SetPassword(ctx context.Context, id, plain string) error {
	if id == "" || plain == "" {
		return domain.ErrInvalidPayload
	}
	hash, err := password.Hash(plain)
	if err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "password hashing failed", err)
	}
	return uc.users.UpdatePassword(ctx, id, hash)
}

// Deactivate disables the account. Outstanding tokens stay
// cryptographically valid but fail verification on the next request.
func (uc *UseCase) Deactivate(ctx context.Context, id string) error {
	if err := uc.users.SetActive(ctx, id, false); err != nil {
		return err
	}
	uc.logger.Info("user deactivated", zap.String("user_id", id))
	return nil
}
