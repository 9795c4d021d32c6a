package repository

import (
	"context"
	"time"

	"github.com/oicpanel/backend/domain"
)

type UserFilter struct {
	Role       domain.Role
	ActiveOnly bool
	Limit      int
	Offset     int
}

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// GetByEmail performs an exact, case-sensitive lookup.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, filter UserFilter) ([]domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	SetActive(ctx context.Context, id string, active bool) error
	TouchLastAccess(ctx context.Context, id string, at time.Time) error
}
