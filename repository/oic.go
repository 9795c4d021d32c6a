package repository

import (
	"context"

	"github.com/oicpanel/backend/domain"
)

type OICFilter struct {
	EnteID     string
	ActiveOnly bool
	Limit      int
	Offset     int
}

type OICRepository interface {
	GetByID(ctx context.Context, id string) (*domain.OIC, error)
	List(ctx context.Context, filter OICFilter) ([]domain.OIC, error)
	Create(ctx context.Context, oic *domain.OIC) error
	Update(ctx context.Context, oic *domain.OIC) error
	Delete(ctx context.Context, id string) error
}
