package repository

import (
	"context"

	"github.com/oicpanel/backend/domain"
)

type EnteFilter struct {
	Ambito     string
	Poder      string
	ActiveOnly bool
	Limit      int
	Offset     int
}

type EnteRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Ente, error)
	List(ctx context.Context, filter EnteFilter) ([]domain.Ente, error)
	Create(ctx context.Context, ente *domain.Ente) error
	Update(ctx context.Context, ente *domain.Ente) error
	Delete(ctx context.Context, id string) error
}
