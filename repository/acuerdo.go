package repository

import (
	"context"

	"github.com/oicpanel/backend/domain"
)

type AcuerdoFilter struct {
	EnteID string
	Estado string
	Limit  int
	Offset int
}

type AcuerdoRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Acuerdo, error)
	List(ctx context.Context, filter AcuerdoFilter) ([]domain.Acuerdo, error)
	Create(ctx context.Context, acuerdo *domain.Acuerdo) error
	Update(ctx context.Context, acuerdo *domain.Acuerdo) error
	Delete(ctx context.Context, id string) error

	AddSeguimiento(ctx context.Context, seguimiento *domain.Seguimiento) error
	ListSeguimientos(ctx context.Context, acuerdoID string) ([]domain.Seguimiento, error)
}
