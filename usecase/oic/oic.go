package oic

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/oicpanel/backend/domain"
	"github.com/oicpanel/backend/repository"
)

type UseCase struct {
	oics   repository.OICRepository
	entes  repository.EnteRepository
	logger *zap.Logger
}

func New(oics repository.OICRepository, entes repository.EnteRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		oics:   oics,
		entes:  entes,
		logger: logger,
	}
}

func (uc *UseCase) List(ctx context.Context, filter repository.OICFilter) ([]domain.OIC, error) {
	return uc.oics.List(ctx, filter)
}

func (uc *UseCase) Get(ctx context.Context, id string) (*domain.OIC, error) {
	return uc.oics.GetByID(ctx, id)
}

func (uc *UseCase) Create(ctx context.Context, oic *domain.OIC) (*domain.OIC, error) {
	if oic == nil || oic.Nombre == "" || oic.EnteID == "" {
		return nil, domain.ErrInvalidPayload
	}
	// The directory entry must point at a registered ente.
	if _, err := uc.entes.GetByID(ctx, oic.EnteID); err != nil {
		return nil, err
	}
	if oic.ID == "" {
		oic.ID = uuid.NewString()
	}
	if err := uc.oics.Create(ctx, oic); err != nil {
		return nil, err
	}
	return oic, nil
}

func (uc *UseCase) Update(ctx context.Context, oic *domain.OIC) (*domain.OIC, error) {
	if oic == nil || oic.ID == "" || oic.Nombre == "" || oic.EnteID == "" {
		return nil, domain.ErrInvalidPayload
	}
	if err := uc.oics.Update(ctx, oic); err != nil {
		return nil, err
	}
	return oic, nil
}

func (uc *UseCase) Delete(ctx context.Context, id string) error {
	return uc.oics.Delete(ctx, id)
}
