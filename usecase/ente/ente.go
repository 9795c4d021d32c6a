package ente

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/oicpanel/backend/domain"
	"github.com/oicpanel/backend/repository"
)

type UseCase struct {
	entes  repository.EnteRepository
	logger *zap.Logger
}

func New(entes repository.EnteRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		entes:  entes,
		logger: logger,
	}
}

func (uc *UseCase) List(ctx context.Context, filter repository.EnteFilter) ([]domain.Ente, error) {
	return uc.entes.List(ctx, filter)
}

func (uc *UseCase) Get(ctx context.Context, id string) (*domain.Ente, error) {
	return uc.entes.GetByID(ctx, id)
}

func (uc *UseCase) Create(ctx context.Context, ente *domain.Ente) (*domain.Ente, error) {
	if err := validate(ente); err != nil {
		return nil, err
	}
	if ente.ID == "" {
		ente.ID = uuid.NewString()
	}
	if err := uc.entes.Create(ctx, ente); err != nil {
		return nil, err
	}
	return ente, nil
}

func (uc *UseCase) Update(ctx context.Context, ente *domain.Ente) (*domain.Ente, error) {
	if err := validate(ente); err != nil {
		return nil, err
	}
	if err := uc.entes.Update(ctx, ente); err != nil {
		return nil, err
	}
	return ente, nil
}

func (uc *UseCase) Delete(ctx context.Context, id string) error {
	return uc.entes.Delete(ctx, id)
}

func validate(ente *domain.Ente) error {
	if ente == nil || ente.Nombre == "" {
		return domain.ErrInvalidPayload
	}
	if !domain.ValidAmbito(ente.Ambito) || !domain.ValidPoder(ente.Poder) {
		return domain.ErrInvalidPayload
	}
	return nil
}
