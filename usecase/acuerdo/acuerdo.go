package acuerdo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/oicpanel/backend/domain"
	"github.com/oicpanel/backend/repository"
	"github.com/oicpanel/backend/usecase"
)

type UseCase struct {
	acuerdos repository.AcuerdoRepository
	buffer   usecase.OperationBuffer
	logger   *zap.Logger
}

func New(acuerdos repository.AcuerdoRepository, buffer usecase.OperationBuffer, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		acuerdos: acuerdos,
		buffer:   buffer,
		logger:   logger,
	}
}

func (uc *UseCase) List(ctx context.Context, filter repository.AcuerdoFilter) ([]domain.Acuerdo, error) {
	return uc.acuerdos.List(ctx, filter)
}

func (uc *UseCase) Get(ctx context.Context, id string) (*domain.Acuerdo, error) {
	return uc.acuerdos.GetByID(ctx, id)
}

func (uc *UseCase) Create(ctx context.Context, acuerdo *domain.Acuerdo) (*domain.Acuerdo, error) {
	if acuerdo == nil || acuerdo.Descripcion == "" || acuerdo.EnteID == "" {
		return nil, domain.ErrInvalidPayload
	}
	if acuerdo.Estado == "" {
		acuerdo.Estado = domain.AcuerdoPendiente
	}
	if !domain.ValidEstado(acuerdo.Estado) {
		return nil, domain.ErrInvalidPayload
	}
	if acuerdo.ID == "" {
		acuerdo.ID = uuid.NewString()
	}

	if err := uc.acuerdos.Create(ctx, acuerdo); err != nil {
		if uc.shouldBuffer(ctx, usecase.OperationCreate, acuerdo) {
			return acuerdo, nil
		}
		return nil, err
	}
	return acuerdo, nil
}

func (uc *UseCase) Update(ctx context.Context, acuerdo *domain.Acuerdo) (*domain.Acuerdo, error) {
	if acuerdo == nil || acuerdo.ID == "" || !domain.ValidEstado(acuerdo.Estado) {
		return nil, domain.ErrInvalidPayload
	}
	if err := uc.acuerdos.Update(ctx, acuerdo); err != nil {
		if uc.shouldBuffer(ctx, usecase.OperationUpdate, acuerdo) {
			return acuerdo, nil
		}
		return nil, err
	}
	return acuerdo, nil
}

func (uc *UseCase) Delete(ctx context.Context, id string) error {
	if err := uc.acuerdos.Delete(ctx, id); err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return err
		}
		if uc.shouldBuffer(ctx, usecase.OperationDelete, &domain.Acuerdo{ID: id}) {
			return nil
		}
		return err
	}
	return nil
}

// AddSeguimiento records a follow-up note against an open acuerdo.
func (uc *UseCase) AddSeguimiento(ctx context.Context, seguimiento *domain.Seguimiento) (*domain.Seguimiento, error) {
	if seguimiento == nil || seguimiento.AcuerdoID == "" || seguimiento.Comentario == "" {
		return nil, domain.ErrInvalidPayload
	}

	acuerdo, err := uc.acuerdos.GetByID(ctx, seguimiento.AcuerdoID)
	if err != nil {
		return nil, err
	}
	if acuerdo.IsClosed() {
		return nil, domain.NewError(domain.ErrCodeConflict, "acuerdo is closed")
	}

	if seguimiento.ID == "" {
		seguimiento.ID = uuid.NewString()
	}
	if seguimiento.Fecha.IsZero() {
		seguimiento.Fecha = time.Now()
	}

	if err := uc.acuerdos.AddSeguimiento(ctx, seguimiento); err != nil {
		if uc.buffer != nil {
			if bufErr := uc.buffer.BufferSeguimiento(ctx, usecase.OperationCreate, seguimiento); bufErr == nil {
				uc.logger.Warn("seguimiento buffered due to repository error", zap.Error(err))
				return seguimiento, nil
			}
		}
		return nil, err
	}
	return seguimiento, nil
}

func (uc *UseCase) ListSeguimientos(ctx context.Context, acuerdoID string) ([]domain.Seguimiento, error) {
	if _, err := uc.acuerdos.GetByID(ctx, acuerdoID); err != nil {
		return nil, err
	}
	return uc.acuerdos.ListSeguimientos(ctx, acuerdoID)
}

func (uc *UseCase) shouldBuffer(ctx context.Context, operation string, acuerdo *domain.Acuerdo) bool {
	if uc.buffer == nil {
		return false
	}
	if err := uc.buffer.BufferAcuerdo(ctx, operation, acuerdo); err != nil {
		uc.logger.Error("failed to buffer acuerdo operation",
			zap.String("operation", operation),
			zap.Error(err))
		return false
	}
	uc.logger.Warn("acuerdo operation buffered", zap.String("operation", operation))
	return true
}
