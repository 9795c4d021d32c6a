package services

import (
	"context"
	"encoding/json"

	"github.com/oicpanel/backend/domain"
	"github.com/oicpanel/backend/internal/infrastructure/buffer"
	"github.com/oicpanel/backend/usecase"
)

// BufferBridge adapts the buffer processor to the usecase-facing port.
type BufferBridge struct {
	processor *BufferProcessor
}

func NewBufferBridge(processor *BufferProcessor) *BufferBridge {
	return &BufferBridge{processor: processor}
}

func (b *BufferBridge) BufferAcuerdo(ctx context.Context, operation string, acuerdo *domain.Acuerdo) error {
	if b.processor == nil || acuerdo == nil {
		return domain.ErrInvalidPayload
	}
	payload, err := json.Marshal(acuerdo)
	if err != nil {
		return err
	}
	item := buffer.Item{
		ID:        acuerdo.ID,
		Entity:    buffer.EntityAcuerdo,
		Operation: operation,
		Data:      payload,
		Priority:  3,
	}
	return b.processor.BufferOperation(ctx, item)
}

func (b *BufferBridge) BufferSeguimiento(ctx context.Context, operation string, seguimiento *domain.Seguimiento) error {
	if b.processor == nil || seguimiento == nil {
		return domain.ErrInvalidPayload
	}
	payload, err := json.Marshal(seguimiento)
	if err != nil {
		return err
	}
	item := buffer.Item{
		ID:        seguimiento.ID,
		ActorID:   seguimiento.AutorID,
		Entity:    buffer.EntitySeguimiento,
		Operation: operation,
		Data:      payload,
		Priority:  4,
	}
	return b.processor.BufferOperation(ctx, item)
}

var _ usecase.OperationBuffer = (*BufferBridge)(nil)
