package usecase

import (
	"context"

	"github.com/oicpanel/backend/domain"
)

// Buffered operation kinds.
const (
	OperationCreate = "create"
	OperationUpdate = "update"
	OperationDelete = "delete"
)

// OperationBuffer abstracts the offline write buffer so use cases stay
// storage-agnostic. Only acuerdo and seguimiento writes are buffered;
// authentication is never a buffering candidate.
type OperationBuffer interface {
	BufferAcuerdo(ctx context.Context, operation string, acuerdo *domain.Acuerdo) error
	BufferSeguimiento(ctx context.Context, operation string, seguimiento *domain.Seguimiento) error
}
