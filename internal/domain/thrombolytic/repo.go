package thrombolytic

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, rec *Record) error
	GetByCase(ctx context.Context, caseID uuid.UUID) (*Record, error)
	Update(ctx context.Context, rec *Record) (*Record, error)
}
