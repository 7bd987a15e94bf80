package befast

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, rec *Record) error
	GetByCase(ctx context.Context, caseID uuid.UUID) (*Record, error)
	Update(ctx context.Context, caseID uuid.UUID, fields UpdateFields, modifiedOn time.Time) (*Record, error)
}
