package nihss

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, e *Entry) error
	ListByCase(ctx context.Context, caseID uuid.UUID) ([]*Entry, error)
	Update(ctx context.Context, e *Entry) (*Entry, error)
}
