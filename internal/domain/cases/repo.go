package cases

import (
	"context"

	"github.com/google/uuid"

	"github.com/stroketeam/fasttrack/internal/domain/patient"
)

type Repository interface {
	// CreateWithPatient inserts the patient and its case in one transaction.
	CreateWithPatient(ctx context.Context, p *patient.Patient, cs *Case) error
	GetByID(ctx context.Context, id uuid.UUID) (*Case, error)
	List(ctx context.Context, limit, offset int) ([]*Case, int, error)
	ListByStatus(ctx context.Context, status string) ([]*Case, error)
	GetByPatient(ctx context.Context, patientID uuid.UUID) (*PatientCase, error)
	Update(ctx context.Context, id uuid.UUID, fields UpdateFields) (*Case, error)
	Finish(ctx context.Context, id uuid.UUID) (*Case, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
