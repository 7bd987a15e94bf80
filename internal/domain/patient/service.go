package patient

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/stroketeam/fasttrack/internal/platform/apperr"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) CreatePatient(ctx context.Context, p *Patient) error {
	if p.Name == "" {
		return apperr.Validation("name is required")
	}
	if p.DOB != nil {
		p.Age = AgeAt(*p.DOB, s.now())
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) GetPatient(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListPatients(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	return s.repo.List(ctx, limit, offset)
}

// UpdatePatient applies a partial update. The age column is derived: whenever
// dob is among the supplied fields it is recomputed here, never accepted from
// the caller.
func (s *Service) UpdatePatient(ctx context.Context, id uuid.UUID, fields UpdateFields) (*Patient, error) {
	if fields.Empty() {
		return nil, apperr.Validation("No fields provided for update")
	}
	fields.Age = nil
	if fields.DOB != nil {
		age := AgeAt(*fields.DOB, s.now())
		fields.Age = &age
	}
	return s.repo.Update(ctx, id, fields)
}

func (s *Service) DeletePatient(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
