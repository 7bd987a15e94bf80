package injection

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

func (s *Service) CreateRecord(ctx context.Context, rec *Record) error {
	rec.LastModifiedOn = s.now().UTC()
	return s.repo.Create(ctx, rec)
}

func (s *Service) GetRecord(ctx context.Context, caseID uuid.UUID) (*Record, error) {
	return s.repo.GetByCase(ctx, caseID)
}

func (s *Service) UpdateRecord(ctx context.Context, caseID uuid.UUID, fields UpdateFields) (*Record, error) {
	if fields.Empty() {
		return nil, apperr.Validation("No fields provided for update")
	}
	return s.repo.Update(ctx, caseID, fields, s.now().UTC())
}

// DoseForPatientWeight exposes the dosing rule for the dose preview
// endpoint. Weight must be positive.
func (s *Service) DoseForPatientWeight(weightKg float64) (Dose, error) {
	if weightKg <= 0 {
		return Dose{}, apperr.Validation("Weight must be a positive number")
	}
	return DoseForWeight(weightKg), nil
}
