package befast

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

// CreateRecord registers the BEFAST screening for a case. Letters the
// client omits default to "0" (not observed).
func (s *Service) CreateRecord(ctx context.Context, rec *Record) error {
	defaultSign(&rec.Balance)
	defaultSign(&rec.Eyes)
	defaultSign(&rec.Face)
	defaultSign(&rec.Arms)
	defaultSign(&rec.Speech)
	defaultSign(&rec.Time)
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

func defaultSign(v *string) {
	if *v == "" {
		*v = "0"
	}
}
