package thrombolytic

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

// CreateRecord stores the eligibility checklist for a case. The is_met
// flag is derived from the checklist on every write; a client-supplied
// value is never trusted.
func (s *Service) CreateRecord(ctx context.Context, caseID uuid.UUID, checklist Checklist) (*Record, error) {
	if err := validateChecklist(checklist); err != nil {
		return nil, err
	}
	rec := &Record{
		CaseID:         caseID,
		Checklist:      checklist,
		IsMet:          checklist.IsMet(),
		LastModifiedOn: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Service) GetRecord(ctx context.Context, caseID uuid.UUID) (*Record, error) {
	return s.repo.GetByCase(ctx, caseID)
}

// UpdateRecord replaces the checklist and re-derives is_met from it.
func (s *Service) UpdateRecord(ctx context.Context, caseID uuid.UUID, checklist Checklist) (*Record, error) {
	if err := validateChecklist(checklist); err != nil {
		return nil, err
	}
	rec := &Record{
		CaseID:         caseID,
		Checklist:      checklist,
		IsMet:          checklist.IsMet(),
		LastModifiedOn: s.now().UTC(),
	}
	return s.repo.Update(ctx, rec)
}

func validateChecklist(c Checklist) error {
	if len(c.Inclusion) == 0 && len(c.AbsoluteExclusion) == 0 && len(c.RelativeExclusion) == 0 {
		return apperr.Validation("Thrombolytic checklist is required")
	}
	return nil
}
