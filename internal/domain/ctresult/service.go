package ctresult

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

func (s *Service) CreateRecord(ctx context.Context, caseID uuid.UUID, result string) (*Record, error) {
	if result == "" {
		return nil, apperr.Validation("CT result is required")
	}
	rec := &Record{
		CaseID:         caseID,
		Result:         result,
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

func (s *Service) UpdateRecord(ctx context.Context, caseID uuid.UUID, result string) (*Record, error) {
	if result == "" {
		return nil, apperr.Validation("CT result is required")
	}
	return s.repo.Update(ctx, caseID, result, s.now().UTC())
}
