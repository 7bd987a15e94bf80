package nihss

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

// CreateEntry records a new assessment round. The total score is always
// recomputed from the submitted checklist, never taken from the client.
func (s *Service) CreateEntry(ctx context.Context, caseID uuid.UUID, round int, checklist Checklist) (*Entry, error) {
	if err := validateRound(round); err != nil {
		return nil, err
	}
	if len(checklist) == 0 {
		return nil, apperr.Validation("NIHSS checklist is required")
	}

	now := s.now().UTC()
	e := &Entry{
		CaseID:         caseID,
		Round:          round,
		Checklist:      checklist,
		Score:          checklist.Sum(),
		StartOn:        now,
		LastModifiedOn: now,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	e.Severity = SeverityLabel(e.Score)
	return e, nil
}

// ListEntries returns every recorded round for the case, oldest round
// first. A case with no rounds yet is reported as not found so callers
// can tell "not assessed" from "assessed with empty findings".
func (s *Service) ListEntries(ctx context.Context, caseID uuid.UUID) ([]*Entry, error) {
	list, err := s.repo.ListByCase(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, apperr.NotFound("NIHSS data not found for this case")
	}
	for _, e := range list {
		e.Severity = SeverityLabel(e.Score)
	}
	return list, nil
}

// GetEntry returns the single round for the case.
func (s *Service) GetEntry(ctx context.Context, caseID uuid.UUID, round int) (*Entry, error) {
	if err := validateRound(round); err != nil {
		return nil, err
	}
	list, err := s.repo.ListByCase(ctx, caseID)
	if err != nil {
		return nil, err
	}
	for _, e := range list {
		if e.Round == round {
			e.Severity = SeverityLabel(e.Score)
			return e, nil
		}
	}
	return nil, apperr.NotFound("NIHSS entry not found for this case and round")
}

// UpdateEntry replaces the checklist for an existing round and
// recomputes the score from it.
func (s *Service) UpdateEntry(ctx context.Context, caseID uuid.UUID, round int, checklist Checklist) (*Entry, error) {
	if err := validateRound(round); err != nil {
		return nil, err
	}
	if len(checklist) == 0 {
		return nil, apperr.Validation("NIHSS checklist is required")
	}

	e := &Entry{
		CaseID:         caseID,
		Round:          round,
		Checklist:      checklist,
		Score:          checklist.Sum(),
		LastModifiedOn: s.now().UTC(),
	}
	updated, err := s.repo.Update(ctx, e)
	if err != nil {
		return nil, err
	}
	updated.Severity = SeverityLabel(updated.Score)
	return updated, nil
}

func validateRound(round int) error {
	if round < MinRound || round > MaxRound {
		return apperr.Validation("Invalid round. Round must be between 0 and 4.")
	}
	return nil
}
