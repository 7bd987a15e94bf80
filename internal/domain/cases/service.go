package cases

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/stroketeam/fasttrack/internal/domain/patient"
	"github.com/stroketeam/fasttrack/internal/platform/apperr"
)

// CreateInput carries the patient intake fields together with the case
// onset. Registering a case always registers its patient in the same
// transaction.
type CreateInput struct {
	Name    string
	Gender  string
	DOB     *time.Time
	Weight  *float64
	Height  *float64
	Address string
	Onset   *time.Time
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) CreateCase(ctx context.Context, in CreateInput) (*patient.Patient, *Case, error) {
	if in.Name == "" {
		return nil, nil, apperr.Validation("Patient name is required")
	}

	now := s.now().UTC()
	p := &patient.Patient{
		Name:    in.Name,
		Gender:  in.Gender,
		DOB:     in.DOB,
		Weight:  in.Weight,
		Height:  in.Height,
		Address: in.Address,
	}
	if in.DOB != nil {
		p.Age = patient.AgeAt(*in.DOB, now)
	}

	onset := now
	if in.Onset != nil {
		onset = *in.Onset
	}
	cs := &Case{
		Status:    StatusActive,
		Onset:     onset,
		CreatedOn: now,
	}

	if err := s.repo.CreateWithPatient(ctx, p, cs); err != nil {
		return nil, nil, err
	}
	return p, cs, nil
}

func (s *Service) GetCase(ctx context.Context, id uuid.UUID) (*Case, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListCases(ctx context.Context, limit, offset int) ([]*Case, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) ListByStatus(ctx context.Context, status string) ([]*Case, error) {
	list, err := s.repo.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, apperr.NotFound("No cases with status %s found", status)
	}
	return list, nil
}

func (s *Service) GetByPatient(ctx context.Context, patientID uuid.UUID) (*PatientCase, error) {
	return s.repo.GetByPatient(ctx, patientID)
}

// UpdateCase adjusts the case status and/or onset. An omitted onset is
// reset to the current time, matching the intake workflow where nurses
// re-stamp onset while correcting a record.
func (s *Service) UpdateCase(ctx context.Context, id uuid.UUID, fields UpdateFields) (*Case, error) {
	if fields.Status == nil && fields.Onset == nil {
		return nil, apperr.Validation("No fields provided for update")
	}
	if fields.Status != nil && *fields.Status != StatusActive && *fields.Status != StatusAdmit {
		return nil, apperr.Validation("Invalid status: %s", *fields.Status)
	}
	if fields.Onset == nil {
		now := s.now().UTC()
		fields.Onset = &now
	}
	return s.repo.Update(ctx, id, fields)
}

func (s *Service) FinishCase(ctx context.Context, id uuid.UUID) (*Case, error) {
	return s.repo.Finish(ctx, id)
}

func (s *Service) DeleteCase(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
