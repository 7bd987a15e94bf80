package ctresult

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/stroketeam/fasttrack/internal/platform/apperr"
)

type mockRepo struct {
	records map[uuid.UUID]*Record
}

func newMockRepo() *mockRepo {
	return &mockRepo{records: make(map[uuid.UUID]*Record)}
}

func (m *mockRepo) Create(_ context.Context, rec *Record) error {
	if _, ok := m.records[rec.CaseID]; ok {
		return apperr.Conflict("A CT result already exists for this case")
	}
	rec.ID = uuid.New()
	m.records[rec.CaseID] = rec
	return nil
}

func (m *mockRepo) GetByCase(_ context.Context, caseID uuid.UUID) (*Record, error) {
	rec, ok := m.records[caseID]
	if !ok {
		return nil, apperr.NotFound("CT result not found for this case")
	}
	return rec, nil
}

func (m *mockRepo) Update(_ context.Context, caseID uuid.UUID, result string, modifiedOn time.Time) (*Record, error) {
	rec, ok := m.records[caseID]
	if !ok {
		return nil, apperr.NotFound("CT result not found for this case")
	}
	rec.Result = result
	rec.LastModifiedOn = modifiedOn
	return rec, nil
}

func TestCreateRecord(t *testing.T) {
	svc := NewService(newMockRepo())

	rec, err := svc.CreateRecord(context.Background(), uuid.New(), "no hemorrhage")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Result != "no hemorrhage" {
		t.Errorf("unexpected result: %s", rec.Result)
	}
	if rec.LastModifiedOn.IsZero() {
		t.Error("expected last_modified_on stamped")
	}
}

func TestCreateRecord_ResultRequired(t *testing.T) {
	svc := NewService(newMockRepo())

	_, err := svc.CreateRecord(context.Background(), uuid.New(), "")
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestCreateRecord_OncePerCase(t *testing.T) {
	svc := NewService(newMockRepo())
	caseID := uuid.New()

	if _, err := svc.CreateRecord(context.Background(), caseID, "normal"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := svc.CreateRecord(context.Background(), caseID, "normal")
	if !apperr.IsConflict(err) {
		t.Errorf("expected conflict on second create, got %v", err)
	}
}

func TestUpdateRecord(t *testing.T) {
	svc := NewService(newMockRepo())
	caseID := uuid.New()

	if _, err := svc.CreateRecord(context.Background(), caseID, "pending"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rec, err := svc.UpdateRecord(context.Background(), caseID, "ischemic infarct, left MCA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Result != "ischemic infarct, left MCA" {
		t.Errorf("unexpected result: %s", rec.Result)
	}
}

func TestUpdateRecord_NotFound(t *testing.T) {
	svc := NewService(newMockRepo())

	_, err := svc.UpdateRecord(context.Background(), uuid.New(), "normal")
	if !apperr.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}
