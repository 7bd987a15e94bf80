package befast

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
		return apperr.Conflict("BEFAST record already exists for this case")
	}
	rec.ID = uuid.New()
	m.records[rec.CaseID] = rec
	return nil
}

func (m *mockRepo) GetByCase(_ context.Context, caseID uuid.UUID) (*Record, error) {
	rec, ok := m.records[caseID]
	if !ok {
		return nil, apperr.NotFound("BEFAST record not found")
	}
	return rec, nil
}

func (m *mockRepo) Update(_ context.Context, caseID uuid.UUID, fields UpdateFields, modifiedOn time.Time) (*Record, error) {
	rec, ok := m.records[caseID]
	if !ok {
		return nil, apperr.NotFound("BEFAST record not found")
	}
	if fields.Balance != nil {
		rec.Balance = *fields.Balance
	}
	if fields.Eyes != nil {
		rec.Eyes = *fields.Eyes
	}
	if fields.Face != nil {
		rec.Face = *fields.Face
	}
	if fields.Arms != nil {
		rec.Arms = *fields.Arms
	}
	if fields.Speech != nil {
		rec.Speech = *fields.Speech
	}
	if fields.Time != nil {
		rec.Time = *fields.Time
	}
	rec.LastModifiedOn = modifiedOn
	return rec, nil
}

func newTestService() *Service {
	return NewService(newMockRepo())
}

func TestCreateRecord_Defaults(t *testing.T) {
	svc := newTestService()

	rec := &Record{CaseID: uuid.New(), Face: "1"}
	if err := svc.CreateRecord(context.Background(), rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Balance != "0" || rec.Eyes != "0" || rec.Arms != "0" || rec.Speech != "0" || rec.Time != "0" {
		t.Errorf("expected omitted signs to default to 0, got %+v", rec)
	}
	if rec.Face != "1" {
		t.Errorf("expected provided sign kept, got %s", rec.Face)
	}
	if rec.LastModifiedOn.IsZero() {
		t.Error("expected last_modified_on stamped")
	}
}

func TestCreateRecord_OncePerCase(t *testing.T) {
	svc := newTestService()
	caseID := uuid.New()

	if err := svc.CreateRecord(context.Background(), &Record{CaseID: caseID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := svc.CreateRecord(context.Background(), &Record{CaseID: caseID})
	if !apperr.IsConflict(err) {
		t.Errorf("expected conflict on second create, got %v", err)
	}
}

func TestUpdateRecord_NoFields(t *testing.T) {
	svc := newTestService()

	_, err := svc.UpdateRecord(context.Background(), uuid.New(), UpdateFields{})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestUpdateRecord_Partial(t *testing.T) {
	svc := newTestService()
	caseID := uuid.New()

	rec := &Record{CaseID: caseID, Face: "1"}
	if err := svc.CreateRecord(context.Background(), rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := rec.LastModifiedOn

	speech := "1"
	updated, err := svc.UpdateRecord(context.Background(), caseID, UpdateFields{Speech: &speech})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Speech != "1" {
		t.Errorf("expected speech updated, got %s", updated.Speech)
	}
	if updated.Face != "1" {
		t.Errorf("expected untouched sign kept, got %s", updated.Face)
	}
	if !updated.LastModifiedOn.After(before) && !updated.LastModifiedOn.Equal(before) {
		t.Error("expected last_modified_on re-stamped")
	}
}

func TestGetRecord_NotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.GetRecord(context.Background(), uuid.New())
	if !apperr.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}
