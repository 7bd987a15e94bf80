package thrombolytic

import (
	"context"
	"testing"

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
		return apperr.Conflict("A thrombolytic entry already exists for this case")
	}
	rec.ID = uuid.New()
	m.records[rec.CaseID] = rec
	return nil
}

func (m *mockRepo) GetByCase(_ context.Context, caseID uuid.UUID) (*Record, error) {
	rec, ok := m.records[caseID]
	if !ok {
		return nil, apperr.NotFound("Thrombolytic data not found for this case")
	}
	return rec, nil
}

func (m *mockRepo) Update(_ context.Context, rec *Record) (*Record, error) {
	stored, ok := m.records[rec.CaseID]
	if !ok {
		return nil, apperr.NotFound("Thrombolytic data not found for this case")
	}
	stored.Checklist = rec.Checklist
	stored.IsMet = rec.IsMet
	stored.LastModifiedOn = rec.LastModifiedOn
	return stored, nil
}

func eligibleChecklist() Checklist {
	return Checklist{
		Inclusion: map[string]bool{
			"ischemicStroke":                true,
			"onsetWithinTime":               true,
			"ageOver18":                     true,
			"measurableNeurologicalDeficit": true,
		},
		AbsoluteExclusion: map[string]bool{
			"activeBleeding":         false,
			"intracranialHemorrhage": false,
			"recentHeadTrauma":       false,
		},
		RelativeExclusion: map[string]bool{
			"minorSymptoms": false,
			"pregnancy":     false,
		},
	}
}

func TestChecklistIsMet(t *testing.T) {
	c := eligibleChecklist()
	if !c.IsMet() {
		t.Error("expected all-inclusion/no-exclusion checklist to be met")
	}

	c.Inclusion["ageOver18"] = false
	if c.IsMet() {
		t.Error("expected unmet inclusion to fail eligibility")
	}

	c = eligibleChecklist()
	c.AbsoluteExclusion["activeBleeding"] = true
	if c.IsMet() {
		t.Error("expected absolute exclusion to fail eligibility")
	}

	c = eligibleChecklist()
	c.RelativeExclusion["pregnancy"] = true
	if c.IsMet() {
		t.Error("expected relative exclusion to fail eligibility")
	}
}

func TestCreateRecord_DerivesIsMet(t *testing.T) {
	svc := NewService(newMockRepo())

	rec, err := svc.CreateRecord(context.Background(), uuid.New(), eligibleChecklist())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rec.IsMet {
		t.Error("expected is_met derived true")
	}
	if rec.LastModifiedOn.IsZero() {
		t.Error("expected last_modified_on stamped")
	}
}

func TestCreateRecord_OncePerCase(t *testing.T) {
	svc := NewService(newMockRepo())
	caseID := uuid.New()

	if _, err := svc.CreateRecord(context.Background(), caseID, eligibleChecklist()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := svc.CreateRecord(context.Background(), caseID, eligibleChecklist())
	if !apperr.IsConflict(err) {
		t.Errorf("expected conflict on second create, got %v", err)
	}
}

func TestUpdateRecord_RecomputesIsMet(t *testing.T) {
	svc := NewService(newMockRepo())
	caseID := uuid.New()

	if _, err := svc.CreateRecord(context.Background(), caseID, eligibleChecklist()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := eligibleChecklist()
	c.AbsoluteExclusion["intracranialHemorrhage"] = true
	rec, err := svc.UpdateRecord(context.Background(), caseID, c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.IsMet {
		t.Error("expected is_met recomputed false after exclusion flipped")
	}
}

func TestUpdateRecord_NotFound(t *testing.T) {
	svc := NewService(newMockRepo())

	_, err := svc.UpdateRecord(context.Background(), uuid.New(), eligibleChecklist())
	if !apperr.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestCreateRecord_ChecklistRequired(t *testing.T) {
	svc := NewService(newMockRepo())

	_, err := svc.CreateRecord(context.Background(), uuid.New(), Checklist{})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("expected validation error, got %v", err)
	}
}
