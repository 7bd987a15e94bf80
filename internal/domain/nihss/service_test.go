package nihss

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"github.com/stroketeam/fasttrack/internal/platform/apperr"
)

type roundKey struct {
	caseID uuid.UUID
	round  int
}

type mockRepo struct {
	entries map[roundKey]*Entry
}

func newMockRepo() *mockRepo {
	return &mockRepo{entries: make(map[roundKey]*Entry)}
}

func (m *mockRepo) Create(_ context.Context, e *Entry) error {
	key := roundKey{e.CaseID, e.Round}
	if _, ok := m.entries[key]; ok {
		return apperr.Conflict("NIHSS entry for round %d already exists for this case", e.Round)
	}
	e.ID = uuid.New()
	m.entries[key] = e
	return nil
}

func (m *mockRepo) ListByCase(_ context.Context, caseID uuid.UUID) ([]*Entry, error) {
	var list []*Entry
	for round := MinRound; round <= MaxRound; round++ {
		if e, ok := m.entries[roundKey{caseID, round}]; ok {
			list = append(list, e)
		}
	}
	return list, nil
}

func (m *mockRepo) Update(_ context.Context, e *Entry) (*Entry, error) {
	stored, ok := m.entries[roundKey{e.CaseID, e.Round}]
	if !ok {
		return nil, apperr.NotFound("NIHSS entry not found for this case and round")
	}
	stored.Checklist = e.Checklist
	stored.Score = e.Score
	stored.LastModifiedOn = e.LastModifiedOn
	return stored, nil
}

func fullChecklist() Checklist {
	return Checklist{
		"levelOfConsciousness": 1,
		"twoQuestions":         0,
		"twoCommands":          0,
		"bestGaze":             1,
		"bestVisualField":      0,
		"facialPalsy":          2,
		"motorLeftArm":         0,
		"motorRightArm":        3,
		"motorLeftLeg":         0,
		"motorRightLeg":        2,
		"ataxia":               0,
		"sensory":              1,
		"bestLanguageAphasia":  0,
		"dysarthria":           1,
		"neglect":              0,
	}
}

func TestCreateEntry_ScoreIsSum(t *testing.T) {
	svc := NewService(newMockRepo())

	e, err := svc.CreateEntry(context.Background(), uuid.New(), 0, fullChecklist())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Score != 11 {
		t.Errorf("expected score 11, got %d", e.Score)
	}
	if e.Severity != "Moderate Stroke" {
		t.Errorf("expected Moderate Stroke, got %s", e.Severity)
	}
	if e.StartOn.IsZero() || e.LastModifiedOn.IsZero() {
		t.Error("expected timestamps stamped")
	}
}

func TestCreateEntry_ClientScoreIgnored(t *testing.T) {
	svc := NewService(newMockRepo())

	checklist := Checklist{"facialPalsy": 2, "ataxia": 1}
	e, err := svc.CreateEntry(context.Background(), uuid.New(), 1, checklist)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Score != 3 {
		t.Errorf("expected recomputed score 3, got %d", e.Score)
	}
}

func TestCreateEntry_RoundBounds(t *testing.T) {
	svc := NewService(newMockRepo())
	caseID := uuid.New()

	for _, round := range []int{-1, 5} {
		_, err := svc.CreateEntry(context.Background(), caseID, round, fullChecklist())
		if apperr.KindOf(err) != apperr.KindValidation {
			t.Errorf("round %d: expected validation error, got %v", round, err)
		}
	}
	for _, round := range []int{0, 4} {
		_, err := svc.CreateEntry(context.Background(), caseID, round, fullChecklist())
		if err != nil {
			t.Errorf("round %d: unexpected error: %v", round, err)
		}
	}
}

func TestCreateEntry_DuplicateRound(t *testing.T) {
	svc := NewService(newMockRepo())
	caseID := uuid.New()

	if _, err := svc.CreateEntry(context.Background(), caseID, 2, fullChecklist()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := svc.CreateEntry(context.Background(), caseID, 2, fullChecklist())
	if !apperr.IsConflict(err) {
		t.Errorf("expected conflict on duplicate round, got %v", err)
	}
	if _, err := svc.CreateEntry(context.Background(), caseID, 3, fullChecklist()); err != nil {
		t.Errorf("expected different round to succeed, got %v", err)
	}
}

func TestUpdateEntry_RecomputesScore(t *testing.T) {
	svc := NewService(newMockRepo())
	caseID := uuid.New()

	if _, err := svc.CreateEntry(context.Background(), caseID, 0, fullChecklist()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e, err := svc.UpdateEntry(context.Background(), caseID, 0, Checklist{"facialPalsy": 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Score != 1 {
		t.Errorf("expected score recomputed to 1, got %d", e.Score)
	}
	if e.Severity != "Minor Stroke" {
		t.Errorf("expected Minor Stroke, got %s", e.Severity)
	}
}

func TestUpdateEntry_MissingRound(t *testing.T) {
	svc := NewService(newMockRepo())

	_, err := svc.UpdateEntry(context.Background(), uuid.New(), 1, Checklist{"ataxia": 1})
	if !apperr.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestListEntries_EmptyIsNotFound(t *testing.T) {
	svc := NewService(newMockRepo())

	_, err := svc.ListEntries(context.Background(), uuid.New())
	if !apperr.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestSeverityLabel(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{0, "Minor Stroke"},
		{4, "Minor Stroke"},
		{5, "Moderate Stroke"},
		{25, "Moderate Stroke"},
		{26, "Severe Stroke"},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("score_%d", tc.score), func(t *testing.T) {
			if got := SeverityLabel(tc.score); got != tc.want {
				t.Errorf("score %d: expected %s, got %s", tc.score, tc.want, got)
			}
		})
	}
}
