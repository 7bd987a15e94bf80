package nihss

import (
	"time"

	"github.com/google/uuid"
)

// Rounds are taken at fixed points of the treatment timeline: 0 at
// arrival, then four follow-ups.
const (
	MinRound = 0
	MaxRound = 4
)

// Checklist maps NIHSS item names to their scored values. It is stored
// as jsonb; the server never edits individual items, each submission
// replaces the whole checklist.
type Checklist map[string]int

// Sum returns the total NIHSS score for the checklist.
func (c Checklist) Sum() int {
	total := 0
	for _, v := range c {
		total += v
	}
	return total
}

// Entry is one NIHSS assessment round for a case. (case, round) is unique.
type Entry struct {
	ID             uuid.UUID `db:"id" json:"id"`
	CaseID         uuid.UUID `db:"case_id" json:"case_id"`
	Score          int       `db:"score" json:"score"`
	Round          int       `db:"round" json:"round"`
	Checklist      Checklist `db:"checklist" json:"checklist"`
	StartOn        time.Time `db:"start_on" json:"start_on"`
	LastModifiedOn time.Time `db:"last_modified_on" json:"last_modified_on"`

	// Severity is derived from Score on the way out and never persisted.
	Severity string `db:"-" json:"severity,omitempty"`
}

// SeverityLabel buckets a total score into the clinical grading used on
// the ward boards.
func SeverityLabel(score int) string {
	switch {
	case score < 5:
		return "Minor Stroke"
	case score <= 25:
		return "Moderate Stroke"
	default:
		return "Severe Stroke"
	}
}
