package thrombolytic

import (
	"time"

	"github.com/google/uuid"
)

// Checklist groups the rtPA eligibility criteria. It is stored as one
// jsonb document; each submission replaces the whole checklist.
type Checklist struct {
	Inclusion         map[string]bool `json:"inclusion"`
	AbsoluteExclusion map[string]bool `json:"absoluteExclusion"`
	RelativeExclusion map[string]bool `json:"relativeExclusion"`
	Comment           string          `json:"comment"`
}

// IsMet reports eligibility: every inclusion criterion true and no
// exclusion criterion of either group true.
func (c Checklist) IsMet() bool {
	for _, v := range c.Inclusion {
		if !v {
			return false
		}
	}
	for _, v := range c.AbsoluteExclusion {
		if v {
			return false
		}
	}
	for _, v := range c.RelativeExclusion {
		if v {
			return false
		}
	}
	return true
}

// Record is the eligibility decision attached to a case. One per case.
type Record struct {
	ID             uuid.UUID `db:"id" json:"id"`
	CaseID         uuid.UUID `db:"case_id" json:"case_id"`
	Checklist      Checklist `db:"checklist" json:"checklist"`
	IsMet          bool      `db:"is_met" json:"is_met"`
	LastModifiedOn time.Time `db:"last_modified_on" json:"last_modified_on"`
}
