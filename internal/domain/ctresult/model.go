package ctresult

import (
	"time"

	"github.com/google/uuid"
)

// Record holds the CT scan interpretation for a case. One record per case.
type Record struct {
	ID             uuid.UUID `db:"id" json:"id"`
	CaseID         uuid.UUID `db:"case_id" json:"case_id"`
	Result         string    `db:"result" json:"result"`
	LastModifiedOn time.Time `db:"last_modified_on" json:"last_modified_on"`
}
