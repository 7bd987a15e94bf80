package befast

import (
	"time"

	"github.com/google/uuid"
)

// Record is the BEFAST screening attached to a case. Each letter holds the
// assessment value for its sign; "0" means not observed. One record per case.
type Record struct {
	ID             uuid.UUID `db:"id" json:"id"`
	CaseID         uuid.UUID `db:"case_id" json:"case_id"`
	Balance        string    `db:"b" json:"b"`
	Eyes           string    `db:"e" json:"e"`
	Face           string    `db:"f" json:"f"`
	Arms           string    `db:"a" json:"a"`
	Speech         string    `db:"s" json:"s"`
	Time           string    `db:"t" json:"t"`
	LastModifiedOn time.Time `db:"last_modified_on" json:"last_modified_on"`
}

// UpdateFields carries a partial BEFAST update. Nil fields are left as-is.
type UpdateFields struct {
	Balance *string
	Eyes    *string
	Face    *string
	Arms    *string
	Speech  *string
	Time    *string
}

func (f UpdateFields) Empty() bool {
	return f.Balance == nil && f.Eyes == nil && f.Face == nil &&
		f.Arms == nil && f.Speech == nil && f.Time == nil
}
