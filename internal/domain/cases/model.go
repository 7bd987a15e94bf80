package cases

import (
	"time"

	"github.com/google/uuid"
)

// Case statuses. A case is Active from intake until the workflow is finished,
// at which point it moves to Admit. No other transition is exposed.
const (
	StatusActive = "Active"
	StatusAdmit  = "Admit"
)

// Case maps to the cases table: one treatment episode for one patient.
type Case struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	PatientID  uuid.UUID  `db:"patient_id" json:"patient_id"`
	Status     string     `db:"status" json:"status"`
	Onset      time.Time  `db:"onset" json:"onset"`
	CreatedOn  time.Time  `db:"created_on" json:"created_on"`
	FinishedOn *time.Time `db:"finished_on" json:"finished_on"`
	Doctor     *string    `db:"doctor" json:"doctor"`
}

// PatientCase is the joined view returned for case-by-patient lookups.
type PatientCase struct {
	PatientID  uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Gender     string     `json:"gender"`
	Age        int        `json:"age"`
	DOB        *time.Time `json:"dob,omitempty"`
	Weight     *float64   `json:"weight"`
	Height     *float64   `json:"height"`
	Address    string     `json:"address"`
	RegID      *string    `json:"reg_id"`
	CaseID     uuid.UUID  `json:"case_id"`
	Status     string     `json:"status"`
	Onset      time.Time  `json:"onset"`
	CreatedOn  time.Time  `json:"created_on"`
	FinishedOn *time.Time `json:"finished_on"`
}

// UpdateFields carries a partial case update.
type UpdateFields struct {
	Status *string
	Onset  *time.Time
}
