package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient maps to the patient table.
type Patient struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	Name      string     `db:"name" json:"name"`
	Gender    string     `db:"gender" json:"gender"`
	Age       int        `db:"age" json:"age"`
	DOB       *time.Time `db:"dob" json:"dob,omitempty"`
	Weight    *float64   `db:"weight" json:"weight"`
	Height    *float64   `db:"height" json:"height"`
	Address   string     `db:"address" json:"address"`
	Symptoms  string     `db:"symptoms" json:"symptoms"`
	RegID     *string    `db:"reg_id" json:"reg_id"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
}

// UpdateFields carries a partial update; nil fields are left unchanged.
type UpdateFields struct {
	Name     *string
	Gender   *string
	DOB      *time.Time
	Age      *int
	Weight   *float64
	Height   *float64
	Address  *string
	Symptoms *string
	RegID    *string
}

// Empty reports whether no caller-visible field was supplied. Age is derived
// from DOB and never counts on its own.
func (f UpdateFields) Empty() bool {
	return f.Name == nil && f.Gender == nil && f.DOB == nil &&
		f.Weight == nil && f.Height == nil && f.Address == nil &&
		f.Symptoms == nil && f.RegID == nil
}

// AgeAt returns full calendar years between dob and now, one less when the
// birthday has not yet occurred in now's year.
func AgeAt(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return age
}
