package injection

import (
	"time"

	"github.com/google/uuid"
)

// Record is the rtPA administration log for a case. One record per case;
// the bolus and drip halves are stamped as they are given.
type Record struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	CaseID         uuid.UUID  `db:"case_id" json:"case_id"`
	Bolus          *float64   `db:"bolus" json:"bolus"`
	Drip           *float64   `db:"drip" json:"drip"`
	BolusTimestamp *time.Time `db:"bolus_timestamp" json:"bolus_timestamp"`
	DripTimestamp  *time.Time `db:"drip_timestamp" json:"drip_timestamp"`
	Doctor         *string    `db:"doctor" json:"doctor"`
	LastModifiedOn time.Time  `db:"last_modified_on" json:"last_modified_on"`
}

// UpdateFields carries a partial injection update. Nil fields keep
// their stored values.
type UpdateFields struct {
	Bolus          *float64
	Drip           *float64
	BolusTimestamp *time.Time
	DripTimestamp  *time.Time
	Doctor         *string
}

func (f UpdateFields) Empty() bool {
	return f.Bolus == nil && f.Drip == nil && f.BolusTimestamp == nil &&
		f.DripTimestamp == nil && f.Doctor == nil
}

// Dose is the weight-based rtPA split: 0.9 mg/kg capped at 90 mg total,
// 10% pushed as bolus and the rest infused.
type Dose struct {
	Total float64 `json:"total"`
	Bolus float64 `json:"bolus"`
	Drip  float64 `json:"drip"`
}

func DoseForWeight(weightKg float64) Dose {
	total := weightKg * 0.9
	if total > 90 {
		total = 90
	}
	return Dose{
		Total: total,
		Bolus: total * 0.1,
		Drip:  total * 0.9,
	}
}
