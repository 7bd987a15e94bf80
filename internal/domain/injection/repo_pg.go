package injection

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stroketeam/fasttrack/internal/platform/apperr"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const injectionCols = `id, case_id, bolus, drip, bolus_timestamp, drip_timestamp, doctor, last_modified_on`

func (r *repoPG) Create(ctx context.Context, rec *Record) error {
	rec.ID = uuid.New()
	created, err := scanRecord(r.pool.QueryRow(ctx, `
		INSERT INTO injection (id, case_id, bolus, drip, bolus_timestamp, drip_timestamp, doctor, last_modified_on)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING `+injectionCols,
		rec.ID, rec.CaseID, rec.Bolus, rec.Drip, rec.BolusTimestamp,
		rec.DripTimestamp, rec.Doctor, rec.LastModifiedOn,
	))
	if err != nil {
		return apperr.FromDB(err, "", "An injection entry already exists for this case")
	}
	*rec = *created
	return nil
}

func (r *repoPG) GetByCase(ctx context.Context, caseID uuid.UUID) (*Record, error) {
	rec, err := scanRecord(r.pool.QueryRow(ctx,
		`SELECT `+injectionCols+` FROM injection WHERE case_id = $1`, caseID))
	if err != nil {
		return nil, apperr.FromDB(err, "Injection data not found for this case", "")
	}
	return rec, nil
}

// Update keeps the stored value for every omitted field, so either half
// of the administration can be logged on its own.
func (r *repoPG) Update(ctx context.Context, caseID uuid.UUID, fields UpdateFields, modifiedOn time.Time) (*Record, error) {
	rec, err := scanRecord(r.pool.QueryRow(ctx, `
		UPDATE injection SET
			bolus = COALESCE($1, bolus),
			drip = COALESCE($2, drip),
			bolus_timestamp = COALESCE($3, bolus_timestamp),
			drip_timestamp = COALESCE($4, drip_timestamp),
			doctor = COALESCE($5, doctor),
			last_modified_on = $6
		WHERE case_id = $7
		RETURNING `+injectionCols,
		fields.Bolus, fields.Drip, fields.BolusTimestamp, fields.DripTimestamp,
		fields.Doctor, modifiedOn, caseID,
	))
	if err != nil {
		return nil, apperr.FromDB(err, "Injection data not found for this case", "")
	}
	return rec, nil
}

func scanRecord(row pgx.Row) (*Record, error) {
	var rec Record
	err := row.Scan(&rec.ID, &rec.CaseID, &rec.Bolus, &rec.Drip,
		&rec.BolusTimestamp, &rec.DripTimestamp, &rec.Doctor, &rec.LastModifiedOn)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
