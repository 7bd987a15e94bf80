package ctresult

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

const ctCols = `id, case_id, result, last_modified_on`

func (r *repoPG) Create(ctx context.Context, rec *Record) error {
	rec.ID = uuid.New()
	created, err := scanRecord(r.pool.QueryRow(ctx, `
		INSERT INTO ct_result (id, case_id, result, last_modified_on)
		VALUES ($1,$2,$3,$4)
		RETURNING `+ctCols,
		rec.ID, rec.CaseID, rec.Result, rec.LastModifiedOn,
	))
	if err != nil {
		return apperr.FromDB(err, "", "A CT result already exists for this case")
	}
	*rec = *created
	return nil
}

func (r *repoPG) GetByCase(ctx context.Context, caseID uuid.UUID) (*Record, error) {
	rec, err := scanRecord(r.pool.QueryRow(ctx,
		`SELECT `+ctCols+` FROM ct_result WHERE case_id = $1`, caseID))
	if err != nil {
		return nil, apperr.FromDB(err, "CT result not found for this case", "")
	}
	return rec, nil
}

func (r *repoPG) Update(ctx context.Context, caseID uuid.UUID, result string, modifiedOn time.Time) (*Record, error) {
	rec, err := scanRecord(r.pool.QueryRow(ctx, `
		UPDATE ct_result SET result = $1, last_modified_on = $2 WHERE case_id = $3
		RETURNING `+ctCols,
		result, modifiedOn, caseID,
	))
	if err != nil {
		return nil, apperr.FromDB(err, "CT result not found for this case", "")
	}
	return rec, nil
}

func scanRecord(row pgx.Row) (*Record, error) {
	var rec Record
	if err := row.Scan(&rec.ID, &rec.CaseID, &rec.Result, &rec.LastModifiedOn); err != nil {
		return nil, err
	}
	return &rec, nil
}
