package thrombolytic

import (
	"context"

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

const thromboCols = `id, case_id, checklist, is_met, last_modified_on`

func (r *repoPG) Create(ctx context.Context, rec *Record) error {
	rec.ID = uuid.New()
	created, err := scanRecord(r.pool.QueryRow(ctx, `
		INSERT INTO thrombolytic (id, case_id, checklist, is_met, last_modified_on)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING `+thromboCols,
		rec.ID, rec.CaseID, rec.Checklist, rec.IsMet, rec.LastModifiedOn,
	))
	if err != nil {
		return apperr.FromDB(err, "", "A thrombolytic entry already exists for this case")
	}
	*rec = *created
	return nil
}

func (r *repoPG) GetByCase(ctx context.Context, caseID uuid.UUID) (*Record, error) {
	rec, err := scanRecord(r.pool.QueryRow(ctx,
		`SELECT `+thromboCols+` FROM thrombolytic WHERE case_id = $1`, caseID))
	if err != nil {
		return nil, apperr.FromDB(err, "Thrombolytic data not found for this case", "")
	}
	return rec, nil
}

func (r *repoPG) Update(ctx context.Context, rec *Record) (*Record, error) {
	updated, err := scanRecord(r.pool.QueryRow(ctx, `
		UPDATE thrombolytic SET checklist = $1, is_met = $2, last_modified_on = $3
		WHERE case_id = $4
		RETURNING `+thromboCols,
		rec.Checklist, rec.IsMet, rec.LastModifiedOn, rec.CaseID,
	))
	if err != nil {
		return nil, apperr.FromDB(err, "Thrombolytic data not found for this case", "")
	}
	return updated, nil
}

func scanRecord(row pgx.Row) (*Record, error) {
	var rec Record
	err := row.Scan(&rec.ID, &rec.CaseID, &rec.Checklist, &rec.IsMet, &rec.LastModifiedOn)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
