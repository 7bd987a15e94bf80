package nihss

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

const nihssCols = `id, case_id, score, round, checklist, start_on, last_modified_on`

func (r *repoPG) Create(ctx context.Context, e *Entry) error {
	e.ID = uuid.New()
	created, err := scanEntry(r.pool.QueryRow(ctx, `
		INSERT INTO nihss (id, case_id, score, round, checklist, start_on, last_modified_on)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING `+nihssCols,
		e.ID, e.CaseID, e.Score, e.Round, e.Checklist, e.StartOn, e.LastModifiedOn,
	))
	if err != nil {
		return apperr.FromDB(err, "",
			"NIHSS entry for this round already exists for this case")
	}
	*e = *created
	return nil
}

func (r *repoPG) ListByCase(ctx context.Context, caseID uuid.UUID) ([]*Entry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+nihssCols+` FROM nihss WHERE case_id = $1 ORDER BY round`, caseID)
	if err != nil {
		return nil, apperr.Store(err)
	}
	defer rows.Close()

	var list []*Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.CaseID, &e.Score, &e.Round, &e.Checklist,
			&e.StartOn, &e.LastModifiedOn); err != nil {
			return nil, apperr.Store(err)
		}
		list = append(list, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Store(err)
	}
	return list, nil
}

func (r *repoPG) Update(ctx context.Context, e *Entry) (*Entry, error) {
	updated, err := scanEntry(r.pool.QueryRow(ctx, `
		UPDATE nihss SET score = $1, checklist = $2, last_modified_on = $3
		WHERE case_id = $4 AND round = $5
		RETURNING `+nihssCols,
		e.Score, e.Checklist, e.LastModifiedOn, e.CaseID, e.Round,
	))
	if err != nil {
		return nil, apperr.FromDB(err, "NIHSS entry not found for this case and round", "")
	}
	return updated, nil
}

func scanEntry(row pgx.Row) (*Entry, error) {
	var e Entry
	err := row.Scan(&e.ID, &e.CaseID, &e.Score, &e.Round, &e.Checklist,
		&e.StartOn, &e.LastModifiedOn)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
