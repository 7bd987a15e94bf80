package befast

import (
	"context"
	"fmt"
	"strings"
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

const befastCols = `id, case_id, b, e, f, a, s, t, last_modified_on`

func (r *repoPG) Create(ctx context.Context, rec *Record) error {
	rec.ID = uuid.New()
	created, err := scanRecord(r.pool.QueryRow(ctx, `
		INSERT INTO befast (id, case_id, b, e, f, a, s, t, last_modified_on)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING `+befastCols,
		rec.ID, rec.CaseID, rec.Balance, rec.Eyes, rec.Face, rec.Arms,
		rec.Speech, rec.Time, rec.LastModifiedOn,
	))
	if err != nil {
		return apperr.FromDB(err, "", "BEFAST record already exists for this case")
	}
	*rec = *created
	return nil
}

func (r *repoPG) GetByCase(ctx context.Context, caseID uuid.UUID) (*Record, error) {
	rec, err := scanRecord(r.pool.QueryRow(ctx,
		`SELECT `+befastCols+` FROM befast WHERE case_id = $1`, caseID))
	if err != nil {
		return nil, apperr.FromDB(err, "BEFAST record not found", "")
	}
	return rec, nil
}

func (r *repoPG) Update(ctx context.Context, caseID uuid.UUID, fields UpdateFields, modifiedOn time.Time) (*Record, error) {
	sets := []string{}
	args := []interface{}{}
	add := func(col string, val interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)+1))
		args = append(args, val)
	}

	if fields.Balance != nil {
		add("b", *fields.Balance)
	}
	if fields.Eyes != nil {
		add("e", *fields.Eyes)
	}
	if fields.Face != nil {
		add("f", *fields.Face)
	}
	if fields.Arms != nil {
		add("a", *fields.Arms)
	}
	if fields.Speech != nil {
		add("s", *fields.Speech)
	}
	if fields.Time != nil {
		add("t", *fields.Time)
	}
	add("last_modified_on", modifiedOn)

	args = append(args, caseID)
	query := fmt.Sprintf(`UPDATE befast SET %s WHERE case_id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), befastCols)

	rec, err := scanRecord(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, apperr.FromDB(err, "BEFAST record not found", "")
	}
	return rec, nil
}

func scanRecord(row pgx.Row) (*Record, error) {
	var rec Record
	err := row.Scan(&rec.ID, &rec.CaseID, &rec.Balance, &rec.Eyes, &rec.Face,
		&rec.Arms, &rec.Speech, &rec.Time, &rec.LastModifiedOn)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
