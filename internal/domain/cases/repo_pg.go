package cases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stroketeam/fasttrack/internal/domain/patient"
	"github.com/stroketeam/fasttrack/internal/platform/apperr"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const caseCols = `id, patient_id, status, onset, created_on, finished_on, doctor`

func (r *repoPG) CreateWithPatient(ctx context.Context, p *patient.Patient, cs *Case) error {
	p.ID = uuid.New()
	cs.ID = uuid.New()
	cs.PatientID = p.ID

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return apperr.Store(err)
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `
		INSERT INTO patient (id, name, gender, age, dob, weight, height, address)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id, name, gender, age, dob, weight, height, address, symptoms, reg_id, created_at`,
		p.ID, p.Name, p.Gender, p.Age, p.DOB, p.Weight, p.Height, p.Address,
	)
	if err := row.Scan(
		&p.ID, &p.Name, &p.Gender, &p.Age, &p.DOB, &p.Weight, &p.Height,
		&p.Address, &p.Symptoms, &p.RegID, &p.CreatedAt,
	); err != nil {
		return apperr.Store(err)
	}

	created, err := scanCase(tx.QueryRow(ctx, `
		INSERT INTO cases (id, patient_id, status, onset, created_on, doctor)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING `+caseCols,
		cs.ID, cs.PatientID, cs.Status, cs.Onset, cs.CreatedOn, cs.Doctor,
	))
	if err != nil {
		return apperr.Store(err)
	}
	*cs = *created

	if err := tx.Commit(ctx); err != nil {
		return apperr.Store(err)
	}
	return nil
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Case, error) {
	cs, err := scanCase(r.pool.QueryRow(ctx, `SELECT `+caseCols+` FROM cases WHERE id = $1`, id))
	if err != nil {
		return nil, apperr.FromDB(err, "Case not found", "")
	}
	return cs, nil
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Case, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM cases`).Scan(&total); err != nil {
		return nil, 0, apperr.Store(err)
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+caseCols+` FROM cases ORDER BY created_on DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, apperr.Store(err)
	}
	defer rows.Close()

	list, err := collectCases(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *repoPG) ListByStatus(ctx context.Context, status string) ([]*Case, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+caseCols+` FROM cases WHERE status = $1 ORDER BY created_on DESC`, status)
	if err != nil {
		return nil, apperr.Store(err)
	}
	defer rows.Close()
	return collectCases(rows)
}

func (r *repoPG) GetByPatient(ctx context.Context, patientID uuid.UUID) (*PatientCase, error) {
	var pc PatientCase
	err := r.pool.QueryRow(ctx, `
		SELECT patient.id, patient.name, patient.gender, patient.age, patient.dob,
		       patient.weight, patient.height, patient.address, patient.reg_id,
		       cases.id, cases.status, cases.onset, cases.created_on, cases.finished_on
		FROM patient
		JOIN cases ON patient.id = cases.patient_id
		WHERE patient.id = $1`, patientID,
	).Scan(
		&pc.PatientID, &pc.Name, &pc.Gender, &pc.Age, &pc.DOB,
		&pc.Weight, &pc.Height, &pc.Address, &pc.RegID,
		&pc.CaseID, &pc.Status, &pc.Onset, &pc.CreatedOn, &pc.FinishedOn,
	)
	if err != nil {
		return nil, apperr.FromDB(err, "Patient not found", "")
	}
	return &pc, nil
}

func (r *repoPG) Update(ctx context.Context, id uuid.UUID, fields UpdateFields) (*Case, error) {
	sets := []string{}
	args := []interface{}{}

	if fields.Status != nil {
		sets = append(sets, fmt.Sprintf("status = $%d", len(args)+1))
		args = append(args, *fields.Status)
	}
	if fields.Onset != nil {
		sets = append(sets, fmt.Sprintf("onset = $%d", len(args)+1))
		args = append(args, *fields.Onset)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE cases SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), caseCols)

	cs, err := scanCase(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, apperr.FromDB(err, "Case not found", "")
	}
	return cs, nil
}

func (r *repoPG) Finish(ctx context.Context, id uuid.UUID) (*Case, error) {
	cs, err := scanCase(r.pool.QueryRow(ctx, `
		UPDATE cases SET status = $1, finished_on = $2 WHERE id = $3
		RETURNING `+caseCols,
		StatusAdmit, time.Now().UTC(), id,
	))
	if err != nil {
		return nil, apperr.FromDB(err, "Case not found", "")
	}
	return cs, nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM cases WHERE id = $1`, id)
	if err != nil {
		return apperr.Store(err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Case not found")
	}
	return nil
}

func scanCase(row pgx.Row) (*Case, error) {
	var cs Case
	err := row.Scan(&cs.ID, &cs.PatientID, &cs.Status, &cs.Onset, &cs.CreatedOn, &cs.FinishedOn, &cs.Doctor)
	if err != nil {
		return nil, err
	}
	return &cs, nil
}

func collectCases(rows pgx.Rows) ([]*Case, error) {
	var list []*Case
	for rows.Next() {
		var cs Case
		if err := rows.Scan(&cs.ID, &cs.PatientID, &cs.Status, &cs.Onset, &cs.CreatedOn, &cs.FinishedOn, &cs.Doctor); err != nil {
			return nil, apperr.Store(err)
		}
		list = append(list, &cs)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Store(err)
	}
	return list, nil
}
