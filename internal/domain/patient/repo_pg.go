package patient

import (
	"context"
	"fmt"
	"strings"

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

const patientCols = `id, name, gender, age, dob, weight, height, address, symptoms, reg_id, created_at`

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO patient (id, name, gender, age, dob, weight, height, address, symptoms)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING `+patientCols,
		p.ID, p.Name, p.Gender, p.Age, p.DOB, p.Weight, p.Height, p.Address, p.Symptoms,
	)
	created, err := scanPatient(row)
	if err != nil {
		return apperr.Store(err)
	}
	*p = *created
	return nil
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	p, err := scanPatient(r.pool.QueryRow(ctx, `SELECT `+patientCols+` FROM patient WHERE id = $1`, id))
	if err != nil {
		return nil, apperr.FromDB(err, "Patient not found", "")
	}
	return p, nil
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM patient`).Scan(&total); err != nil {
		return nil, 0, apperr.Store(err)
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+patientCols+` FROM patient ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, apperr.Store(err)
	}
	defer rows.Close()

	var patients []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, 0, apperr.Store(err)
		}
		patients = append(patients, p)
	}
	return patients, total, nil
}

func (r *repoPG) Update(ctx context.Context, id uuid.UUID, fields UpdateFields) (*Patient, error) {
	sets := []string{}
	args := []interface{}{}

	add := func(col string, v interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)+1))
		args = append(args, v)
	}

	if fields.Name != nil {
		add("name", *fields.Name)
	}
	if fields.Gender != nil {
		add("gender", *fields.Gender)
	}
	if fields.DOB != nil {
		add("dob", *fields.DOB)
	}
	if fields.Age != nil {
		add("age", *fields.Age)
	}
	if fields.Weight != nil {
		add("weight", *fields.Weight)
	}
	if fields.Height != nil {
		add("height", *fields.Height)
	}
	if fields.Address != nil {
		add("address", *fields.Address)
	}
	if fields.Symptoms != nil {
		add("symptoms", *fields.Symptoms)
	}
	if fields.RegID != nil {
		add("reg_id", *fields.RegID)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE patient SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), patientCols)

	p, err := scanPatient(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, apperr.FromDB(err, "Patient not found", "")
	}
	return p, nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM patient WHERE id = $1`, id)
	if err != nil {
		return apperr.Store(err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Patient not found")
	}
	return nil
}

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(
		&p.ID, &p.Name, &p.Gender, &p.Age, &p.DOB, &p.Weight, &p.Height,
		&p.Address, &p.Symptoms, &p.RegID, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
