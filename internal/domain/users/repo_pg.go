package users

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

const userCols = `id, name, email, username, password, role, status, department_id, created_at`

func (r *repoPG) Create(ctx context.Context, u *User) error {
	u.ID = uuid.New()
	created, err := scanUser(r.pool.QueryRow(ctx, `
		INSERT INTO users (id, name, email, username, password, role, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING `+userCols,
		u.ID, u.Name, u.Email, u.Username, u.PasswordHash, u.Role, u.Status,
	))
	if err != nil {
		return apperr.FromDB(err, "",
			"Username or Email already exists. Please choose a different one.")
	}
	*u = *created
	return nil
}

func (r *repoPG) GetByUsername(ctx context.Context, username string) (*User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userCols+` FROM users WHERE username = $1`, username))
	if err != nil {
		return nil, apperr.FromDB(err, "User not found", "")
	}
	return u, nil
}

func (r *repoPG) GetByLogin(ctx context.Context, usernameOrEmail string) (*User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userCols+` FROM users WHERE username = $1 OR email = $1`, usernameOrEmail))
	if err != nil {
		return nil, apperr.FromDB(err, "User not found", "")
	}
	return u, nil
}

func (r *repoPG) ExistsByLogin(ctx context.Context, email, username string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 OR username = $2)`,
		email, username).Scan(&exists)
	if err != nil {
		return false, apperr.Store(err)
	}
	return exists, nil
}

func (r *repoPG) List(ctx context.Context) ([]*User, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+userCols+` FROM users ORDER BY created_at`)
	if err != nil {
		return nil, apperr.Store(err)
	}
	defer rows.Close()

	var list []*User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Username, &u.PasswordHash,
			&u.Role, &u.Status, &u.DepartmentID, &u.CreatedAt); err != nil {
			return nil, apperr.Store(err)
		}
		list = append(list, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Store(err)
	}
	return list, nil
}

func (r *repoPG) Update(ctx context.Context, username string, fields UpdateFields) error {
	sets := []string{}
	args := []interface{}{}
	add := func(col string, val interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)+1))
		args = append(args, val)
	}

	if fields.Role != nil {
		add("role", *fields.Role)
	}
	if fields.Name != nil {
		add("name", *fields.Name)
	}
	if fields.Email != nil {
		add("email", *fields.Email)
	}
	if fields.DepartmentID != nil {
		add("department_id", *fields.DepartmentID)
	}

	args = append(args, username)
	query := fmt.Sprintf(`UPDATE users SET %s WHERE username = $%d`,
		strings.Join(sets, ", "), len(args))

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return apperr.FromDB(err, "",
			"Username or Email already exists. Please choose a different one.")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("User not found")
	}
	return nil
}

func (r *repoPG) SetStatus(ctx context.Context, username string, status bool) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET status = $1 WHERE username = $2`, status, username)
	if err != nil {
		return apperr.Store(err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("User not found")
	}
	return nil
}

func (r *repoPG) SetPassword(ctx context.Context, username, passwordHash string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET password = $1 WHERE username = $2`, passwordHash, username)
	if err != nil {
		return apperr.Store(err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("User not found")
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, username string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE username = $1`, username)
	if err != nil {
		return apperr.Store(err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("User not found")
	}
	return nil
}

func scanUser(row pgx.Row) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Username, &u.PasswordHash,
		&u.Role, &u.Status, &u.DepartmentID, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
