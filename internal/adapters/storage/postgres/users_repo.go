package postgres

import (
	"context"
	"database/sql"

	"pet-lost-and-found/internal/domain/users"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

const userColumns = `id, name, email, password, created_at, updated_at`

func (r *UsersRepo) Create(ctx context.Context, u users.User) (users.User, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (name, email, password, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id
	`,
		u.Name,
		u.Email,
		u.Password,
		u.CreatedAt,
		u.UpdatedAt,
	).Scan(&u.ID)
	if err != nil {
		return users.User{}, err
	}
	return u, nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id int64) (users.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1
	`, id)
	return scanUser(row)
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = $1
	`, email)
	return scanUser(row)
}

func (r *UsersRepo) List(ctx context.Context) ([]users.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]users.User, 0)
	for rows.Next() {
		var u users.User
		if err := rows.Scan(
			&u.ID,
			&u.Name,
			&u.Email,
			&u.Password,
			&u.CreatedAt,
			&u.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *UsersRepo) Update(ctx context.Context, u users.User) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET
			name = $2,
			email = $3,
			password = $4,
			updated_at = $5
		WHERE id = $1
	`,
		u.ID,
		u.Name,
		u.Email,
		u.Password,
		u.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *UsersRepo) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func scanUser(row *sql.Row) (users.User, error) {
	var u users.User
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Password,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, err
	}
	return u, nil
}
