package postgres

import (
	"context"
	"database/sql"
	"time"

	"pet-lost-and-found/internal/domain/missingpets"
)

type MissingPetsRepo struct {
	db *sql.DB
}

func NewMissingPetsRepo(db *sql.DB) *MissingPetsRepo {
	return &MissingPetsRepo{db: db}
}

const missingPetColumns = `
	id, user_id,
	name, type, colour, lost_date, last_seen_location,
	photo, comment, status, found_date,
	created_at, updated_at`

func (r *MissingPetsRepo) Create(ctx context.Context, p missingpets.MissingPet) (missingpets.MissingPet, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO missing_pets (
			user_id,
			name, type, colour, lost_date, last_seen_location,
			photo, comment, status, found_date,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		RETURNING id
	`,
		p.UserID,
		p.Name,
		p.Type,
		p.Colour,
		p.LostDate,
		p.LastSeenLocation,
		p.Photo,
		p.Comment,
		p.Status,
		toNullDate(p.FoundDate),
		p.CreatedAt,
		p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		return missingpets.MissingPet{}, err
	}
	return p, nil
}

func (r *MissingPetsRepo) GetByID(ctx context.Context, id int64) (missingpets.MissingPet, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+missingPetColumns+`
		FROM missing_pets
		WHERE id = $1
	`, id)

	p, err := scanMissingPet(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return missingpets.MissingPet{}, missingpets.ErrNotFound
		}
		return missingpets.MissingPet{}, err
	}
	return p, nil
}

func (r *MissingPetsRepo) List(ctx context.Context) ([]missingpets.MissingPet, error) {
	return r.list(ctx, `
		SELECT `+missingPetColumns+`
		FROM missing_pets
		ORDER BY updated_at DESC
	`)
}

func (r *MissingPetsRepo) ListByUser(ctx context.Context, userID int64) ([]missingpets.MissingPet, error) {
	return r.list(ctx, `
		SELECT `+missingPetColumns+`
		FROM missing_pets
		WHERE user_id = $1
		ORDER BY updated_at DESC
	`, userID)
}

func (r *MissingPetsRepo) ListByType(ctx context.Context, t missingpets.PetType) ([]missingpets.MissingPet, error) {
	return r.list(ctx, `
		SELECT `+missingPetColumns+`
		FROM missing_pets
		WHERE type = $1
		ORDER BY updated_at DESC
	`, t)
}

func (r *MissingPetsRepo) ListByStatus(ctx context.Context, s missingpets.Status) ([]missingpets.MissingPet, error) {
	return r.list(ctx, `
		SELECT `+missingPetColumns+`
		FROM missing_pets
		WHERE status = $1
		ORDER BY updated_at DESC
	`, s)
}

func (r *MissingPetsRepo) ListByLocation(ctx context.Context, location string) ([]missingpets.MissingPet, error) {
	return r.list(ctx, `
		SELECT `+missingPetColumns+`
		FROM missing_pets
		WHERE last_seen_location = $1
		ORDER BY updated_at DESC
	`, location)
}

func (r *MissingPetsRepo) Update(ctx context.Context, p missingpets.MissingPet) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE missing_pets
		SET
			name = $2,
			type = $3,
			colour = $4,
			lost_date = $5,
			last_seen_location = $6,
			photo = $7,
			comment = $8,
			status = $9,
			found_date = $10,
			updated_at = $11
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.Type,
		p.Colour,
		p.LostDate,
		p.LastSeenLocation,
		p.Photo,
		p.Comment,
		p.Status,
		toNullDate(p.FoundDate),
		p.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *MissingPetsRepo) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM missing_pets WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *MissingPetsRepo) list(ctx context.Context, query string, args ...any) ([]missingpets.MissingPet, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]missingpets.MissingPet, 0)
	for rows.Next() {
		p, err := scanMissingPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMissingPet(row rowScanner) (missingpets.MissingPet, error) {
	var p missingpets.MissingPet
	var fd sql.NullTime
	if err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&p.Type,
		&p.Colour,
		&p.LostDate,
		&p.LastSeenLocation,
		&p.Photo,
		&p.Comment,
		&p.Status,
		&fd,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return missingpets.MissingPet{}, err
	}

	if fd.Valid {
		t := fd.Time
		p.FoundDate = &t
	}
	return p, nil
}

// lost_date y found_date son DATE, las pasamos como NullTime para simplificar
func toNullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
