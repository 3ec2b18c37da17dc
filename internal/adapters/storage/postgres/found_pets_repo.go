package postgres

import (
	"context"
	"database/sql"

	"pet-lost-and-found/internal/domain/foundpets"
)

type FoundPetsRepo struct {
	db *sql.DB
}

func NewFoundPetsRepo(db *sql.DB) *FoundPetsRepo {
	return &FoundPetsRepo{db: db}
}

const foundPetColumns = `
	id, user_id,
	type, colour, found_date, found_location,
	photo, comment, status, claimed_date,
	created_at, updated_at`

func (r *FoundPetsRepo) Create(ctx context.Context, p foundpets.FoundPet) (foundpets.FoundPet, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO found_pets (
			user_id,
			type, colour, found_date, found_location,
			photo, comment, status, claimed_date,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING id
	`,
		p.UserID,
		p.Type,
		p.Colour,
		p.FoundDate,
		p.FoundLocation,
		p.Photo,
		p.Comment,
		p.Status,
		toNullDate(p.ClaimedDate),
		p.CreatedAt,
		p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		return foundpets.FoundPet{}, err
	}
	return p, nil
}

func (r *FoundPetsRepo) GetByID(ctx context.Context, id int64) (foundpets.FoundPet, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+foundPetColumns+`
		FROM found_pets
		WHERE id = $1
	`, id)

	p, err := scanFoundPet(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return foundpets.FoundPet{}, foundpets.ErrNotFound
		}
		return foundpets.FoundPet{}, err
	}
	return p, nil
}

func (r *FoundPetsRepo) List(ctx context.Context) ([]foundpets.FoundPet, error) {
	return r.list(ctx, `
		SELECT `+foundPetColumns+`
		FROM found_pets
		ORDER BY updated_at DESC
	`)
}

func (r *FoundPetsRepo) ListByUser(ctx context.Context, userID int64) ([]foundpets.FoundPet, error) {
	return r.list(ctx, `
		SELECT `+foundPetColumns+`
		FROM found_pets
		WHERE user_id = $1
		ORDER BY updated_at DESC
	`, userID)
}

func (r *FoundPetsRepo) ListByType(ctx context.Context, t foundpets.PetType) ([]foundpets.FoundPet, error) {
	return r.list(ctx, `
		SELECT `+foundPetColumns+`
		FROM found_pets
		WHERE type = $1
		ORDER BY updated_at DESC
	`, t)
}

func (r *FoundPetsRepo) ListByStatus(ctx context.Context, s foundpets.Status) ([]foundpets.FoundPet, error) {
	return r.list(ctx, `
		SELECT `+foundPetColumns+`
		FROM found_pets
		WHERE status = $1
		ORDER BY updated_at DESC
	`, s)
}

func (r *FoundPetsRepo) ListByLocation(ctx context.Context, location string) ([]foundpets.FoundPet, error) {
	return r.list(ctx, `
		SELECT `+foundPetColumns+`
		FROM found_pets
		WHERE found_location = $1
		ORDER BY updated_at DESC
	`, location)
}

func (r *FoundPetsRepo) Update(ctx context.Context, p foundpets.FoundPet) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE found_pets
		SET
			type = $2,
			colour = $3,
			found_date = $4,
			found_location = $5,
			photo = $6,
			comment = $7,
			status = $8,
			claimed_date = $9,
			updated_at = $10
		WHERE id = $1
	`,
		p.ID,
		p.Type,
		p.Colour,
		p.FoundDate,
		p.FoundLocation,
		p.Photo,
		p.Comment,
		p.Status,
		toNullDate(p.ClaimedDate),
		p.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *FoundPetsRepo) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM found_pets WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *FoundPetsRepo) list(ctx context.Context, query string, args ...any) ([]foundpets.FoundPet, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]foundpets.FoundPet, 0)
	for rows.Next() {
		p, err := scanFoundPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanFoundPet(row rowScanner) (foundpets.FoundPet, error) {
	var p foundpets.FoundPet
	var cd sql.NullTime
	if err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Type,
		&p.Colour,
		&p.FoundDate,
		&p.FoundLocation,
		&p.Photo,
		&p.Comment,
		&p.Status,
		&cd,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return foundpets.FoundPet{}, err
	}

	if cd.Valid {
		t := cd.Time
		p.ClaimedDate = &t
	}
	return p, nil
}
