package postgres

import (
	"context"
	"database/sql"

	"pet-lost-and-found/internal/domain/messages"
)

type MessagesRepo struct {
	db *sql.DB
}

func NewMessagesRepo(db *sql.DB) *MessagesRepo {
	return &MessagesRepo{db: db}
}

const messageColumns = `id, user_id, missing_pet_id, comment, created_at, updated_at`

func (r *MessagesRepo) Create(ctx context.Context, m messages.Message) (messages.Message, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO messages (user_id, missing_pet_id, comment, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id
	`,
		m.UserID,
		m.MissingPetID,
		m.Comment,
		m.CreatedAt,
		m.UpdatedAt,
	).Scan(&m.ID)
	if err != nil {
		return messages.Message{}, err
	}
	return m, nil
}

func (r *MessagesRepo) GetByID(ctx context.Context, id int64) (messages.Message, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+messageColumns+`
		FROM messages
		WHERE id = $1
	`, id)

	var m messages.Message
	if err := row.Scan(
		&m.ID,
		&m.UserID,
		&m.MissingPetID,
		&m.Comment,
		&m.CreatedAt,
		&m.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return messages.Message{}, messages.ErrNotFound
		}
		return messages.Message{}, err
	}
	return m, nil
}

func (r *MessagesRepo) List(ctx context.Context) ([]messages.Message, error) {
	return r.list(ctx, `
		SELECT `+messageColumns+`
		FROM messages
		ORDER BY created_at ASC
	`)
}

func (r *MessagesRepo) ListByUser(ctx context.Context, userID int64) ([]messages.Message, error) {
	return r.list(ctx, `
		SELECT `+messageColumns+`
		FROM messages
		WHERE user_id = $1
		ORDER BY created_at ASC
	`, userID)
}

func (r *MessagesRepo) ListByMissingPet(ctx context.Context, missingPetID int64) ([]messages.Message, error) {
	return r.list(ctx, `
		SELECT `+messageColumns+`
		FROM messages
		WHERE missing_pet_id = $1
		ORDER BY created_at ASC
	`, missingPetID)
}

func (r *MessagesRepo) Update(ctx context.Context, m messages.Message) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE messages
		SET
			missing_pet_id = $2,
			comment = $3,
			updated_at = $4
		WHERE id = $1
	`,
		m.ID,
		m.MissingPetID,
		m.Comment,
		m.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *MessagesRepo) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *MessagesRepo) list(ctx context.Context, query string, args ...any) ([]messages.Message, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]messages.Message, 0)
	for rows.Next() {
		var m messages.Message
		if err := rows.Scan(
			&m.ID,
			&m.UserID,
			&m.MissingPetID,
			&m.Comment,
			&m.CreatedAt,
			&m.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
