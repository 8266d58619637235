package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/and161185/notekeeper/internal/model"
)

// NoteRepo implements NoteRepository using PostgreSQL.
type NoteRepo struct{ db *DB }

// NewNoteRepo constructs a note repository.
func NewNoteRepo(db *DB) *NoteRepo { return &NoteRepo{db: db} }

// Create inserts a note owned by n.UserID; created_at comes from the database clock.
func (r *NoteRepo) Create(ctx context.Context, n *model.Note) error {
	const q = `
INSERT INTO notes (user_id, text)
VALUES ($1, $2)
RETURNING id, created_at`
	return r.db.WithTx(ctx, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, q, n.UserID, n.Text).Scan(&n.ID, &n.CreatedAt); err != nil {
			return storageErr("insert note", err)
		}
		return nil
	})
}

// ListByUser returns all notes of userID, newest first. Ties on created_at
// fall back to id so the order is stable.
func (r *NoteRepo) ListByUser(ctx context.Context, userID int64) ([]model.Note, error) {
	const q = `
SELECT id, user_id, text, created_at
FROM notes
WHERE user_id=$1
ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Pool.Query(ctx, q, userID)
	if err != nil {
		return nil, storageErr("select notes", err)
	}
	defer rows.Close()

	out := make([]model.Note, 0)
	for rows.Next() {
		var n model.Note
		if err = rows.Scan(&n.ID, &n.UserID, &n.Text, &n.CreatedAt); err != nil {
			return nil, storageErr("scan note", err)
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate notes", err)
	}
	return out, nil
}
