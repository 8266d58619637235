package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/and161185/notekeeper/internal/errs"
	"github.com/and161185/notekeeper/internal/model"
)

// UserRepo implements UserRepository using PostgreSQL.
type UserRepo struct{ db *DB }

// NewUserRepo constructs a user repository.
func NewUserRepo(db *DB) *UserRepo { return &UserRepo{db: db} }

// Create inserts a new user row. Email uniqueness is decided by the
// users_email_key constraint, so concurrent registrations cannot both win.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	const q = `
INSERT INTO users (email, password_hash)
VALUES ($1, $2)
RETURNING id, created_at`
	return r.db.WithTx(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, q, u.Email, string(u.PasswordHash)).Scan(&u.ID, &u.CreatedAt)
		if isUniqueViolation(err) {
			return errs.ErrAlreadyExists
		}
		if err != nil {
			return storageErr("insert user", err)
		}
		return nil
	})
}

// GetByEmail selects a user by exact email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const q = `
SELECT id, email, password_hash, created_at
FROM users WHERE email=$1`
	var (
		u    model.User
		hash string
	)
	if err := r.db.Pool.QueryRow(ctx, q, email).Scan(&u.ID, &u.Email, &hash, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, storageErr("select user", err)
	}
	u.PasswordHash = []byte(hash)
	return &u, nil
}
