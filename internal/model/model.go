// Package model defines domain entities used by services and repositories.
package model

import "time"

// User represents a registered account. The plaintext password is never stored.
type User struct {
	ID           int64  // PK, assigned by the database
	Email        string // unique, case-sensitive login key
	PasswordHash []byte // bcrypt(password), salt embedded
	CreatedAt    time.Time
}

// Note is a single text note owned by exactly one user.
type Note struct {
	ID        int64
	UserID    int64 // FK -> users.id
	Text      string
	CreatedAt time.Time // set on insert, sole sort key
}

// SessionView is a read-only snapshot of a session's authentication state.
type SessionView struct {
	Authenticated bool
	UserID        int64
	Email         string
}
