package repository

import (
	"context"

	"github.com/and161185/notekeeper/internal/model"
)

// NoteRepository provides owner-scoped access to notes.
type NoteRepository interface {
	// Create inserts a note and fills its ID and CreatedAt.
	Create(ctx context.Context, n *model.Note) error
	// ListByUser returns the user's notes, newest first.
	ListByUser(ctx context.Context, userID int64) ([]model.Note, error)
}
