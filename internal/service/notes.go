package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/and161185/notekeeper/internal/errs"
	"github.com/and161185/notekeeper/internal/model"
	"github.com/and161185/notekeeper/internal/repository"
)

type NoteService struct {
	repo repository.NoteRepository
	log  *zap.Logger
}

// NewNoteService constructs a NoteService.
func NewNoteService(repo repository.NoteRepository, log *zap.Logger) *NoteService {
	if log == nil {
		log = zap.NewNop()
	}
	return &NoteService{repo: repo, log: log}
}

// AddNote stores text as a new note owned by userID and returns its ID.
// The caller is trusted to pass the user ID of an authenticated session.
// Text that is empty after trimming is rejected; otherwise it is stored as given.
func (s *NoteService) AddNote(ctx context.Context, userID int64, text string) (int64, error) {
	if userID <= 0 {
		return 0, fmt.Errorf("%w: bad user id", errs.ErrInvalidInput)
	}
	if strings.TrimSpace(text) == "" {
		return 0, fmt.Errorf("%w: empty note", errs.ErrInvalidInput)
	}
	n := &model.Note{UserID: userID, Text: text}
	if err := s.repo.Create(ctx, n); err != nil {
		return 0, err
	}
	s.log.Debug("note added", zap.Int64("user_id", userID), zap.Int64("note_id", n.ID))
	return n.ID, nil
}

// ListNotes returns userID's notes ordered by creation time, newest first.
// A user without notes gets an empty, non-nil slice.
func (s *NoteService) ListNotes(ctx context.Context, userID int64) ([]model.Note, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: bad user id", errs.ErrInvalidInput)
	}
	notes, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []model.Note{}
	}
	return notes, nil
}

// AddNoteForSession adds a note owned by the session's current user.
func (s *NoteService) AddNoteForSession(ctx context.Context, sess *Session, text string) (int64, error) {
	userID, ok := currentUser(sess)
	if !ok {
		return 0, errs.ErrUnauthenticated
	}
	return s.AddNote(ctx, userID, text)
}

// ListNotesForSession lists the notes of the session's current user.
func (s *NoteService) ListNotesForSession(ctx context.Context, sess *Session) ([]model.Note, error) {
	userID, ok := currentUser(sess)
	if !ok {
		return nil, errs.ErrUnauthenticated
	}
	return s.ListNotes(ctx, userID)
}

func currentUser(sess *Session) (int64, bool) {
	if sess == nil {
		return 0, false
	}
	return sess.CurrentUser()
}
