package service

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/and161185/notekeeper/internal/errs"
	"github.com/and161185/notekeeper/internal/model"
)

// Session is the authentication state of one interaction context.
// It is owned by that context and must not be shared between goroutines.
// The zero value is an anonymous session without an ID.
type Session struct {
	id            uuid.UUID
	authenticated bool
	userID        int64
	email         string
}

// ID returns the correlation ID of the interaction context.
func (s *Session) ID() uuid.UUID { return s.id }

// IsAuthenticated reports whether a user is logged in.
func (s *Session) IsAuthenticated() bool { return s.authenticated }

// CurrentUser returns the authenticated user ID, or false when anonymous.
func (s *Session) CurrentUser() (int64, bool) {
	if !s.authenticated {
		return 0, false
	}
	return s.userID, true
}

// Email returns the authenticated email, or "" when anonymous.
func (s *Session) Email() string { return s.email }

// View returns a snapshot of the session state.
func (s *Session) View() model.SessionView {
	return model.SessionView{Authenticated: s.authenticated, UserID: s.userID, Email: s.email}
}

func (s *Session) reset() {
	s.authenticated = false
	s.userID = 0
	s.email = ""
}

// SessionManager moves sessions between the anonymous and authenticated states.
// It holds no per-session state itself and is safe for concurrent use.
type SessionManager struct {
	creds CredentialStore
	log   *zap.Logger
}

// NewSessionManager constructs a SessionManager on top of a credential store.
func NewSessionManager(creds CredentialStore, log *zap.Logger) *SessionManager {
	if log == nil {
		log = zap.NewNop()
	}
	return &SessionManager{creds: creds, log: log}
}

// NewSession returns a fresh anonymous session.
func (m *SessionManager) NewSession() *Session {
	id, err := uuid.NewV4()
	if err != nil {
		m.log.Warn("session id", zap.Error(err))
	}
	return &Session{id: id}
}

// Login verifies credentials and, on success, authenticates s.
// On failure s is left unchanged.
func (m *SessionManager) Login(ctx context.Context, s *Session, email, password string) (model.SessionView, error) {
	if s == nil {
		return model.SessionView{}, errors.New("nil session")
	}
	userID, err := m.creds.Verify(ctx, email, password)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidCredentials) {
			m.log.Info("login failed", zap.Stringer("session", s.id))
		} else {
			m.log.Error("login", zap.Stringer("session", s.id), zap.Error(err))
		}
		return model.SessionView{}, err
	}

	s.authenticated = true
	s.userID = userID
	s.email = email
	m.log.Info("login", zap.Stringer("session", s.id), zap.Int64("user_id", userID))
	return s.View(), nil
}

// Logout resets s to the anonymous state. Calling it on an anonymous session is a no-op.
func (m *SessionManager) Logout(s *Session) {
	if s == nil {
		return
	}
	if s.authenticated {
		m.log.Info("logout", zap.Stringer("session", s.id), zap.Int64("user_id", s.userID))
	}
	s.reset()
}
