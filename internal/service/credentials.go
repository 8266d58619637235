// Package service contains application services for accounts, sessions and notes.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	pkgcrypto "github.com/and161185/notekeeper/internal/crypto"
	"github.com/and161185/notekeeper/internal/errs"
	"github.com/and161185/notekeeper/internal/model"
	"github.com/and161185/notekeeper/internal/repository"
)

// CredentialStore registers users and verifies their credentials.
type CredentialStore interface {
	// Register creates a new user with a salted password hash. No session is created.
	Register(ctx context.Context, email, password string) (userID int64, err error)
	// Verify checks email/password and returns the user ID on success.
	Verify(ctx context.Context, email, password string) (userID int64, err error)
}

// fallbackDummyHash is a valid cost-10 bcrypt hash used when the dummy hash
// cannot be generated, so unknown-email checks still pay for a full comparison.
const fallbackDummyHash = "$2a$10$XajjQvNhvvRt5GSeFk1xFeyqRrsxkhBkUiQeg0dt.wU1qD4aFDcga"

type CredentialService struct {
	users repository.UserRepository
	cost  int
	log   *zap.Logger
	hash  func(password string, cost int) ([]byte, error)

	dummyOnce sync.Once
	dummyHash []byte
}

// NewCredentialService constructs a CredentialService. cost is the bcrypt work factor.
func NewCredentialService(users repository.UserRepository, cost int, log *zap.Logger) *CredentialService {
	if log == nil {
		log = zap.NewNop()
	}
	return &CredentialService{users: users, cost: cost, log: log, hash: pkgcrypto.HashPassword}
}

// Register hashes password and inserts the user. Uniqueness of email is
// enforced by the storage layer; a lost race yields errs.ErrAlreadyExists.
func (s *CredentialService) Register(ctx context.Context, email, password string) (int64, error) {
	if email == "" || password == "" {
		return 0, fmt.Errorf("%w: empty email/password", errs.ErrInvalidInput)
	}
	hash, err := s.hash(password, s.cost)
	if err != nil {
		if errors.Is(err, pkgcrypto.ErrPasswordTooLong) {
			return 0, fmt.Errorf("%w: password too long", errs.ErrInvalidInput)
		}
		return 0, fmt.Errorf("hash password: %w", err)
	}

	u := &model.User{Email: email, PasswordHash: hash}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, errs.ErrAlreadyExists) {
			s.log.Info("register rejected", zap.String("email", email), zap.String("reason", "email_taken"))
		}
		return 0, err
	}
	s.log.Info("user registered", zap.Int64("user_id", u.ID), zap.String("email", email))
	return u.ID, nil
}

// Verify authenticates email/password. Unknown email and wrong password both
// return errs.ErrInvalidCredentials and both pay for one bcrypt comparison;
// only the log line records which one happened.
func (s *CredentialService) Verify(ctx context.Context, email, password string) (int64, error) {
	if len(password) > pkgcrypto.MaxPasswordLen {
		// no stored hash can match; bcrypt would compare only the first 72 bytes
		_ = pkgcrypto.VerifyPassword(s.dummy(), password[:pkgcrypto.MaxPasswordLen])
		s.log.Info("credential check failed", zap.String("email", email), zap.String("reason", "password_too_long"))
		return 0, errs.ErrInvalidCredentials
	}

	u, err := s.users.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, errs.ErrNotFound):
		_ = pkgcrypto.VerifyPassword(s.dummy(), password)
		s.log.Info("credential check failed", zap.String("email", email), zap.String("reason", "unknown_email"))
		return 0, errs.ErrInvalidCredentials
	case err != nil:
		return 0, err
	}

	if !pkgcrypto.VerifyPassword(u.PasswordHash, password) {
		s.log.Info("credential check failed", zap.String("email", email), zap.String("reason", "password_mismatch"))
		return 0, errs.ErrInvalidCredentials
	}
	return u.ID, nil
}

// dummy returns a hash at the configured cost used to equalize timing for unknown emails.
func (s *CredentialService) dummy() []byte {
	s.dummyOnce.Do(func() {
		h, err := s.hash("notekeeper-timing-equalizer", s.cost)
		if err != nil {
			s.log.Warn("dummy hash, using fallback", zap.Error(err))
			h = []byte(fallbackDummyHash)
		}
		s.dummyHash = h
	})
	return s.dummyHash
}
