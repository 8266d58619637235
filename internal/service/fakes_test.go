package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/and161185/notekeeper/internal/errs"
	"github.com/and161185/notekeeper/internal/model"
	"github.com/and161185/notekeeper/internal/repository"
)

// fakeUsers enforces email uniqueness under a lock, like the unique constraint does.
type fakeUsers struct {
	mu      sync.Mutex
	byEmail map[string]*model.User
	nextID  int64

	createErr error
	getErr    error
}

var _ repository.UserRepository = (*fakeUsers)(nil)

func newFakeUsers() *fakeUsers { return &fakeUsers{byEmail: map[string]*model.User{}} }

func (f *fakeUsers) Create(_ context.Context, u *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	if _, exists := f.byEmail[u.Email]; exists {
		return errs.ErrAlreadyExists
	}
	f.nextID++
	u.ID = f.nextID
	u.CreatedAt = time.Now()
	cpy := *u
	f.byEmail[u.Email] = &cpy
	return nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return nil, errs.ErrNotFound
	}
	c := *u
	return &c, nil
}

func (f *fakeUsers) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byEmail)
}

// fakeNotes stamps each insert one second after the previous one.
type fakeNotes struct {
	mu     sync.Mutex
	rows   []model.Note
	clock  time.Time
	nextID int64

	createErr error
	listErr   error
	listNil   bool
}

var _ repository.NoteRepository = (*fakeNotes)(nil)

func newFakeNotes() *fakeNotes {
	return &fakeNotes{clock: time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)}
}

func (f *fakeNotes) Create(_ context.Context, n *model.Note) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	f.clock = f.clock.Add(time.Second)
	n.ID, n.CreatedAt = f.nextID, f.clock
	f.rows = append(f.rows, *n)
	return nil
}

func (f *fakeNotes) ListByUser(_ context.Context, userID int64) ([]model.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	if f.listNil {
		return nil, nil
	}
	out := make([]model.Note, 0)
	for _, n := range f.rows {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// fakeCreds is a scripted CredentialStore for session tests.
type fakeCreds struct {
	users map[string]struct {
		id int64
		pw string
	}
	verifyErr   error
	verifyCalls int
}

var _ CredentialStore = (*fakeCreds)(nil)

func (f *fakeCreds) add(email, pw string, id int64) {
	if f.users == nil {
		f.users = map[string]struct {
			id int64
			pw string
		}{}
	}
	f.users[email] = struct {
		id int64
		pw string
	}{id: id, pw: pw}
}

func (f *fakeCreds) Register(context.Context, string, string) (int64, error) {
	return 0, nil
}

func (f *fakeCreds) Verify(_ context.Context, email, password string) (int64, error) {
	f.verifyCalls++
	if f.verifyErr != nil {
		return 0, f.verifyErr
	}
	u, ok := f.users[email]
	if !ok || u.pw != password {
		return 0, errs.ErrInvalidCredentials
	}
	return u.id, nil
}
