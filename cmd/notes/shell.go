package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/and161185/notekeeper/internal/errs"
	"github.com/and161185/notekeeper/internal/model"
	"github.com/and161185/notekeeper/internal/service"
)

type accounts interface {
	Register(ctx context.Context, email, password string) (int64, error)
}

type sessions interface {
	NewSession() *service.Session
	Login(ctx context.Context, s *service.Session, email, password string) (model.SessionView, error)
	Logout(s *service.Session)
}

type notebook interface {
	AddNoteForSession(ctx context.Context, s *service.Session, text string) (int64, error)
	ListNotesForSession(ctx context.Context, s *service.Session) ([]model.Note, error)
}

const timeLayout = "2006-01-02 15:04"

// shell is one interaction context: it owns exactly one session for its lifetime.
type shell struct {
	accounts accounts
	sessions sessions
	notes    notebook
	log      *zap.Logger

	in         *bufio.Reader
	out        io.Writer
	readSecret func() (string, error)
}

func newShell(acc accounts, ss sessions, nb notebook, in io.Reader, out io.Writer, log *zap.Logger) *shell {
	if log == nil {
		log = zap.NewNop()
	}
	sh := &shell{
		accounts: acc,
		sessions: ss,
		notes:    nb,
		log:      log,
		in:       bufio.NewReader(in),
		out:      out,
	}
	sh.readSecret = sh.readLine
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd := int(f.Fd())
		sh.readSecret = func() (string, error) {
			pw, err := term.ReadPassword(fd)
			fmt.Fprintln(sh.out)
			return string(pw), err
		}
	}
	return sh
}

// Run reads commands until EOF or "exit". The session is dropped on return.
func (sh *shell) Run(ctx context.Context) error {
	sess := sh.sessions.NewSession()
	ctx = service.WithSession(ctx, sess)
	sh.log.Debug("session started", zap.Stringer("session", sess.ID()))
	defer sh.log.Debug("session ended", zap.Stringer("session", sess.ID()))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintf(sh.out, "notes (%s)> ", sh.status(sess))
		line, err := sh.readLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(sh.out)
				return nil
			}
			return err
		}
		cmd, arg := splitCommand(line)
		if cmd == "" {
			continue
		}
		if cmd == "exit" || cmd == "quit" {
			fmt.Fprintln(sh.out, "Bye!")
			return nil
		}
		sh.dispatch(ctx, cmd, arg)
	}
}

func (sh *shell) dispatch(ctx context.Context, cmd, arg string) {
	var err error
	switch cmd {
	case "help":
		sh.help(ctx)
	case "register":
		err = sh.register(ctx, arg)
	case "login":
		err = sh.login(ctx, arg)
	case "logout":
		sh.logout(ctx)
	case "add":
		err = sh.add(ctx, arg)
	case "list", "l":
		err = sh.list(ctx)
	case "whoami":
		sh.whoami(ctx)
	default:
		fmt.Fprintln(sh.out, "Unknown command:", cmd)
	}
	if err != nil {
		fmt.Fprintln(sh.out, message(err))
	}
}

func (sh *shell) help(ctx context.Context) {
	if s, ok := service.SessionFromCtx(ctx); ok && s.IsAuthenticated() {
		fmt.Fprintln(sh.out, "Available commands: add <text>, list, whoami, logout, exit")
		return
	}
	fmt.Fprintln(sh.out, "Available commands: register [email], login [email], exit")
}

func (sh *shell) register(ctx context.Context, email string) error {
	email, password, err := sh.credentials(email)
	if err != nil {
		return err
	}
	if _, err := sh.accounts.Register(ctx, email, password); err != nil {
		return err
	}
	fmt.Fprintln(sh.out, "Registered. You can now log in.")
	return nil
}

func (sh *shell) login(ctx context.Context, email string) error {
	sess, ok := service.SessionFromCtx(ctx)
	if !ok {
		return errs.ErrUnauthenticated
	}
	email, password, err := sh.credentials(email)
	if err != nil {
		return err
	}
	view, err := sh.sessions.Login(ctx, sess, email, password)
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "Logged in as %s\n", view.Email)
	return nil
}

func (sh *shell) logout(ctx context.Context) {
	if sess, ok := service.SessionFromCtx(ctx); ok {
		sh.sessions.Logout(sess)
	}
	fmt.Fprintln(sh.out, "Logged out.")
}

func (sh *shell) add(ctx context.Context, text string) error {
	sess, _ := service.SessionFromCtx(ctx)
	if _, err := sh.notes.AddNoteForSession(ctx, sess, text); err != nil {
		return err
	}
	fmt.Fprintln(sh.out, "Note saved.")
	return nil
}

func (sh *shell) list(ctx context.Context) error {
	sess, _ := service.SessionFromCtx(ctx)
	notes, err := sh.notes.ListNotesForSession(ctx, sess)
	if err != nil {
		return err
	}
	if len(notes) == 0 {
		fmt.Fprintln(sh.out, "No notes yet.")
		return nil
	}
	for _, n := range notes {
		fmt.Fprintf(sh.out, "[%s] %s\n", n.CreatedAt.Local().Format(timeLayout), n.Text)
	}
	return nil
}

func (sh *shell) whoami(ctx context.Context) {
	sess, ok := service.SessionFromCtx(ctx)
	if !ok || !sess.IsAuthenticated() {
		fmt.Fprintln(sh.out, "Not logged in.")
		return
	}
	id, _ := sess.CurrentUser()
	fmt.Fprintf(sh.out, "%s (id %d)\n", sess.Email(), id)
}

// credentials prompts for whatever is missing. Shape checks live here; the
// core re-validates what matters for safety.
func (sh *shell) credentials(email string) (string, string, error) {
	if email == "" {
		fmt.Fprint(sh.out, "Email: ")
		line, err := sh.readLine()
		if err != nil {
			return "", "", err
		}
		email = strings.TrimSpace(line)
	}
	fmt.Fprint(sh.out, "Password: ")
	password, err := sh.readSecret()
	if err != nil {
		return "", "", err
	}
	if email == "" || password == "" {
		return "", "", fmt.Errorf("%w: email and password are required", errs.ErrInvalidInput)
	}
	return email, password, nil
}

func (sh *shell) readLine() (string, error) {
	line, err := sh.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (sh *shell) status(sess *service.Session) string {
	if sess.IsAuthenticated() {
		return sess.Email()
	}
	return "anonymous"
}

// splitCommand returns the first word and the remainder with leading blanks removed.
func splitCommand(line string) (string, string) {
	line = strings.TrimLeft(line, " \t")
	cmd, rest, _ := strings.Cut(line, " ")
	return strings.TrimSpace(cmd), strings.TrimLeft(rest, " \t")
}

// message maps core errors to what the user sees.
func message(err error) string {
	switch {
	case errors.Is(err, errs.ErrAlreadyExists):
		return "Email already registered."
	case errors.Is(err, errs.ErrInvalidCredentials):
		return "Wrong email or password."
	case errors.Is(err, errs.ErrUnauthenticated):
		return "Login required."
	case errors.Is(err, errs.ErrInvalidInput):
		return "Invalid input: " + strings.TrimPrefix(err.Error(), errs.ErrInvalidInput.Error()+": ")
	case errors.Is(err, errs.ErrStorage):
		return "Storage unavailable, try again later."
	default:
		return "Error: " + err.Error()
	}
}
