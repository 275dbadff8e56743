package auth

import (
	"database/sql"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/CalvinOheneba/Feeding/app/database"
	"github.com/CalvinOheneba/Feeding/app/models"
)

// Identity errors surfaced to the login form. They are messages for the
// user, never fatal to the session.
var (
	ErrInvalidEmail    = errors.New("Invalid email address format.")
	ErrUserNotFound    = errors.New("No account found with this email.")
	ErrWrongPassword   = errors.New("Incorrect password.")
	ErrAccountDisabled = errors.New("This account has been disabled.")
	ErrTooManyAttempts = errors.New("Too many login attempts. Please try again later.")
)

// Authenticator resolves credentials to a user. Two implementations
// exist: password-checked against the stored hash, and trust-on-email
// for local/mock deployments. Exactly one is active per process.
type Authenticator interface {
	Authenticate(email, password string) (*models.User, error)
}

// NewAuthenticator picks the provider for the configured auth mode.
func NewAuthenticator(db *sql.DB, mode string) Authenticator {
	if mode == "email" {
		log.Println("Using trust-on-email authentication (mock mode)")
		return &EmailAuthenticator{db: db}
	}
	return &PasswordAuthenticator{db: db, attempts: newAttemptTracker()}
}

// PasswordAuthenticator validates email+password against the users table.
type PasswordAuthenticator struct {
	db       *sql.DB
	attempts *attemptTracker
}

func (a *PasswordAuthenticator) Authenticate(email, password string) (*models.User, error) {
	if !validEmail(email) {
		return nil, ErrInvalidEmail
	}
	if a.attempts.blocked(email) {
		return nil, ErrTooManyAttempts
	}

	user, err := database.GetUserByEmail(a.db, email)
	if err != nil {
		if err == sql.ErrNoRows {
			a.attempts.record(email)
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrAccountDisabled
	}
	if !CheckPasswordHash(password, user.Password) {
		a.attempts.record(email)
		return nil, ErrWrongPassword
	}

	a.attempts.reset(email)
	return user, nil
}

// EmailAuthenticator matches the email against the known users list and
// ignores the password entirely. It mirrors the mock-login scheme of the
// local-storage deployment and must never be enabled in production.
type EmailAuthenticator struct {
	db *sql.DB
}

func (a *EmailAuthenticator) Authenticate(email, _ string) (*models.User, error) {
	if !validEmail(email) {
		return nil, ErrInvalidEmail
	}

	user, err := database.GetUserByEmail(a.db, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrAccountDisabled
	}
	return user, nil
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && strings.Contains(email[at:], ".")
}

const (
	maxFailedAttempts = 5
	attemptWindow     = 15 * time.Minute
)

type attemptTracker struct {
	mu     sync.Mutex
	failed map[string][]time.Time
}

func newAttemptTracker() *attemptTracker {
	return &attemptTracker{failed: make(map[string][]time.Time)}
}

func (t *attemptTracker) record(email string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.failed[email] = append(t.prune(email), time.Now())
}

func (t *attemptTracker) blocked(email string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	recent := t.prune(email)
	t.failed[email] = recent
	return len(recent) >= maxFailedAttempts
}

func (t *attemptTracker) reset(email string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.failed, email)
}

// prune drops attempts older than the window; callers hold the lock.
func (t *attemptTracker) prune(email string) []time.Time {
	cutoff := time.Now().Add(-attemptWindow)
	var recent []time.Time
	for _, at := range t.failed[email] {
		if at.After(cutoff) {
			recent = append(recent, at)
		}
	}
	return recent
}
