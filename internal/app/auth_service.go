// Package app holds the application services and business logic.
package app

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"bankdemo/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials indicates that the provided username or password was incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUsernameTaken indicates that the username is already registered.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrUserNotFound indicates that the user does not exist.
	ErrUserNotFound = errors.New("account not found")
	// ErrWeakPassword indicates that the password does not meet the strength rules.
	ErrWeakPassword = errors.New("password is not strong enough")
	// ErrSessionNotFound indicates that the requested session does not exist.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired indicates that the session has expired.
	ErrSessionExpired = errors.New("session expired")
)

// AuthService handles registration, credentials and session lifecycle.
type AuthService struct {
	users      domain.UserRepository
	sessions   domain.SessionRepository
	sessionTTL time.Duration
}

// NewAuthService creates a new authentication service.
func NewAuthService(users domain.UserRepository, sessions domain.SessionRepository, sessionTTL time.Duration) *AuthService {
	return &AuthService{
		users:      users,
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
}

// FindUser looks up a user by exact username. Returns (nil, nil) when absent.
func (s *AuthService) FindUser(ctx context.Context, username string) (*domain.User, error) {
	return s.users.GetByUsername(ctx, username)
}

// Register creates a new user with a hashed password.
func (s *AuthService) Register(ctx context.Context, username, password string) error {
	existing, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrUsernameTaken
	}

	if !IsStrong(password) {
		return ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = s.users.Create(ctx, username, string(hash))
	return err
}

// ResetPassword replaces a user's password after validating strength.
func (s *AuthService) ResetPassword(ctx context.Context, username, newPassword string) error {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if !IsStrong(newPassword) {
		return ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.users.UpdatePassword(ctx, username, string(hash))
}

// Login authenticates a user and creates a session seeded with the
// demonstration accounts.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil || user == nil {
		return "", ErrInvalidCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := generateToken()
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	sess := &domain.Session{
		Token:      token,
		Username:   username,
		CustomerID: "CUST-" + uuid.NewString(),
		Accounts:   seedAccounts(),
		CreatedAt:  now,
		ExpiresAt:  now.Add(s.sessionTTL),
	}

	if err := s.sessions.Create(ctx, sess); err != nil {
		return "", err
	}

	return token, nil
}

// Logout invalidates a session.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// ValidateSession resolves a session token; expired sessions are deleted
// on sight.
func (s *AuthService) ValidateSession(ctx context.Context, token string) (*domain.Session, error) {
	sess, err := s.sessions.GetByToken(ctx, token)
	if err != nil || sess == nil {
		return nil, ErrSessionNotFound
	}

	if sess.Expired(time.Now()) {
		_ = s.sessions.Delete(ctx, token)
		return nil, ErrSessionExpired
	}

	return sess, nil
}

// seedAccounts returns the fixed demonstration accounts every login starts
// with. Values are constants of the demo, not user input.
func seedAccounts() []domain.Account {
	return []domain.Account{
		{Number: "12345678", Balance: decimal.NewFromFloat(1500.50), SortCode: "60-99-10"},
		{Number: "87654321", Balance: decimal.NewFromFloat(2500.75), SortCode: "60-99-10"},
	}
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
