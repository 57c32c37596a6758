package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"bankdemo/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct {
	getByUsernameFn  func(ctx context.Context, username string) (*domain.User, error)
	createFn         func(ctx context.Context, username, passwordHash string) (*domain.User, error)
	updatePasswordFn func(ctx context.Context, username, passwordHash string) error
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.getByUsernameFn != nil {
		return m.getByUsernameFn(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepo) Create(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, username, passwordHash)
	}
	return &domain.User{ID: 1, Username: username, PasswordHash: passwordHash}, nil
}

func (m *mockUserRepo) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	if m.updatePasswordFn != nil {
		return m.updatePasswordFn(ctx, username, passwordHash)
	}
	return nil
}

type mockSessionRepo struct {
	createFn        func(ctx context.Context, s *domain.Session) error
	getByTokenFn    func(ctx context.Context, token string) (*domain.Session, error)
	saveFn          func(ctx context.Context, s *domain.Session) error
	deleteFn        func(ctx context.Context, token string) error
	deleteExpiredFn func(ctx context.Context) error
}

func (m *mockSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	if m.createFn != nil {
		return m.createFn(ctx, s)
	}
	return nil
}

func (m *mockSessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	if m.getByTokenFn != nil {
		return m.getByTokenFn(ctx, token)
	}
	return nil, nil
}

func (m *mockSessionRepo) Save(ctx context.Context, s *domain.Session) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, s)
	}
	return nil
}

func (m *mockSessionRepo) Delete(ctx context.Context, token string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, token)
	}
	return nil
}

func (m *mockSessionRepo) DeleteExpired(ctx context.Context) error {
	if m.deleteExpiredFn != nil {
		return m.deleteExpiredFn(ctx)
	}
	return nil
}

func TestAuthService_Register_Success(t *testing.T) {
	ctx := context.Background()

	created := false
	users := &mockUserRepo{
		createFn: func(ctx context.Context, username, passwordHash string) (*domain.User, error) {
			created = true
			if username != "alice" {
				t.Errorf("expected username 'alice', got %s", username)
			}
			if passwordHash == "X1!aaaaa" {
				t.Error("password should be hashed, not stored verbatim")
			}
			if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte("X1!aaaaa")); err != nil {
				t.Errorf("hash does not verify against the password: %v", err)
			}
			return &domain.User{ID: 1, Username: username, PasswordHash: passwordHash}, nil
		},
	}

	svc := NewAuthService(users, &mockSessionRepo{}, 24*time.Hour)
	if err := svc.Register(ctx, "alice", "X1!aaaaa"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !created {
		t.Error("expected user to be created")
	}
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	ctx := context.Background()

	users := &mockUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			return &domain.User{ID: 1, Username: username}, nil
		},
	}

	svc := NewAuthService(users, &mockSessionRepo{}, 24*time.Hour)
	if err := svc.Register(ctx, "alice", "X1!aaaaa"); !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	ctx := context.Background()

	users := &mockUserRepo{
		createFn: func(ctx context.Context, username, passwordHash string) (*domain.User, error) {
			t.Error("weak password must not reach the repository")
			return nil, nil
		},
	}

	svc := NewAuthService(users, &mockSessionRepo{}, 24*time.Hour)
	if err := svc.Register(ctx, "alice", "password"); !errors.Is(err, ErrWeakPassword) {
		t.Errorf("expected ErrWeakPassword, got %v", err)
	}
}

func TestAuthService_FindUser_AbsentAndIdempotent(t *testing.T) {
	ctx := context.Background()

	calls := 0
	users := &mockUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			calls++
			return nil, nil
		},
	}

	svc := NewAuthService(users, &mockSessionRepo{}, 24*time.Hour)
	for i := 0; i < 3; i++ {
		user, err := svc.FindUser(ctx, "bob")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if user != nil {
			t.Errorf("expected absent user, got %+v", user)
		}
	}
	if calls != 3 {
		t.Errorf("expected 3 lookups, got %d", calls)
	}
}

func TestAuthService_ResetPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("user not found", func(t *testing.T) {
		svc := NewAuthService(&mockUserRepo{}, &mockSessionRepo{}, 24*time.Hour)
		if err := svc.ResetPassword(ctx, "ghost", "X1!aaaaa"); !errors.Is(err, ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("weak password", func(t *testing.T) {
		users := &mockUserRepo{
			getByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
				return &domain.User{ID: 1, Username: username}, nil
			},
			updatePasswordFn: func(ctx context.Context, username, passwordHash string) error {
				t.Error("weak password must not be stored")
				return nil
			},
		}
		svc := NewAuthService(users, &mockSessionRepo{}, 24*time.Hour)
		if err := svc.ResetPassword(ctx, "alice", "weak"); !errors.Is(err, ErrWeakPassword) {
			t.Errorf("expected ErrWeakPassword, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		updated := false
		users := &mockUserRepo{
			getByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
				return &domain.User{ID: 1, Username: username}, nil
			},
			updatePasswordFn: func(ctx context.Context, username, passwordHash string) error {
				updated = true
				if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte("N3w!pass")); err != nil {
					t.Errorf("stored hash does not verify: %v", err)
				}
				return nil
			},
		}
		svc := NewAuthService(users, &mockSessionRepo{}, 24*time.Hour)
		if err := svc.ResetPassword(ctx, "alice", "N3w!pass"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !updated {
			t.Error("expected password to be updated")
		}
	})
}

func TestAuthService_Login_SeedsSession(t *testing.T) {
	ctx := context.Background()
	password := "X1!aaaaa"
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	users := &mockUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			return &domain.User{ID: 1, Username: "alice", PasswordHash: string(hash)}, nil
		},
	}

	var seeded *domain.Session
	sessions := &mockSessionRepo{
		createFn: func(ctx context.Context, s *domain.Session) error {
			seeded = s
			return nil
		},
	}

	svc := NewAuthService(users, sessions, 24*time.Hour)
	token, err := svc.Login(ctx, "alice", password)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if token == "" {
		t.Error("expected token, got empty string")
	}

	if seeded == nil {
		t.Fatal("expected session to be created")
	}
	if seeded.Token != token {
		t.Error("session token must match the returned token")
	}
	if seeded.Username != "alice" {
		t.Errorf("expected username 'alice', got %s", seeded.Username)
	}
	if seeded.CustomerID == "" {
		t.Error("expected a customer ID")
	}
	if len(seeded.Accounts) != 2 {
		t.Fatalf("expected 2 seeded accounts, got %d", len(seeded.Accounts))
	}
	if seeded.Accounts[0].Number != "12345678" || seeded.Accounts[0].Balance.String() != "1500.5" {
		t.Errorf("unexpected first account: %+v", seeded.Accounts[0])
	}
	if seeded.Accounts[1].Number != "87654321" || seeded.Accounts[1].Balance.String() != "2500.75" {
		t.Errorf("unexpected second account: %+v", seeded.Accounts[1])
	}
	if len(seeded.Payees) != 0 || len(seeded.Transactions) != 0 {
		t.Error("payees and transactions must start empty")
	}
	if !seeded.ExpiresAt.After(seeded.CreatedAt) {
		t.Error("session must expire after creation")
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("correctpass"), bcrypt.DefaultCost)

	users := &mockUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			return &domain.User{ID: 1, Username: "alice", PasswordHash: string(hash)}, nil
		},
	}

	svc := NewAuthService(users, &mockSessionRepo{}, 24*time.Hour)
	if _, err := svc.Login(ctx, "alice", "wrongpass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	ctx := context.Background()

	svc := NewAuthService(&mockUserRepo{}, &mockSessionRepo{}, 24*time.Hour)
	if _, err := svc.Login(ctx, "ghost", "whatever"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_ValidateSession_Expired(t *testing.T) {
	ctx := context.Background()

	deleted := false
	sessions := &mockSessionRepo{
		getByTokenFn: func(ctx context.Context, token string) (*domain.Session, error) {
			return &domain.Session{
				Token:     token,
				Username:  "alice",
				ExpiresAt: time.Now().Add(-1 * time.Hour),
			}, nil
		},
		deleteFn: func(ctx context.Context, token string) error {
			deleted = true
			return nil
		},
	}

	svc := NewAuthService(&mockUserRepo{}, sessions, 24*time.Hour)
	if _, err := svc.ValidateSession(ctx, "expiredtoken"); !errors.Is(err, ErrSessionExpired) {
		t.Errorf("expected ErrSessionExpired, got %v", err)
	}
	if !deleted {
		t.Error("expected expired session to be deleted")
	}
}

func TestAuthService_ValidateSession_NotFound(t *testing.T) {
	ctx := context.Background()

	svc := NewAuthService(&mockUserRepo{}, &mockSessionRepo{}, 24*time.Hour)
	if _, err := svc.ValidateSession(ctx, "nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}
