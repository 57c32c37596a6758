package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Account is a demonstration bank account scoped to one session.
type Account struct {
	Number   string          `json:"number"`
	Balance  decimal.Decimal `json:"balance"`
	SortCode string          `json:"sortCode"`
}

// Transaction records a completed payment. Transactions are append-only
// and ordered by creation time.
type Transaction struct {
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// Payee is a named recipient the user can pay from an account.
type Payee struct {
	Name          string `json:"name"`
	Bank          string `json:"bank"`
	AccountNumber string `json:"accountNumber"`
	SortCode      string `json:"sortCode"`
}

// Session is the aggregate root for one authenticated login. It owns the
// identity, the seeded demo accounts, the payee list, and the transaction
// log. All of it is discarded when the session ends.
type Session struct {
	Token        string        `json:"token"`
	Username     string        `json:"username"`
	CustomerID   string        `json:"customerId"`
	Accounts     []Account     `json:"accounts"`
	Payees       []Payee       `json:"payees"`
	Transactions []Transaction `json:"transactions"`
	CreatedAt    time.Time     `json:"createdAt"`
	ExpiresAt    time.Time     `json:"expiresAt"`
}

// Expired reports whether the session is past its expiry.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Clone returns a copy whose account, payee and transaction slices do not
// share backing arrays with the receiver.
func (s *Session) Clone() *Session {
	cp := *s
	cp.Accounts = append([]Account(nil), s.Accounts...)
	cp.Payees = append([]Payee(nil), s.Payees...)
	cp.Transactions = append([]Transaction(nil), s.Transactions...)
	return &cp
}

// SessionRepository defines the port for session persistence operations.
// Save replaces the stored session wholesale, so account balances and the
// transaction log are always written back together.
type SessionRepository interface {
	Create(ctx context.Context, s *Session) error
	GetByToken(ctx context.Context, token string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) error
}
