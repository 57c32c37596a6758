package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bankdemo/internal/domain"

	"github.com/shopspring/decimal"
)

var (
	// ErrMissingField indicates that a required form field was empty.
	ErrMissingField = errors.New("all fields are required")
	// ErrAccountNotFound indicates that no session account matches the given number.
	ErrAccountNotFound = errors.New("account not found")
	// ErrInsufficientFunds indicates that the account balance cannot cover the amount.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInvalidAmount indicates that the amount is not a positive number.
	ErrInvalidAmount = errors.New("enter a valid amount")
)

// BankService encapsulates the session-scoped account, payee and payment
// use cases.
type BankService struct {
	sessions domain.SessionRepository
}

// NewBankService creates a BankService backed by the given session repository.
func NewBankService(sessions domain.SessionRepository) *BankService {
	return &BankService{sessions: sessions}
}

// Accounts returns the accounts held by the session.
func (s *BankService) Accounts(ctx context.Context, token string) ([]domain.Account, error) {
	sess, err := s.session(ctx, token)
	if err != nil {
		return nil, err
	}
	return sess.Accounts, nil
}

// Summary returns the accounts and the transaction log for the session.
func (s *BankService) Summary(ctx context.Context, token string) ([]domain.Account, []domain.Transaction, error) {
	sess, err := s.session(ctx, token)
	if err != nil {
		return nil, nil, err
	}
	return sess.Accounts, sess.Transactions, nil
}

// Payees returns the session's payee list.
func (s *BankService) Payees(ctx context.Context, token string) ([]domain.Payee, error) {
	sess, err := s.session(ctx, token)
	if err != nil {
		return nil, err
	}
	return sess.Payees, nil
}

// AddPayee appends a payee to the session. All four fields are mandatory.
func (s *BankService) AddPayee(ctx context.Context, token string, payee domain.Payee) error {
	if anyEmpty(payee.Name, payee.Bank, payee.AccountNumber, payee.SortCode) {
		return ErrMissingField
	}

	sess, err := s.session(ctx, token)
	if err != nil {
		return err
	}

	sess.Payees = append(sess.Payees, payee)
	return s.sessions.Save(ctx, sess)
}

// Pay debits the named account and records the transaction. The session is
// written back in one Save call, so the balance change and the transaction
// entry cannot diverge.
func (s *BankService) Pay(ctx context.Context, token, fromAccount, payeeName string, amount decimal.Decimal) (*domain.Transaction, error) {
	if anyEmpty(fromAccount, payeeName) {
		return nil, ErrMissingField
	}

	sess, err := s.session(ctx, token)
	if err != nil {
		return nil, err
	}

	txn, err := debit(sess, fromAccount, payeeName, amount, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	return txn, nil
}

// debit decrements the matched account's balance and appends a transaction
// to the session. The session is untouched on any failure.
func debit(sess *domain.Session, fromAccount, payeeName string, amount decimal.Decimal, now time.Time) (*domain.Transaction, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	for i := range sess.Accounts {
		acc := &sess.Accounts[i]
		if acc.Number != fromAccount {
			continue
		}
		if acc.Balance.LessThan(amount) {
			return nil, ErrInsufficientFunds
		}

		acc.Balance = acc.Balance.Sub(amount)
		sess.Transactions = append(sess.Transactions, domain.Transaction{
			Date:        now,
			Description: fmt.Sprintf("Paid to %s from %s", payeeName, fromAccount),
			Amount:      amount,
		})
		return &sess.Transactions[len(sess.Transactions)-1], nil
	}

	return nil, ErrAccountNotFound
}

func (s *BankService) session(ctx context.Context, token string) (*domain.Session, error) {
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

func anyEmpty(fields ...string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return true
		}
	}
	return false
}
