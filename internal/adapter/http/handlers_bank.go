package adapthttp

import (
	"net/http"
	"strings"

	"bankdemo/internal/app"
	"bankdemo/internal/domain"

	"github.com/shopspring/decimal"
)

func (s *Server) handleAccounts(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)

	accounts, err := s.bank.Accounts(r.Context(), sess.Token)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"customerId": sess.CustomerID,
		"username":   sess.Username,
		"accounts":   accounts,
	})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)

	accounts, transactions, err := s.bank.Summary(r.Context(), sess.Token)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"accounts":     accounts,
		"transactions": transactions,
	})
}

func (s *Server) handlePayees(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)

	payees, err := s.bank.Payees(r.Context(), sess.Token)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"payees": payees})
}

func (s *Server) handleAddPayee(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)

	var req struct {
		Name          string `json:"name"`
		Bank          string `json:"bank"`
		AccountNumber string `json:"accountNumber"`
		SortCode      string `json:"sortCode"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	payee := domain.Payee{
		Name:          req.Name,
		Bank:          req.Bank,
		AccountNumber: req.AccountNumber,
		SortCode:      req.SortCode,
	}
	if err := s.bank.AddPayee(r.Context(), sess.Token, payee); err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"status": "payee added"})
}

func (s *Server) handlePay(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)

	var req struct {
		FromAccount string `json:"fromAccount"`
		Payee       string `json:"payee"`
		Amount      string `json:"amount"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	// A blank amount is a missing form field, not a malformed number.
	if strings.TrimSpace(req.Amount) == "" {
		writeAppError(w, app.ErrMissingField)
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		writeAppError(w, app.ErrInvalidAmount)
		return
	}

	txn, err := s.bank.Pay(r.Context(), sess.Token, req.FromAccount, req.Payee, amount)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":      "payment successful",
		"transaction": txn,
	})
}
