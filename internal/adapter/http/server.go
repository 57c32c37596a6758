// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"net/http"
	"time"

	"bankdemo/internal/app"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	auth        *app.AuthService
	bank        *app.BankService
	eligibility *app.EligibilityService

	cookieMaxAge int
	corsOrigins  []string
}

// New creates a Server wired to the given application services. The
// session cookie expires together with the server-side session.
func New(auth *app.AuthService, bank *app.BankService, eligibility *app.EligibilityService, sessionTTL time.Duration, corsOrigins []string) *Server {
	return &Server{
		auth:         auth,
		bank:         bank,
		eligibility:  eligibility,
		cookieMaxAge: int(sessionTTL.Seconds()),
		corsOrigins:  corsOrigins,
	}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	if len(s.corsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.corsOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost},
			AllowedHeaders:   []string{"Content-Type"},
			AllowCredentials: true,
		}))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/login", s.handleLogin)
		r.Post("/auth/logout", s.handleLogout)
		r.Post("/auth/forgot-password", s.handleForgotPassword)

		r.Group(func(r chi.Router) {
			r.Use(s.authMiddleware)

			r.Get("/accounts", s.handleAccounts)
			r.Get("/summary", s.handleSummary)
			r.Get("/payees", s.handlePayees)
			r.Post("/payees", s.handleAddPayee)
			r.Post("/payments", s.handlePay)

			r.Get("/apply/loan", s.handleApplyLoan)
			r.Get("/apply/mortgage", s.handleApplyMortgage)
			r.Get("/apply/credit-card", s.handleApplyCreditCard)
		})
	})

	return r
}
