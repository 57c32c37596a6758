package adapthttp

import "net/http"

func (s *Server) handleApplyLoan(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.eligibility.ApplyLoan())
}

func (s *Server) handleApplyMortgage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.eligibility.ApplyMortgage())
}

func (s *Server) handleApplyCreditCard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.eligibility.ApplyCreditCard())
}
