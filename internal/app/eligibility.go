package app

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// Score range of the simulation and the number of draws per application.
const (
	scoreMin            = 500
	scoreMax            = 850
	drawsPerApplication = 3
)

// ScoreSource produces simulated credit scores. Injected so tests can
// supply fixed values.
type ScoreSource interface {
	Score() int
}

// NewUniformScores returns a ScoreSource drawing uniformly from
// [scoreMin, scoreMax].
func NewUniformScores() ScoreSource {
	return &uniformScores{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

type uniformScores struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (s *uniformScores) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return scoreMin + s.r.Intn(scoreMax-scoreMin+1)
}

// Tier pairs a minimum score with a message template taking the score.
type Tier struct {
	Min     int
	Message string
}

// Classify returns the message for the first tier the score meets or
// exceeds. Tiers must be sorted descending by Min; fallback applies when
// no tier matches.
func Classify(score int, tiers []Tier, fallback string) string {
	for _, t := range tiers {
		if score >= t.Min {
			return fmt.Sprintf(t.Message, score)
		}
	}
	return fmt.Sprintf(fallback, score)
}

var (
	loanTiers = []Tier{
		{Min: 700, Message: "Credit score %d: Excellent – You are eligible."},
		{Min: 600, Message: "Credit score %d: Acceptable – Further checks needed."},
	}
	loanFallback = "Credit score %d: Low – Not eligible."

	mortgageTiers = []Tier{
		{Min: 750, Message: "Credit score %d: Eligible for best mortgage rates."},
		{Min: 650, Message: "Credit score %d: Eligible with moderate rates."},
	}
	mortgageFallback = "Credit score %d: Not eligible for mortgage."

	creditCardTiers = []Tier{
		{Min: 720, Message: "Credit score %d: Pre-approved for all cards."},
		{Min: 600, Message: "Credit score %d: Consider secured or student cards."},
	}
	creditCardFallback = "Credit score %d: Credit card approval denied."
)

// LoanOption describes one loan product on offer.
type LoanOption struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// LoanDecision is the outcome of a loan application.
type LoanDecision struct {
	Options  []LoanOption `json:"options"`
	Messages []string     `json:"messages"`
	Logs     []string     `json:"logs"`
}

// MortgageDecision is the outcome of a mortgage application.
type MortgageDecision struct {
	Types   []string `json:"types"`
	Results []string `json:"results"`
	Logs    []string `json:"logs"`
}

// CreditCardDecision is the outcome of a credit card application.
type CreditCardDecision struct {
	Cards       []string `json:"cards"`
	Approvals   []string `json:"approvals"`
	Diagnostics []string `json:"diagnostics"`
}

// EligibilityService mocks financial-product approval by bucketing random
// scores into tiered messages. Display-only; no real scoring happens.
type EligibilityService struct {
	scores ScoreSource
}

// NewEligibilityService creates an EligibilityService using the given
// score source.
func NewEligibilityService(scores ScoreSource) *EligibilityService {
	return &EligibilityService{scores: scores}
}

// ApplyLoan simulates a loan application.
func (s *EligibilityService) ApplyLoan() LoanDecision {
	d := LoanDecision{
		Options: []LoanOption{
			{Type: "Student Loan", Description: "Flexible repayment options for students."},
			{Type: "Home Loan", Description: "Low interest for your dream home."},
			{Type: "Auto Loan", Description: "Finance your new or used car easily."},
		},
	}
	for i := 0; i < drawsPerApplication; i++ {
		d.Messages = append(d.Messages, Classify(s.scores.Score(), loanTiers, loanFallback))
		d.Logs = append(d.Logs, fmt.Sprintf("System check #%d passed", i+1))
	}
	return d
}

// ApplyMortgage simulates a mortgage application.
func (s *EligibilityService) ApplyMortgage() MortgageDecision {
	d := MortgageDecision{
		Types: []string{
			"Fixed Rate Mortgage",
			"Adjustable Rate Mortgage (ARM)",
			"Interest-Only Mortgage",
		},
	}
	for i := 0; i < drawsPerApplication; i++ {
		d.Results = append(d.Results, Classify(s.scores.Score(), mortgageTiers, mortgageFallback))
		d.Logs = append(d.Logs, fmt.Sprintf("Mortgage check %d: OK", i+1))
	}
	return d
}

// ApplyCreditCard simulates a credit card application.
func (s *EligibilityService) ApplyCreditCard() CreditCardDecision {
	d := CreditCardDecision{
		Cards: []string{
			"Standard Credit Card",
			"Rewards Credit Card",
			"Secured Credit Card",
		},
	}
	for i := 0; i < drawsPerApplication; i++ {
		d.Approvals = append(d.Approvals, Classify(s.scores.Score(), creditCardTiers, creditCardFallback))
		d.Diagnostics = append(d.Diagnostics, fmt.Sprintf("Card system diagnostic #%d: OK", i+1))
	}
	return d
}
