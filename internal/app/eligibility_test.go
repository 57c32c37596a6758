package app

import (
	"strings"
	"testing"
)

// fixedScores replays a fixed sequence, wrapping around at the end.
type fixedScores struct {
	scores []int
	next   int
}

func (f *fixedScores) Score() int {
	s := f.scores[f.next%len(f.scores)]
	f.next++
	return s
}

func TestClassify(t *testing.T) {
	tiers := []Tier{
		{Min: 700, Message: "A %d"},
		{Min: 600, Message: "B %d"},
	}

	tests := []struct {
		score int
		want  string
	}{
		{720, "A 720"},
		{700, "A 700"},
		{699, "B 699"},
		{650, "B 650"},
		{600, "B 600"},
		{599, "C 599"},
		{100, "C 100"},
	}

	for _, tt := range tests {
		if got := Classify(tt.score, tiers, "C %d"); got != tt.want {
			t.Errorf("Classify(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestEligibilityService_ApplyLoan(t *testing.T) {
	svc := NewEligibilityService(&fixedScores{scores: []int{720, 650, 500}})

	d := svc.ApplyLoan()
	if len(d.Messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(d.Messages))
	}
	if !strings.Contains(d.Messages[0], "720") || !strings.Contains(d.Messages[0], "Excellent") {
		t.Errorf("unexpected message for 720: %s", d.Messages[0])
	}
	if !strings.Contains(d.Messages[1], "Acceptable") {
		t.Errorf("unexpected message for 650: %s", d.Messages[1])
	}
	if !strings.Contains(d.Messages[2], "Not eligible") {
		t.Errorf("unexpected message for 500: %s", d.Messages[2])
	}
	if len(d.Options) != 3 {
		t.Errorf("expected 3 loan options, got %d", len(d.Options))
	}
	if len(d.Logs) != 3 || d.Logs[0] != "System check #1 passed" {
		t.Errorf("unexpected logs: %v", d.Logs)
	}
}

func TestEligibilityService_ApplyMortgage(t *testing.T) {
	svc := NewEligibilityService(&fixedScores{scores: []int{760, 700, 600}})

	d := svc.ApplyMortgage()
	if len(d.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(d.Results))
	}
	if !strings.Contains(d.Results[0], "best mortgage rates") {
		t.Errorf("unexpected result for 760: %s", d.Results[0])
	}
	if !strings.Contains(d.Results[1], "moderate rates") {
		t.Errorf("unexpected result for 700: %s", d.Results[1])
	}
	if !strings.Contains(d.Results[2], "Not eligible") {
		t.Errorf("unexpected result for 600: %s", d.Results[2])
	}
	if len(d.Types) != 3 {
		t.Errorf("expected 3 mortgage types, got %d", len(d.Types))
	}
}

func TestEligibilityService_ApplyCreditCard(t *testing.T) {
	svc := NewEligibilityService(&fixedScores{scores: []int{730, 620, 550}})

	d := svc.ApplyCreditCard()
	if len(d.Approvals) != 3 {
		t.Fatalf("expected 3 approvals, got %d", len(d.Approvals))
	}
	if !strings.Contains(d.Approvals[0], "Pre-approved") {
		t.Errorf("unexpected approval for 730: %s", d.Approvals[0])
	}
	if !strings.Contains(d.Approvals[1], "secured or student") {
		t.Errorf("unexpected approval for 620: %s", d.Approvals[1])
	}
	if !strings.Contains(d.Approvals[2], "denied") {
		t.Errorf("unexpected approval for 550: %s", d.Approvals[2])
	}
	if len(d.Diagnostics) != 3 {
		t.Errorf("expected 3 diagnostics, got %d", len(d.Diagnostics))
	}
}

func TestUniformScores_Range(t *testing.T) {
	src := NewUniformScores()
	for i := 0; i < 1000; i++ {
		s := src.Score()
		if s < 500 || s > 850 {
			t.Fatalf("score %d out of [500, 850]", s)
		}
	}
}
