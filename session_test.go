package pokerbank

import (
	"slices"
	"strings"
	"testing"
)

func TestNormalizeName(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"  Alex  ", "Alex"},
		{"Alex", "Alex"},
		{"\tBri\n", "Bri"},
		{"   ", ""},
	}
	for _, tc := range testCases {
		if got := NormalizeName(tc.in); got != tc.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSession_AddPlayer(t *testing.T) {
	s := NewSession("Friday Game", "USD", d("10"))

	if err := s.AddPlayer("  Alex "); err != nil {
		t.Fatalf("AddPlayer: %v", err)
	}
	if err := s.AddPlayer("Bri"); err != nil {
		t.Fatalf("AddPlayer: %v", err)
	}

	// Names are normalized before the duplicate check.
	if err := s.AddPlayer("Alex  "); err == nil {
		t.Error("AddPlayer accepted a duplicate name")
	}
	if err := s.AddPlayer("   "); err == nil {
		t.Error("AddPlayer accepted a blank name")
	}

	want := []string{"Alex", "Bri"}
	if got := s.Roster(); !slices.Equal(got, want) {
		t.Errorf("Roster() = %v, want %v", got, want)
	}
}

func TestSession_RosterKeepsInsertionOrder(t *testing.T) {
	s := NewSession("", "", d("0"))
	for _, name := range []string{"Zoe", "Alex", "Mia"} {
		if err := s.AddPlayer(name); err != nil {
			t.Fatalf("AddPlayer(%q): %v", name, err)
		}
	}
	want := []string{"Zoe", "Alex", "Mia"}
	if got := s.Roster(); !slices.Equal(got, want) {
		t.Errorf("Roster() = %v, want %v", got, want)
	}
}

func TestSession_EntryValidation(t *testing.T) {
	s := NewSession("", "USD", d("10"))
	if err := s.AddPlayer("Alex"); err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		name    string
		op      func() error
		wantErr string
	}{
		{"buy-in unknown player", func() error { return s.RecordBuyIn("Ghost", d("10")) }, "unknown player"},
		{"buy-in negative amount", func() error { return s.RecordBuyIn("Alex", d("-5")) }, "must not be negative"},
		{"cash-out unknown player", func() error { return s.AddCashOut("Ghost", d("10")) }, "unknown player"},
		{"set cash-out negative", func() error { return s.SetCashOut("Alex", d("-1")) }, "must not be negative"},
		{"valid buy-in", func() error { return s.RecordBuyIn("Alex", d("10")) }, ""},
		{"valid zero cash-out", func() error { return s.SetCashOut("Alex", d("0")) }, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.op()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("got error %v, want it to contain %q", err, tc.wantErr)
			}
		})
	}

	// Rejected entries must leave the ledger untouched.
	if got := s.Ledger().BuyIn("Ghost"); !got.IsZero() {
		t.Errorf("rejected buy-in reached the ledger: %s", got)
	}
}

func TestSession_SettlementScenario(t *testing.T) {
	s := NewSession("Friday Game", "USD", d("10"))
	for _, name := range []string{"Alex", "Bri", "Casey"} {
		if err := s.AddPlayer(name); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.RecordBuyIn("Alex", d("20")); err != nil {
		t.Fatal(err)
	}
	if err := s.RecordBuyIn("Bri", d("10")); err != nil {
		t.Fatal(err)
	}
	if err := s.AddCashOut("Alex", d("5")); err != nil {
		t.Fatal(err)
	}
	if err := s.AddCashOut("Bri", d("25")); err != nil {
		t.Fatal(err)
	}

	if !s.Balanced() {
		t.Errorf("Balanced() = false, want true (unmatched=%s)", s.Ledger().Unmatched())
	}

	want := []Transfer{{"Alex", "Bri", d("15")}}
	if got := s.Settlement(); !transfersEqual(got, want) {
		t.Errorf("Settlement() = %v, want %v", got, want)
	}
}

func TestSession_SetActive(t *testing.T) {
	s := NewSession("", "", d("0"))
	if err := s.AddPlayer("Alex"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetActive("Alex", false); err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	for p := range s.Players() {
		if p.Name == "Alex" && p.Active {
			t.Error("Alex still active after SetActive(false)")
		}
	}
	if err := s.SetActive("Ghost", false); err == nil {
		t.Error("SetActive accepted an unknown player")
	}
}

func TestSession_Rename(t *testing.T) {
	s := NewSession("Friday", "USD", d("10"))
	s.Rename("Friday, round two")
	if got := s.Name(); got != "Friday, round two" {
		t.Errorf("Name() = %q after Rename", got)
	}
}

func TestSession_DefaultCurrency(t *testing.T) {
	s := NewSession("", "", d("0"))
	if got := s.Currency(); got != DefaultCurrency {
		t.Errorf("Currency() = %q, want %q", got, DefaultCurrency)
	}
}
