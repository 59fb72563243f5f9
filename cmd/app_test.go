package cmd

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/pokerbank"
	"github.com/shopspring/decimal"
)

func TestSafeFilename(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Friday Game", "Friday_Game"},
		{"  padded  ", "padded"},
		{"café#night", "caf__night"},
		{"all-good_123", "all-good_123"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := safeFilename(tt.name); got != tt.want {
			t.Errorf("safeFilename(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

// useSaveDir points the global flags at a temp folder for the test's duration.
func useSaveDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	oldDir, oldGame := *saveDir, *gameFile
	*saveDir, *gameFile = dir, ""
	t.Cleanup(func() { *saveDir, *gameFile = oldDir, oldGame })
	return dir
}

func TestGamePath(t *testing.T) {
	dir := useSaveDir(t)

	if _, err := gamePath(); err == nil {
		t.Error("gamePath() with no saves should fail")
	}

	s := pokerbank.NewSession("Friday", "USD", decimal.NewFromInt(10))
	if err := pokerbank.SaveSession(filepath.Join(dir, "Friday.json"), s); err != nil {
		t.Fatal(err)
	}

	got, err := gamePath()
	if err != nil {
		t.Fatalf("gamePath() with a single save: %v", err)
	}
	if filepath.Base(got) != "Friday.json" {
		t.Errorf("gamePath() = %q, want Friday.json", got)
	}

	s2 := pokerbank.NewSession("Saturday", "USD", decimal.NewFromInt(10))
	if err := pokerbank.SaveSession(filepath.Join(dir, "Saturday.json"), s2); err != nil {
		t.Fatal(err)
	}

	if _, err := gamePath(); err == nil {
		t.Error("gamePath() with two saves and no -game should fail")
	}

	*gameFile = "Saturday"
	got, err = gamePath()
	if err != nil {
		t.Fatalf("gamePath() with -game: %v", err)
	}
	if filepath.Base(got) != "Saturday.json" {
		t.Errorf("gamePath() = %q, want Saturday.json", got)
	}
}

func TestSessionRoundTrip(t *testing.T) {
	useSaveDir(t)
	*gameFile = "Friday"

	s := pokerbank.NewSession("Friday", "EUR", decimal.NewFromInt(20))
	if err := s.AddPlayer("Alex"); err != nil {
		t.Fatal(err)
	}
	if err := s.RecordBuyIn("Alex", decimal.NewFromInt(20)); err != nil {
		t.Fatal(err)
	}
	if err := encodeSession(s); err != nil {
		t.Fatalf("encodeSession: %v", err)
	}

	got, err := decodeSession()
	if err != nil {
		t.Fatalf("decodeSession: %v", err)
	}
	if got.Name() != "Friday" || got.Currency() != "EUR" {
		t.Errorf("reloaded session = %q %q, want Friday EUR", got.Name(), got.Currency())
	}
	if !got.Ledger().BuyIn("Alex").Equal(decimal.NewFromInt(20)) {
		t.Errorf("reloaded buy-in = %s, want 20", got.Ledger().BuyIn("Alex"))
	}
}

func TestParseAmount(t *testing.T) {
	if _, err := parseAmount("12.50"); err != nil {
		t.Errorf("parseAmount(12.50): %v", err)
	}
	for _, bad := range []string{"", "abc", "1.2.3", "NaN"} {
		_, err := parseAmount(bad)
		if err == nil {
			t.Errorf("parseAmount(%q) should fail", bad)
			continue
		}
		if !strings.Contains(err.Error(), "invalid amount") {
			t.Errorf("parseAmount(%q) error = %q, want it to name the invalid amount", bad, err)
		}
	}
}
