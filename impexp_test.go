package pokerbank

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

// exportSession is the session used across export tests: Alex lost 15 to Bri,
// Casey watched.
func exportSession(t *testing.T) *Session {
	t.Helper()
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
	return s
}

func TestExportJSON(t *testing.T) {
	s := exportSession(t)
	createdAt := time.Date(2025, 11, 7, 23, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	if err := ExportJSON(&buf, s, createdAt); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	// The export is valid JSON with the expected top-level fields.
	var payload struct {
		GameName     string             `json:"game_name"`
		Currency     string             `json:"currency"`
		CreatedAt    string             `json:"created_at"`
		Players      []string           `json:"players"`
		Balances     map[string]float64 `json:"balances"`
		Transfers    []Transfer         `json:"transfers"`
		TotalBuyIn   float64            `json:"total_buyin"`
		TotalCashOut float64            `json:"total_cashout"`
	}
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}

	if payload.GameName != "Friday Game" || payload.Currency != "USD" {
		t.Errorf("unexpected settings in export: %q %q", payload.GameName, payload.Currency)
	}
	if payload.CreatedAt != "2025-11-07T23:00:00Z" {
		t.Errorf("created_at = %q", payload.CreatedAt)
	}
	if len(payload.Players) != 3 {
		t.Errorf("players = %v, want 3 names", payload.Players)
	}
	if payload.Balances["Alex"] != -15 || payload.Balances["Bri"] != 15 || payload.Balances["Casey"] != 0 {
		t.Errorf("balances = %v", payload.Balances)
	}
	want := []Transfer{{"Alex", "Bri", d("15")}}
	if !transfersEqual(payload.Transfers, want) {
		t.Errorf("transfers = %v, want %v", payload.Transfers, want)
	}
	if payload.TotalBuyIn != 30 || payload.TotalCashOut != 30 {
		t.Errorf("totals = %v / %v, want 30 / 30", payload.TotalBuyIn, payload.TotalCashOut)
	}
}

func TestExportJSON_EmptySettlement(t *testing.T) {
	s := NewSession("Quiet Night", "USD", d("10"))
	var buf bytes.Buffer
	if err := ExportJSON(&buf, s, time.Now()); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	if strings.Contains(buf.String(), `"transfers": null`) {
		t.Error("empty settlement exported as null, want []")
	}
}

func TestExportCSV(t *testing.T) {
	s := exportSession(t)

	testCases := []struct {
		name   string
		export func(*bytes.Buffer) error
		want   string
	}{
		{
			name:   "buyins",
			export: func(b *bytes.Buffer) error { return ExportBuyInsCSV(b, s) },
			want:   "Player,Total_Buyin\nAlex,20\nBri,10\n",
		},
		{
			name:   "cashouts",
			export: func(b *bytes.Buffer) error { return ExportCashOutsCSV(b, s) },
			want:   "Player,Cashout\nAlex,5\nBri,25\n",
		},
		{
			name:   "transfers",
			export: func(b *bytes.Buffer) error { return ExportTransfersCSV(b, s) },
			want:   "From,To,Amount\nAlex,Bri,15.00\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tc.export(&buf); err != nil {
				t.Fatalf("export: %v", err)
			}
			if got := buf.String(); got != tc.want {
				t.Errorf("got:\n%q\nwant:\n%q", got, tc.want)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	doc := `{
		"settings": {"game_name": "Friday Game", "currency": "USD"},
		"ledger": {"buyins": {"Alex": 20, "Bri": 10}}
	}`

	testCases := []struct {
		name string
		path string
		want any
	}{
		{"scalar", "$.settings.game_name", "Friday Game"},
		{"number", "$.ledger.buyins.Alex", float64(20)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Lookup(strings.NewReader(doc), tc.path)
			if err != nil {
				t.Fatalf("Lookup(%q): %v", tc.path, err)
			}
			if got != tc.want {
				t.Errorf("Lookup(%q) = %v (%T), want %v", tc.path, got, got, tc.want)
			}
		})
	}

	if _, err := Lookup(strings.NewReader("nope"), "$.a"); err == nil {
		t.Error("Lookup accepted malformed JSON")
	}
	if _, err := Lookup(strings.NewReader(doc), "$[bad"); err == nil {
		t.Error("Lookup accepted a malformed path")
	}
}
