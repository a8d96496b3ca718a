package finance

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseStatement_excludesSectionRollup(t *testing.T) {
	text := "Cash  $10,000\n\nMy Personal Cash Account    $1,000\nIndividual"

	res := ParseStatement(text)

	if len(res.Candidates) != 1 {
		t.Fatalf("got %d candidates, want 1: %+v", len(res.Candidates), res.Candidates)
	}
	c := res.Candidates[0]
	if c.Name != "My Personal Cash Account" {
		t.Errorf("candidate name = %q, want %q", c.Name, "My Personal Cash Account")
	}
	if !c.Balance.Equal(USD(1000)) {
		t.Errorf("candidate balance = %s, want %s", c.Balance, USD(1000))
	}
	if c.Category != Cash {
		t.Errorf("candidate category = %q, want %q", c.Category, Cash)
	}
	if len(res.Diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", res.Diags)
	}
	if got := res.Groups[Cash]; len(got) != 1 {
		t.Errorf("cash group has %d candidates, want 1", len(got))
	}
}

func TestParseStatement_rollupOnOwnLine(t *testing.T) {
	text := "Investments\n$25,000\nBrokerage Account  $25,000\nIndividual"

	res := ParseStatement(text)

	if len(res.Candidates) != 1 || res.Candidates[0].Name != "Brokerage Account" {
		t.Fatalf("got candidates %+v, want only the brokerage account", res.Candidates)
	}
	if res.Candidates[0].Category != Investment {
		t.Errorf("category = %q, want %q", res.Candidates[0].Category, Investment)
	}
}

func TestParseStatement_sections(t *testing.T) {
	text := `Cash $3,000
Checking Account — $1,000
Chase Bank
2 days ago
Savings Account — $2,000

Real estate $350,000
Home  $350,000

Liabilities $90,000
Mortgage  $90,000
`
	res := ParseStatement(text)

	want := []struct {
		name     string
		balance  float64
		category Category
	}{
		{"Checking Account", 1000, Cash},
		{"Savings Account", 2000, Cash},
		{"Home", 350000, RealEstate},
		{"Mortgage", 90000, Liability},
	}
	if len(res.Candidates) != len(want) {
		t.Fatalf("got %d candidates, want %d: %+v", len(res.Candidates), len(want), res.Candidates)
	}
	for i, w := range want {
		c := res.Candidates[i]
		if c.Name != w.name || !c.Balance.Equal(USD(w.balance)) || c.Category != w.category {
			t.Errorf("candidate[%d] = {%q %s %s}, want {%q %v %s}", i, c.Name, c.Balance, c.Category, w.name, w.balance, w.category)
		}
	}
	// 1000 + 2000 + 350000 - 90000
	if wantNet := USD(263000); !res.NetWorth.Equal(wantNet) {
		t.Errorf("net worth = %s, want %s", res.NetWorth, wantNet)
	}
	if len(res.Diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", res.Diags)
	}
}

func TestParseStatement_noHeader(t *testing.T) {
	res := ParseStatement("Some Account  $500")

	if len(res.Candidates) != 1 {
		t.Fatalf("got %d candidates, want 1", len(res.Candidates))
	}
	if got := res.Candidates[0].Category; got != Uncategorized {
		t.Errorf("category = %q, want %q", got, Uncategorized)
	}
	if len(res.Diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %v", len(res.Diags), res.Diags)
	}
}

func TestParseStatement_suspiciousZero(t *testing.T) {
	res := ParseStatement("Cash\nBroken Account  $000")

	if len(res.Candidates) != 1 {
		t.Fatalf("got %d candidates, want 1", len(res.Candidates))
	}
	if !res.Candidates[0].Balance.IsZero() {
		t.Errorf("balance = %s, want 0", res.Candidates[0].Balance)
	}
	if len(res.Diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %v", len(res.Diags), res.Diags)
	}
}

func TestParseStatement_malformedLinesNeverAbort(t *testing.T) {
	text := "Cash\nGood Account  $100\n\n????????\nAnother Good Account  $200"

	res := ParseStatement(text)

	if len(res.Candidates) != 2 {
		t.Fatalf("got %d candidates, want 2: %+v", len(res.Candidates), res.Candidates)
	}
	if len(res.Diags) != 0 {
		// "????????" directly follows a candidate, so it reads as metadata.
		t.Errorf("unexpected diagnostics: %v", res.Diags)
	}

	res = ParseStatement("????????\nCash\nGood Account  $100")
	if len(res.Diags) != 1 {
		t.Errorf("got %d diagnostics, want 1 for a leading garbage line: %v", len(res.Diags), res.Diags)
	}
	if len(res.Candidates) != 1 {
		t.Errorf("got %d candidates, want 1", len(res.Candidates))
	}
}

func TestParseStatement_empty(t *testing.T) {
	res := ParseStatement("")
	if len(res.Candidates) != 0 || len(res.Diags) != 0 {
		t.Errorf("empty text should parse to nothing, got %+v", res)
	}
	if !res.NetWorth.IsZero() {
		t.Errorf("net worth = %s, want 0", res.NetWorth)
	}
}

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		in       string
		want     string
		wantDiag bool
	}{
		{in: "$1,000", want: "1000"},
		{in: "10,000", want: "10000"},
		{in: "$1,234.56", want: "1234.56"},
		{in: "0", want: "0"},
		{in: "$000", want: "0", wantDiag: true},
		{in: "000", want: "0", wantDiag: true},
		{in: "", want: "0", wantDiag: true},
		{in: "1,2,3", want: "123"},
	}
	for _, tc := range testCases {
		got, diag := parseAmount(tc.in)
		if want, _ := decimal.NewFromString(tc.want); !got.Equal(want) {
			t.Errorf("parseAmount(%q) = %s, want %s", tc.in, got, want)
		}
		if (diag != "") != tc.wantDiag {
			t.Errorf("parseAmount(%q) diag = %q, wantDiag %v", tc.in, diag, tc.wantDiag)
		}
	}
}

func TestMatchHeader(t *testing.T) {
	testCases := []struct {
		line     string
		want     Category
		isHeader bool
	}{
		{line: "Cash", want: Cash, isHeader: true},
		{line: "CASH  $10,000", want: Cash, isHeader: true},
		{line: "Investments", want: Investment, isHeader: true},
		{line: "Real estate $350,000", want: RealEstate, isHeader: true},
		{line: "Liabilities", want: Liability, isHeader: true},
		{line: "Cash Reserve Account  $500", isHeader: false},
		{line: "My Personal Cash Account  $1,000", isHeader: false},
	}
	for _, tc := range testCases {
		got, _, ok := matchHeader(tc.line)
		if ok != tc.isHeader {
			t.Errorf("matchHeader(%q) ok = %v, want %v", tc.line, ok, tc.isHeader)
			continue
		}
		if ok && got != tc.want {
			t.Errorf("matchHeader(%q) = %q, want %q", tc.line, got, tc.want)
		}
	}
}
