package finance

import (
	"bufio"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// This file turns the raw text block produced by the image-to-text step
// into structured account candidates. Parsing is a pure function from
// text to (candidates, diagnostics, net worth, groupings): it never
// touches the store and never fails on malformed input.

var (
	// Trailing currency amount, e.g. "$1,000", "10,000.50", "$000".
	amountPattern = regexp.MustCompile(`\$?\s*\d[\d,]*(?:\.\d+)?\s*$`)
	// Relative-age metadata, e.g. "2 days ago", "yesterday".
	agePattern = regexp.MustCompile(`(?i)^(?:\d+\s+(?:second|minute|hour|day|week|month|year)s?\s+ago|today|yesterday)$`)
	// Separator left between a name and its amount, e.g. "Name — $100".
	separatorTrim = regexp.MustCompile(`[\s—–-]+$`)
	// A run of zeros, the scanner misreading a real balance.
	zerosPattern = regexp.MustCompile(`^0{2,}$`)
)

// subTypes are account sub-type metadata lines that may follow a
// candidate on the statement.
var subTypes = map[string]bool{
	"individual":      true,
	"joint":           true,
	"roth ira":        true,
	"traditional ira": true,
	"employer plan":   true,
	"brokerage":       true,
	"checking":        true,
	"savings":         true,
}

// sectionHeaders maps the statement section names to categories.
var sectionHeaders = map[string]Category{
	"cash":        Cash,
	"investment":  Investment,
	"investments": Investment,
	"real estate": RealEstate,
	"liability":   Liability,
	"liabilities": Liability,
}

// Candidate is a transient parsed account record awaiting matching. It is
// never persisted.
type Candidate struct {
	Name     string
	Balance  Money
	Category Category
	Line     int // 1-based source line, for diagnostics
}

// Diag is a per-line, non-fatal parse diagnostic. Diagnostics are data,
// not errors: malformed lines are skipped and recorded, never abort the
// parse.
type Diag struct {
	Line   int
	Text   string
	Reason string
}

func (d Diag) String() string {
	return fmt.Sprintf("line %d: %s (%q)", d.Line, d.Reason, d.Text)
}

// ParseResult is the complete outcome of parsing one statement text.
type ParseResult struct {
	Candidates []Candidate
	Diags      []Diag
	NetWorth   Money
	Groups     map[Category][]Candidate
}

// ParseStatement parses a raw statement text block into account
// candidates grouped by inferred category.
//
// The text is organized as repeated blocks: a section header line (Cash /
// Investments / Real estate / Liabilities, case-insensitive, possibly
// carrying the section's own rollup amount), followed by "name  amount"
// lines and optional metadata lines (institution, relative age,
// sub-type). The rollup amount attached to a header is a subtotal, not an
// account, and is excluded from the candidates.
func ParseStatement(text string) ParseResult {
	res := ParseResult{
		NetWorth: M(0, DefaultCurrency),
		Groups:   make(map[Category][]Candidate),
	}

	current := Uncategorized
	sawHeader := false
	afterHeader := false    // the next bare amount line is the section rollup
	afterCandidate := false // a non-amount line here is candidate metadata

	scanner := bufio.NewScanner(strings.NewReader(text))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if cat, rest, ok := matchHeader(line); ok {
			current = cat
			sawHeader = true
			// A rollup on the header line itself is already consumed with
			// the header; only an amount-less header still expects one.
			afterHeader = rest == ""
			afterCandidate = false
			continue
		}

		name, amount, hasAmount := splitAmount(line)
		if !hasAmount {
			if agePattern.MatchString(line) || subTypes[strings.ToLower(line)] {
				continue // recognized candidate metadata
			}
			if afterCandidate {
				continue // institution or other free-form metadata
			}
			res.Diags = append(res.Diags, Diag{Line: lineNo, Text: line, Reason: "unrecognized line"})
			continue
		}

		if name == "" {
			if afterHeader {
				// The section's aggregate total: a subtotal, not an account.
				afterHeader = false
				continue
			}
			res.Diags = append(res.Diags, Diag{Line: lineNo, Text: line, Reason: "amount without account name"})
			continue
		}
		afterHeader = false
		afterCandidate = true

		value, diag := parseAmount(amount)
		if diag != "" {
			res.Diags = append(res.Diags, Diag{Line: lineNo, Text: line, Reason: diag})
		}
		if !sawHeader {
			res.Diags = append(res.Diags, Diag{Line: lineNo, Text: line, Reason: "no section header precedes this account"})
		}

		c := Candidate{
			Name:     name,
			Balance:  M(value, DefaultCurrency),
			Category: current,
			Line:     lineNo,
		}
		res.Candidates = append(res.Candidates, c)
		res.Groups[c.Category] = append(res.Groups[c.Category], c)
		if c.Category == Liability {
			res.NetWorth = res.NetWorth.Sub(c.Balance)
		} else {
			res.NetWorth = res.NetWorth.Add(c.Balance)
		}
	}
	// scanner.Err is nil for a strings.Reader; parsing never fails.

	return res
}

// matchHeader reports whether the line is a section header, returning its
// category and whatever trailed the section name (typically the rollup
// amount).
func matchHeader(line string) (Category, string, bool) {
	lower := strings.ToLower(line)
	for name, cat := range sectionHeaders {
		if !strings.HasPrefix(lower, name) {
			continue
		}
		rest := strings.TrimSpace(line[len(name):])
		// "Cash" or "Cash  $10,000" are headers; "Cash Reserve Account" is not.
		if rest == "" || amountPattern.MatchString(rest) && strings.TrimSpace(amountPattern.ReplaceAllString(rest, "")) == "" {
			return cat, rest, true
		}
	}
	return "", "", false
}

// splitAmount splits a line into the account name and its trailing amount
// string. hasAmount is false when the line carries no amount at all.
func splitAmount(line string) (name, amount string, hasAmount bool) {
	loc := amountPattern.FindStringIndex(line)
	if loc == nil {
		return line, "", false
	}
	amount = strings.TrimSpace(line[loc[0]:loc[1]])
	name = separatorTrim.ReplaceAllString(strings.TrimSpace(line[:loc[0]]), "")
	return name, amount, true
}

// parseAmount converts a currency-formatted string to its numeric value,
// stripping the "$" symbol and thousands separators. A bare run of zeros
// like "000" (a common recognition artifact) or an unparseable numeral
// yields 0 with a non-empty diagnostic reason.
func parseAmount(s string) (decimal.Decimal, string) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")

	if cleaned == "" {
		return decimal.Zero, "empty amount"
	}
	if zerosPattern.MatchString(cleaned) {
		return decimal.Zero, fmt.Sprintf("suspicious zero amount %q", s)
	}
	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Sprintf("unparseable amount %q", s)
	}
	return value, ""
}
