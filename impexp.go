package finance

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// This file handles the import of candidates from the JSON exports of
// banks and aggregators. Every provider shapes its export differently, so
// instead of one decoder per provider the caller describes where the
// fields live with JSONPath expressions.

// ImportSpec locates account fields inside a provider's JSON export.
type ImportSpec struct {
	// Names selects the account names, e.g. "$.accounts[*].name".
	Names string
	// Balances selects the balances in the same order, e.g.
	// "$.accounts[*].balance". Values may be JSON numbers or
	// currency-formatted strings.
	Balances string
	// Category assigns all imported candidates to this category.
	Category Category
}

// ImportCandidates reads a JSON export from r and extracts account
// candidates according to spec. Entries with an unusable balance are
// imported with balance 0 and recorded as diagnostics, mirroring the
// statement parser's partial-success model.
func ImportCandidates(r io.Reader, spec ImportSpec) ([]Candidate, []Diag, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, nil, fmt.Errorf("cannot parse JSON export: %w", err)
	}

	names, err := selectList(jobj, spec.Names)
	if err != nil {
		return nil, nil, fmt.Errorf("selecting names: %w", err)
	}
	balances, err := selectList(jobj, spec.Balances)
	if err != nil {
		return nil, nil, fmt.Errorf("selecting balances: %w", err)
	}
	if len(names) != len(balances) {
		return nil, nil, fmt.Errorf("export yields %d names but %d balances", len(names), len(balances))
	}

	category := spec.Category
	if category == "" {
		category = Uncategorized
	}

	var candidates []Candidate
	var diags []Diag
	for i, jname := range names {
		name, ok := jname.(string)
		if !ok || name == "" {
			diags = append(diags, Diag{Line: i + 1, Text: fmt.Sprint(jname), Reason: "entry has no usable name"})
			continue
		}
		value, diag := importValue(balances[i])
		if diag != "" {
			diags = append(diags, Diag{Line: i + 1, Text: name, Reason: diag})
		}
		candidates = append(candidates, Candidate{
			Name:     name,
			Balance:  M(value, DefaultCurrency),
			Category: category,
			Line:     i + 1,
		})
	}
	return candidates, diags, nil
}

// selectList evaluates a JSONPath expression and always returns a list.
// jsonpath is never clear about whether it returns a list or a single
// answer, so a scalar result is wrapped.
func selectList(jobj any, path string) ([]any, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	if jlist, ok := jval.([]any); ok {
		return jlist, nil
	}
	return []any{jval}, nil
}

// importValue converts a balance of whatever JSON type the provider chose
// into a decimal value.
func importValue(jval any) (decimal.Decimal, string) {
	switch v := jval.(type) {
	case float64:
		return decimal.NewFromFloat(v), ""
	case string:
		return parseAmount(v)
	case json.Number:
		value, err := decimal.NewFromString(v.String())
		if err != nil {
			return decimal.Zero, fmt.Sprintf("unparseable balance %q", v)
		}
		return value, ""
	default:
		return decimal.Zero, fmt.Sprintf("balance has unexpected type %T", jval)
	}
}
