// Package renderer formats reconciliation results as markdown reports.
// It is a pure presentation layer: it reads the structs the finance
// package produces and never mutates the store.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	finance "github.com/spospordo/Local-Server-Site-Pusher-sub004"
)

// AccountsMarkdown renders the account collection as a markdown table,
// with per-category subtotals and the net worth.
func AccountsMarkdown(accounts []*finance.Account, netWorth finance.Money) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Accounts")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"ID", "Name", "Category", "Balance", "Updated"},
		Rows:   [][]string{},
	}
	for _, a := range accounts {
		table.Rows = append(table.Rows, []string{
			string(a.ID()),
			displayName(a),
			string(a.Category),
			a.Balance.String(),
			a.LastUpdated.Format("2006-01-02"),
		})
	}
	doc.Table(table)

	doc.PlainText(fmt.Sprintf("Net Worth: %s", netWorth.String()))

	return doc.String()
}

// displayName prefers the cosmetic display name for presentation. The
// matching-relevant name stays visible in parentheses so the operator can
// still recognize what statements will match.
func displayName(a *finance.Account) string {
	if a.DisplayName == "" {
		return a.Name
	}
	return fmt.Sprintf("%s (%s)", a.DisplayName, a.Name)
}
