package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/spospordo/Local-Server-Site-Pusher-sub004/date"

	finance "github.com/spospordo/Local-Server-Site-Pusher-sub004"
)

// ParseMarkdown renders the outcome of parsing one statement: the
// candidates grouped by section, the computed net worth, and whatever
// lines the parser could not make sense of.
func ParseMarkdown(r *finance.ParseResult) string {
	w := &strings.Builder{}
	fmt.Fprintf(w, "# Parsed Statement\n\n")

	for _, cat := range finance.Categories() {
		group := r.Groups[cat]
		if len(group) == 0 {
			continue
		}
		fmt.Fprintf(w, "## %s\n\n", sectionTitle(cat))
		fmt.Fprintf(w, "| Line | Account | Balance |\n")
		fmt.Fprintf(w, "|---:|:---|---:|\n")
		for _, c := range group {
			fmt.Fprintf(w, "| %d | %s | %s |\n", c.Line, c.Name, c.Balance)
		}
		fmt.Fprintf(w, "\n")
	}

	fmt.Fprintf(w, "Net Worth: %s\n", r.NetWorth)

	diags := Header(func(w2 io.Writer) {
		fmt.Fprintf(w2, "\n## Diagnostics\n\n")
	})
	for _, d := range r.Diags {
		diags.PrintHeader(w)
		fmt.Fprintf(w, "- %s\n", d)
	}

	return w.String()
}

// ReconcileMarkdown renders a reconciliation report. Sections with
// nothing to say are omitted entirely.
func ReconcileMarkdown(report *finance.ReconcileReport, asOf date.Date) string {
	w := &strings.Builder{}
	fmt.Fprintf(w, "# Reconciliation as of %s\n\n", asOf)

	ConditionalBlock(w, func(w2 io.Writer) bool {
		fmt.Fprintf(w2, "## Updated\n\n")
		fmt.Fprintf(w2, "| Account | Before | After | Match |\n")
		fmt.Fprintf(w2, "|:---|---:|---:|:---|\n")
		for _, u := range report.Updated {
			fmt.Fprintf(w2, "| %s | %s | %s | %s |\n", u.Account.Name, u.Before, u.Account.Balance, u.Tier)
		}
		fmt.Fprintf(w2, "\n")
		return len(report.Updated) > 0
	})

	ConditionalBlock(w, func(w2 io.Writer) bool {
		fmt.Fprintf(w2, "## Created\n\n")
		for _, a := range report.Created {
			fmt.Fprintf(w2, "- %s (%s): %s\n", a.Name, a.Category, a.Balance)
		}
		fmt.Fprintf(w2, "\n")
		return len(report.Created) > 0
	})

	ConditionalBlock(w, func(w2 io.Writer) bool {
		fmt.Fprintf(w2, "## Rejected as stale\n\n")
		for _, r := range report.RejectedStale {
			fmt.Fprintf(w2, "- %s\n", r)
		}
		fmt.Fprintf(w2, "\n")
		return len(report.RejectedStale) > 0
	})

	ConditionalBlock(w, func(w2 io.Writer) bool {
		fmt.Fprintf(w2, "## Needs disambiguation\n\n")
		for _, m := range report.Ambiguous {
			fmt.Fprintf(w2, "- %s\n", m)
		}
		fmt.Fprintf(w2, "\n")
		return len(report.Ambiguous) > 0
	})

	fmt.Fprintf(w, "%d updated, %d created, %d rejected, %d ambiguous.\n",
		len(report.Updated), len(report.Created), len(report.RejectedStale), len(report.Ambiguous))

	return w.String()
}

// MergeMarkdown renders the outcome of a merge.
func MergeMarkdown(r *finance.MergeResult) string {
	w := &strings.Builder{}
	fmt.Fprintf(w, "# Merge\n\n")
	fmt.Fprintf(w, "Survivor: %s (%s), balance %s.\n", r.Survivor.Name, r.Survivor.ID(), r.Survivor.Balance)
	if len(r.AbsorbedNames) > 0 {
		fmt.Fprintf(w, "\nAbsorbed names, still matchable:\n\n")
		for _, name := range r.AbsorbedNames {
			fmt.Fprintf(w, "- %s\n", name)
		}
	}
	return w.String()
}

func sectionTitle(cat finance.Category) string {
	switch cat {
	case finance.Cash:
		return "Cash"
	case finance.Investment:
		return "Investments"
	case finance.RealEstate:
		return "Real Estate"
	case finance.Liability:
		return "Liabilities"
	default:
		return "Uncategorized"
	}
}
