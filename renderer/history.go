package renderer

import (
	"bytes"
	"fmt"
	"strings"

	md "github.com/nao1215/markdown"

	finance "github.com/spospordo/Local-Server-Site-Pusher-sub004"
)

// HistoryMarkdown renders the audit history as a markdown table, oldest
// first.
func HistoryMarkdown(entries []finance.HistoryEntry) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("History")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
		},
		Header: []string{"Time", "Event", "Detail"},
		Rows:   [][]string{},
	}
	for _, e := range entries {
		table.Rows = append(table.Rows, []string{
			e.Time.Format("2006-01-02 15:04"),
			string(e.Type),
			entryDetail(e),
		})
	}
	doc.Table(table)

	return doc.String()
}

// entryDetail summarizes one history entry in a single cell.
func entryDetail(e finance.HistoryEntry) string {
	switch e.Type {
	case finance.EntryCreated:
		return fmt.Sprintf("%s (%s) opened at %s", e.Name, e.Category, e.After)
	case finance.EntryUpdated:
		return fmt.Sprintf("%s: %s to %s as of %s", e.Name, e.Before, e.After, e.AsOf.Format("2006-01-02"))
	case finance.EntryRejected:
		return fmt.Sprintf("%s: refused %s as of %s, kept %s", e.Name, e.After, e.AsOf.Format("2006-01-02"), e.Before)
	case finance.EntryMerged:
		ids := make([]string, 0, len(e.Inputs))
		for _, id := range e.Inputs {
			ids = append(ids, string(id))
		}
		return fmt.Sprintf("%s survives %s, absorbing %s",
			e.SurvivorName, strings.Join(ids, ", "), strings.Join(e.AbsorbedNames, ", "))
	case finance.EntryDeleted:
		return fmt.Sprintf("%s (%s) removed at %s", e.Name, e.Category, e.Before)
	default:
		return string(e.Type)
	}
}
