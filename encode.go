package finance

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The store file is JSONL: one JSON object per line, discriminated by its
// "record" field. Account records come first in creation order, followed
// by the history entries in append order, so the file itself reads as a
// snapshot plus its audit trail.

// accountRec is a specialized struct for decoding account lines.
type accountRec struct {
	ID            ID              `json:"id"`
	Name          string          `json:"name"`
	DisplayName   string          `json:"displayName"`
	Category      Category        `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	PreviousNames []string        `json:"previousNames"`
	LastUpdated   time.Time       `json:"lastUpdated"`
	Notes         string          `json:"notes"`
}

func (r accountRec) account() *Account {
	c := r.Currency
	if c == "" {
		c = DefaultCurrency
	}
	return &Account{
		id:            r.ID,
		Name:          r.Name,
		DisplayName:   r.DisplayName,
		Category:      r.Category,
		Balance:       M(r.Amount, c),
		previousNames: r.PreviousNames,
		LastUpdated:   r.LastUpdated.UTC(),
		Notes:         r.Notes,
	}
}

func encodeAccount(w io.Writer, a *Account) error {
	var jw jsonObjectWriter
	jw.Append("record", "account")
	jw.Append("id", a.id)
	jw.Append("name", a.Name)
	jw.Optional("displayName", a.DisplayName)
	jw.Append("category", a.Category)
	jw.Append("amount", a.Balance.Decimal())
	jw.Optional("currency", a.Balance.Currency())
	if len(a.previousNames) > 0 {
		jw.Append("previousNames", a.previousNames)
	}
	jw.Append("lastUpdated", a.LastUpdated.UTC())
	jw.Optional("notes", a.Notes)
	return writeLine(w, &jw)
}

// historyRec is a specialized struct for decoding history lines. The
// "record" field holds the entry type.
type historyRec struct {
	Record       EntryType       `json:"record"`
	Time         time.Time       `json:"time"`
	Account      ID              `json:"account"`
	Name         string          `json:"name"`
	Category     Category        `json:"category"`
	Before       decimal.Decimal `json:"before"`
	After        decimal.Decimal `json:"after"`
	AsOf         time.Time       `json:"asOf"`
	Inputs       []ID            `json:"inputs"`
	Survivor     ID              `json:"survivor"`
	SurvivorName string          `json:"survivorName"`
	Absorbed     []string        `json:"absorbed"`
}

func (r historyRec) entry() HistoryEntry {
	return HistoryEntry{
		Type:          r.Record,
		Time:          r.Time.UTC(),
		AccountID:     r.Account,
		Name:          r.Name,
		Category:      r.Category,
		Before:        M(r.Before, DefaultCurrency),
		After:         M(r.After, DefaultCurrency),
		AsOf:          r.AsOf.UTC(),
		Inputs:        r.Inputs,
		SurvivorID:    r.Survivor,
		SurvivorName:  r.SurvivorName,
		AbsorbedNames: r.Absorbed,
	}
}

func encodeEntry(w io.Writer, e HistoryEntry) error {
	var jw jsonObjectWriter
	jw.Append("record", e.Type)
	jw.Append("time", e.Time.UTC())
	switch e.Type {
	case EntryCreated:
		jw.Append("account", e.AccountID)
		jw.Append("name", e.Name)
		jw.Append("category", e.Category)
		jw.Append("after", e.After.Decimal())
		jw.Append("asOf", e.AsOf.UTC())
	case EntryUpdated, EntryRejected:
		jw.Append("account", e.AccountID)
		jw.Append("name", e.Name)
		jw.Append("before", e.Before.Decimal())
		jw.Append("after", e.After.Decimal())
		jw.Append("asOf", e.AsOf.UTC())
	case EntryMerged:
		jw.Append("inputs", e.Inputs)
		jw.Append("survivor", e.SurvivorID)
		jw.Append("survivorName", e.SurvivorName)
		jw.Append("absorbed", e.AbsorbedNames)
	case EntryDeleted:
		jw.Append("account", e.AccountID)
		jw.Append("name", e.Name)
		jw.Append("category", e.Category)
		jw.Append("before", e.Before.Decimal())
	default:
		return fmt.Errorf("unknown history entry type: %q", e.Type)
	}
	return writeLine(w, &jw)
}

func writeLine(w io.Writer, jw *jsonObjectWriter) error {
	data, err := jw.MarshalJSON()
	if err != nil {
		return err
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

// EncodeStore persists a committed store snapshot to w in canonical JSONL
// form.
func EncodeStore(w io.Writer, s *Store) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return encodeState(w, s.st)
}

func encodeState(w io.Writer, st *state) error {
	for _, id := range st.order {
		if err := encodeAccount(w, st.accounts[id]); err != nil {
			return err
		}
	}
	for _, e := range st.history {
		if err := encodeEntry(w, e); err != nil {
			return err
		}
	}
	return nil
}

// DecodeStore reads a store from a stream of JSONL data, decoding each
// line into an account or history entry.
func DecodeStore(r io.Reader) (*Store, error) {
	st := newState()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Record string `json:"record"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify record in line %q: %w", string(lineBytes), err)
		}

		switch EntryType(identifier.Record) {
		case "account":
			var rec accountRec
			if err := json.Unmarshal(lineBytes, &rec); err != nil {
				return nil, fmt.Errorf("could not decode account line %q: %w", string(lineBytes), err)
			}
			if _, dup := st.accounts[rec.ID]; dup {
				return nil, fmt.Errorf("duplicate account id %q in store file", rec.ID)
			}
			a := rec.account()
			st.accounts[a.id] = a
			st.order = append(st.order, a.id)
		case EntryCreated, EntryUpdated, EntryMerged, EntryRejected, EntryDeleted:
			var rec historyRec
			if err := json.Unmarshal(lineBytes, &rec); err != nil {
				return nil, fmt.Errorf("could not decode history line %q: %w", string(lineBytes), err)
			}
			st.history = append(st.history, rec.entry())
		default:
			return nil, fmt.Errorf("unknown record type: %q", identifier.Record)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	s := NewStore()
	s.st = st
	return s, nil
}
