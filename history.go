package finance

import (
	"time"
)

// EntryType is a typed string identifying history entries.
type EntryType string

// Entry types recorded in the audit history.
const (
	EntryCreated  EntryType = "account_created"
	EntryUpdated  EntryType = "balance_updated"
	EntryMerged   EntryType = "accounts_merged"
	EntryRejected EntryType = "balance_rejected_stale"
	EntryDeleted  EntryType = "account_deleted"
)

// HistoryEntry is one immutable record of an account-affecting operation.
//
// History is strictly append-only: entries are never edited or deleted
// once written, and together they form the full causal trail of every
// store mutation. Only the fields relevant to the entry type are set.
type HistoryEntry struct {
	Type EntryType
	Time time.Time // UTC instant the operation was recorded

	// Account-scoped fields (created, updated, rejected, deleted).
	AccountID ID
	Name      string
	Category  Category

	// Balance transition (updated, rejected). For a rejection, After holds
	// the refused candidate balance and the account keeps Before.
	Before Money
	After  Money

	// AsOf is the UTC-midnight instant the candidate balance was valid.
	AsOf time.Time

	// Merge fields.
	Inputs        []ID
	SurvivorID    ID
	SurvivorName  string
	AbsorbedNames []string
}

func newCreatedEntry(a *Account, now time.Time) HistoryEntry {
	return HistoryEntry{
		Type:      EntryCreated,
		Time:      now.UTC(),
		AccountID: a.id,
		Name:      a.Name,
		Category:  a.Category,
		After:     a.Balance,
		AsOf:      a.LastUpdated,
	}
}

func newUpdatedEntry(a *Account, before Money, asOf, now time.Time) HistoryEntry {
	return HistoryEntry{
		Type:      EntryUpdated,
		Time:      now.UTC(),
		AccountID: a.id,
		Name:      a.Name,
		Before:    before,
		After:     a.Balance,
		AsOf:      asOf.UTC(),
	}
}

func newRejectedEntry(a *Account, refused Money, asOf, now time.Time) HistoryEntry {
	return HistoryEntry{
		Type:      EntryRejected,
		Time:      now.UTC(),
		AccountID: a.id,
		Name:      a.Name,
		Before:    a.Balance,
		After:     refused,
		AsOf:      asOf.UTC(),
	}
}

func newMergedEntry(inputs []ID, survivor *Account, absorbed []string, now time.Time) HistoryEntry {
	return HistoryEntry{
		Type:          EntryMerged,
		Time:          now.UTC(),
		Inputs:        inputs,
		SurvivorID:    survivor.id,
		SurvivorName:  survivor.Name,
		AbsorbedNames: absorbed,
	}
}

func newDeletedEntry(a *Account, now time.Time) HistoryEntry {
	return HistoryEntry{
		Type:      EntryDeleted,
		Time:      now.UTC(),
		AccountID: a.id,
		Name:      a.Name,
		Category:  a.Category,
		Before:    a.Balance,
	}
}
