// Package finance reconciles noisy financial-statement text into a durable
// set of account records.
//
// The pipeline is: ParseStatement turns raw text into candidates, Match
// finds the existing account a candidate refers to, and Store.Reconcile
// applies candidate balances under a time-ordering policy that never lets
// stale data overwrite newer data. Store.Merge consolidates
// operator-confirmed duplicates. Every store mutation leaves an entry in
// an append-only history.
package finance

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"slices"
	"strings"
	"time"
)

// ID is the opaque, stable identifier of an account. It is assigned at
// creation and never reused, even after the account is deleted.
type ID string

// NewID returns a fresh account ID.
func NewID() ID {
	var b [6]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err) // rand.Read does not fail on supported platforms
	}
	return ID(hex.EncodeToString(b[:]))
}

// Category classifies an account on the statement.
type Category string

const (
	Cash          Category = "cash"
	Investment    Category = "investment"
	RealEstate    Category = "real_estate"
	Liability     Category = "liability"
	Uncategorized Category = "uncategorized"
)

// ParseCategory parses a string into a Category.
func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case Cash:
		return Cash, nil
	case Investment:
		return Investment, nil
	case RealEstate:
		return RealEstate, nil
	case Liability:
		return Liability, nil
	case Uncategorized:
		return Uncategorized, nil
	default:
		return "", fmt.Errorf("unknown category: %q", s)
	}
}

// Categories lists all statement categories in display order.
func Categories() []Category {
	return []Category{Cash, Investment, RealEstate, Liability, Uncategorized}
}

// Account is one durable account record.
//
// Name is the matching-relevant identity, normally OCR-derived and
// occasionally operator-corrected. DisplayName is purely cosmetic and is
// never consulted by matching. PreviousNames records every name the
// account was ever known by; it only grows, and never contains the
// current name.
type Account struct {
	id            ID
	Name          string
	DisplayName   string
	Category      Category
	Balance       Money
	previousNames []string
	LastUpdated   time.Time // UTC instant of the freshest applied balance
	Notes         string
}

// NewAccount creates an account with a fresh ID.
func NewAccount(name string, category Category, balance Money, updated time.Time) *Account {
	return &Account{
		id:          NewID(),
		Name:        name,
		Category:    category,
		Balance:     balance,
		LastUpdated: updated.UTC(),
	}
}

// ID returns the stable identifier of the account.
func (a *Account) ID() ID { return a.id }

// PreviousNames returns a copy of the past names, oldest first.
func (a *Account) PreviousNames() []string { return slices.Clone(a.previousNames) }

// KnownAs reports whether name is the account's current name or one of its
// previous names, compared case-insensitively after trimming.
func (a *Account) KnownAs(name string) bool {
	name = strings.TrimSpace(name)
	if strings.EqualFold(a.Name, name) {
		return true
	}
	for _, prev := range a.previousNames {
		if strings.EqualFold(prev, name) {
			return true
		}
	}
	return false
}

// recordName appends name to previousNames, preserving first-occurrence
// order. The current name and duplicates are skipped to keep the
// invariant that previousNames never contains Name and never repeats.
func (a *Account) recordName(name string) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, a.Name) {
		return
	}
	for _, prev := range a.previousNames {
		if strings.EqualFold(prev, name) {
			return
		}
	}
	a.previousNames = append(a.previousNames, name)
}

// rename replaces the matching-relevant name, pushing the old name onto
// previousNames and dropping any previous occurrence of the new name so
// that previousNames never contains the current name.
func (a *Account) rename(name string) {
	a.previousNames = slices.DeleteFunc(a.previousNames, func(prev string) bool {
		return strings.EqualFold(prev, name)
	})
	old := a.Name
	a.Name = name
	a.recordName(old)
}

// clone returns a deep copy of the account.
func (a *Account) clone() *Account {
	c := *a
	c.previousNames = slices.Clone(a.previousNames)
	return &c
}
