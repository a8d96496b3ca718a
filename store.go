package finance

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"
)

// Store is the durable account collection together with its audit
// history.
//
// The store is a single logical resource with one conceptual writer at a
// time: every mutating operation runs under the write lock and commits by
// staging the next state, durably persisting it, and only then swapping
// it in. A mutation is never reported as succeeded before it is
// committed, and a failed persist leaves the previous state untouched.
// Reads observe fully-committed snapshots only.
type Store struct {
	mu sync.RWMutex
	st *state

	// path is the backing JSONL file. Empty for a purely in-memory store,
	// in which case commits are memory swaps (used by tests and dry runs).
	path string

	now func() time.Time
}

// state is the committed content of a store. Mutations never modify a
// committed state in place; they clone, change the clone, and commit.
type state struct {
	accounts map[ID]*Account
	order    []ID // creation order, for stable enumeration
	history  []HistoryEntry
}

func newState() *state {
	return &state{accounts: make(map[ID]*Account)}
}

func (st *state) clone() *state {
	c := &state{
		accounts: make(map[ID]*Account, len(st.accounts)),
		order:    slices.Clone(st.order),
		// History is append-only, sharing the committed prefix is safe.
		history: st.history[:len(st.history):len(st.history)],
	}
	for id, a := range st.accounts {
		c.accounts[id] = a.clone()
	}
	return c
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{st: newState(), now: time.Now}
}

// Bind attaches the store to a backing file. Every subsequent mutation is
// persisted there before it is reported as succeeded.
func (s *Store) Bind(path string) { s.path = path }

// Path returns the backing file path, or "" for an in-memory store.
func (s *Store) Path() string { return s.path }

// Len returns the number of accounts.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.st.accounts)
}

// Accounts returns a snapshot of all accounts in creation order. The
// returned accounts are copies; mutating them does not affect the store.
func (s *Store) Accounts() []*Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Account, 0, len(s.st.order))
	for _, id := range s.st.order {
		out = append(out, s.st.accounts[id].clone())
	}
	return out
}

// Get returns a copy of the account with the given id.
func (s *Store) Get(id ID) (*Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.st.accounts[id]
	if !ok {
		return nil, false
	}
	return a.clone(), true
}

// History returns a snapshot of the audit history, oldest first.
func (s *Store) History() []HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.st.history)
}

// NetWorth returns the sum of all account balances, with liabilities
// subtracting.
func (s *Store) NetWorth() Money {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := M(0, DefaultCurrency)
	for _, id := range s.st.order {
		a := s.st.accounts[id]
		if a.Category == Liability {
			total = total.Sub(a.Balance)
		} else {
			total = total.Add(a.Balance)
		}
	}
	return total
}

// commit durably persists the staged state and swaps it in. The write
// lock must be held. On error the committed state is unchanged.
func (s *Store) commit(st *state) error {
	if s.path != "" {
		if err := saveState(s.path, st); err != nil {
			return fmt.Errorf("could not commit store to %q: %w", s.path, err)
		}
	}
	s.st = st
	return nil
}

// Add creates a new account under operator control and records an
// account_created history entry.
func (s *Store) Add(name string, category Category, balance Money, asOf time.Time) (*Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Reason: "account name is missing"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.st.clone()
	a := NewAccount(name, category, balance, asOf)
	st.accounts[a.id] = a
	st.order = append(st.order, a.id)
	st.history = append(st.history, newCreatedEntry(a, s.now()))
	if err := s.commit(st); err != nil {
		return nil, err
	}
	return a.clone(), nil
}

// Delete removes an account under explicit operator control and records
// an account_deleted history entry.
func (s *Store) Delete(id ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.st.accounts[id]
	if !ok {
		return &ValidationError{Reason: fmt.Sprintf("account %q not found", id)}
	}

	st := s.st.clone()
	delete(st.accounts, id)
	st.order = slices.DeleteFunc(st.order, func(x ID) bool { return x == id })
	st.history = append(st.history, newDeletedEntry(a, s.now()))
	return s.commit(st)
}

// Rename changes an account's matching-relevant name under operator
// control. The old name joins previousNames so future statements using it
// still match.
func (s *Store) Rename(id ID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &ValidationError{Reason: "new account name is missing"}
	}
	return s.updateAccount(id, func(a *Account) { a.rename(name) })
}

// SetDisplayName sets the cosmetic display name. It has no effect on
// matching.
func (s *Store) SetDisplayName(id ID, displayName string) error {
	return s.updateAccount(id, func(a *Account) { a.DisplayName = displayName })
}

// SetNotes replaces the free-text notes of an account.
func (s *Store) SetNotes(id ID, notes string) error {
	return s.updateAccount(id, func(a *Account) { a.Notes = notes })
}

// SetCategory reassigns an account to another statement category.
func (s *Store) SetCategory(id ID, category Category) error {
	return s.updateAccount(id, func(a *Account) { a.Category = category })
}

// updateAccount applies fn to the account with the given id inside a
// staged commit.
func (s *Store) updateAccount(id ID, fn func(*Account)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.st.accounts[id]; !ok {
		return &ValidationError{Reason: fmt.Sprintf("account %q not found", id)}
	}
	st := s.st.clone()
	fn(st.accounts[id])
	return s.commit(st)
}
