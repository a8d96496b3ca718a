package finance

import (
	"fmt"
	"slices"
)

// MergeResult reports a consolidation of duplicate accounts.
type MergeResult struct {
	Survivor      *Account
	AbsorbedNames []string
}

// Merge consolidates the operator-selected duplicate accounts into one
// survivor.
//
// The survivor is the member with the most recent LastUpdated (freshest
// data defines the base state); an exact tie is broken by the original
// order of ids, so repeated merges of the same set are reproducible.
// Every non-survivor contributes its current name and its whole name
// history to the survivor's previousNames in first-occurrence order, and
// is then removed from the store. Exactly one accounts_merged history
// entry records the operation.
//
// The operation is atomic: it either fully commits or, on any validation
// or persistence failure, leaves the store byte-for-byte unchanged.
func (s *Store) Merge(ids []ID) (*MergeResult, error) {
	if len(ids) < 2 {
		return nil, &ValidationError{Reason: "merge needs at least 2 account ids"}
	}
	seen := make(map[ID]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return nil, &ValidationError{Reason: fmt.Sprintf("duplicate account id %q in merge request", id)}
		}
		seen[id] = true
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range ids {
		if _, ok := s.st.accounts[id]; !ok {
			return nil, &ValidationError{Reason: fmt.Sprintf("account %q not found", id)}
		}
	}

	st := s.st.clone()

	// Freshest member survives; ties keep the earliest of the input order.
	survivor := st.accounts[ids[0]]
	for _, id := range ids[1:] {
		if a := st.accounts[id]; a.LastUpdated.After(survivor.LastUpdated) {
			survivor = a
		}
	}

	var absorbed []string
	for _, id := range ids {
		if id == survivor.id {
			continue
		}
		loser := st.accounts[id]
		for _, name := range append([]string{loser.Name}, loser.previousNames...) {
			if !survivor.KnownAs(name) {
				absorbed = append(absorbed, name)
			}
			survivor.recordName(name)
		}
		delete(st.accounts, id)
		st.order = slices.DeleteFunc(st.order, func(x ID) bool { return x == id })
	}

	st.history = append(st.history, newMergedEntry(slices.Clone(ids), survivor, slices.Clone(absorbed), s.now()))

	if err := s.commit(st); err != nil {
		return nil, err
	}
	return &MergeResult{Survivor: survivor.clone(), AbsorbedNames: absorbed}, nil
}
