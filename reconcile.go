package finance

import (
	"fmt"
	"time"

	"github.com/spospordo/Local-Server-Site-Pusher-sub004/date"
)

// ValidationError rejects a whole requested operation before any mutation
// occurs: a bad merge request or a future-dated as-of date.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Update reports one applied balance update.
type Update struct {
	Account *Account
	Before  Money
	Tier    Tier
}

// StaleRejection reports a candidate whose as-of day is older than the
// data already on the account. It is an expected outcome, not an error:
// the account keeps its newer balance and the caller gets enough context
// to correct and resubmit.
type StaleRejection struct {
	Account   *Account
	Candidate Candidate
	AsOf      date.Date
}

func (r StaleRejection) String() string {
	return fmt.Sprintf("%s: balance %s as of %s is older than last update %s",
		r.Account.Name, r.Candidate.Balance, r.AsOf,
		r.Account.LastUpdated.Format(time.RFC3339))
}

// AmbiguousMatch reports a candidate that several accounts claim with
// equal confidence. It requires human disambiguation and is never
// silently resolved.
type AmbiguousMatch struct {
	Candidate Candidate
	Tier      Tier
	Tied      []*Account
}

func (m AmbiguousMatch) String() string {
	names := make([]string, 0, len(m.Tied))
	for _, a := range m.Tied {
		names = append(names, fmt.Sprintf("%s (%s)", a.Name, a.ID()))
	}
	return fmt.Sprintf("%q matches several accounts at the %s tier: %v", m.Candidate.Name, m.Tier, names)
}

// ReconcileReport is the complete outcome of applying one parsed
// statement to the store.
type ReconcileReport struct {
	Updated       []Update
	Created       []*Account
	RejectedStale []StaleRejection
	Ambiguous     []AmbiguousMatch
}

// Reconcile applies a batch of parsed candidates to the store as of the
// given calendar day.
//
// The batch is validated before any mutation: an as-of day strictly later
// than today is invalid input and rejects the whole call. Each candidate
// is then processed independently; one candidate's staleness or ambiguity
// never blocks the others. A matched candidate updates the account only
// if the as-of UTC-midnight instant is not before the account's
// LastUpdated; otherwise the account is left untouched and the rejection
// is reported. An unmatched candidate creates a new account. The whole
// batch commits as one durable write.
func (s *Store) Reconcile(candidates []Candidate, asOf date.Date) (*ReconcileReport, error) {
	if asOf.IsZero() {
		asOf = date.Today()
	}
	if asOf.After(date.Today()) {
		return nil, &ValidationError{
			Reason: fmt.Sprintf("as-of date %s is in the future", asOf),
		}
	}
	asOfInstant := asOf.UTC()

	// Matching and staging happen under the lock, but only against
	// in-memory state; the statement text was parsed before we got here.
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.st.clone()
	report := &ReconcileReport{}
	now := s.now()

	// Match against the staged state so that candidates created earlier in
	// the batch are visible to later duplicates of themselves.
	all := func() []*Account {
		out := make([]*Account, 0, len(st.order))
		for _, id := range st.order {
			out = append(out, st.accounts[id])
		}
		return out
	}

	for _, c := range candidates {
		outcome := Match(c.Name, all())
		switch {
		case outcome.Ambiguous:
			tied := make([]*Account, 0, len(outcome.Tied))
			for _, a := range outcome.Tied {
				tied = append(tied, a.clone())
			}
			report.Ambiguous = append(report.Ambiguous, AmbiguousMatch{
				Candidate: c,
				Tier:      outcome.Tier,
				Tied:      tied,
			})

		case outcome.NoMatch():
			a := NewAccount(c.Name, c.Category, c.Balance, asOfInstant)
			st.accounts[a.id] = a
			st.order = append(st.order, a.id)
			st.history = append(st.history, newCreatedEntry(a, now))
			report.Created = append(report.Created, a.clone())

		default:
			a := outcome.Account
			// Refuse to regress newer data. An identical same-day value is
			// not newer either: re-applying the same statement is a no-op.
			if asOfInstant.Before(a.LastUpdated) ||
				(asOfInstant.Equal(a.LastUpdated) && a.Balance.Equal(c.Balance)) {
				st.history = append(st.history, newRejectedEntry(a, c.Balance, asOfInstant, now))
				report.RejectedStale = append(report.RejectedStale, StaleRejection{
					Account:   a.clone(),
					Candidate: c,
					AsOf:      asOf,
				})
				continue
			}
			before := a.Balance
			a.Balance = c.Balance
			a.LastUpdated = asOfInstant
			st.history = append(st.history, newUpdatedEntry(a, before, asOfInstant, now))
			report.Updated = append(report.Updated, Update{
				Account: a.clone(),
				Before:  before,
				Tier:    outcome.Tier,
			})
		}
	}

	if err := s.commit(st); err != nil {
		return nil, err
	}
	return report, nil
}
