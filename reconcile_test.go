package finance

import (
	"errors"
	"testing"

	"github.com/spospordo/Local-Server-Site-Pusher-sub004/date"
)

func TestReconcile_createsUnmatchedCandidates(t *testing.T) {
	s := NewStore()

	report, err := s.Reconcile([]Candidate{
		{Name: "My Personal Cash Account", Balance: USD(1000), Category: Cash},
		{Name: "Brokerage Account", Balance: USD(25000), Category: Investment},
	}, day("2026-01-15"))
	if err != nil {
		t.Fatal(err)
	}

	if len(report.Created) != 2 || len(report.Updated) != 0 {
		t.Fatalf("report = %+v, want 2 created and 0 updated", report)
	}
	if s.Len() != 2 {
		t.Fatalf("store has %d accounts, want 2", s.Len())
	}
	a := report.Created[0]
	if a.Name != "My Personal Cash Account" || a.Category != Cash || !a.Balance.Equal(USD(1000)) {
		t.Errorf("created account = %+v", a)
	}
	if !a.LastUpdated.Equal(instant("2026-01-15")) {
		t.Errorf("LastUpdated = %s, want the as-of instant", a.LastUpdated)
	}

	history := s.History()
	if len(history) != 2 {
		t.Fatalf("history has %d entries, want 2", len(history))
	}
	for _, e := range history {
		if e.Type != EntryCreated {
			t.Errorf("history entry type = %s, want %s", e.Type, EntryCreated)
		}
	}
}

func TestReconcile_updatesThroughFuzzyMatch(t *testing.T) {
	s := NewStore()
	seed(s, "a1", "My Cash Account", Cash, USD(900), instant("2026-01-01"))

	// OCR glued a stray character onto the name; the substring tier
	// still finds the account.
	report, err := s.Reconcile([]Candidate{
		{Name: "G My Cash Account", Balance: USD(1000), Category: Cash},
	}, day("2026-01-15"))
	if err != nil {
		t.Fatal(err)
	}

	if len(report.Updated) != 1 || len(report.Created) != 0 {
		t.Fatalf("report = %+v, want exactly 1 update", report)
	}
	u := report.Updated[0]
	if u.Account.ID() != "a1" || u.Tier != TierSubstring {
		t.Errorf("update = %+v, want account a1 at the substring tier", u)
	}
	if !u.Before.Equal(USD(900)) {
		t.Errorf("Before = %s, want $900.00", u.Before)
	}

	a, _ := s.Get("a1")
	if !a.Balance.Equal(USD(1000)) {
		t.Errorf("balance = %s, want $1,000.00", a.Balance)
	}
	if !a.LastUpdated.Equal(instant("2026-01-15")) {
		t.Errorf("LastUpdated = %s, want the as-of instant", a.LastUpdated)
	}
	if a.Name != "My Cash Account" {
		t.Errorf("update changed the account name to %q", a.Name)
	}
}

func TestReconcile_rejectsStaleBalance(t *testing.T) {
	s := NewStore()
	seed(s, "a1", "My Cash Account", Cash, USD(2000), instant("2026-02-01"))

	report, err := s.Reconcile([]Candidate{
		{Name: "My Cash Account", Balance: USD(1000), Category: Cash},
	}, day("2026-01-15"))
	if err != nil {
		t.Fatal(err)
	}

	if len(report.RejectedStale) != 1 || len(report.Updated) != 0 {
		t.Fatalf("report = %+v, want exactly 1 stale rejection", report)
	}
	r := report.RejectedStale[0]
	if r.Account.ID() != "a1" || r.AsOf != day("2026-01-15") {
		t.Errorf("rejection = %+v", r)
	}

	// The account keeps the newer balance.
	a, _ := s.Get("a1")
	if !a.Balance.Equal(USD(2000)) || !a.LastUpdated.Equal(instant("2026-02-01")) {
		t.Errorf("account mutated by a stale candidate: %+v", a)
	}

	// The refusal itself is audited.
	history := s.History()
	if len(history) != 1 || history[0].Type != EntryRejected {
		t.Fatalf("history = %+v, want one %s entry", history, EntryRejected)
	}
	if !history[0].Before.Equal(USD(2000)) || !history[0].After.Equal(USD(1000)) {
		t.Errorf("rejected entry records %s -> %s", history[0].Before, history[0].After)
	}
}

func TestReconcile_reapplyingSameStatementIsNoOp(t *testing.T) {
	s := NewStore()
	batch := []Candidate{{Name: "My Cash Account", Balance: USD(1000), Category: Cash}}

	if _, err := s.Reconcile(batch, day("2026-01-15")); err != nil {
		t.Fatal(err)
	}
	report, err := s.Reconcile(batch, day("2026-01-15"))
	if err != nil {
		t.Fatal(err)
	}

	// The second application is rejected as not-newer, not re-applied.
	if len(report.RejectedStale) != 1 || len(report.Updated) != 0 || len(report.Created) != 0 {
		t.Fatalf("report = %+v, want exactly 1 rejection", report)
	}
	if s.Len() != 1 {
		t.Errorf("store has %d accounts, want 1", s.Len())
	}

	// A different balance on the same day is newer information.
	report, err = s.Reconcile([]Candidate{
		{Name: "My Cash Account", Balance: USD(1100), Category: Cash},
	}, day("2026-01-15"))
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Updated) != 1 {
		t.Fatalf("report = %+v, want 1 update", report)
	}
}

func TestReconcile_futureAsOfRejectsWholeBatch(t *testing.T) {
	s := NewStore()
	future := date.Today().Add(1)

	_, err := s.Reconcile([]Candidate{
		{Name: "My Cash Account", Balance: USD(1000), Category: Cash},
	}, future)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want a ValidationError", err)
	}
	if s.Len() != 0 || len(s.History()) != 0 {
		t.Errorf("store mutated by a rejected batch")
	}
}

func TestReconcile_zeroAsOfDefaultsToToday(t *testing.T) {
	s := NewStore()
	report, err := s.Reconcile([]Candidate{
		{Name: "My Cash Account", Balance: USD(1000), Category: Cash},
	}, date.Date{})
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Created) != 1 {
		t.Fatalf("report = %+v, want 1 created", report)
	}
	if !report.Created[0].LastUpdated.Equal(date.Today().UTC()) {
		t.Errorf("LastUpdated = %s, want today", report.Created[0].LastUpdated)
	}
}

func TestReconcile_candidatesAreIndependent(t *testing.T) {
	s := NewStore()
	seed(s, "a1", "Checking Account", Cash, USD(2000), instant("2026-02-01"))

	report, err := s.Reconcile([]Candidate{
		{Name: "Checking Account", Balance: USD(1000), Category: Cash},  // stale
		{Name: "Savings Account", Balance: USD(3000), Category: Cash},   // new
		{Name: "Home", Balance: USD(350000), Category: RealEstate},      // new
	}, day("2026-01-15"))
	if err != nil {
		t.Fatal(err)
	}

	// One candidate's staleness never blocks the others.
	if len(report.RejectedStale) != 1 || len(report.Created) != 2 {
		t.Fatalf("report = %+v, want 1 rejection and 2 creations", report)
	}
	if s.Len() != 3 {
		t.Errorf("store has %d accounts, want 3", s.Len())
	}
}

func TestReconcile_duplicateCandidateHitsTheJustCreatedAccount(t *testing.T) {
	s := NewStore()

	report, err := s.Reconcile([]Candidate{
		{Name: "My Cash Account", Balance: USD(1000), Category: Cash},
		{Name: "My Cash Account", Balance: USD(1000), Category: Cash},
	}, day("2026-01-15"))
	if err != nil {
		t.Fatal(err)
	}

	// The duplicate matches the account created earlier in the batch
	// instead of creating a second one.
	if len(report.Created) != 1 || len(report.RejectedStale) != 1 {
		t.Fatalf("report = %+v, want 1 creation and 1 rejection", report)
	}
	if s.Len() != 1 {
		t.Errorf("store has %d accounts, want 1", s.Len())
	}
}

func TestReconcile_surfacesAmbiguity(t *testing.T) {
	s := NewStore()
	seed(s, "a1", "Cash Account", Cash, USD(100), instant("2026-01-01"))
	seed(s, "a2", "Cash Account", Cash, USD(200), instant("2026-01-01"))

	report, err := s.Reconcile([]Candidate{
		{Name: "Cash Account", Balance: USD(300), Category: Cash},
	}, day("2026-01-15"))
	if err != nil {
		t.Fatal(err)
	}

	if len(report.Ambiguous) != 1 || len(report.Updated) != 0 || len(report.Created) != 0 {
		t.Fatalf("report = %+v, want exactly 1 ambiguity", report)
	}
	if got := len(report.Ambiguous[0].Tied); got != 2 {
		t.Errorf("got %d tied accounts, want 2", got)
	}

	// Neither tied account was touched, and nothing was audited.
	for _, id := range []ID{"a1", "a2"} {
		a, _ := s.Get(id)
		if a.LastUpdated.After(instant("2026-01-01")) {
			t.Errorf("ambiguity silently resolved onto %s", id)
		}
	}
	if len(s.History()) != 0 {
		t.Errorf("history = %+v, want empty", s.History())
	}
}

func TestReconcile_parsedStatementEndToEnd(t *testing.T) {
	s := NewStore()
	result := ParseStatement(`Cash  $10,000

My Personal Cash Account    $1,000
Individual

Liabilities $90,000
Mortgage  $90,000`)

	report, err := s.Reconcile(result.Candidates, day("2026-01-15"))
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Created) != 2 {
		t.Fatalf("report = %+v, want 2 created", report)
	}
	if got := s.NetWorth(); !got.Equal(USD(-89000)) {
		t.Errorf("net worth = %s, want -$89,000.00", got)
	}
}
