package finance

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestStore_add(t *testing.T) {
	s := NewStore()

	a, err := s.Add("Checking", Cash, USD(1000), instant("2026-01-15"))
	if err != nil {
		t.Fatal(err)
	}
	if a.ID() == "" {
		t.Error("new account has no id")
	}
	got, ok := s.Get(a.ID())
	if !ok || got.Name != "Checking" || !got.Balance.Equal(USD(1000)) {
		t.Errorf("Get = %+v, %v", got, ok)
	}

	history := s.History()
	if len(history) != 1 || history[0].Type != EntryCreated || history[0].AccountID != a.ID() {
		t.Errorf("history = %+v", history)
	}

	if _, err := s.Add("  ", Cash, USD(0), instant("2026-01-15")); err == nil {
		t.Error("Add accepted a blank name")
	}
}

func TestStore_delete(t *testing.T) {
	s := NewStore()
	seed(s, "a1", "Checking", Cash, USD(1000), instant("2026-01-15"))

	if err := s.Delete("a1"); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 0 {
		t.Errorf("store has %d accounts after delete", s.Len())
	}

	// The deletion leaves a trace; history is never rewritten.
	history := s.History()
	if len(history) != 1 || history[0].Type != EntryDeleted || history[0].Name != "Checking" {
		t.Errorf("history = %+v", history)
	}

	var verr *ValidationError
	if err := s.Delete("a1"); !errors.As(err, &verr) {
		t.Errorf("deleting twice: err = %v, want a ValidationError", err)
	}
}

func TestStore_rename(t *testing.T) {
	s := NewStore()
	seed(s, "a1", "Checking", Cash, USD(1000), instant("2026-01-15"))

	if err := s.Rename("a1", "Everyday Checking"); err != nil {
		t.Fatal(err)
	}
	a, _ := s.Get("a1")
	if a.Name != "Everyday Checking" {
		t.Errorf("name = %q", a.Name)
	}
	if !reflect.DeepEqual(a.PreviousNames(), []string{"Checking"}) {
		t.Errorf("previous names = %v, want the old name recorded", a.PreviousNames())
	}

	// Renaming back must not leave the current name in previousNames.
	if err := s.Rename("a1", "Checking"); err != nil {
		t.Fatal(err)
	}
	a, _ = s.Get("a1")
	if a.Name != "Checking" || !reflect.DeepEqual(a.PreviousNames(), []string{"Everyday Checking"}) {
		t.Errorf("after renaming back: name = %q, previous names = %v", a.Name, a.PreviousNames())
	}
}

func TestStore_displayNameIsCosmetic(t *testing.T) {
	s := NewStore()
	seed(s, "a1", "Checking", Cash, USD(1000), instant("2026-01-15"))

	if err := s.SetDisplayName("a1", "Our joint checking"); err != nil {
		t.Fatal(err)
	}
	a, _ := s.Get("a1")
	if a.DisplayName != "Our joint checking" {
		t.Errorf("display name = %q", a.DisplayName)
	}
	if len(a.PreviousNames()) != 0 {
		t.Errorf("display name change touched previous names: %v", a.PreviousNames())
	}
}

func TestStore_netWorth(t *testing.T) {
	s := NewStore()
	seed(s, "a1", "Checking", Cash, USD(1000), instant("2026-01-15"))
	seed(s, "a2", "Brokerage", Investment, USD(25000), instant("2026-01-15"))
	seed(s, "a3", "Home", RealEstate, USD(350000), instant("2026-01-15"))
	seed(s, "a4", "Mortgage", Liability, USD(90000), instant("2026-01-15"))

	if got := s.NetWorth(); !got.Equal(USD(286000)) {
		t.Errorf("net worth = %s, want $286,000.00", got)
	}
}

func TestStore_accountSnapshotsAreCopies(t *testing.T) {
	s := NewStore()
	seed(s, "a1", "Checking", Cash, USD(1000), instant("2026-01-15"))

	s.Accounts()[0].Name = "Hacked"
	a, _ := s.Get("a1")
	if a.Name != "Checking" {
		t.Errorf("mutating a snapshot leaked into the store: %q", a.Name)
	}
}

func TestStore_persistsAcrossReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.jsonl")

	s, err := LoadStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Reconcile([]Candidate{
		{Name: "Checking", Balance: USD(1000), Category: Cash},
		{Name: "Mortgage", Balance: USD(90000), Category: Liability},
	}, day("2026-01-15")); err != nil {
		t.Fatal(err)
	}
	if err := s.Rename(s.Accounts()[0].ID(), "Everyday Checking"); err != nil {
		t.Fatal(err)
	}

	reloaded, err := LoadStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(reloaded.Accounts(), s.Accounts()) {
		t.Errorf("accounts after reload:\n got %+v\nwant %+v", reloaded.Accounts(), s.Accounts())
	}
	if len(reloaded.History()) != len(s.History()) {
		t.Errorf("history after reload has %d entries, want %d", len(reloaded.History()), len(s.History()))
	}
	if got := reloaded.NetWorth(); !got.Equal(USD(-89000)) {
		t.Errorf("net worth after reload = %s", got)
	}
}

func TestStore_failedCommitLeavesStateUntouched(t *testing.T) {
	s := NewStore()
	seed(s, "a1", "Checking", Cash, USD(1000), instant("2026-01-15"))

	// Point the store at an unwritable location: the parent is a file,
	// so the commit's temp-file creation must fail.
	parent := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(parent, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	s.Bind(filepath.Join(parent, "accounts.jsonl"))

	_, err := s.Reconcile([]Candidate{
		{Name: "Savings", Balance: USD(2000), Category: Cash},
	}, day("2026-01-16"))
	if err == nil {
		t.Fatal("Reconcile reported success without a durable write")
	}
	if s.Len() != 1 || len(s.History()) != 0 {
		t.Errorf("failed commit mutated in-memory state")
	}
}
