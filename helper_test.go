package finance

import (
	"time"

	"github.com/spospordo/Local-Server-Site-Pusher-sub004/date"
)

// USD is a helper for tests to create dollar money from a const.
func USD(v float64) Money { return M(v, "USD") }

// day is a helper for tests to parse a calendar day.
func day(s string) date.Date { return date.MustParse(s) }

// instant is a helper for tests to get the UTC midnight of a day.
func instant(s string) time.Time { return date.MustParse(s).UTC() }

// seed inserts an account with a fixed id directly into the store,
// bypassing history, to set up scenarios.
func seed(s *Store, id ID, name string, category Category, balance Money, updated time.Time) *Account {
	a := &Account{id: id, Name: name, Category: category, Balance: balance, LastUpdated: updated.UTC()}
	s.st.accounts[id] = a
	s.st.order = append(s.st.order, id)
	return a
}
