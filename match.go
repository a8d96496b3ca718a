package finance

import (
	"strings"
	"unicode"
)

// Tier identifies which matching strategy succeeded.
type Tier int

const (
	// TierExact matches the candidate name against the account name or any
	// previous name, case-insensitively after trimming.
	TierExact Tier = iota + 1
	// TierSubstring matches when either name contains the other.
	TierSubstring
	// TierNormalized re-attempts exact and substring comparison on
	// normalized names.
	TierNormalized
)

func (t Tier) String() string {
	switch t {
	case TierExact:
		return "exact"
	case TierSubstring:
		return "substring"
	case TierNormalized:
		return "normalized"
	default:
		return "unknown"
	}
}

// MatchOutcome is the result of matching one candidate against the
// account collection. Exactly one of the three cases holds:
//
//   - Matched: Account is the single best match, found at Tier.
//   - Ambiguous: several accounts tied at the same tier with identical
//     LastUpdated; Tied lists them. Ambiguity is surfaced to the caller,
//     never auto-resolved.
//   - No match: the zero outcome, with Account nil and Tier 0.
type MatchOutcome struct {
	Account   *Account
	Tier      Tier
	Ambiguous bool
	Tied      []*Account
}

// Matched reports whether a single account was found.
func (o MatchOutcome) Matched() bool { return o.Account != nil && !o.Ambiguous }

// NoMatch reports whether no account matched at any tier.
func (o MatchOutcome) NoMatch() bool { return o.Account == nil && !o.Ambiguous }

// tierFunc reports whether the candidate name refers to the account.
// Each tier is pure and independently testable; DisplayName is cosmetic
// and no tier ever reads it.
type tierFunc func(candidate string, a *Account) bool

// tiers are tried in order; the first tier that yields at least one
// account wins.
var tiers = []struct {
	tier Tier
	fn   tierFunc
}{
	{TierExact, matchExact},
	{TierSubstring, matchSubstring},
	{TierNormalized, matchNormalized},
}

// Match finds the existing account a candidate refers to, using the tiered
// fuzzy strategy over every account's name and previous names.
//
// If several accounts tie at the winning tier, the one with the most
// recent LastUpdated is preferred; a residual tie is reported as
// ambiguous.
func Match(candidate string, accounts []*Account) MatchOutcome {
	for _, t := range tiers {
		var hits []*Account
		for _, a := range accounts {
			if t.fn(candidate, a) {
				hits = append(hits, a)
			}
		}
		switch len(hits) {
		case 0:
			continue
		case 1:
			return MatchOutcome{Account: hits[0], Tier: t.tier}
		}

		// Tie-break by freshest data.
		best := []*Account{hits[0]}
		for _, a := range hits[1:] {
			switch {
			case a.LastUpdated.After(best[0].LastUpdated):
				best = []*Account{a}
			case a.LastUpdated.Equal(best[0].LastUpdated):
				best = append(best, a)
			}
		}
		if len(best) == 1 {
			return MatchOutcome{Account: best[0], Tier: t.tier}
		}
		return MatchOutcome{Tier: t.tier, Ambiguous: true, Tied: best}
	}
	return MatchOutcome{}
}

// matchExact compares the candidate name with the account name and every
// previous name, case-insensitively after trimming.
func matchExact(candidate string, a *Account) bool {
	return a.KnownAs(candidate)
}

// matchSubstring reports whether, after trimming, the candidate name
// contains one of the account's names or vice versa. OCR regularly glues
// stray characters onto a name ("G My Cash Account"), so containment runs
// in both directions.
func matchSubstring(candidate string, a *Account) bool {
	c := strings.ToLower(strings.TrimSpace(candidate))
	if c == "" {
		return false
	}
	for _, name := range append([]string{a.Name}, a.previousNames...) {
		n := strings.ToLower(strings.TrimSpace(name))
		if n == "" {
			continue
		}
		if strings.Contains(c, n) || strings.Contains(n, c) {
			return true
		}
	}
	return false
}

// matchNormalized re-attempts exact and substring comparison on
// normalized forms.
func matchNormalized(candidate string, a *Account) bool {
	c := Normalize(candidate)
	if c == "" {
		return false
	}
	for _, name := range append([]string{a.Name}, a.previousNames...) {
		n := Normalize(name)
		if n == "" {
			continue
		}
		if c == n || strings.Contains(c, n) || strings.Contains(n, c) {
			return true
		}
	}
	return false
}

// Normalize lowercases a name and strips every non-alphanumeric
// character, whitespace included, so "My-Cash_Account" and "My Cash
// Account" compare equal. Normalized names are used only for fuzzy
// comparison, never stored.
func Normalize(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
