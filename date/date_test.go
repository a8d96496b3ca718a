package date

import (
	"testing"
	"time"
)

// TestUTC asserts that UTC() is canonical and gives comparable times.
func TestUTC(t *testing.T) {
	d1 := New(2026, 1, 15)
	d2 := New(2026, 1, 15)

	if d1.UTC() != d2.UTC() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// test also checks that the property remains true.
		t.Errorf("invalid UTC() function same day gives two different times")
	}
	if got := d1.UTC(); got.Hour() != 0 || got.Minute() != 0 || got.Location() != time.UTC {
		t.Errorf("UTC() = %v, want midnight UTC", got)
	}
}

func TestNew_normalizes(t *testing.T) {
	// Jan 32 normalizes to Feb 1.
	if got, want := New(2026, 1, 32), New(2026, 2, 1); got != want {
		t.Errorf("New(2026,1,32) = %s, want %s", got, want)
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2026-01-15", want: New(2026, 1, 15)},
		{in: "2026-1-5", want: New(2026, 1, 5)},
		{in: "15/01/2026", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := Parse(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("Parse(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestOf_truncatesToDay(t *testing.T) {
	instant := time.Date(2026, 2, 1, 17, 45, 12, 0, time.UTC)
	if got, want := Of(instant), New(2026, 2, 1); got != want {
		t.Errorf("Of(%v) = %s, want %s", instant, got, want)
	}
}

func TestBeforeAfter(t *testing.T) {
	a, b := New(2026, 1, 15), New(2026, 2, 1)
	if !a.Before(b) || b.Before(a) {
		t.Errorf("Before is inconsistent for %s and %s", a, b)
	}
	if !b.After(a) || a.After(b) {
		t.Errorf("After is inconsistent for %s and %s", a, b)
	}
	if a.Before(a) || a.After(a) {
		t.Errorf("a day must be neither before nor after itself")
	}
}
