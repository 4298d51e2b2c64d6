package date

import (
	"encoding/json"
	"slices"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2025-08-01", want: "2025-08-01"},
		{in: "2025-8-1", want: "2025-08-01"},
		{in: "not-a-date", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := Parse(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("Parse(%q) expected an error, got %v", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) returned an unexpected error: %v", tc.in, err)
			continue
		}
		if got.String() != tc.want {
			t.Errorf("Parse(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestAdd_NormalizesAcrossMonths(t *testing.T) {
	d := New(2025, time.January, 31).Add(1)
	if got := d.String(); got != "2025-02-01" {
		t.Errorf("Add(1) = %q, want 2025-02-01", got)
	}
	d = New(2025, time.March, 1).Add(-1)
	if got := d.String(); got != "2025-02-28" {
		t.Errorf("Add(-1) = %q, want 2025-02-28", got)
	}
}

func TestOf(t *testing.T) {
	ts := time.Date(2025, time.August, 15, 23, 59, 59, 0, time.UTC)
	if got := Of(ts); got != New(2025, time.August, 15) {
		t.Errorf("Of(%v) = %v, want 2025-08-15", ts, got)
	}
}

func TestLast(t *testing.T) {
	end := MustParse("2025-08-05")
	got := slices.Collect(end.Last(3))
	want := []Date{MustParse("2025-08-03"), MustParse("2025-08-04"), MustParse("2025-08-05")}
	if !slices.Equal(got, want) {
		t.Errorf("Last(3) = %v, want %v", got, want)
	}
	if n := len(slices.Collect(end.Last(0))); n != 0 {
		t.Errorf("Last(0) yielded %d dates, want 0", n)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := MustParse("2025-08-05")
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal returned an unexpected error: %v", err)
	}
	if string(b) != `"2025-08-05"` {
		t.Errorf("Marshal = %s, want \"2025-08-05\"", b)
	}
	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal returned an unexpected error: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}
