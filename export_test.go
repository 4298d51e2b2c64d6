package carbontrack

import (
	"bytes"
	"encoding/csv"
	"reflect"
	"testing"

	"github.com/ecodex/carbontrack/date"
)

func TestExportCSV_Empty(t *testing.T) {
	g := newTestEngine(t)
	var buf bytes.Buffer
	if err := g.ExportCSV(&buf, "alice", nil, nil); err != nil {
		t.Fatalf("ExportCSV returned an unexpected error: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("export is not valid CSV: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("empty export has %d rows, want header only", len(rows))
	}
	if !reflect.DeepEqual(rows[0], exportColumns) {
		t.Errorf("header = %v, want %v", rows[0], exportColumns)
	}
}

func TestExportCSV_RowsInStoredOrder(t *testing.T) {
	g := newTestEngine(t)
	entries := []LogEntry{
		{Timestamp: ts(2), Category: "Food", Activity: "Red Meat - Beef (Servings)", Value: 2, Description: "dinner"},
		{Timestamp: ts(1), Category: "Transportation", Activity: "Bus - Local (Miles)", Value: 5},
	}
	for _, e := range entries {
		if err := g.AddLog("alice", e); err != nil {
			t.Fatal(err)
		}
	}

	var buf bytes.Buffer
	if err := g.ExportCSV(&buf, "alice", nil, nil); err != nil {
		t.Fatal(err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("export has %d rows, want header + 2", len(rows))
	}
	want := []string{ts(2), "Food", "Red Meat - Beef (Servings)", "2", "14", "dinner"}
	if !reflect.DeepEqual(rows[1], want) {
		t.Errorf("row 1 = %v, want %v", rows[1], want)
	}
	if rows[2][1] != "Transportation" {
		t.Errorf("row 2 category = %q, want stored order preserved", rows[2][1])
	}
}

func TestExportCSV_DateFilter(t *testing.T) {
	g := newTestEngine(t)
	for daysAgo := 0; daysAgo <= 4; daysAgo++ {
		e := LogEntry{Timestamp: ts(daysAgo), Activity: "Compost (Pounds)", Value: 1}
		if err := g.AddLog("alice", e); err != nil {
			t.Fatal(err)
		}
	}
	// A malformed timestamp is skipped when filtering.
	ok, err := g.UpdateLog("alice", 4, func() LogUpdate { s := "garbage"; return LogUpdate{Timestamp: &s} }())
	if !ok || err != nil {
		t.Fatal(err)
	}

	today := date.Of(fixedNow)
	from := today.Add(-3)
	to := today.Add(-1)

	var buf bytes.Buffer
	if err := g.ExportCSV(&buf, "alice", &from, &to); err != nil {
		t.Fatal(err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	// Entries 1, 2, 3 days ago are inside the inclusive range; today and the
	// malformed one are not.
	if len(rows) != 4 {
		t.Errorf("filtered export has %d rows, want header + 3", len(rows))
	}
}
