package carbontrack

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore returned an unexpected error: %v", err)
	}
	return s
}

func TestLoad_MissingRecordReturnsDefaults(t *testing.T) {
	s := newTestStore(t)
	r := s.Load("nobody")
	if r.Goal != DefaultGoal {
		t.Errorf("Goal = %v, want %v", r.Goal, DefaultGoal)
	}
	if r.GoalType != GoalWeekly {
		t.Errorf("GoalType = %v, want weekly", r.GoalType)
	}
	if !r.NeedsInitialGoal {
		t.Error("NeedsInitialGoal = false, want true for a never-seen user")
	}
	if r.Logs == nil || len(r.Logs) != 0 {
		t.Errorf("Logs = %v, want empty non-nil slice", r.Logs)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	r := NewRecord()
	r.Goal = 50
	r.GoalType = GoalDaily
	r.NeedsInitialGoal = false
	r.Logs = append(r.Logs, LogEntry{
		Timestamp: "2025-08-15T10:00:00Z",
		Category:  "Food",
		Activity:  "Red Meat - Beef (Servings)",
		Value:     2,
		Footprint: 14.0,
	})
	if err := s.Save("alice", r); err != nil {
		t.Fatalf("Save returned an unexpected error: %v", err)
	}

	back := s.Load("alice")
	if back.Goal != 50 || back.GoalType != GoalDaily || back.NeedsInitialGoal {
		t.Errorf("round trip lost goal state: %+v", back)
	}
	if len(back.Logs) != 1 || back.Logs[0] != r.Logs[0] {
		t.Errorf("round trip lost logs: %+v", back.Logs)
	}
}

func TestLoad_CorruptRecordReturnsDefaults(t *testing.T) {
	s := newTestStore(t)
	if err := os.WriteFile(s.path("mallory"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	r := s.Load("mallory")
	if r.Goal != DefaultGoal || !r.NeedsInitialGoal || len(r.Logs) != 0 {
		t.Errorf("corrupt record should load as defaults, got %+v", r)
	}
}

func TestLoad_PartialRecordKeepsDefaults(t *testing.T) {
	s := newTestStore(t)
	if err := os.WriteFile(s.path("carol"), []byte(`{"logs":[]}`), 0644); err != nil {
		t.Fatal(err)
	}
	r := s.Load("carol")
	if r.Goal != DefaultGoal {
		t.Errorf("Goal = %v, want %v (record missing goal field)", r.Goal, DefaultGoal)
	}
	if r.GoalType != GoalWeekly {
		t.Errorf("GoalType = %v, want weekly (record missing goal_type field)", r.GoalType)
	}
	if !r.NeedsInitialGoal {
		t.Error("NeedsInitialGoal = false, want true (record missing the flag)")
	}

	// Present fields still win over the defaults.
	if err := os.WriteFile(s.path("carol"), []byte(`{"goal":25,"needs_initial_goal":false}`), 0644); err != nil {
		t.Fatal(err)
	}
	r = s.Load("carol")
	if r.Goal != 25 || r.NeedsInitialGoal {
		t.Errorf("explicit fields overridden by defaults: %+v", r)
	}
	if r.Logs == nil || len(r.Logs) != 0 {
		t.Errorf("Logs = %v, want empty non-nil slice", r.Logs)
	}
}

func TestPath_DoesNotLeakUsername(t *testing.T) {
	s := newTestStore(t)
	if err := s.Save("alice", NewRecord()); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), "alice") {
			t.Errorf("stored filename %q leaks the username", e.Name())
		}
	}
	// Derivation is deterministic: a second save overwrites the same file.
	if err := s.Save("alice", NewRecord()); err != nil {
		t.Fatal(err)
	}
	count := 0
	entries, _ = os.ReadDir(s.Dir)
	for _, e := range entries {
		if e.Name() != baselineFile {
			count++
		}
	}
	if count != 1 {
		t.Errorf("found %d record files after two saves of the same user, want 1", count)
	}
}

func TestSave_LeavesNoTempFile(t *testing.T) {
	s := newTestStore(t)
	if err := s.Save("bob", NewRecord()); err != nil {
		t.Fatal(err)
	}
	matches, err := filepath.Glob(filepath.Join(s.Dir, "*.tmp"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 0 {
		t.Errorf("temporary files left behind: %v", matches)
	}
}

func TestRecords_SkipsBaselineAndCorrupt(t *testing.T) {
	s := newTestStore(t)
	if err := s.Save("alice", NewRecord()); err != nil {
		t.Fatal(err)
	}
	if err := s.Save("bob", NewRecord()); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(s.Dir, "broken.json"), []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}

	ids := make(map[string]bool)
	for id := range s.Records() {
		ids[id] = true
	}
	if len(ids) != 2 {
		t.Errorf("Records yielded %d records, want 2 (baseline and corrupt files skipped)", len(ids))
	}
	if !ids[userID("alice")] || !ids[userID("bob")] {
		t.Errorf("Records yielded unexpected ids: %v", ids)
	}
}
