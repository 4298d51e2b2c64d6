package carbontrack

import (
	"encoding/json"
	"fmt"
	"time"
)

// GoalType defines the period a reduction goal applies to.
type GoalType int

const (
	// GoalWeekly targets a total footprint per trailing week.
	GoalWeekly GoalType = iota
	// GoalDaily targets a total footprint per calendar day.
	GoalDaily
)

func (t GoalType) String() string {
	switch t {
	case GoalWeekly:
		return "weekly"
	case GoalDaily:
		return "daily"
	default:
		return "unknown"
	}
}

// ParseGoalType parses a string into a GoalType.
func ParseGoalType(s string) (GoalType, error) {
	switch s {
	case "weekly":
		return GoalWeekly, nil
	case "daily":
		return GoalDaily, nil
	default:
		return 0, fmt.Errorf("unknown goal type: %q", s)
	}
}

func (t GoalType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *GoalType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseGoalType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// DefaultGoal is the reduction target a record starts with before the user
// sets one explicitly.
const DefaultGoal = 100.0

// LogEntry is one recorded activity with its computed footprint.
type LogEntry struct {
	Timestamp   string  `json:"timestamp"`
	Category    string  `json:"category"`
	Activity    string  `json:"activity"`
	Value       float64 `json:"value"`
	Footprint   float64 `json:"footprint"`
	Description string  `json:"description,omitempty"`
}

// timestampFormats lists the layouts a stored timestamp may carry. Records
// written by older tooling use a bare ISO-8601 local time without zone.
var timestampFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Time parses the entry timestamp. It reports false for a missing or
// malformed timestamp; aggregations skip such entries instead of failing.
func (e LogEntry) Time() (time.Time, bool) {
	return parseTimestamp(e.Timestamp)
}

func parseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampFormats {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Record is the persistent per-user state: the reduction goal, the first-run
// flag, the opaque credential, and the full log history in insertion order.
type Record struct {
	Goal             float64    `json:"goal"`
	GoalType         GoalType   `json:"goal_type"`
	NeedsInitialGoal bool       `json:"needs_initial_goal"`
	Credential       string     `json:"credential,omitempty"`
	Logs             []LogEntry `json:"logs"`
}

// NewRecord returns a record with default values for a never-seen user.
func NewRecord() *Record {
	return &Record{
		Goal:             DefaultGoal,
		GoalType:         GoalWeekly,
		NeedsInitialGoal: true,
		Logs:             []LogEntry{},
	}
}
