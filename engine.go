package carbontrack

import (
	"fmt"
	"time"

	"github.com/ecodex/carbontrack/date"
)

// Engine orchestrates the record store and the calculator to expose log CRUD,
// goal management, and population comparison.
//
// Every mutation is a full load-mutate-save cycle. The engine performs no
// locking of its own: operations on a single user must be serialized by the
// caller, and concurrent writers are last-writer-wins. Log indices are
// positional within the freshly loaded record; callers must never cache an
// index across a mutation.
type Engine struct {
	Store *Store
	Calc  Calculator
}

// NewEngine returns an engine over the given store.
func NewEngine(store *Store) *Engine {
	return &Engine{Store: store}
}

// AddLog stamps the entry with the current time if it carries no timestamp,
// derives its footprint, appends it to the user's history and saves.
func (g *Engine) AddLog(username string, e LogEntry) error {
	if e.Timestamp == "" {
		e.Timestamp = g.Calc.now().Format(time.RFC3339)
	}
	e.Footprint = g.Calc.Compute(e.Activity, e.Value)
	r := g.Store.Load(username)
	r.Logs = append(r.Logs, e)
	return g.Store.Save(username, r)
}

// LogUpdate carries the fields of a partial log edit. Nil fields keep the
// existing value.
type LogUpdate struct {
	Timestamp   *string
	Category    *string
	Activity    *string
	Value       *float64
	Description *string
}

// UpdateLog merges a partial edit into the entry at index. It reports false
// without touching the record when the index is out of bounds. The original
// timestamp is preserved unless the update supplies one, and the footprint is
// recomputed from the merged activity and value so the derivation invariant
// holds.
func (g *Engine) UpdateLog(username string, index int, u LogUpdate) (bool, error) {
	r := g.Store.Load(username)
	if index < 0 || index >= len(r.Logs) {
		return false, nil
	}
	e := &r.Logs[index]
	if u.Timestamp != nil {
		e.Timestamp = *u.Timestamp
	}
	if u.Category != nil {
		e.Category = *u.Category
	}
	if u.Activity != nil {
		e.Activity = *u.Activity
	}
	if u.Value != nil {
		e.Value = *u.Value
	}
	if u.Description != nil {
		e.Description = *u.Description
	}
	e.Footprint = g.Calc.Compute(e.Activity, e.Value)
	if err := g.Store.Save(username, r); err != nil {
		return false, err
	}
	return true, nil
}

// DeleteLog removes the entry at index, shifting later indices down by one.
// It reports false without touching the record when the index is out of bounds.
func (g *Engine) DeleteLog(username string, index int) (bool, error) {
	r := g.Store.Load(username)
	if index < 0 || index >= len(r.Logs) {
		return false, nil
	}
	r.Logs = append(r.Logs[:index], r.Logs[index+1:]...)
	if err := g.Store.Save(username, r); err != nil {
		return false, err
	}
	return true, nil
}

// Logs returns the user's log history in stored order.
func (g *Engine) Logs(username string) []LogEntry {
	return g.Store.Load(username).Logs
}

// Goal returns the user's current reduction target and its period type.
func (g *Engine) Goal(username string) (float64, GoalType) {
	r := g.Store.Load(username)
	return r.Goal, r.GoalType
}

// SetGoal sets the user's reduction target. A non-positive value is rejected
// before any mutation. The first successful call clears the first-run flag;
// the flag never reverts.
func (g *Engine) SetGoal(username string, value float64, goalType GoalType) error {
	if value <= 0 {
		return fmt.Errorf("goal must be positive, got %v", value)
	}
	r := g.Store.Load(username)
	r.Goal = value
	r.GoalType = goalType
	r.NeedsInitialGoal = false
	return g.Store.Save(username, r)
}

// NeedsInitialGoal reports whether the user has never set a goal explicitly.
func (g *Engine) NeedsInitialGoal(username string) bool {
	return g.Store.Load(username).NeedsInitialGoal
}

// Comparison is the result of comparing a user's weekly total against the
// combined population.
type Comparison struct {
	UserTotal     float64 // the caller's trailing 7-day total
	SystemAverage float64 // mean over baseline plus active real users
	PercentDiff   float64 // (user - average) / average * 100, or 0 when the average is 0
}

// CompareToPopulation combines the synthetic baseline with a live scan of
// every other stored user's weekly total (zero-activity users are excluded as
// "no activity") and compares the caller's weekly total against the mean.
//
// The scan is O(number of users) per call; results are not cached.
func (g *Engine) CompareToPopulation(username string) Comparison {
	userTotal := g.Calc.WeeklyTotal(g.Store.Load(username).Logs)

	self := userID(username)
	totals := g.Store.BaselineTotals()
	for id, r := range g.Store.Records() {
		if id == self {
			continue
		}
		if t := g.Calc.WeeklyTotal(r.Logs); t > 0 {
			totals = append(totals, t)
		}
	}

	avg := g.Calc.SystemAverage(totals)
	diff := 0.0
	if avg > 0 {
		diff = round1((userTotal - avg) / avg * 100)
	}
	return Comparison{UserTotal: userTotal, SystemAverage: avg, PercentDiff: diff}
}

// Summary aggregates a user's current standing: the trailing weekly total,
// the goal and progress against it, the category breakdown, a daily series
// covering the last `days` days, and the top contributing category.
type Summary struct {
	Date        date.Date
	WeeklyTotal float64
	Goal        float64
	GoalType    GoalType
	Progress    float64 // period total divided by goal
	TopCategory string
	Breakdown   map[string]float64
	Series      []DailyPoint
}

// Summary builds the aggregate report for a user. For a daily goal, progress
// is measured against today's total; for a weekly goal, against the trailing
// 7-day total.
func (g *Engine) Summary(username string, days int) *Summary {
	r := g.Store.Load(username)
	series := g.Calc.DailySeries(r.Logs, days)

	s := &Summary{
		Date:        date.Of(g.Calc.now()),
		WeeklyTotal: g.Calc.WeeklyTotal(r.Logs),
		Goal:        r.Goal,
		GoalType:    r.GoalType,
		TopCategory: g.Calc.TopCategory(r.Logs),
		Breakdown:   g.Calc.CategoryBreakdown(r.Logs),
		Series:      series,
	}

	periodTotal := s.WeeklyTotal
	if r.GoalType == GoalDaily {
		periodTotal = 0
		today := date.Of(g.Calc.now())
		for _, p := range g.Calc.DailySeries(r.Logs, 1) {
			if p.Date == today {
				periodTotal = p.Footprint
			}
		}
	}
	if r.Goal > 0 {
		s.Progress = periodTotal / r.Goal
	}
	return s
}
