package carbontrack

import (
	"slices"
	"time"

	"github.com/ecodex/carbontrack/date"
	"github.com/shopspring/decimal"
)

// Calculator turns activities into footprints and log histories into
// aggregates. All methods are pure: no I/O, no mutation.
//
// The zero value uses the wall clock; tests set Now to pin the aggregation
// windows.
type Calculator struct {
	Now func() time.Time
}

func (c Calculator) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// round2 rounds a float to 2 decimal places using decimal arithmetic.
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func round1(v float64) float64 {
	return decimal.NewFromFloat(v).Round(1).InexactFloat64()
}

// Compute returns the footprint in kg CO2e for a single activity. A negative
// value is clamped to zero before multiplication; an unrecognized activity
// yields 0.0. The result is rounded to 2 decimals.
func (c Calculator) Compute(activity string, value float64) float64 {
	if value < 0 {
		value = 0
	}
	f := decimal.NewFromFloat(value).Mul(decimal.NewFromFloat(Factor(activity)))
	return f.Round(2).InexactFloat64()
}

// weekAgo returns the inclusive lower bound of the trailing 7-day window.
func (c Calculator) weekAgo() time.Time {
	return c.now().AddDate(0, 0, -7)
}

// WeeklyTotal sums footprints over entries timestamped within the trailing
// 7-day window, lower bound inclusive. Entries with missing or unparsable
// timestamps are silently excluded.
func (c Calculator) WeeklyTotal(logs []LogEntry) float64 {
	cutoff := c.weekAgo()
	total := 0.0
	for _, e := range logs {
		ts, ok := e.Time()
		if !ok || ts.Before(cutoff) {
			continue
		}
		total += e.Footprint
	}
	return round2(total)
}

// CategoryBreakdown partitions the trailing 7-day total by category, each
// total rounded independently. Categories with zero footprint are omitted.
func (c Calculator) CategoryBreakdown(logs []LogEntry) map[string]float64 {
	cutoff := c.weekAgo()
	totals := make(map[string]float64)
	for _, e := range logs {
		ts, ok := e.Time()
		if !ok || ts.Before(cutoff) {
			continue
		}
		cat := e.Category
		if cat == "" {
			cat = "Other"
		}
		totals[cat] += e.Footprint
	}
	breakdown := make(map[string]float64, len(totals))
	for cat, total := range totals {
		if rounded := round2(total); rounded != 0 {
			breakdown[cat] = rounded
		}
	}
	return breakdown
}

// DailyPoint is one calendar-day bucket of a daily series.
type DailyPoint struct {
	Date      date.Date
	Footprint float64
}

// DailySeries buckets footprints by calendar day over the last `days` days
// ending today. Every day appears exactly once, pre-seeded at 0.0 so gaps
// show as zero; output is chronological ascending.
func (c Calculator) DailySeries(logs []LogEntry, days int) []DailyPoint {
	today := date.Of(c.now())

	buckets := make(map[date.Date]float64, days)
	order := make([]date.Date, 0, days)
	for d := range today.Last(days) {
		buckets[d] = 0.0
		order = append(order, d)
	}

	for _, e := range logs {
		ts, ok := e.Time()
		if !ok {
			continue
		}
		d := date.Of(ts)
		if _, inWindow := buckets[d]; inWindow {
			buckets[d] += e.Footprint
		}
	}

	series := make([]DailyPoint, 0, len(order))
	for _, d := range order {
		series = append(series, DailyPoint{Date: d, Footprint: round2(buckets[d])})
	}
	return series
}

// TopCategoryDefault is returned by TopCategory when there is no activity at
// all in the trailing window.
const TopCategoryDefault = "General"

// TopCategory returns the category with the highest trailing 7-day total.
// Ties go to the first category reaching the maximum: known categories in
// declaration order first, then any other recorded category names sorted.
func (c Calculator) TopCategory(logs []LogEntry) string {
	breakdown := c.CategoryBreakdown(logs)
	if len(breakdown) == 0 {
		return TopCategoryDefault
	}

	var names []string
	for cat := range Categories() {
		names = append(names, cat.String())
	}
	var extras []string
	for name := range breakdown {
		if _, err := ParseCategory(name); err != nil {
			extras = append(extras, name)
		}
	}
	slices.Sort(extras)
	names = append(names, extras...)

	top, best := TopCategoryDefault, 0.0
	for _, name := range names {
		if total, ok := breakdown[name]; ok && total > best {
			top, best = name, total
		}
	}
	return top
}

// SystemAverage returns the arithmetic mean of the given weekly totals,
// rounded to 2 decimals, or 0.0 for an empty input.
func (c Calculator) SystemAverage(totals []float64) float64 {
	if len(totals) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, t := range totals {
		sum += t
	}
	return round2(sum / float64(len(totals)))
}
