package carbontrack

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
)

// baselineFile holds the synthetic population sample, generated once per
// storage directory and never mutated afterwards.
const baselineFile = "baseline.json"

// BaselineEntry is one synthetic member of the comparison population.
type BaselineEntry struct {
	ID          string  `json:"id"`
	WeeklyTotal float64 `json:"weekly_total"`
}

const (
	baselineSize   = 100
	baselineMean   = 120.0
	baselineStdDev = 30.0
	baselineMin    = 50.0
	baselineMax    = 200.0
)

// EnsureBaseline generates and persists the synthetic population sample if it
// does not exist yet. An already-existing baseline is success, so concurrent
// initialization races are harmless.
func (s *Store) EnsureBaseline() error {
	path := filepath.Join(s.Dir, baselineFile)
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("could not stat baseline %q: %w", path, err)
	}

	sample := make([]BaselineEntry, 0, baselineSize)
	for i := 0; i < baselineSize; i++ {
		total := rand.NormFloat64()*baselineStdDev + baselineMean
		total = max(baselineMin, min(baselineMax, total))
		sample = append(sample, BaselineEntry{
			ID:          fmt.Sprintf("baseline-%d", i),
			WeeklyTotal: round2(total),
		})
	}
	return writeJSONFile(path, sample)
}

// BaselineTotals returns the persisted synthetic weekly totals. A missing or
// corrupt baseline contributes no totals rather than failing.
func (s *Store) BaselineTotals() []float64 {
	path := filepath.Join(s.Dir, baselineFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: could not read baseline %q: %v", path, err)
		}
		return nil
	}
	var sample []BaselineEntry
	if err := json.Unmarshal(data, &sample); err != nil {
		log.Printf("warning: corrupt baseline %q: %v", path, err)
		return nil
	}
	totals := make([]float64, 0, len(sample))
	for _, e := range sample {
		totals = append(totals, e.WeeklyTotal)
	}
	return totals
}
