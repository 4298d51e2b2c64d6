package carbontrack

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/ecodex/carbontrack/date"
)

// exportColumns is the fixed column order of the CSV export.
var exportColumns = []string{"timestamp", "category", "activity", "value", "footprint", "description"}

// ExportCSV writes the user's log entries as CSV in stored order, one row per
// entry. The optional from/to bounds filter entries by calendar date,
// inclusive on both ends; entries with unparsable timestamps are skipped when
// a filter is set. An empty result still produces a valid header-only output.
func (g *Engine) ExportCSV(w io.Writer, username string, from, to *date.Date) error {
	logs := g.Store.Load(username).Logs

	cw := csv.NewWriter(w)
	if err := cw.Write(exportColumns); err != nil {
		return fmt.Errorf("could not write CSV header: %w", err)
	}
	for _, e := range logs {
		if from != nil || to != nil {
			ts, ok := e.Time()
			if !ok {
				continue
			}
			d := date.Of(ts)
			if from != nil && d.Before(*from) {
				continue
			}
			if to != nil && d.After(*to) {
				continue
			}
		}
		row := []string{
			e.Timestamp,
			e.Category,
			e.Activity,
			strconv.FormatFloat(e.Value, 'f', -1, 64),
			strconv.FormatFloat(e.Footprint, 'f', -1, 64),
			e.Description,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("could not write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
