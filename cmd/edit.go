package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ecodex/carbontrack"
	"github.com/google/subcommands"
)

// editCmd merges a partial edit into an existing log entry. Only flags the
// user explicitly set are applied; everything else keeps its stored value.
type editCmd struct {
	index       int
	timestamp   string
	category    string
	activity    string
	value       float64
	description string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit a log entry by index" }
func (*editCmd) Usage() string {
	return `cft -u <username> edit -i <index> [-t <timestamp>] [-c <category>] [-a <activity>] [-v <value>] [-m <description>]

  Updates the log entry at the given index (as shown by "cft logs"). Fields
  not given keep their current value; the original timestamp is preserved
  unless -t supplies one. The footprint is recomputed from the merged
  activity and value.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.index, "i", -1, "Index of the entry to edit")
	f.StringVar(&c.timestamp, "t", "", "New timestamp (ISO-8601)")
	f.StringVar(&c.category, "c", "", "New category")
	f.StringVar(&c.activity, "a", "", "New activity")
	f.Float64Var(&c.value, "v", 0, "New value")
	f.StringVar(&c.description, "m", "", "New description")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name, err := username()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	var u carbontrack.LogUpdate
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "t":
			u.Timestamp = &c.timestamp
		case "c":
			u.Category = &c.category
		case "a":
			u.Activity = &c.activity
		case "v":
			u.Value = &c.value
		case "m":
			u.Description = &c.description
		}
	})
	if u.Category != nil {
		if _, err := carbontrack.ParseCategory(*u.Category); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	eng, err := openEngine()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	ok, err := eng.UpdateLog(name, c.index, u)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no log entry at index %d\n", c.index)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated entry %d\n", c.index)
	return subcommands.ExitSuccess
}
