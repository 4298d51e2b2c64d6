package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ecodex/carbontrack"
	"github.com/google/subcommands"
)

// logCmd appends one activity entry to the user's history.
type logCmd struct {
	category    string
	activity    string
	value       float64
	description string
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "record an activity" }
func (*logCmd) Usage() string {
	return `cft -u <username> log -c <category> -a <activity> -v <value> [-m <description>]

  Records a timestamped activity and its computed footprint.
  Run "cft activities" to list known activities and their units.

Usage Examples:
$ cft -u alice log -c Food -a "Red Meat - Beef (Servings)" -v 2 -m "dinner out"

`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "c", "", "Activity category (Transportation, Food, Energy, Waste)")
	f.StringVar(&c.activity, "a", "", "Activity name, including its unit")
	f.Float64Var(&c.value, "v", 0, "Activity value (miles, servings, kWh, ...)")
	f.StringVar(&c.description, "m", "", "Optional description")
}

func (c *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name, err := username()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.activity == "" {
		fmt.Fprintln(os.Stderr, "Error: no activity given, use -a <activity>")
		return subcommands.ExitUsageError
	}
	if _, err := carbontrack.ParseCategory(c.category); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	eng, err := openEngine()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	entry := carbontrack.LogEntry{
		Category:    c.category,
		Activity:    c.activity,
		Value:       c.value,
		Description: c.description,
	}
	if err := eng.AddLog(name, entry); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	footprint := eng.Calc.Compute(c.activity, c.value)
	if carbontrack.Factor(c.activity) == 0 {
		fmt.Printf("Logged %q (unrecognized activity, footprint 0.00 kg CO2e)\n", c.activity)
	} else {
		fmt.Printf("Logged %q: %.2f kg CO2e\n", c.activity, footprint)
	}
	return subcommands.ExitSuccess
}
