package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ecodex/carbontrack"
	"github.com/google/subcommands"
)

// goalCmd shows or sets the user's reduction goal. Setting is gated on the
// credential when the record carries one.
type goalCmd struct {
	set      float64
	goalType string
	password string
}

func (*goalCmd) Name() string     { return "goal" }
func (*goalCmd) Synopsis() string { return "show or set the reduction goal" }
func (*goalCmd) Usage() string {
	return `cft -u <username> goal [-set <value> [-type daily|weekly] [-p <password>]]

  Without -set, shows the current goal. With -set, updates the goal: the
  value must be positive, and -p is required for users registered with a
  password. The first successful set completes the first-run flow.
`
}

func (c *goalCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.set, "set", 0, "New goal value in kg CO2e (must be positive)")
	f.StringVar(&c.goalType, "type", "weekly", "Goal period: daily or weekly")
	f.StringVar(&c.password, "p", "", "Password, for users registered with one")
}

func (c *goalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name, err := username()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	eng, err := openEngine()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	setRequested := false
	f.Visit(func(fl *flag.Flag) {
		if fl.Name == "set" {
			setRequested = true
		}
	})

	if !setRequested {
		value, goalType := eng.Goal(name)
		fmt.Printf("Current goal: %.2f kg CO2e (%s)\n", value, goalType)
		if eng.NeedsInitialGoal(name) {
			fmt.Println("This is the default goal; set your own with -set <value>.")
		}
		return subcommands.ExitSuccess
	}

	goalType, err := carbontrack.ParseGoalType(c.goalType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if eng.Store.Load(name).Credential != "" && !eng.Store.Verify(name, c.password) {
		fmt.Fprintln(os.Stderr, "Error: invalid username or password")
		return subcommands.ExitFailure
	}
	if err := eng.SetGoal(name, c.set, goalType); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Goal set to %.2f kg CO2e (%s)\n", c.set, goalType)
	return subcommands.ExitSuccess
}
