package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmCmd struct {
	index int
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a log entry by index" }
func (*rmCmd) Usage() string {
	return `cft -u <username> rm -i <index>

  Deletes the log entry at the given index (as shown by "cft logs").
  Later entries shift down by one.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.index, "i", -1, "Index of the entry to delete")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	ok, err := eng.DeleteLog(name, c.index)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no log entry at index %d\n", c.index)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted entry %d\n", c.index)
	return subcommands.ExitSuccess
}
