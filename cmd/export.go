package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ecodex/carbontrack/date"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
	from   string
	to     string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the activity log as CSV" }
func (*exportCmd) Usage() string {
	return `cft -u <username> export [-o <file>] [-from <date>] [-to <date>]

  Writes the activity log as CSV in stored order, to stdout by default.
  The optional -from and -to dates (ISO format) filter entries by calendar
  day, inclusive on both ends. An empty result still produces the header.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file (defaults to stdout)")
	f.StringVar(&c.from, "from", "", "Start date, inclusive (e.g. 2025-08-01)")
	f.StringVar(&c.to, "to", "", "End date, inclusive")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name, err := username()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	var from, to *date.Date
	if c.from != "" {
		d, err := date.Parse(c.from)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
			return subcommands.ExitUsageError
		}
		from = &d
	}
	if c.to != "" {
		d, err := date.Parse(c.to)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
			return subcommands.ExitUsageError
		}
		to = &d
	}

	var w io.Writer = os.Stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening output file %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		w = file
	}

	eng, err := openEngine()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := eng.ExportCSV(w, name, from, to); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting logs: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.output != "" {
		fmt.Printf("Exported logs to %s\n", c.output)
	}
	return subcommands.ExitSuccess
}
