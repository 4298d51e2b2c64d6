package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ecodex/carbontrack"
	"github.com/google/subcommands"
)

type tipCmd struct{}

func (*tipCmd) Name() string     { return "tip" }
func (*tipCmd) Synopsis() string { return "display a reduction tip" }
func (*tipCmd) Usage() string {
	return `cft [-u <username>] tip

  Displays a reduction tip. With a username, the tip targets the user's top
  contributing category; otherwise it is a general tip.
`
}

func (*tipCmd) SetFlags(*flag.FlagSet) {}

func (c *tipCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if *user == "" {
		fmt.Println(carbontrack.RandomTip())
		return subcommands.ExitSuccess
	}
	eng, err := openEngine()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	top := eng.Calc.TopCategory(eng.Logs(*user))
	fmt.Println(carbontrack.ContextualTip(top))
	return subcommands.ExitSuccess
}
