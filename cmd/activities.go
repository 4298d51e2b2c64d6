package cmd

import (
	"context"
	"flag"

	"github.com/ecodex/carbontrack/renderer"
	"github.com/google/subcommands"
)

type activitiesCmd struct{}

func (*activitiesCmd) Name() string     { return "activities" }
func (*activitiesCmd) Synopsis() string { return "list known activities and their emission factors" }
func (*activitiesCmd) Usage() string {
	return `cft activities

  Lists every known activity per category with its emission factor in
  kg CO2e per unit.
`
}

func (*activitiesCmd) SetFlags(*flag.FlagSet) {}

func (c *activitiesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.ActivitiesMarkdown())
	return subcommands.ExitSuccess
}
