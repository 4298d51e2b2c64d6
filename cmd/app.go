// Package cmd implements the CLI application to manage a personal carbon
// footprint ledger. It contains no business logic: every command delegates to
// the engine and formats the result.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/ecodex/carbontrack"
	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data", "user_data", "Path to the user data storage directory")
var user = flag.String("u", "", "Username to operate on")

// Commands lists every subcommand of the application.
// A main package registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&registerCmd{},
	&logCmd{},
	&logsCmd{},
	&editCmd{},
	&rmCmd{},
	&goalCmd{},
	&summaryCmd{},
	&compareCmd{},
	&exportCmd{},
	&tipCmd{},
	&activitiesCmd{},
}

// openEngine opens the storage directory and returns the engine over it.
func openEngine() (*carbontrack.Engine, error) {
	store, err := carbontrack.NewStore(*dataDir)
	if err != nil {
		return nil, err
	}
	return carbontrack.NewEngine(store), nil
}

// username returns the username selected with -u.
func username() (string, error) {
	if *user == "" {
		return "", fmt.Errorf("no username given, use -u <username>")
	}
	return *user, nil
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when rendering is not possible.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
