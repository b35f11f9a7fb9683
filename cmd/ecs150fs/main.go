// Command ecs150fs is a thin CLI front end over the ecs150fs library.
// It is explicitly out of scope for the core engine (spec.md §1 lists
// "any command-line front-end ... used for testing" as an external
// collaborator) and carries no engine logic of its own: every
// subcommand in package cli is a few lines of flag parsing around a
// call into the ecs150fs package.
package main

import (
	"fmt"
	"os"

	"github.com/ecs150fs/ecs150fs/cmd/ecs150fs/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
