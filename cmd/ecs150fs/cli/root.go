// Package cli wires the ecs150fs library into a cobra command tree,
// grounded on ostafen-digler's cmd/cmd package split (root.go defining
// Execute, one file per subcommand) - the closest ecosystem precedent
// in the pack for a cobra-fronted block-storage tool.
package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const appName = "ecs150fs"

// Execute builds and runs the root command.
func Execute() error {
	root := &cobra.Command{
		Use:   appName,
		Short: appName + " - a single-mount flat file system over a block disk image",
	}

	var verbose bool
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cobra.OnInitialize(func() {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	})

	root.AddCommand(
		newFormatCmd(),
		newInfoCmd(),
		newLsCmd(),
		newCreateCmd(),
		newDeleteCmd(),
		newCatCmd(),
		newWriteCmd(),
		newExportCmd(),
		newImportCmd(),
	)
	return root.Execute()
}
