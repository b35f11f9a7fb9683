package cli

import (
	"github.com/spf13/cobra"

	"github.com/ecs150fs/ecs150fs/ecs150fs"
)

func newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <image> <name>",
		Short: "create an empty file in the mounted image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMounted(args[0], func(fs *ecs150fs.FileSystem) error {
				return fs.Create(args[1])
			})
		},
	}
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <image> <name>",
		Short: "delete a file from the mounted image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMounted(args[0], func(fs *ecs150fs.FileSystem) error {
				return fs.Delete(args[1])
			})
		},
	}
}
