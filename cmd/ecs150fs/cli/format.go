package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ecs150fs/ecs150fs/ecs150fs"
)

func newFormatCmd() *cobra.Command {
	var blocks uint16
	cmd := &cobra.Command{
		Use:   "format <image>",
		Short: "create a fresh ECS150FS image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if ecs150fs.Exists(args[0]) {
				return fmt.Errorf("%s already exists", args[0])
			}
			return ecs150fs.Format(args[0], blocks, ecs150fs.FormatOptions{})
		},
	}
	cmd.Flags().Uint16Var(&blocks, "blocks", 8200, "total number of 4096-byte blocks in the new image")
	return cmd
}
