package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ecs150fs/ecs150fs/block"
	"github.com/ecs150fs/ecs150fs/ecs150fs"
)

func newCatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cat <image> <name>",
		Short: "print a file's contents to stdout",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMounted(args[0], func(fs *ecs150fs.FileSystem) error {
				fd, err := fs.Open(args[1])
				if err != nil {
					return err
				}
				defer fs.Close(fd)

				buf := make([]byte, block.BlockSize)
				for {
					n, err := fs.Read(fd, buf)
					if err != nil {
						return err
					}
					if n == 0 {
						return nil
					}
					if _, err := os.Stdout.Write(buf[:n]); err != nil {
						return fmt.Errorf("cat: %w", err)
					}
				}
			})
		},
	}
}
