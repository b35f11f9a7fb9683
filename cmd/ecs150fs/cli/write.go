package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ecs150fs/ecs150fs/block"
	"github.com/ecs150fs/ecs150fs/ecs150fs"
)

func newWriteCmd() *cobra.Command {
	var appendMode bool
	cmd := &cobra.Command{
		Use:   "write <image> <name>",
		Short: "write stdin into a file, creating it if absent",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMounted(args[0], func(fs *ecs150fs.FileSystem) error {
				name := args[1]
				if err := fs.Create(name); err != nil && !errors.Is(err, ecs150fs.ErrFileExists) {
					return err
				}
				fd, err := fs.Open(name)
				if err != nil {
					return err
				}
				defer fs.Close(fd)

				if appendMode {
					size, err := fs.Stat(fd)
					if err != nil {
						return err
					}
					if err := fs.Lseek(fd, size); err != nil {
						return err
					}
				}

				buf := make([]byte, block.BlockSize)
				for {
					n, readErr := os.Stdin.Read(buf)
					if n > 0 {
						if _, err := fs.Write(fd, buf[:n]); err != nil {
							return fmt.Errorf("write: %w", err)
						}
					}
					if readErr == io.EOF {
						return nil
					}
					if readErr != nil {
						return fmt.Errorf("write: reading stdin: %w", readErr)
					}
				}
			})
		},
	}
	cmd.Flags().BoolVar(&appendMode, "append", false, "seek to end-of-file before writing")
	return cmd
}
