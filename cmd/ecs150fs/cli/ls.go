package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	times "gopkg.in/djherbis/times.v1"

	"github.com/ecs150fs/ecs150fs/ecs150fs"
)

func newLsCmd() *cobra.Command {
	var showTimes bool
	cmd := &cobra.Command{
		Use:   "ls <image>",
		Short: "list every file in the mounted image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if showTimes {
				// times.v1 reports the host filesystem's timestamps for the
				// backing image file, not per-ECS150FS-file times: spec.md's
				// flat directory entries carry no timestamps at all (§3).
				t, err := times.Stat(args[0])
				if err != nil {
					return fmt.Errorf("ls --times: %w", err)
				}
				fmt.Printf("image mtime: %s\n", t.ModTime())
				fmt.Printf("image atime: %s\n", t.AccessTime())
				if t.HasChangeTime() {
					fmt.Printf("image ctime: %s\n", t.ChangeTime())
				}
				if t.HasBirthTime() {
					fmt.Printf("image btime: %s\n", t.BirthTime())
				}
			}
			return withMounted(args[0], func(fs *ecs150fs.FileSystem) error {
				entries, err := fs.List()
				if err != nil {
					return err
				}
				for _, e := range entries {
					fmt.Printf("file: %s, size: %d, data_blk: %d\n", e.Name, e.Size, e.FirstDatablock)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&showTimes, "times", false, "also print the backing image file's host timestamps")
	return cmd
}
