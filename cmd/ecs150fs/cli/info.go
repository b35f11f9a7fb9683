package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ecs150fs/ecs150fs/ecs150fs"
	"github.com/ecs150fs/ecs150fs/fsutil"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <image>",
		Short: "print disk geometry and free-space counters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMounted(args[0], func(fs *ecs150fs.FileSystem) error {
				report, err := fs.Info()
				if err != nil {
					return err
				}
				fmt.Printf("volume:            %s\n", report.VolumeUUID)
				fmt.Printf("total_blk_count:   %d\n", report.TotalBlockCount)
				fmt.Printf("fat_blk_count:     %d\n", report.FATBlockCount)
				fmt.Printf("rdir_blk:          %d\n", report.RootDirBlock)
				fmt.Printf("data_blk:          %d\n", report.DataBlockStart)
				fmt.Printf("data_blk_count:    %d\n", report.DataBlockCount)
				fmt.Printf("fat_free_ratio:    %s\n", fsutil.Ratio(report.FATFree, int(report.DataBlockCount)))
				fmt.Printf("rdir_free_ratio:   %s\n", fsutil.Ratio(report.RootDirFree, ecs150fs.FileMaxCount))
				return nil
			})
		},
	}
}
