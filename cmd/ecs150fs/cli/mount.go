package cli

import (
	"fmt"

	"github.com/ecs150fs/ecs150fs/block"
	"github.com/ecs150fs/ecs150fs/ecs150fs"
)

// withMounted opens path, mounts it, runs fn, and always unmounts
// before returning - every subcommand here is a single mount/operate/
// unmount round trip, since the spec's single-caller model has no
// notion of a long-lived CLI session (spec.md §5).
func withMounted(path string, fn func(fs *ecs150fs.FileSystem) error) error {
	dev, err := block.Open(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	fs, err := ecs150fs.MountDevice(dev)
	if err != nil {
		dev.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	opErr := fn(fs)

	if err := fs.Unmount(); err != nil && opErr == nil {
		opErr = fmt.Errorf("%s: %w", path, err)
	}
	return opErr
}
