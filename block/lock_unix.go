//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris
// +build aix darwin dragonfly freebsd linux netbsd openbsd solaris

package block

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// lock takes a non-blocking advisory exclusive lock on the backing
// file, giving spec.md's "only one disk may be mounted at a time"
// invariant some OS-level teeth beyond the in-memory mounted bool.
func (d *Device) lock() error {
	if err := unix.Flock(int(d.file.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		return fmt.Errorf("disk image %s is already locked by another mount: %w", d.path, err)
	}
	return nil
}

func (d *Device) unlock() {
	_ = unix.Flock(int(d.file.Fd()), unix.LOCK_UN)
}
