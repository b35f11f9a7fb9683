// Package testdisk builds scratch ECS150FS disk images for tests, the
// same role filesystem/fat32/testdata/fat32.go and testhelper's file
// backend play for the teacher's test suites: a one-call way to get a
// freshly formatted, mounted file system to exercise.
package testdisk

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ecs150fs/ecs150fs/block"
	"github.com/ecs150fs/ecs150fs/ecs150fs"
)

// New formats a fresh totalBlocks-block image under t.TempDir(), mounts
// it, and registers a cleanup that unmounts it. The cleanup ignores the
// unmount error, so a descriptor left open does not fail the test.
func New(t *testing.T, totalBlocks uint16) *ecs150fs.FileSystem {
	t.Helper()
	path := filepath.Join(t.TempDir(), "disk.img")

	require.NoError(t, ecs150fs.Format(path, totalBlocks, ecs150fs.FormatOptions{}))

	dev, err := block.Open(path)
	require.NoError(t, err)

	fs, err := ecs150fs.MountDevice(dev)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = fs.Unmount()
	})
	return fs
}

// Format formats a fresh totalBlocks-block image under t.TempDir() and
// returns its path without mounting it, for tests that want to drive
// their own mount/unmount sequence (e.g. a round-trip test that mounts
// twice).
func Format(t *testing.T, totalBlocks uint16) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "disk.img")
	require.NoError(t, ecs150fs.Format(path, totalBlocks, ecs150fs.FormatOptions{}))
	return path
}
