package ecs150fs

import (
	"fmt"
	"sync"

	"github.com/ecs150fs/ecs150fs/block"
)

// This file provides a free-function API mirroring the original
// fs_mount/fs_umount/fs_info/... C surface (spec.md §9 design note:
// "the API may still expose free functions that forward to a
// process-wide instance for source compatibility, but the core logic
// must not depend on static storage"). Every function here is a thin
// wrapper around a *FileSystem method; none of the engine logic in
// fs.go, io.go, fat.go, directory.go, descriptor.go reaches into this
// singleton.
var (
	singletonMu sync.Mutex
	singleton   *FileSystem
)

// Mount opens path as a block device and mounts it as the process-wide
// file system instance.
func Mount(path string) error {
	singletonMu.Lock()
	defer singletonMu.Unlock()
	if singleton != nil {
		return ErrAlreadyMounted
	}
	dev, err := block.Open(path)
	if err != nil {
		return fmt.Errorf("mount: %w", err)
	}
	fs, err := MountDevice(dev)
	if err != nil {
		dev.Close()
		return err
	}
	singleton = fs
	return nil
}

func current() (*FileSystem, error) {
	singletonMu.Lock()
	defer singletonMu.Unlock()
	if singleton == nil {
		return nil, ErrNotMounted
	}
	return singleton, nil
}

// Unmount flushes and closes the process-wide instance.
func Unmount() error {
	singletonMu.Lock()
	fs := singleton
	singletonMu.Unlock()
	if fs == nil {
		return ErrNotMounted
	}
	if err := fs.Unmount(); err != nil {
		return err
	}
	singletonMu.Lock()
	singleton = nil
	singletonMu.Unlock()
	return nil
}

// Info prints the process-wide instance's geometry and free-space report.
func Info() error {
	fs, err := current()
	if err != nil {
		return err
	}
	report, err := fs.Info()
	if err != nil {
		return err
	}
	fmt.Printf("FS Info:\n")
	fmt.Printf("total_blk_count=%d\n", report.TotalBlockCount)
	fmt.Printf("fat_blk_count=%d\n", report.FATBlockCount)
	fmt.Printf("rdir_blk=%d\n", report.RootDirBlock)
	fmt.Printf("data_blk=%d\n", report.DataBlockStart)
	fmt.Printf("data_blk_count=%d\n", report.DataBlockCount)
	fmt.Printf("fat_free_ratio=%d/%d\n", report.FATFree, report.DataBlockCount)
	fmt.Printf("rdir_free_ratio=%d/%d\n", report.RootDirFree, FileMaxCount)
	return nil
}

// Create creates name on the process-wide instance.
func Create(name string) error {
	fs, err := current()
	if err != nil {
		return err
	}
	return fs.Create(name)
}

// Delete removes name from the process-wide instance.
func Delete(name string) error {
	fs, err := current()
	if err != nil {
		return err
	}
	return fs.Delete(name)
}

// Ls prints every file on the process-wide instance.
func Ls() error {
	fs, err := current()
	if err != nil {
		return err
	}
	entries, err := fs.List()
	if err != nil {
		return err
	}
	fmt.Printf("FS Ls:\n")
	for _, e := range entries {
		fmt.Printf("file: %s, size: %d, data_blk: %d\n", e.Name, e.Size, e.FirstDatablock)
	}
	return nil
}

// Open opens name on the process-wide instance and returns its descriptor.
func Open(name string) (int, error) {
	fs, err := current()
	if err != nil {
		return -1, err
	}
	return fs.Open(name)
}

// Close closes fd on the process-wide instance.
func Close(fd int) error {
	fs, err := current()
	if err != nil {
		return err
	}
	return fs.Close(fd)
}

// Stat returns fd's size on the process-wide instance.
func Stat(fd int) (int, error) {
	fs, err := current()
	if err != nil {
		return -1, err
	}
	size, err := fs.Stat(fd)
	if err != nil {
		return -1, err
	}
	return int(size), nil
}

// Lseek repositions fd's offset on the process-wide instance.
func Lseek(fd int, offset int) error {
	fs, err := current()
	if err != nil {
		return err
	}
	if offset < 0 {
		return ErrOffsetOutOfRange
	}
	return fs.Lseek(fd, uint32(offset))
}

// Read reads from fd on the process-wide instance.
func Read(fd int, buf []byte) (int, error) {
	fs, err := current()
	if err != nil {
		return -1, err
	}
	n, err := fs.Read(fd, buf)
	if err != nil {
		return -1, err
	}
	return n, nil
}

// Write writes to fd on the process-wide instance.
func Write(fd int, buf []byte) (int, error) {
	fs, err := current()
	if err != nil {
		return -1, err
	}
	n, err := fs.Write(fd, buf)
	if err != nil {
		return -1, err
	}
	return n, nil
}
