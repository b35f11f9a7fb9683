// Package ecs150fs implements the ECS150FS file system engine: the
// on-disk layout, the in-memory mirrors of that layout, the FAT-chain
// allocator, the root-directory manager, the open-file table, and the
// read/write path, as described in spec.md.
package ecs150fs

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ecs150fs/ecs150fs/block"
)

// FileSystem owns every piece of mutable state for one mounted disk:
// the cached superblock, the FAT, the root directory, and the
// descriptor table. It is constructed by Mount and destroyed by
// Unmount (spec.md §9 design note): no part of the core logic depends
// on package-level state. The free functions in compat.go forward to
// a process-wide instance purely for source compatibility with the
// original fs_* API naming.
type FileSystem struct {
	dev  *block.Device
	sb   *superblock
	fat  *fat
	root *rootDirectory
	fds  *descriptorTable
}

// MountDevice reads and validates the superblock, FAT, and root
// directory from dev and returns a ready-to-use FileSystem. dev must
// already be open; MountDevice takes ownership of it and closes it on
// Unmount. The free function Mount (compat.go) opens a path and calls
// this for source compatibility with the original fs_mount API.
func MountDevice(dev *block.Device) (*FileSystem, error) {
	sbBuf := make([]byte, BlockSize)
	if err := dev.ReadBlock(0, sbBuf); err != nil {
		return nil, fmt.Errorf("mount: error reading superblock: %w", err)
	}
	sb, err := superblockFromBytes(sbBuf)
	if err != nil {
		return nil, fmt.Errorf("mount: %w", err)
	}
	if uint32(sb.totalDiskBlocks) != dev.Count() {
		return nil, fmt.Errorf("mount: %w: superblock reports %d blocks, device has %d", ErrCorruptSuperblock, sb.totalDiskBlocks, dev.Count())
	}

	fatBuf := make([]byte, int(sb.totalFATBlocks)*BlockSize)
	for i := 0; i < int(sb.totalFATBlocks); i++ {
		if err := dev.ReadBlock(uint32(1+i), fatBuf[i*BlockSize:(i+1)*BlockSize]); err != nil {
			return nil, fmt.Errorf("mount: error reading fat block %d: %w", i, err)
		}
	}
	f, err := fatFromBytes(fatBuf, sb.dataBlocksCount)
	if err != nil {
		return nil, fmt.Errorf("mount: %w", err)
	}

	rootBuf := make([]byte, BlockSize)
	if err := dev.ReadBlock(uint32(sb.rootDirIndex), rootBuf); err != nil {
		return nil, fmt.Errorf("mount: error reading root directory: %w", err)
	}
	root, err := rootDirectoryFromBytes(rootBuf)
	if err != nil {
		return nil, fmt.Errorf("mount: %w", err)
	}

	logger.WithFields(logrusFields(sb)).Debug("ecs150fs: mounted")

	return &FileSystem{
		dev:  dev,
		sb:   sb,
		fat:  f,
		root: root,
		fds:  newDescriptorTable(),
	}, nil
}

func logrusFields(sb *superblock) map[string]interface{} {
	return map[string]interface{}{
		"volume":    sb.volumeUUID.String(),
		"total_blk": sb.totalDiskBlocks,
		"fat_blk":   sb.totalFATBlocks,
		"data_blk":  sb.dataBlocksCount,
	}
}

// Unmount flushes the FAT and root directory to disk and closes the
// underlying device. It fails if any descriptor is still open.
func (fs *FileSystem) Unmount() error {
	if fs.fds.anyOpenAtAll() {
		return ErrFileBusy
	}
	if err := fs.flushMetadata(); err != nil {
		return fmt.Errorf("unmount: %w", err)
	}
	if err := fs.dev.Close(); err != nil {
		return fmt.Errorf("unmount: error closing device: %w", err)
	}
	logger.Debug("ecs150fs: unmounted")
	return nil
}

func (fs *FileSystem) flushMetadata() error {
	fatBytes := fs.fat.bytes(fs.sb.totalFATBlocks)
	for i := 0; i < int(fs.sb.totalFATBlocks); i++ {
		if err := fs.dev.WriteBlock(uint32(1+i), fatBytes[i*BlockSize:(i+1)*BlockSize]); err != nil {
			return fmt.Errorf("error writing fat block %d: %w", i, err)
		}
	}
	if err := fs.dev.WriteBlock(uint32(fs.sb.rootDirIndex), fs.root.bytes()); err != nil {
		return fmt.Errorf("error writing root directory: %w", err)
	}
	return nil
}

// flushRoot writes just the root directory block, used eagerly by
// Delete (spec.md §4.3).
func (fs *FileSystem) flushRoot() error {
	return fs.dev.WriteBlock(uint32(fs.sb.rootDirIndex), fs.root.bytes())
}

// InfoReport is the typed result of Info(), replacing the original
// fs_info's bare printf with something a caller (or a test) can
// inspect directly.
type InfoReport struct {
	TotalBlockCount uint16
	FATBlockCount   uint8
	RootDirBlock    uint16
	DataBlockStart  uint16
	DataBlockCount  uint16
	FATFree         int
	RootDirFree     int
	VolumeUUID      uuid.UUID
}

// Info returns the current disk geometry and free-space counters.
func (fs *FileSystem) Info() (InfoReport, error) {
	return InfoReport{
		TotalBlockCount: fs.sb.totalDiskBlocks,
		FATBlockCount:   fs.sb.totalFATBlocks,
		RootDirBlock:    fs.sb.rootDirIndex,
		DataBlockStart:  fs.sb.dataBlockStart,
		DataBlockCount:  fs.sb.dataBlocksCount,
		FATFree:         fs.fat.freeCount(),
		RootDirFree:     fs.root.freeSlotCount(),
		VolumeUUID:      fs.sb.volumeUUID,
	}, nil
}

// Create adds a new, empty, zero-block file named name to the root directory.
func (fs *FileSystem) Create(name string) error {
	if _, err := fs.root.create(name); err != nil {
		return err
	}
	return nil
}

// Delete removes name from the root directory and frees its FAT
// chain. Fails if name is open anywhere or not found.
func (fs *FileSystem) Delete(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	slot := fs.root.lookup(name)
	if slot < 0 {
		return fmt.Errorf("%w: %q", ErrNoSuchFile, name)
	}
	if fs.fds.anyOpen(name) {
		return fmt.Errorf("%w: %q", ErrFileBusy, name)
	}
	fs.fat.freeChain(fs.root.entries[slot].firstDatablock)
	fs.root.entries[slot] = dirEntry{}
	return fs.flushRoot()
}

// DirEntryInfo is the public, read-only view of one root directory slot.
type DirEntryInfo struct {
	Name           string
	Size           uint32
	FirstDatablock uint16
}

// List returns every non-empty root entry in slot order.
func (fs *FileSystem) List() ([]DirEntryInfo, error) {
	entries := fs.root.list()
	out := make([]DirEntryInfo, len(entries))
	for i, e := range entries {
		out[i] = DirEntryInfo{Name: e.filename, Size: e.size, FirstDatablock: e.firstDatablock}
	}
	return out, nil
}

// Open opens an existing file by name and returns a fresh descriptor
// with offset 0. The same file may be opened multiple times; each
// descriptor tracks its own offset.
func (fs *FileSystem) Open(name string) (int, error) {
	if err := validateName(name); err != nil {
		return -1, err
	}
	if fs.root.lookup(name) < 0 {
		return -1, fmt.Errorf("%w: %q", ErrNoSuchFile, name)
	}
	return fs.fds.open(name)
}

// Close releases descriptor fd.
func (fs *FileSystem) Close(fd int) error {
	return fs.fds.close(fd)
}

// Stat returns the current size, in bytes, of the file underlying fd.
func (fs *FileSystem) Stat(fd int) (uint32, error) {
	d, err := fs.fds.get(fd)
	if err != nil {
		return 0, err
	}
	slot := fs.root.lookup(d.filename)
	if slot < 0 {
		return 0, fmt.Errorf("%w: %q", ErrNoSuchFile, d.filename)
	}
	return fs.root.entries[slot].size, nil
}

// Lseek repositions fd's offset. offset == size (seek-to-end) is
// legal and is the starting point for append; offset > size fails.
func (fs *FileSystem) Lseek(fd int, offset uint32) error {
	d, err := fs.fds.get(fd)
	if err != nil {
		return err
	}
	size, err := fs.Stat(fd)
	if err != nil {
		return err
	}
	if offset > size {
		return ErrOffsetOutOfRange
	}
	d.offset = offset
	return nil
}
