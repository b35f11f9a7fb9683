package ecs150fs

import "errors"

// Sentinel errors, grouped by the taxonomy in spec.md §7. Failures
// detected by this package map to one of these; errors from the block
// device are returned wrapped rather than mapped. None are swallowed.
var (
	// ErrAlreadyMounted is returned by Mount when a disk is already mounted.
	ErrAlreadyMounted = errors.New("a disk is already mounted")
	// ErrNotMounted is returned by any operation that requires a mounted disk.
	ErrNotMounted = errors.New("no disk is mounted")
	// ErrCorruptSuperblock is returned by Mount when the superblock signature or geometry is invalid.
	ErrCorruptSuperblock = errors.New("superblock signature or geometry is invalid")
	// ErrCorruptFAT is returned by Mount when FAT entry 0 is not FAT_EOC.
	ErrCorruptFAT = errors.New("fat entry 0 is not end-of-chain")
	// ErrCorruptChain is returned when a FAT chain walk exceeds the maximum possible length.
	ErrCorruptChain = errors.New("fat chain exceeds data block count")
	// ErrInvalidName is returned for a null, empty, or too-long filename.
	ErrInvalidName = errors.New("invalid filename")
	// ErrFileExists is returned by Create when the name is already used.
	ErrFileExists = errors.New("file already exists")
	// ErrNoSuchFile is returned by Delete/Open when the name is not found.
	ErrNoSuchFile = errors.New("no such file")
	// ErrRootDirFull is returned by Create when all 128 root entries are in use.
	ErrRootDirFull = errors.New("root directory is full")
	// ErrTooManyOpenFiles is returned by Open when 32 descriptors are already in use.
	ErrTooManyOpenFiles = errors.New("too many open files")
	// ErrFileBusy is returned by Delete/Unmount when an open descriptor references the file/disk.
	ErrFileBusy = errors.New("file is open")
	// ErrBadDescriptor is returned for an out-of-range or empty descriptor slot.
	ErrBadDescriptor = errors.New("bad file descriptor")
	// ErrOffsetOutOfRange is returned by Lseek when offset > file size.
	ErrOffsetOutOfRange = errors.New("offset exceeds file size")
	// ErrNilBuffer is returned by Read/Write when passed a nil buffer.
	ErrNilBuffer = errors.New("buffer is nil")
)
