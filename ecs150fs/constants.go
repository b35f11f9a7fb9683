package ecs150fs

import "github.com/ecs150fs/ecs150fs/block"

const (
	// BlockSize is the fixed size, in bytes, of every block on the disk.
	BlockSize = block.BlockSize

	// Signature is the 8-byte ASCII literal every mounted superblock must carry.
	Signature = "ECS150FS"

	// FilenameLen is the on-disk size of a root entry's filename field,
	// including the terminating NUL. The longest legal name is FilenameLen-1 bytes.
	FilenameLen = 16

	// FileMaxCount is the fixed number of entries in the root directory.
	FileMaxCount = 128

	// OpenMaxCount is the fixed number of simultaneously open descriptors.
	OpenMaxCount = 32

	// FatEOC is the end-of-chain sentinel FAT entry value.
	FatEOC = 0xFFFF

	superblockEntrySize = 8 + 2 + 2 + 2 + 2 + 1
	rootEntrySize       = 32
	fatEntrySize        = 2
)
