package ecs150fs

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
)

// superblock is the cached, immutable-after-mount copy of block 0.
//
// VolumeUUID is additive: it lives in the signature block's padding
// region and is never consulted by the mount validation below, so an
// image written by a version of this package without it still mounts
// cleanly (the field just reads as the zero UUID).
type superblock struct {
	totalDiskBlocks uint16
	rootDirIndex    uint16
	dataBlockStart  uint16
	dataBlocksCount uint16
	totalFATBlocks  uint8
	volumeUUID      uuid.UUID
}

func superblockFromBytes(b []byte) (*superblock, error) {
	if len(b) != BlockSize {
		return nil, fmt.Errorf("superblock must be exactly %d bytes, got %d", BlockSize, len(b))
	}
	if !bytes.Equal(b[0:8], []byte(Signature)) {
		return nil, fmt.Errorf("%w: bad signature", ErrCorruptSuperblock)
	}
	sb := &superblock{
		totalDiskBlocks: binary.LittleEndian.Uint16(b[8:10]),
		rootDirIndex:    binary.LittleEndian.Uint16(b[10:12]),
		dataBlockStart:  binary.LittleEndian.Uint16(b[12:14]),
		dataBlocksCount: binary.LittleEndian.Uint16(b[14:16]),
		totalFATBlocks:  b[16],
	}
	copy(sb.volumeUUID[:], b[17:33])

	if sb.rootDirIndex != 1+uint16(sb.totalFATBlocks) {
		return nil, fmt.Errorf("%w: root_dir_index %d != 1+total_FAT_blocks %d", ErrCorruptSuperblock, sb.rootDirIndex, sb.totalFATBlocks)
	}
	if sb.dataBlockStart != sb.rootDirIndex+1 {
		return nil, fmt.Errorf("%w: data_block_start_index %d != root_dir_index+1 %d", ErrCorruptSuperblock, sb.dataBlockStart, sb.rootDirIndex+1)
	}
	if sb.dataBlocksCount != sb.totalDiskBlocks-sb.dataBlockStart {
		return nil, fmt.Errorf("%w: data_blocks_count %d != total_disk_blocks-data_block_start_index %d", ErrCorruptSuperblock, sb.dataBlocksCount, sb.totalDiskBlocks-sb.dataBlockStart)
	}
	return sb, nil
}

func (sb *superblock) bytes() []byte {
	b := make([]byte, BlockSize)
	copy(b[0:8], Signature)
	binary.LittleEndian.PutUint16(b[8:10], sb.totalDiskBlocks)
	binary.LittleEndian.PutUint16(b[10:12], sb.rootDirIndex)
	binary.LittleEndian.PutUint16(b[12:14], sb.dataBlockStart)
	binary.LittleEndian.PutUint16(b[14:16], sb.dataBlocksCount)
	b[16] = sb.totalFATBlocks
	copy(b[17:33], sb.volumeUUID[:])
	return b
}

// fatBlocksNeeded returns ceil(dataBlocksCount*2 / BlockSize).
func fatBlocksNeeded(dataBlocksCount uint16) uint8 {
	entriesPerBlock := BlockSize / fatEntrySize
	blocks := (int(dataBlocksCount) + entriesPerBlock - 1) / entriesPerBlock
	return uint8(blocks)
}

func newSuperblock(totalDiskBlocks uint16, volumeUUID uuid.UUID) (*superblock, error) {
	if totalDiskBlocks < 3 {
		return nil, fmt.Errorf("disk must have at least 3 blocks (superblock, fat, root), got %d", totalDiskBlocks)
	}
	// total_FAT_blocks depends on data_blocks_count, which depends on
	// total_FAT_blocks: solve by trying successive FAT sizes, the way a
	// fixed-point mkfs computation would.
	var fatBlocks uint8
	for {
		rootDirIndex := 1 + uint16(fatBlocks)
		dataBlockStart := rootDirIndex + 1
		if dataBlockStart >= totalDiskBlocks {
			return nil, fmt.Errorf("disk of %d blocks has no room for any data blocks", totalDiskBlocks)
		}
		dataBlocksCount := totalDiskBlocks - dataBlockStart
		needed := fatBlocksNeeded(dataBlocksCount)
		if needed == fatBlocks {
			return &superblock{
				totalDiskBlocks: totalDiskBlocks,
				rootDirIndex:    rootDirIndex,
				dataBlockStart:  dataBlockStart,
				dataBlocksCount: dataBlocksCount,
				totalFATBlocks:  fatBlocks,
				volumeUUID:      volumeUUID,
			}, nil
		}
		fatBlocks = needed
	}
}
