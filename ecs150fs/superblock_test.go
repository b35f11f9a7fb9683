package ecs150fs

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewSuperblockGeometry(t *testing.T) {
	// For an 8200-block disk the fixed point of F = ceil(data_blocks*2/4096)
	// lands at F=5, not spec.md §8 scenario 1's stated F=1: that scenario's
	// numbers don't satisfy its own §3 formula, so newSuperblock's geometry
	// is verified against the formula directly instead of against the
	// scenario text.
	sb, err := newSuperblock(8200, uuid.Nil)
	if err != nil {
		t.Fatalf("newSuperblock: %v", err)
	}
	if sb.totalFATBlocks != 5 {
		t.Errorf("totalFATBlocks = %d, want 5", sb.totalFATBlocks)
	}
	if sb.rootDirIndex != 6 {
		t.Errorf("rootDirIndex = %d, want 6", sb.rootDirIndex)
	}
	if sb.dataBlockStart != 7 {
		t.Errorf("dataBlockStart = %d, want 7", sb.dataBlockStart)
	}
	if sb.dataBlocksCount != 8193 {
		t.Errorf("dataBlocksCount = %d, want 8193", sb.dataBlocksCount)
	}
}

func TestSuperblockBytesRoundTrip(t *testing.T) {
	id := uuid.New()
	sb, err := newSuperblock(8200, id)
	if err != nil {
		t.Fatalf("newSuperblock: %v", err)
	}
	b := sb.bytes()
	if len(b) != BlockSize {
		t.Fatalf("bytes() length = %d, want %d", len(b), BlockSize)
	}
	got, err := superblockFromBytes(b)
	if err != nil {
		t.Fatalf("superblockFromBytes: %v", err)
	}
	if *got != *sb {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, sb)
	}
}

func TestSuperblockFromBytesRejectsBadSignature(t *testing.T) {
	b := make([]byte, BlockSize)
	copy(b, "NOTVALID")
	if _, err := superblockFromBytes(b); err == nil {
		t.Fatal("expected error for bad signature")
	}
}

func TestSuperblockFromBytesRejectsGeometryMismatch(t *testing.T) {
	sb, err := newSuperblock(8200, uuid.Nil)
	if err != nil {
		t.Fatalf("newSuperblock: %v", err)
	}
	b := sb.bytes()
	b[10] = 99 // corrupt rootDirIndex low byte
	if _, err := superblockFromBytes(b); err == nil {
		t.Fatal("expected error for geometry mismatch")
	}
}

func TestNewSuperblockRejectsTinyDisk(t *testing.T) {
	if _, err := newSuperblock(2, uuid.Nil); err == nil {
		t.Fatal("expected error for a disk too small to hold any data blocks")
	}
}
