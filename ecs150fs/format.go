package ecs150fs

import (
	"fmt"
	"os"

	"github.com/google/renameio"
	"github.com/google/uuid"
)

// FormatOptions controls image creation. It is kept as a struct, not
// positional parameters, so it can grow without breaking callers - the
// same shape as disk.FilesystemSpec in the teacher codebase.
type FormatOptions struct {
	// VolumeUUID, if the zero UUID, is replaced with a random one.
	VolumeUUID uuid.UUID
}

// Format creates a brand-new ECS150FS image of the given block count
// at path and returns it ready to Mount. The image is written to a
// temporary file and atomically renamed into place, so a failure
// partway through never leaves a half-written file at path (the same
// guarantee renameio.WriteFile gives host files).
func Format(path string, totalDiskBlocks uint16, opts FormatOptions) error {
	volUUID := opts.VolumeUUID
	if volUUID == uuid.Nil {
		var err error
		volUUID, err = uuid.NewRandom()
		if err != nil {
			return fmt.Errorf("format: error generating volume uuid: %w", err)
		}
	}

	sb, err := newSuperblock(totalDiskBlocks, volUUID)
	if err != nil {
		return fmt.Errorf("format: %w", err)
	}

	t, err := renameio.TempFile("", path)
	if err != nil {
		return fmt.Errorf("format: error creating temp file for %s: %w", path, err)
	}
	defer t.Cleanup()

	size := int64(totalDiskBlocks) * BlockSize
	if err := t.Truncate(size); err != nil {
		return fmt.Errorf("format: error sizing %s to %d bytes: %w", path, size, err)
	}
	if _, err := t.Write(sb.bytes()); err != nil {
		return fmt.Errorf("format: error writing superblock: %w", err)
	}

	f := newFAT(sb.dataBlocksCount)
	fatBytes := f.bytes(sb.totalFATBlocks)
	if _, err := t.Write(fatBytes); err != nil {
		return fmt.Errorf("format: error writing fat: %w", err)
	}

	root := newRootDirectory()
	if _, err := t.Write(root.bytes()); err != nil {
		return fmt.Errorf("format: error writing root directory: %w", err)
	}

	dataBytes := make([]byte, int64(sb.dataBlocksCount)*BlockSize)
	if _, err := t.Write(dataBytes); err != nil {
		return fmt.Errorf("format: error writing data region: %w", err)
	}

	if err := t.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("format: error committing %s: %w", path, err)
	}

	logger.WithField("path", path).WithField("blocks", totalDiskBlocks).Info("ecs150fs: formatted")
	return nil
}

// Exists reports whether a file already sits at path, used by the CLI
// to give a clearer error than a raw creation failure would.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
