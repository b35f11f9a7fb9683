// Package block implements the block device adapter consumed by ecs150fs.
//
// A Device is a fixed-BlockSize, block-addressable backing store for a
// single mounted ECS150FS image: open/close/count/read(idx)/write(idx),
// nothing more. It wraps an *os.File the way
// github.com/diskfs/go-diskfs/backend/file wraps one for disk images,
// but it never interprets block contents - that is ecs150fs's job.
package block

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// BlockSize is the fixed size, in bytes, of every block read from or
// written to a Device.
const BlockSize = 4096

var (
	// ErrNotOpen is returned by any operation attempted before Open/Create.
	ErrNotOpen = errors.New("block device not open")
	// ErrOutOfRange is returned by ReadBlock/WriteBlock for an index outside [0, Count()).
	ErrOutOfRange = errors.New("block index out of range")
	// ErrShortIO is returned when a read or write transferred fewer than BlockSize bytes.
	ErrShortIO = errors.New("short block i/o")
)

// Device is a block-addressable backing file for one mounted disk image.
type Device struct {
	file   *os.File
	path   string
	blocks uint32
}

// Open opens an existing disk image file for block I/O. The file size
// must be an exact multiple of BlockSize.
func Open(path string) (*Device, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("could not open disk image %s: %w", path, err)
	}
	return fromFile(path, f)
}

// Create creates a new disk image file of the given block count, all
// blocks zeroed, and opens it for block I/O.
func Create(path string, blocks uint32) (*Device, error) {
	if blocks == 0 {
		return nil, errors.New("must create a disk image with at least one block")
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, fmt.Errorf("could not create disk image %s: %w", path, err)
	}
	size := int64(blocks) * BlockSize
	if err := f.Truncate(size); err != nil {
		f.Close()
		os.Remove(path)
		return nil, fmt.Errorf("could not size disk image %s to %d bytes: %w", path, size, err)
	}
	return &Device{file: f, path: path, blocks: blocks}, nil
}

func fromFile(path string, f *os.File) (*Device, error) {
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("could not stat disk image %s: %w", path, err)
	}
	if info.Size()%BlockSize != 0 {
		f.Close()
		return nil, fmt.Errorf("disk image %s size %d is not a multiple of block size %d", path, info.Size(), BlockSize)
	}
	d := &Device{
		file:   f,
		path:   path,
		blocks: uint32(info.Size() / BlockSize),
	}
	if err := d.lock(); err != nil {
		f.Close()
		return nil, err
	}
	return d, nil
}

// Close releases the advisory lock, if any, and closes the backing file.
func (d *Device) Close() error {
	if d == nil || d.file == nil {
		return ErrNotOpen
	}
	d.unlock()
	err := d.file.Close()
	d.file = nil
	return err
}

// Count returns the number of BlockSize blocks in the device.
func (d *Device) Count() uint32 {
	if d == nil || d.file == nil {
		return 0
	}
	return d.blocks
}

// ReadBlock reads block index idx into buf, which must be exactly BlockSize bytes.
func (d *Device) ReadBlock(idx uint32, buf []byte) error {
	if d == nil || d.file == nil {
		return ErrNotOpen
	}
	if len(buf) != BlockSize {
		return fmt.Errorf("read buffer must be %d bytes, got %d", BlockSize, len(buf))
	}
	if idx >= d.blocks {
		return fmt.Errorf("%w: block %d (have %d blocks)", ErrOutOfRange, idx, d.blocks)
	}
	n, err := d.file.ReadAt(buf, int64(idx)*BlockSize)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("error reading block %d: %w", idx, err)
	}
	if n != BlockSize {
		return fmt.Errorf("%w: read %d of %d bytes at block %d", ErrShortIO, n, BlockSize, idx)
	}
	return nil
}

// WriteBlock writes buf, which must be exactly BlockSize bytes, to block index idx.
func (d *Device) WriteBlock(idx uint32, buf []byte) error {
	if d == nil || d.file == nil {
		return ErrNotOpen
	}
	if len(buf) != BlockSize {
		return fmt.Errorf("write buffer must be %d bytes, got %d", BlockSize, len(buf))
	}
	if idx >= d.blocks {
		return fmt.Errorf("%w: block %d (have %d blocks)", ErrOutOfRange, idx, d.blocks)
	}
	n, err := d.file.WriteAt(buf, int64(idx)*BlockSize)
	if err != nil {
		return fmt.Errorf("error writing block %d: %w", idx, err)
	}
	if n != BlockSize {
		return fmt.Errorf("%w: wrote %d of %d bytes at block %d", ErrShortIO, n, BlockSize, idx)
	}
	return nil
}

// Path returns the path the device was opened or created from.
func (d *Device) Path() string {
	if d == nil {
		return ""
	}
	return d.path
}
