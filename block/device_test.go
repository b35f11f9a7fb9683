package block_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ecs150fs/ecs150fs/block"
)

func TestCreateOpenCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "disk.img")
	dev, err := block.Create(path, 10)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if dev.Count() != 10 {
		t.Fatalf("Count() = %d, want 10", dev.Count())
	}
	if err := dev.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	dev2, err := block.Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer dev2.Close()
	if dev2.Count() != 10 {
		t.Fatalf("reopened Count() = %d, want 10", dev2.Count())
	}
}

func TestReadWriteBlockRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "disk.img")
	dev, err := block.Create(path, 4)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer dev.Close()

	want := bytes.Repeat([]byte{0xAB}, block.BlockSize)
	if err := dev.WriteBlock(2, want); err != nil {
		t.Fatalf("write: %v", err)
	}
	got := make([]byte, block.BlockSize)
	if err := dev.ReadBlock(2, got); err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatal("read did not return what was written")
	}
}

func TestReadWriteOutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "disk.img")
	dev, err := block.Create(path, 2)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer dev.Close()

	buf := make([]byte, block.BlockSize)
	if err := dev.ReadBlock(2, buf); err == nil {
		t.Fatal("expected an error reading out-of-range block 2 of a 2-block device")
	}
	if err := dev.WriteBlock(2, buf); err == nil {
		t.Fatal("expected an error writing out-of-range block 2 of a 2-block device")
	}
}

func TestOpenRejectsNonBlockMultipleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "disk.img")
	dev, err := block.Create(path, 1)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	dev.Close()

	// An exact multiple of BlockSize opens fine.
	dev2, err := block.Open(path)
	if err != nil {
		t.Fatalf("open of an exact multiple should succeed: %v", err)
	}
	dev2.Close()

	// A pre-existing file whose size is not a multiple of BlockSize must
	// be rejected on Open.
	short := filepath.Join(t.TempDir(), "short.img")
	if err := os.WriteFile(short, make([]byte, block.BlockSize+1), 0o600); err != nil {
		t.Fatalf("writing misaligned file: %v", err)
	}
	if _, err := block.Open(short); err == nil {
		t.Fatal("expected an error opening a file whose size is not a multiple of BlockSize")
	}
}

func TestWriteBufferWrongSizeRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "disk.img")
	dev, err := block.Create(path, 2)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer dev.Close()

	if err := dev.WriteBlock(0, make([]byte, 10)); err == nil {
		t.Fatal("expected an error writing an undersized buffer")
	}
}
