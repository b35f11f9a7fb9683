package ecs150fs_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ecs150fs/ecs150fs/ecs150fs"
	"github.com/ecs150fs/ecs150fs/testdisk"
)

func TestWriteMidBlockPreservesSurroundingBytes(t *testing.T) {
	fs := testdisk.New(t, 8200)
	mustCreate(t, fs, "a")
	fd := mustOpen(t, fs, "a")

	base := bytes.Repeat([]byte{'x'}, 4096)
	if _, err := fs.Write(fd, base); err != nil {
		t.Fatalf("initial write: %v", err)
	}

	if err := fs.Lseek(fd, 10); err != nil {
		t.Fatalf("lseek: %v", err)
	}
	if _, err := fs.Write(fd, []byte("YYYY")); err != nil {
		t.Fatalf("mid-block write: %v", err)
	}

	if err := fs.Lseek(fd, 0); err != nil {
		t.Fatalf("lseek: %v", err)
	}
	buf := make([]byte, 4096)
	n, err := fs.Read(fd, buf)
	if err != nil || n != 4096 {
		t.Fatalf("read = %d, %v, want 4096, nil", n, err)
	}
	want := append([]byte{}, base...)
	copy(want[10:14], "YYYY")
	if !bytes.Equal(buf, want) {
		t.Fatal("overwrite in the middle of a block must not disturb surrounding bytes")
	}
}

func TestWriteExactlyAtSizeExtends(t *testing.T) {
	fs := testdisk.New(t, 8200)
	mustCreate(t, fs, "a")
	fd := mustOpen(t, fs, "a")

	if _, err := fs.Write(fd, []byte("abc")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := fs.Lseek(fd, 3); err != nil {
		t.Fatalf("lseek to size: %v", err)
	}
	n, err := fs.Write(fd, []byte("def"))
	if err != nil || n != 3 {
		t.Fatalf("append write = %d, %v, want 3, nil", n, err)
	}
	size, _ := fs.Stat(fd)
	if size != 6 {
		t.Fatalf("size after append = %d, want 6", size)
	}
	if err := fs.Lseek(fd, 0); err != nil {
		t.Fatalf("lseek: %v", err)
	}
	buf := make([]byte, 6)
	if _, err := fs.Read(fd, buf); err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(buf) != "abcdef" {
		t.Fatalf("content = %q, want %q", buf, "abcdef")
	}
}

func TestWriteOverwriteDoesNotGrow(t *testing.T) {
	fs := testdisk.New(t, 8200)
	mustCreate(t, fs, "a")
	fd := mustOpen(t, fs, "a")

	if _, err := fs.Write(fd, []byte("abcdef")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := fs.Lseek(fd, 0); err != nil {
		t.Fatalf("lseek: %v", err)
	}
	if _, err := fs.Write(fd, []byte("XY")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	size, _ := fs.Stat(fd)
	if size != 6 {
		t.Fatalf("size after in-place overwrite = %d, want 6 (unchanged)", size)
	}
}

func TestWriteThenLseekZeroThenReadRoundTrips(t *testing.T) {
	fs := testdisk.New(t, 8200)
	mustCreate(t, fs, "a")
	fd := mustOpen(t, fs, "a")

	src := pattern(9000)
	n, err := fs.Write(fd, src)
	if err != nil || n != 9000 {
		t.Fatalf("write = %d, %v, want 9000, nil", n, err)
	}
	if err := fs.Lseek(fd, 0); err != nil {
		t.Fatalf("lseek: %v", err)
	}
	dst := make([]byte, 9000)
	n, err = fs.Read(fd, dst)
	if err != nil || n != 9000 {
		t.Fatalf("read = %d, %v, want 9000, nil", n, err)
	}
	if !bytes.Equal(src, dst) {
		t.Fatal("write then lseek(0) then read must round-trip exactly")
	}
}

func TestWritePositionedPastChainEndWithinSize(t *testing.T) {
	// Open question in spec.md §9: lseek positioned past the current
	// chain end but still <= size is a normal write path through the
	// existing chain, not a special case.
	fs := testdisk.New(t, 8200)
	mustCreate(t, fs, "a")
	fd := mustOpen(t, fs, "a")

	first := pattern(4096)
	if _, err := fs.Write(fd, first); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := fs.Lseek(fd, 4096); err != nil {
		t.Fatalf("lseek to size: %v", err)
	}
	second := pattern(100)
	if _, err := fs.Write(fd, second); err != nil {
		t.Fatalf("append: %v", err)
	}

	if err := fs.Lseek(fd, 0); err != nil {
		t.Fatalf("lseek: %v", err)
	}
	buf := make([]byte, 4196)
	n, err := fs.Read(fd, buf)
	if err != nil || n != 4196 {
		t.Fatalf("read = %d, %v, want 4196, nil", n, err)
	}
	if !bytes.Equal(buf[:4096], first) || !bytes.Equal(buf[4096:], second) {
		t.Fatal("content across the chain extension must match both writes")
	}
}

func TestReadWriteRejectNilBuffer(t *testing.T) {
	fs := testdisk.New(t, 8200)
	mustCreate(t, fs, "a")
	fd := mustOpen(t, fs, "a")

	if _, err := fs.Write(fd, nil); !errors.Is(err, ecs150fs.ErrNilBuffer) {
		t.Fatalf("write(nil) error = %v, want ErrNilBuffer", err)
	}
	if _, err := fs.Read(fd, nil); !errors.Is(err, ecs150fs.ErrNilBuffer) {
		t.Fatalf("read(nil) error = %v, want ErrNilBuffer", err)
	}
}

func TestReadBadDescriptor(t *testing.T) {
	fs := testdisk.New(t, 8200)
	buf := make([]byte, 10)
	if _, err := fs.Read(7, buf); !errors.Is(err, ecs150fs.ErrBadDescriptor) {
		t.Fatalf("read on unopened fd error = %v, want ErrBadDescriptor", err)
	}
}
