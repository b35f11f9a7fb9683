package ecs150fs

import "fmt"

// Read copies up to len(dst) bytes from fd, starting at its current
// offset, into dst. Short reads at EOF are normal and return the
// partial count with a nil error (spec.md §4.4).
func (fs *FileSystem) Read(fd int, dst []byte) (int, error) {
	if dst == nil {
		return 0, ErrNilBuffer
	}
	d, err := fs.fds.get(fd)
	if err != nil {
		return 0, err
	}
	slot := fs.root.lookup(d.filename)
	if slot < 0 {
		return 0, fmt.Errorf("%w: %q", ErrNoSuchFile, d.filename)
	}
	entry := &fs.root.entries[slot]

	size := entry.size
	off := d.offset
	if off > size {
		off = size
	}
	toRead := int(size - off)
	if toRead > len(dst) {
		toRead = len(dst)
	}
	if toRead == 0 {
		return 0, nil
	}

	chain, err := fs.fat.chainBlocks(entry.firstDatablock)
	if err != nil {
		return 0, err
	}

	startIdx := int(off) / BlockSize
	bounce := make([]byte, BlockSize)
	totalRead := 0
	pos := off

	for totalRead < toRead {
		if startIdx >= len(chain) {
			break
		}
		blockIdx := uint32(fs.sb.dataBlockStart) + uint32(chain[startIdx])
		if err := fs.dev.ReadBlock(blockIdx, bounce); err != nil {
			return totalRead, fmt.Errorf("read: %w", err)
		}
		blockOff := int(pos) % BlockSize
		n := BlockSize - blockOff
		remaining := toRead - totalRead
		if n > remaining {
			n = remaining
		}
		copy(dst[totalRead:totalRead+n], bounce[blockOff:blockOff+n])
		totalRead += n
		pos += uint32(n)
		startIdx++
	}

	d.offset = pos
	return totalRead, nil
}

// Write copies len(src) bytes into fd at its current offset,
// extending the file's FAT chain and root entry size as needed. It
// returns the number of bytes actually written, which may be less
// than len(src) if the disk fills up; already-written blocks and the
// size update persist even on a partial write (spec.md §4.4, §7).
func (fs *FileSystem) Write(fd int, src []byte) (int, error) {
	if src == nil {
		return 0, ErrNilBuffer
	}
	d, err := fs.fds.get(fd)
	if err != nil {
		return 0, err
	}
	slot := fs.root.lookup(d.filename)
	if slot < 0 {
		return 0, fmt.Errorf("%w: %q", ErrNoSuchFile, d.filename)
	}
	entry := &fs.root.entries[slot]

	if len(src) == 0 {
		return 0, nil
	}

	if entry.firstDatablock == FatEOC {
		head := fs.fat.allocateFree()
		if head == FatEOC {
			return 0, nil
		}
		entry.firstDatablock = head
	}

	chain, err := fs.fat.chainBlocks(entry.firstDatablock)
	if err != nil {
		return 0, err
	}

	off := d.offset
	bounce := make([]byte, BlockSize)
	totalWritten := 0
	pos := off

	for totalWritten < len(src) {
		blockIndexInChain := int(pos) / BlockSize
		for blockIndexInChain >= len(chain) {
			tail := chain[len(chain)-1]
			next := fs.fat.extend(tail)
			if next == FatEOC {
				break
			}
			chain = append(chain, next)
		}
		if blockIndexInChain >= len(chain) {
			// disk full: stop, keeping everything written so far.
			break
		}

		blockOff := int(pos) % BlockSize
		remaining := len(src) - totalWritten
		n := BlockSize - blockOff
		if n > remaining {
			n = remaining
		}

		blockIdx := uint32(fs.sb.dataBlockStart) + uint32(chain[blockIndexInChain])
		if n != BlockSize {
			if err := fs.dev.ReadBlock(blockIdx, bounce); err != nil {
				return totalWritten, fmt.Errorf("write: %w", err)
			}
		}
		copy(bounce[blockOff:blockOff+n], src[totalWritten:totalWritten+n])
		if err := fs.dev.WriteBlock(blockIdx, bounce); err != nil {
			return totalWritten, fmt.Errorf("write: %w", err)
		}

		totalWritten += n
		pos += uint32(n)
	}

	d.offset = pos
	if pos > entry.size {
		entry.size = pos
	}
	return totalWritten, nil
}
