package ecs150fs

// descriptor is one open-file session: a name reference into the root
// directory plus an independent byte offset. Multiple descriptors may
// reference the same name; each has its own offset (spec.md §4.4).
type descriptor struct {
	open     bool
	filename string
	offset   uint32
}

// descriptorTable is the fixed 32-slot open-file table.
type descriptorTable struct {
	slots [OpenMaxCount]descriptor
}

func newDescriptorTable() *descriptorTable {
	return &descriptorTable{}
}

// open occupies the lowest-indexed empty slot for name and returns its index.
func (dt *descriptorTable) open(name string) (int, error) {
	for i := range dt.slots {
		if !dt.slots[i].open {
			dt.slots[i] = descriptor{open: true, filename: name, offset: 0}
			return i, nil
		}
	}
	return -1, ErrTooManyOpenFiles
}

func (dt *descriptorTable) valid(fd int) bool {
	return fd >= 0 && fd < OpenMaxCount
}

func (dt *descriptorTable) get(fd int) (*descriptor, error) {
	if !dt.valid(fd) || !dt.slots[fd].open {
		return nil, ErrBadDescriptor
	}
	return &dt.slots[fd], nil
}

func (dt *descriptorTable) close(fd int) error {
	d, err := dt.get(fd)
	if err != nil {
		return err
	}
	*d = descriptor{}
	return nil
}

// anyOpen reports whether any descriptor currently references name.
func (dt *descriptorTable) anyOpen(name string) bool {
	for i := range dt.slots {
		if dt.slots[i].open && dt.slots[i].filename == name {
			return true
		}
	}
	return false
}

// anyOpenAtAll reports whether any descriptor is currently occupied,
// used by Unmount's busy check.
func (dt *descriptorTable) anyOpenAtAll() bool {
	for i := range dt.slots {
		if dt.slots[i].open {
			return true
		}
	}
	return false
}
