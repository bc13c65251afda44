package malloc

import "unsafe"

// Nullalloc fails every allocation. Useful to prove that callers
// tolerate a nil return, and as the placeholder strategy before a real
// heap is configured.
type Nullalloc struct{}

// Init implement api.Allocator{} interface.
func (null *Nullalloc) Init(heapstart uintptr, heapsize int64) {
}

// Alloc implement api.Allocator{} interface.
func (null *Nullalloc) Alloc(size, align int64) unsafe.Pointer {
	return nil
}

// Free implement api.Allocator{} interface. Nothing was ever
// allocated, a free is always a contract violation.
func (null *Nullalloc) Free(ptr unsafe.Pointer, size, align int64) {
	panicerr("nullalloc.free(): nothing was allocated")
}

// Info implement api.Allocator{} interface.
func (null *Nullalloc) Info() (capacity, allocated int64) {
	return 0, 0
}
