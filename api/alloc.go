package api

import "unsafe"

// Allocator interface for heap allocation strategies. An allocator
// instance manages exactly one heap window for the life of the process,
// handed to it via Init. The strategy is picked once, while configuring
// the heap, and never switched at runtime.
type Allocator interface {
	// Init hands the allocator its heap window
	// [heapstart, heapstart+heapsize). The window shall be backed by
	// writable memory before this call. To be called exactly once,
	// before any Alloc or Free, never concurrently with either.
	Init(heapstart uintptr, heapsize int64)

	// Alloc a block of `size` bytes aligned to `align`, where align is
	// a power of two. Returns nil when no region can satisfy the
	// request, or when the address arithmetic would overflow. Allocated
	// memory is not zeroed.
	Alloc(size, align int64) unsafe.Pointer

	// Free the block at ptr. Callers shall pass the same size and align
	// used to allocate the block, mismatched layouts corrupt the heap.
	Free(ptr unsafe.Pointer, size, align int64)

	// Info return the window capacity and the bytes currently allocated
	// out of it.
	Info() (capacity, allocated int64)
}
