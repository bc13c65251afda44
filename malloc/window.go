package malloc

import "unsafe"

import "golang.org/x/sys/unix"

import "github.com/bnclabs/goheap/lib"

// Window is the heap's address range, a contiguous span of virtual
// memory backed by writable physical memory for the remainder of the
// process. Allocators never map memory themselves, they are handed a
// Window exactly once via Init. The window is never resized.
type Window struct {
	block    []byte
	capacity int64
}

// NewWindow map an anonymous read-write region of at least `capacity`
// bytes. Capacity is rounded up to the platform page size, so the base
// address satisfies every alignment up to the page size. Returns
// ErrorFrameExhausted when the system has no memory to back the
// region, ErrorMapFailed for any other mapping failure. Either way the
// caller aborts startup, a heap that failed to map is never used.
func NewWindow(capacity int64) (*Window, error) {
	if capacity <= 0 || capacity > Maxheapsize {
		return nil, ErrorBadCapacity
	}
	pagesize := int64(unix.Getpagesize())
	capacity = int64(lib.Alignup(uintptr(capacity), pagesize))
	if _, _, free := getsysmem(); uint64(capacity) > free {
		return nil, ErrorFrameExhausted
	}
	prot := unix.PROT_READ | unix.PROT_WRITE
	flags := unix.MAP_PRIVATE | unix.MAP_ANON
	block, err := unix.Mmap(-1, 0, int(capacity), prot, flags)
	if err == unix.ENOMEM {
		return nil, ErrorFrameExhausted
	} else if err != nil {
		return nil, ErrorMapFailed
	}
	return &Window{block: block, capacity: capacity}, nil
}

// Base address of the window, aligned to the platform page size.
func (w *Window) Base() uintptr {
	return uintptr(unsafe.Pointer(&w.block[0]))
}

// Size of the window in bytes, after page rounding.
func (w *Window) Size() int64 {
	return w.capacity
}

// Release the window back to the OS. Idempotent. Every pointer
// allocated out of the window turns invalid.
func (w *Window) Release() {
	if w.block != nil {
		unix.Munmap(w.block)
		w.block, w.capacity = nil, 0
	}
}
