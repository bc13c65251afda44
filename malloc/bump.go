// Functions and methods are not thread safe.

package malloc

import "unsafe"

import "github.com/bnclabs/goheap/lib"

// Bumpalloc allocates by moving a single cursor forward through the
// heap window. Allocation and deallocation are O(1), the price is that
// memory is reclaimed only when every outstanding block has been
// freed, at which point the cursor snaps back to the window start in
// one step. A zero value Bumpalloc is not usable, Init must run first.
type Bumpalloc struct {
	heapstart   uintptr
	heapend     uintptr
	next        uintptr
	allocations int64
}

// Init implement api.Allocator{} interface.
func (bump *Bumpalloc) Init(heapstart uintptr, heapsize int64) {
	if heapstart == 0 || heapsize <= 0 {
		panicerr("bump.init(): invalid window {%x, %v}", heapstart, heapsize)
	}
	bump.heapstart, bump.heapend = heapstart, heapstart+uintptr(heapsize)
	bump.next, bump.allocations = heapstart, 0
}

// Alloc implement api.Allocator{} interface. Zero size requests return
// the current cursor, a valid address the caller must not dereference.
func (bump *Bumpalloc) Alloc(size, align int64) unsafe.Pointer {
	allocstart := lib.Alignup(bump.next, align)
	allocend, ok := lib.Addcheck(allocstart, size)
	if !ok || allocend > bump.heapend {
		return nil
	}
	bump.next = allocend
	bump.allocations++
	return unsafe.Pointer(allocstart)
}

// Free implement api.Allocator{} interface. Individual blocks are
// never reclaimed in isolation, only the count of live blocks drops.
// Freeing more blocks than were allocated is a contract violation and
// panics rather than underflowing the count.
func (bump *Bumpalloc) Free(ptr unsafe.Pointer, size, align int64) {
	if bump.allocations == 0 {
		panicerr("bump.free(): more frees than allocations")
	}
	bump.allocations--
	if bump.allocations == 0 {
		bump.next = bump.heapstart
	}
}

// Info implement api.Allocator{} interface.
func (bump *Bumpalloc) Info() (capacity, allocated int64) {
	capacity = int64(bump.heapend - bump.heapstart)
	allocated = int64(bump.next - bump.heapstart)
	return capacity, allocated
}
