package malloc

import "sync"
import "unsafe"

import "github.com/bnclabs/goheap/api"

// Lockalloc serializes an allocator behind a mutex so it can serve as
// the process wide allocation authority. The lock is held for the full
// duration of the inner call and there is no re-entrancy: code that
// can run while another goroutine is mid-allocation must either avoid
// allocating or go through this facade. Both inner operations are
// short run-to-completion critical sections with no suspension points,
// so the lock is never held across blocking work.
type Lockalloc struct {
	mu        sync.Mutex
	allocator api.Allocator
}

// NewLockalloc wrap allocator behind a mutex.
func NewLockalloc(allocator api.Allocator) *Lockalloc {
	return &Lockalloc{allocator: allocator}
}

// Init implement api.Allocator{} interface.
func (la *Lockalloc) Init(heapstart uintptr, heapsize int64) {
	la.mu.Lock()
	defer la.mu.Unlock()
	la.allocator.Init(heapstart, heapsize)
}

// Alloc implement api.Allocator{} interface.
func (la *Lockalloc) Alloc(size, align int64) unsafe.Pointer {
	la.mu.Lock()
	defer la.mu.Unlock()
	return la.allocator.Alloc(size, align)
}

// Free implement api.Allocator{} interface.
func (la *Lockalloc) Free(ptr unsafe.Pointer, size, align int64) {
	la.mu.Lock()
	defer la.mu.Unlock()
	la.allocator.Free(ptr, size, align)
}

// Info implement api.Allocator{} interface.
func (la *Lockalloc) Info() (capacity, allocated int64) {
	la.mu.Lock()
	defer la.mu.Unlock()
	return la.allocator.Info()
}
