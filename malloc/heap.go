package malloc

import "unsafe"

import s "github.com/bnclabs/gosettings"

import "github.com/bnclabs/goheap/api"

// Heap is the boot entry point for dynamic memory: it maps a window,
// picks one allocation strategy and hands the window to it, exactly
// once. Every dynamic memory user in the process funnels through the
// same Heap for the process lifetime.
type Heap struct {
	window    *Window
	allocator api.Allocator
	name      string
	logprefix string
}

// NewHeap map a heap window and initialize the configured allocator
// over it, refer to Defaultsettings() for configuration parameters.
// Mapping failures are returned to the caller so boot can abort before
// the heap is ever used, ErrorFrameExhausted when physical memory ran
// out, ErrorMapFailed for page table trouble. An unknown allocator
// name panics, that is a build misconfiguration, not a runtime
// condition.
func NewHeap(setts s.Settings) (*Heap, error) {
	capacity := setts.Int64("capacity")
	name := setts.String("allocator")

	var allocator api.Allocator
	switch name {
	case "bump":
		allocator = &Bumpalloc{}
	case "flist":
		allocator = &Flistalloc{}
	case "none":
		allocator = &Nullalloc{}
	default:
		panicerr("unknown allocator %q", name)
	}
	window, err := NewWindow(capacity)
	if err != nil {
		return nil, err
	}
	if setts.Bool("lock") {
		allocator = NewLockalloc(allocator)
	}
	allocator.Init(window.Base(), window.Size())

	heap := &Heap{
		window: window, allocator: allocator,
		name: name, logprefix: "[heap]",
	}
	return heap, nil
}

// Alloc a block of size bytes at the given power of two alignment,
// nil on exhaustion.
func (heap *Heap) Alloc(size, align int64) unsafe.Pointer {
	return heap.allocator.Alloc(size, align)
}

// Free the block at ptr, with the same layout used to allocate it.
func (heap *Heap) Free(ptr unsafe.Pointer, size, align int64) {
	heap.allocator.Free(ptr, size, align)
}

// Info return window capacity and currently allocated bytes.
func (heap *Heap) Info() (capacity, allocated int64) {
	return heap.allocator.Info()
}

// Release the heap window back to the OS. The allocator and every
// outstanding pointer become invalid.
func (heap *Heap) Release() {
	heap.window.Release()
}
