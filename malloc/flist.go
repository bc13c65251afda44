// Functions and methods are not thread safe.

package malloc

import "unsafe"

import "github.com/bnclabs/goheap/lib"

// freenode heads every free region. It has no existence of its own, it
// is an overlay written into the first bytes of currently unused heap
// memory. Its size field covers the full extent of the region it
// heads, node included.
type freenode struct {
	size int64
	next *freenode
}

const nodesize = int64(unsafe.Sizeof(freenode{}))
const nodealign = int64(unsafe.Alignof(freenode{}))

// asnode reinterpret the first bytes of a region as a freenode. Caller
// guarantees addr heads a free region of at least nodesize bytes and
// is aligned to nodealign.
func asnode(addr uintptr) *freenode {
	return (*freenode)(unsafe.Pointer(addr))
}

func (node *freenode) startaddr() uintptr {
	return uintptr(unsafe.Pointer(node))
}

func (node *freenode) endaddr() uintptr {
	return node.startaddr() + uintptr(node.size)
}

// Flistalloc tracks free regions as a singly linked list threaded
// through the regions themselves, behind a sentinel head. Allocation
// is first-fit in list order, freed regions go to the list head, so
// the list is LIFO by free time, not sorted by address. Blocks are
// split when the leftover can host a node, adjacent free regions are
// never coalesced. A zero value Flistalloc is not usable, Init must
// run first.
type Flistalloc struct {
	heapstart uintptr
	heapend   uintptr
	allocated int64
	head      freenode // sentinel, size 0, never part of the heap
}

// Init implement api.Allocator{} interface. The window must be able to
// host at least one node and its start must satisfy the node's own
// alignment, a violation means the heap window is misconfigured and
// panics, the kernel cannot proceed without a valid heap.
func (fl *Flistalloc) Init(heapstart uintptr, heapsize int64) {
	if heapstart == 0 {
		panicerr("flist.init(): nil window base")
	} else if heapsize < nodesize {
		panicerr("flist.init(): window %v below node size %v", heapsize, nodesize)
	} else if lib.Alignedto(heapstart, nodealign) == false {
		panicerr("flist.init(): window base %x not %v byte aligned", heapstart, nodealign)
	}
	fl.heapstart, fl.heapend = heapstart, heapstart+uintptr(heapsize)
	fl.allocated, fl.head.next = 0, nil
	fl.addregion(heapstart, heapsize)
}

// Alloc implement api.Allocator{} interface.
func (fl *Flistalloc) Alloc(size, align int64) unsafe.Pointer {
	size, align = sizealign(size, align)
	node, allocstart := fl.findregion(size, align)
	if node == nil {
		return nil // out of memory
	}
	allocend := allocstart + uintptr(size)
	if excess := int64(node.endaddr() - allocend); excess > 0 {
		fl.addregion(allocend, excess)
	}
	fl.allocated += size
	return unsafe.Pointer(allocstart)
}

// Free implement api.Allocator{} interface. The freed block becomes
// the new list head. No merging with physically adjacent free regions
// is attempted, fragmentation is the accepted cost of keeping free O(1)
// past the node write.
func (fl *Flistalloc) Free(ptr unsafe.Pointer, size, align int64) {
	if ptr == nil {
		panicerr("flist.free(): nil pointer")
	}
	size, _ = sizealign(size, align)
	fl.addregion(uintptr(ptr), size)
	fl.allocated -= size
}

// Info implement api.Allocator{} interface.
func (fl *Flistalloc) Info() (capacity, allocated int64) {
	return int64(fl.heapend - fl.heapstart), fl.allocated
}

//---- local functions

// sizealign transform a requested layout so that the allocated region
// can always host a freenode when it comes back via Free. Applied
// identically on both sides so they agree on block boundaries.
func sizealign(size, align int64) (int64, int64) {
	if align < nodealign {
		align = nodealign
	}
	if size < nodesize {
		size = nodesize
	}
	size = int64(lib.Alignup(uintptr(size), align))
	return size, align
}

// addregion write a freenode over [addr, addr+size) and link it at the
// list head. The region must be unused, large enough for a node and
// aligned for one.
func (fl *Flistalloc) addregion(addr uintptr, size int64) {
	if lib.Alignedto(addr, nodealign) == false {
		panicerr("flist.addregion(): %x not %v byte aligned", addr, nodealign)
	} else if size < nodesize {
		panicerr("flist.addregion(): region %v below node size %v", size, nodesize)
	}
	node := asnode(addr)
	node.size, node.next = size, fl.head.next
	fl.head.next = node
}

// findregion first-fit walk, in list order. Unlinks and returns the
// fitting node along with the aligned allocation start inside it.
func (fl *Flistalloc) findregion(size, align int64) (*freenode, uintptr) {
	prev := &fl.head
	for node := prev.next; node != nil; node = prev.next {
		if allocstart, ok := fitregion(node, size, align); ok {
			prev.next, node.next = node.next, nil
			return node, allocstart
		}
		prev = node
	}
	return nil, 0
}

// fitregion try to place an allocation of adjusted (size, align)
// inside node. Rejects the fit when the leftover past the allocation
// is too small to host a node, such a sliver would be lost to the list
// forever.
func fitregion(node *freenode, size, align int64) (uintptr, bool) {
	allocstart := lib.Alignup(node.startaddr(), align)
	allocend, ok := lib.Addcheck(allocstart, size)
	if !ok || allocend > node.endaddr() {
		return 0, false
	}
	if excess := int64(node.endaddr() - allocend); excess > 0 && excess < nodesize {
		return 0, false
	}
	return allocstart, true
}

// freesizes walk the list and return region sizes in list order.
func (fl *Flistalloc) freesizes() []int64 {
	sizes := []int64{}
	for node := fl.head.next; node != nil; node = node.next {
		sizes = append(sizes, node.size)
	}
	return sizes
}
