package malloc

import s "github.com/bnclabs/gosettings"
import "github.com/cloudfoundry/gosigar"

// Alignment every block handed out by this package is aligned to at
// least 8 bytes, whatever the requested alignment.
const Alignment = int64(8)

// Heapsize default capacity, in bytes, of the heap window. Can be used
// as default for the `capacity` setting.
const Heapsize = int64(100 * 1024)

// Maxheapsize maximum capacity of a heap window.
const Maxheapsize = int64(1024 * 1024 * 1024 * 1024) // 1TB

// Defaultsettings for NewHeap(),
//
// "capacity" (int64, default: Heapsize)
//
//	Size of the heap window in bytes. Rounded up to the platform
//	page size while mapping.
//
// "allocator" (string, default: "flist")
//
//	Allocation strategy, can be "flist", "bump" or "none". Picked
//	once, for the life of the process.
//
// "lock" (bool, default: true)
//
//	Serialize the allocator behind a mutex. Set to false only when
//	a single goroutine owns the heap.
func Defaultsettings() s.Settings {
	return s.Settings{
		"capacity":  Heapsize,
		"allocator": "flist",
		"lock":      true,
	}
}

func getsysmem() (total, used, free uint64) {
	mem := sigar.Mem{}
	mem.Get()
	return mem.Total, mem.Used, mem.Free
}
