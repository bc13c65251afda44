package lib

// Alignup round addr upwards to the next multiple of align. `align`
// must be a power of two.
func Alignup(addr uintptr, align int64) uintptr {
	mask := uintptr(align - 1)
	return (addr + mask) &^ mask
}

// Alignedto check whether addr is a multiple of align. `align` must be
// a power of two.
func Alignedto(addr uintptr, align int64) bool {
	return (addr & uintptr(align-1)) == 0
}

// Addcheck compute addr+size with overflow detection, returns false if
// the sum wraps the address space.
func Addcheck(addr uintptr, size int64) (uintptr, bool) {
	end := addr + uintptr(size)
	if end < addr {
		return 0, false
	}
	return end, true
}
