package malloc

import "reflect"
import "sort"
import "testing"
import "unsafe"

func testwindow(tb testing.TB, capacity int64) *Window {
	w, err := NewWindow(capacity)
	if err != nil {
		tb.Fatalf("window of %v bytes: %v", capacity, err)
	}
	return w
}

// asblock overlay a byte slice on a block obtained outside the go
// runtime.
func asblock(ptr unsafe.Pointer, size int64) []byte {
	var block []byte
	sl := (*reflect.SliceHeader)(unsafe.Pointer(&block))
	sl.Data, sl.Len, sl.Cap = uintptr(ptr), int(size), int(size)
	return block
}

func fillblock(ptr unsafe.Pointer, size int64, marker byte) {
	block := asblock(ptr, size)
	for i := range block {
		block[i] = marker
	}
}

func checkblock(t *testing.T, ptr unsafe.Pointer, size int64, marker byte) {
	t.Helper()
	for i, c := range asblock(ptr, size) {
		if c != marker {
			t.Fatalf("%p byte %v: expected %v, got %v", ptr, i, marker, c)
		}
	}
}

func checkdisjoint(t *testing.T, ptrs []unsafe.Pointer, sizes []int64) {
	t.Helper()
	type span struct{ start, end uintptr }
	spans := make([]span, 0, len(ptrs))
	for i, ptr := range ptrs {
		start := uintptr(ptr)
		spans = append(spans, span{start, start + uintptr(sizes[i])})
	}
	sort.Slice(spans, func(i, j int) bool {
		return spans[i].start < spans[j].start
	})
	for i := 1; i < len(spans); i++ {
		if spans[i].start < spans[i-1].end {
			t.Fatalf(
				"overlap: [%x,%x) and [%x,%x)",
				spans[i-1].start, spans[i-1].end,
				spans[i].start, spans[i].end)
		}
	}
}
