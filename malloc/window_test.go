package malloc

import "testing"
import "unsafe"

import "github.com/stretchr/testify/require"
import "golang.org/x/sys/unix"

func TestNewWindow(t *testing.T) {
	w, err := NewWindow(Heapsize)
	require.NoError(t, err)
	defer w.Release()

	pagesize := int64(unix.Getpagesize())
	require.NotZero(t, w.Base())
	require.Zero(t, w.Base()%uintptr(pagesize))
	require.GreaterOrEqual(t, w.Size(), Heapsize)
	require.Zero(t, w.Size()%pagesize)

	// the whole span is writable before any allocator touches it.
	block := asblock(unsafe.Pointer(w.Base()), w.Size())
	for i := range block {
		block[i] = 0x5a
	}
	require.Equal(t, byte(0x5a), block[len(block)-1])
}

func TestWindowRounding(t *testing.T) {
	w, err := NewWindow(1)
	require.NoError(t, err)
	defer w.Release()
	require.Equal(t, int64(unix.Getpagesize()), w.Size())
}

func TestWindowBadcapacity(t *testing.T) {
	for _, capacity := range []int64{0, -1, Maxheapsize + 1} {
		w, err := NewWindow(capacity)
		require.Nil(t, w)
		require.Equal(t, ErrorBadCapacity, err)
	}
}

func TestWindowFrameexhausted(t *testing.T) {
	// more than the machine can back.
	w, err := NewWindow(Maxheapsize)
	if err == nil {
		w.Release()
		t.Skipf("host really has %v of free memory", Maxheapsize)
	}
	require.Equal(t, ErrorFrameExhausted, err)
}

func TestWindowRelease(t *testing.T) {
	w, err := NewWindow(Heapsize)
	require.NoError(t, err)
	w.Release()
	require.Zero(t, w.Size())
	w.Release() // idempotent
}
