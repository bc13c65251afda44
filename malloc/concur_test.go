package malloc

import "fmt"
import "sync"
import "testing"
import "math/rand"
import "sync/atomic"

import s "github.com/bnclabs/gosettings"

var ccallocated, ccfreed int64

func TestConcur(t *testing.T) {
	nroutines, repeat := 50, 3000

	setts := Defaultsettings().Mixin(s.Settings{
		"capacity":  int64(64 * 1024 * 1024),
		"allocator": "flist",
	})
	heap, err := NewHeap(setts)
	if err != nil {
		t.Fatal(err)
	}
	defer heap.Release()

	var wg sync.WaitGroup
	wg.Add(nroutines)
	for n := 0; n < nroutines; n++ {
		go testallocfree(heap, byte(n), repeat, &wg)
	}
	wg.Wait()

	if x, y := atomic.LoadInt64(&ccallocated), atomic.LoadInt64(&ccfreed); x != y {
		t.Errorf("allocated %v, freed %v", x, y)
	}
	if _, allocated := heap.Info(); allocated != 0 {
		t.Errorf("expected %v, got %v", 0, allocated)
	}
	t.Logf("ccallocated:%v ccfreed:%v\n", ccallocated, ccfreed)
}

func testallocfree(heap *Heap, n byte, repeat int, wg *sync.WaitGroup) {
	defer wg.Done()

	sizes := []int64{64, 128, 256}
	for i := 0; i < repeat; i++ {
		size := sizes[rand.Intn(len(sizes))]
		ptr := heap.Alloc(size, 8)
		if ptr == nil {
			panic(fmt.Errorf("allocation of %v failed", size))
		}
		atomic.AddInt64(&ccallocated, size)

		fillblock(ptr, size, n)
		block := asblock(ptr, size)
		for _, c := range block {
			if c != n {
				panic(fmt.Errorf("expected %v, got %v", n, c))
			}
		}

		heap.Free(ptr, size, 8)
		atomic.AddInt64(&ccfreed, size)
	}
}
