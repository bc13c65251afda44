package main

import "flag"
import "fmt"
import "time"
import "math/rand"
import "unsafe"

import hm "github.com/dustin/go-humanize"
import s "github.com/bnclabs/gosettings"

import "github.com/bnclabs/goheap/lib"
import "github.com/bnclabs/goheap/malloc"

var options struct {
	capacity  int
	allocator string
	n         int
	maxsize   int
	live      int
	seed      int
}

func argParse() {
	flag.IntVar(&options.capacity, "capacity", 64*1024*1024,
		"heap window capacity in bytes")
	flag.StringVar(&options.allocator, "allocator", "flist",
		"allocation strategy, flist or bump")
	flag.IntVar(&options.n, "n", 1000000,
		"number of alloc/free operations")
	flag.IntVar(&options.maxsize, "maxsize", 1024,
		"maximum block size to request")
	flag.IntVar(&options.live, "live", 1000,
		"number of blocks kept live at any time")
	flag.IntVar(&options.seed, "seed", 0,
		"random seed, 0 picks the clock")
	flag.Parse()

	if options.seed == 0 {
		options.seed = int(time.Now().UnixNano())
	}
}

type block struct {
	ptr  unsafe.Pointer
	size int64
}

func main() {
	argParse()

	setts := malloc.Defaultsettings().Mixin(s.Settings{
		"capacity":  int64(options.capacity),
		"allocator": options.allocator,
	})
	heap, err := malloc.NewHeap(setts)
	if err != nil {
		panic(err)
	}
	defer heap.Release()

	rnd := rand.New(rand.NewSource(int64(options.seed)))
	sizestats, failures := &lib.AverageInt64{}, 0
	blocks := make([]block, 0, options.live)

	start := time.Now()
	for i := 0; i < options.n; i++ {
		if len(blocks) >= options.live {
			off := rnd.Intn(len(blocks))
			blk := blocks[off]
			heap.Free(blk.ptr, blk.size, 8)
			blocks[off] = blocks[len(blocks)-1]
			blocks = blocks[:len(blocks)-1]
		}
		size := int64(rnd.Intn(options.maxsize) + 1)
		ptr := heap.Alloc(size, 8)
		if ptr == nil {
			failures++
			continue
		}
		sizestats.Add(size)
		blocks = append(blocks, block{ptr, size})
	}
	elapsed := time.Since(start)
	for _, blk := range blocks {
		heap.Free(blk.ptr, blk.size, 8)
	}

	capacity, allocated := heap.Info()
	rate := float64(options.n) / elapsed.Seconds()
	fmt.Printf("allocator     : %q over %v window\n",
		options.allocator, hm.Bytes(uint64(capacity)))
	fmt.Printf("operations    : %v in %v (%v/sec)\n",
		options.n, elapsed.Round(time.Millisecond), hm.Comma(int64(rate)))
	fmt.Printf("block sizes   : min %v max %v mean %v\n",
		sizestats.Min(), sizestats.Max(), sizestats.Mean())
	fmt.Printf("requested     : %v across %v blocks\n",
		hm.Bytes(uint64(sizestats.Sum())), sizestats.Samples())
	fmt.Printf("failures      : %v\n", failures)
	fmt.Printf("left allocated: %v\n", hm.Bytes(uint64(allocated)))
}
