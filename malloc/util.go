package malloc

import "fmt"
import "errors"

// ErrorFrameExhausted no physical frames left to back the heap window.
var ErrorFrameExhausted = errors.New("malloc.frameexhausted")

// ErrorMapFailed mapping the heap window into the address space failed.
var ErrorMapFailed = errors.New("malloc.mapfailed")

// ErrorBadCapacity window capacity is zero, negative or exceeds
// Maxheapsize.
var ErrorBadCapacity = errors.New("malloc.badcapacity")

func panicerr(fmsg string, args ...interface{}) {
	panic(fmt.Errorf(fmsg, args...))
}
