// Package malloc implements dynamic memory allocation over a fixed
// heap window, with a limited scope:
//
//   - The heap window is mapped once, before any allocation, and lives
//     for the remainder of the process. There is no demand paging and
//     no growing of the window.
//   - Exactly one allocation strategy is picked while configuring the
//     heap and serves every request thereafter. Two strategies are
//     supplied: "bump" moves a single cursor forward and reclaims the
//     whole window only when every outstanding block has been freed,
//     "flist" tracks free regions as a linked list of nodes written
//     in place inside unused memory, reusing individual blocks without
//     coalescing adjacent ones.
//   - Allocation failure is a nil pointer, never a panic. Callers are
//     expected to abort their own operation and carry on.
//   - Allocators are not thread safe on their own, the Lockalloc
//     facade serializes them for concurrent use.
//
// The bump strategy is unsuitable for workloads that interleave
// long-lived allocations with short-lived ones: a single long-lived
// block pins the entire window until it is freed.
package malloc
