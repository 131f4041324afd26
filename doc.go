// Package vec implements a growable, contiguous sequence container built
// on an explicit raw-storage layer instead of the built-in slice growth.
//
// # Overview
//
// The package splits the container into two pieces:
//
//   - Buffer[T] owns a block of storage sized for a fixed element capacity
//     and knows nothing about element liveness.
//   - Vector[T] owns one Buffer plus a logical length and is the only
//     entity that constructs or destroys elements inside it.
//
// The split exists to make the failure-safety rules explicit: every
// growth-triggering operation builds its result in a fresh Buffer and only
// adopts it once every construction has succeeded, so a failing element
// constructor or clone leaves the container observably unchanged.
//
// # Basic Usage
//
//	v := vec.New[int]()
//	defer v.Release()
//
//	_ = v.PushBack(1)
//	_ = v.PushBack(2)
//	_ = v.Insert(1, 99) // [1, 99, 2]
//
//	for i, x := range v.All() {
//		fmt.Println(i, x)
//	}
//
// # Growth and failure safety
//
// Capacity doubles whenever an append or insert needs one more slot
// (max(1, 2*cap)), giving amortized O(1) appends; capacity never shrinks
// implicitly. During reallocation, element types implementing Cloner are
// cloned into the new Buffer so the old one stays intact if a clone fails
// partway; all other types are bit-moved, which cannot fail. Fallible
// in-place construction goes through EmplaceBack/Emplace, which take a
// constructor function and guarantee the container is unchanged when it
// returns an error.
//
// # Important Notes
//
//   - Not goroutine-safe: single-threaded, non-aliased access only.
//   - Reallocation invalidates every element address previously handed out;
//     non-reallocating insert/erase invalidate addresses at or after the
//     mutated position.
//   - Indexed access is bounds-checked and panics on violation; UncheckedAt
//     is the named unchecked variant for callers that proved the bound.
//   - Release is optional (the collector reclaims abandoned vectors) but
//     gives deterministic teardown; mutating a released vector panics,
//     while observers (Len, Cap, iteration, Metrics) see it as empty.
//
// # Metrics and Monitoring
//
// Metrics() returns a snapshot of length, capacity, utilization, and
// cumulative reallocation counters. NewCollector adapts a vector to a
// prometheus.Collector:
//
//	reg.MustRegister(vec.NewCollector(v, func(c *vec.CollectorConfig) {
//		c.Subsystem = "ingest_batch"
//	}))
package vec
