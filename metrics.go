package vec

// stats holds cumulative counters maintained by the growth machinery.
type stats struct {
	grows          uint64
	failedGrows    uint64
	elementsMoved  uint64
	elementsCloned uint64
}

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
// Returns 0.0 if the vector has no storage.
func (v *Vector[T]) Utilization() float64 {
	capacity := v.data.Cap()
	if capacity == 0 {
		return 0
	}
	return float64(v.len) / float64(capacity)
}

// Grows returns the number of reallocations performed so far (growth-
// triggering appends and inserts, and capacity-increasing Reserve calls).
func (v *Vector[T]) Grows() uint64 {
	return v.stats.grows
}

// FailedGrows returns the number of reallocation attempts abandoned due to
// an allocation, constructor, or clone failure.
func (v *Vector[T]) FailedGrows() uint64 {
	return v.stats.failedGrows
}

// ElementsMoved returns the cumulative count of elements bit-moved into a
// new Buffer during reallocation.
func (v *Vector[T]) ElementsMoved() uint64 {
	return v.stats.elementsMoved
}

// ElementsCloned returns the cumulative count of elements cloned into a new
// Buffer during reallocation (Cloner element types).
func (v *Vector[T]) ElementsCloned() uint64 {
	return v.stats.elementsCloned
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Len:            v.len,
		Cap:            v.data.Cap(),
		Utilization:    v.Utilization(),
		Grows:          v.stats.grows,
		FailedGrows:    v.stats.failedGrows,
		ElementsMoved:  v.stats.elementsMoved,
		ElementsCloned: v.stats.elementsCloned,
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Len            int     // Live elements
	Cap            int     // Slots in the current Buffer
	Utilization    float64 // Ratio of live elements to capacity (0.0-1.0)
	Grows          uint64  // Reallocations performed
	FailedGrows    uint64  // Reallocations abandoned on failure
	ElementsMoved  uint64  // Elements bit-moved across reallocations
	ElementsCloned uint64  // Elements cloned across reallocations
}
