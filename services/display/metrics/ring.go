package metrics

// ring is a fixed capacity sample window. Pushing at capacity evicts the oldest sample.
type ring struct {
	values []float64
	head   int
	size   int
}

func newRing(capacity int) *ring {
	return &ring{
		values: make([]float64, capacity),
	}
}

// push inserts the value as the most recent sample
func (r *ring) push(value float64) {
	r.head = (r.head + len(r.values) - 1) % len(r.values)
	r.values[r.head] = value
	if r.size < len(r.values) {
		r.size++
	}
}

// at returns the i-th sample, 0 being the most recent
func (r *ring) at(i int) float64 {
	return r.values[(r.head+i)%len(r.values)]
}

func (r *ring) len() int {
	return r.size
}

func (r *ring) capacity() int {
	return len(r.values)
}

// snapshot returns a copy of the samples, most recent first
func (r *ring) snapshot() []float64 {
	result := make([]float64, r.size)
	for i := range result {
		result[i] = r.at(i)
	}

	return result
}
