package app

// OccupancyRing keeps a rolling window of buffer fill ratios for the
// sparkline. Unlike the logging buffer it overwrites silently: old
// samples are display data, not payload.
type OccupancyRing struct {
	buf   []float64
	pos   int
	count int
}

// NewOccupancyRing creates a rolling window with the given capacity.
func NewOccupancyRing(capacity int) *OccupancyRing {
	return &OccupancyRing{
		buf: make([]float64, capacity),
	}
}

// Push adds a fill-ratio sample in [0, 1].
func (r *OccupancyRing) Push(val float64) {
	r.buf[r.pos] = val
	r.pos = (r.pos + 1) % len(r.buf)
	if r.count < len(r.buf) {
		r.count++
	}
}

// Values returns all stored samples in chronological order.
func (r *OccupancyRing) Values() []float64 {
	if r.count == 0 {
		return nil
	}
	result := make([]float64, r.count)
	if r.count < len(r.buf) {
		copy(result, r.buf[:r.count])
	} else {
		start := r.pos
		n := copy(result, r.buf[start:])
		copy(result[n:], r.buf[:start])
	}
	return result
}

// Last returns the most recent sample, or 0 if empty.
func (r *OccupancyRing) Last() float64 {
	if r.count == 0 {
		return 0
	}
	idx := (r.pos - 1 + len(r.buf)) % len(r.buf)
	return r.buf[idx]
}

// Len returns the number of stored samples.
func (r *OccupancyRing) Len() int {
	return r.count
}
