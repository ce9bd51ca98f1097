package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOccupancyRingEmpty(t *testing.T) {
	r := NewOccupancyRing(4)
	assert.Equal(t, 0, r.Len())
	assert.Nil(t, r.Values())
	assert.Equal(t, 0.0, r.Last())
}

func TestOccupancyRingPartial(t *testing.T) {
	r := NewOccupancyRing(4)
	r.Push(0.1)
	r.Push(0.2)

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []float64{0.1, 0.2}, r.Values())
	assert.Equal(t, 0.2, r.Last())
}

func TestOccupancyRingOverwritesOldest(t *testing.T) {
	r := NewOccupancyRing(3)
	for _, v := range []float64{0.1, 0.2, 0.3, 0.4, 0.5} {
		r.Push(v)
	}

	assert.Equal(t, 3, r.Len())
	assert.Equal(t, []float64{0.3, 0.4, 0.5}, r.Values())
	assert.Equal(t, 0.5, r.Last())
}
