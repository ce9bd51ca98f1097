package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"sensorlog.klederson.com/internal/buffer"
)

func TestSlotOccupiedLinearRegion(t *testing.T) {
	st := buffer.State{Tail: 1, Head: 4, Count: 3, Capacity: 5}

	assert.False(t, slotOccupied(st, 0))
	assert.True(t, slotOccupied(st, 1))
	assert.True(t, slotOccupied(st, 2))
	assert.True(t, slotOccupied(st, 3))
	assert.False(t, slotOccupied(st, 4))
}

func TestSlotOccupiedWrappedRegion(t *testing.T) {
	// Live region spans the end of storage: slots 3, 4, 0.
	st := buffer.State{Tail: 3, Head: 1, Count: 3, Capacity: 5}

	assert.True(t, slotOccupied(st, 3))
	assert.True(t, slotOccupied(st, 4))
	assert.True(t, slotOccupied(st, 0))
	assert.False(t, slotOccupied(st, 1))
	assert.False(t, slotOccupied(st, 2))
}

func TestSlotOccupiedFullAndEmpty(t *testing.T) {
	full := buffer.State{Tail: 2, Head: 2, Count: 5, Capacity: 5}
	empty := buffer.State{Tail: 2, Head: 2, Count: 0, Capacity: 5}

	for i := 0; i < 5; i++ {
		assert.True(t, slotOccupied(full, i), "slot %d of a full buffer", i)
		assert.False(t, slotOccupied(empty, i), "slot %d of an empty buffer", i)
	}
}

func TestRenderSparklineClampsToWidth(t *testing.T) {
	history := make([]float64, 50)
	for i := range history {
		history[i] = float64(i) / 49
	}
	out := renderSparkline(history, 10)
	assert.NotEmpty(t, out)
}
