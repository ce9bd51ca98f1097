package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkReading(i int) Reading {
	return Reading{
		Timestamp: uint32(1000 + i),
		SensorID:  uint8(i % 8),
		Value:     20.0 + float32(i),
	}
}

func TestNewRejectsInvalidCapacity(t *testing.T) {
	for _, c := range []int{0, -1, -100} {
		b, err := New(c)
		assert.Error(t, err, "capacity %d", c)
		assert.Nil(t, b)
	}
}

func TestNewStartsEmpty(t *testing.T) {
	b, err := New(4)
	require.NoError(t, err)

	assert.True(t, b.IsEmpty())
	assert.False(t, b.IsFull())
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 4, b.Cap())
	assert.Equal(t, 4, b.Free())
	assert.Equal(t, Status{Empty: true}, b.Status())
}

func TestFillToCapacityThenOverflow(t *testing.T) {
	for _, capacity := range []int{1, 2, 3, 5, 16, 256} {
		b, err := New(capacity)
		require.NoError(t, err)

		for i := 0; i < capacity; i++ {
			require.NoError(t, b.Write(mkReading(i)), "capacity %d write %d", capacity, i)
		}

		assert.True(t, b.IsFull())
		assert.Equal(t, capacity, b.Len())
		assert.Equal(t, 0, b.Free())

		err = b.Write(mkReading(capacity))
		assert.ErrorIs(t, err, ErrFull)
		assert.True(t, b.Status().Overflowed)
		assert.Equal(t, capacity, b.Len(), "rejected write must leave the buffer unchanged")
	}
}

func TestFIFORoundTrip(t *testing.T) {
	const n = 7
	b, err := New(10)
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		require.NoError(t, b.Write(mkReading(i)))
	}
	for i := 0; i < n; i++ {
		got, err := b.Read()
		require.NoError(t, err)
		assert.Equal(t, mkReading(i), got, "read %d out of order or corrupted", i)
	}

	_, err = b.Read()
	assert.ErrorIs(t, err, ErrEmpty)
	assert.True(t, b.IsEmpty())
}

func TestWrapAround(t *testing.T) {
	const capacity, k = 5, 3
	b, err := New(capacity)
	require.NoError(t, err)

	// Fill, drain k, refill k: the live region now spans the end of
	// storage and both indices have wrapped.
	for i := 0; i < capacity; i++ {
		require.NoError(t, b.Write(mkReading(i)))
	}
	for i := 0; i < k; i++ {
		got, err := b.Read()
		require.NoError(t, err)
		assert.Equal(t, mkReading(i), got)
	}
	for i := capacity; i < capacity+k; i++ {
		require.NoError(t, b.Write(mkReading(i)), "write after wrap")
	}

	assert.True(t, b.IsFull())
	for i := k; i < capacity+k; i++ {
		got, err := b.Read()
		require.NoError(t, err)
		assert.Equal(t, mkReading(i), got, "wrapped read order")
	}
	assert.True(t, b.IsEmpty())
}

func TestClearIsIdempotent(t *testing.T) {
	b, err := New(3)
	require.NoError(t, err)

	b.Clear()
	assert.True(t, b.IsEmpty())
	assert.Equal(t, 0, b.Len())

	for i := 0; i < 3; i++ {
		require.NoError(t, b.Write(mkReading(i)))
	}
	require.ErrorIs(t, b.Write(mkReading(3)), ErrFull)
	require.True(t, b.Status().Overflowed)

	b.Clear()
	assert.True(t, b.IsEmpty())
	assert.False(t, b.IsFull())
	assert.Equal(t, 0, b.Len())
	assert.False(t, b.Status().Overflowed, "Clear resets the sticky overflow flag")

	b.Clear()
	assert.True(t, b.IsEmpty())
}

func TestEmptyAndFullAreExclusive(t *testing.T) {
	const capacity = 4
	b, err := New(capacity)
	require.NoError(t, err)

	check := func() {
		empty, full := b.IsEmpty(), b.IsFull()
		assert.False(t, empty && full)
		switch b.Len() {
		case 0:
			assert.True(t, empty)
			assert.False(t, full)
		case capacity:
			assert.True(t, full)
			assert.False(t, empty)
		default:
			assert.False(t, empty)
			assert.False(t, full)
		}
	}

	check()
	for i := 0; i < capacity; i++ {
		require.NoError(t, b.Write(mkReading(i)))
		check()
	}
	for !b.IsEmpty() {
		_, err := b.Read()
		require.NoError(t, err)
		check()
	}
}

func TestPeekDoesNotMutate(t *testing.T) {
	b, err := New(5)
	require.NoError(t, err)
	require.NoError(t, b.Write(mkReading(0)))
	require.NoError(t, b.Write(mkReading(1)))

	before := b.State()
	for i := 0; i < 4; i++ {
		got, err := b.Peek()
		require.NoError(t, err)
		assert.Equal(t, mkReading(0), got)
	}
	assert.Equal(t, before, b.State(), "peek must not move indices, count or flags")

	got, err := b.Read()
	require.NoError(t, err)
	assert.Equal(t, mkReading(0), got, "read returns the peeked reading")
	assert.Equal(t, 1, b.Len())
}

func TestPeekEmpty(t *testing.T) {
	b, err := New(2)
	require.NoError(t, err)

	_, err = b.Peek()
	assert.ErrorIs(t, err, ErrEmpty)
	assert.False(t, b.Status().Overflowed)
}

func TestSnapshotWrapped(t *testing.T) {
	b, err := New(4)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		require.NoError(t, b.Write(mkReading(i)))
	}
	for i := 0; i < 2; i++ {
		_, err := b.Read()
		require.NoError(t, err)
	}
	require.NoError(t, b.Write(mkReading(4)))
	require.NoError(t, b.Write(mkReading(5)))

	snap := b.Snapshot()
	require.Len(t, snap, 4)
	for i, r := range snap {
		assert.Equal(t, mkReading(i+2), r, "snapshot index %d", i)
	}

	// Snapshot is read-only.
	assert.Equal(t, 4, b.Len())
	got, err := b.Read()
	require.NoError(t, err)
	assert.Equal(t, mkReading(2), got)
}

func TestSnapshotEmpty(t *testing.T) {
	b, err := New(3)
	require.NoError(t, err)
	assert.Nil(t, b.Snapshot())
}

func TestOverflowFlagIsSticky(t *testing.T) {
	b, err := New(2)
	require.NoError(t, err)

	require.NoError(t, b.Write(mkReading(0)))
	require.NoError(t, b.Write(mkReading(1)))
	require.ErrorIs(t, b.Write(mkReading(2)), ErrFull)
	assert.True(t, b.Status().Overflowed)

	// Draining and writing again does not reset the flag.
	_, err = b.Read()
	require.NoError(t, err)
	require.NoError(t, b.Write(mkReading(3)))
	assert.True(t, b.Status().Overflowed)
}

func TestClosedBufferIsSafe(t *testing.T) {
	b, err := New(3)
	require.NoError(t, err)
	require.NoError(t, b.Write(mkReading(0)))

	b.Close()

	assert.True(t, b.IsEmpty())
	assert.False(t, b.IsFull())
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 0, b.Cap())
	assert.Equal(t, 0, b.Free())
	assert.Equal(t, Status{}, b.Status())
	assert.Nil(t, b.Snapshot())

	assert.ErrorIs(t, b.Write(mkReading(1)), ErrClosed)
	_, err = b.Read()
	assert.ErrorIs(t, err, ErrClosed)
	_, err = b.Peek()
	assert.ErrorIs(t, err, ErrClosed)
	b.Clear() // must not panic

	b.Close() // idempotent
}

func TestNilBufferIsSafe(t *testing.T) {
	var b *RingBuffer

	assert.True(t, b.IsEmpty())
	assert.False(t, b.IsFull())
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 0, b.Free())
	assert.Equal(t, Status{}, b.Status())
	assert.ErrorIs(t, b.Write(mkReading(0)), ErrClosed)
	_, err := b.Read()
	assert.ErrorIs(t, err, ErrClosed)
	b.Clear()
	b.Close()
}

// The end-to-end scenario from the demonstration driver: capacity 5,
// fill, overflow, drain in order, underflow.
func TestCapacityFiveScenario(t *testing.T) {
	b, err := New(5)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.NoError(t, b.Write(Reading{Timestamp: uint32(1000 + i), SensorID: uint8(i), Value: 20.0 + float32(i)}))
	}
	assert.True(t, b.IsFull())

	err = b.Write(Reading{Timestamp: 2000, SensorID: 99, Value: 99.9})
	assert.ErrorIs(t, err, ErrFull)
	assert.True(t, b.Status().Overflowed)

	for i := 0; i < 5; i++ {
		got, err := b.Read()
		require.NoError(t, err)
		assert.Equal(t, uint8(i), got.SensorID)
	}

	_, err = b.Read()
	assert.ErrorIs(t, err, ErrEmpty)
	assert.True(t, b.IsEmpty())
}

func TestStateSnapshot(t *testing.T) {
	b, err := New(3)
	require.NoError(t, err)
	require.NoError(t, b.Write(mkReading(0)))
	require.NoError(t, b.Write(mkReading(1)))

	st := b.State()
	assert.Equal(t, 2, st.Head)
	assert.Equal(t, 0, st.Tail)
	assert.Equal(t, 2, st.Count)
	assert.Equal(t, 3, st.Capacity)
	assert.False(t, st.Status.Empty)
	assert.False(t, st.Status.Full)
}
