package buffer

import "fmt"

// Reading is a single timestamped sensor sample. Readings are plain
// values: they are copied into the buffer on Write and copied back out
// on Read, so callers never share storage with the buffer.
type Reading struct {
	Timestamp uint32  // Unix seconds (or app-relative milliseconds)
	SensorID  uint8   // Which sensor produced the sample
	Value     float32 // The sample itself
}

func (r Reading) String() string {
	return fmt.Sprintf("t=%d sensor=%d value=%.2f", r.Timestamp, r.SensorID, r.Value)
}
