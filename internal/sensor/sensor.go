package sensor

import (
	"crypto/sha256"
	"encoding/binary"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"sensorlog.klederson.com/internal/buffer"
	"sensorlog.klederson.com/internal/config"
)

// ReadingMsg is sent via tea.Program.Send when a source produces a
// sample. The model owns the buffer; sources never touch it directly.
type ReadingMsg struct {
	Reading buffer.Reading
	Origin  string // Human-readable origin, e.g. channel name or MAC
}

// SourceErrorMsg reports a source that failed to start or stopped
// unexpectedly.
type SourceErrorMsg struct {
	Err error
}

// Source is anything that can feed readings into the program.
type Source interface {
	Start(p Program) error
	Stop()
}

// Program is the subset of tea.Program the sources need. Keeping it an
// interface lets tests capture messages without a terminal.
type Program interface {
	Send(msg tea.Msg)
}

// Now returns the current time as a reading timestamp.
func Now() uint32 {
	return uint32(time.Now().Unix())
}

// newReading stamps a sample with the current time.
func newReading(id uint8, value float32) buffer.Reading {
	return buffer.Reading{Timestamp: Now(), SensorID: id, Value: value}
}

// IDFromMAC derives a stable sensor ID in [0, MaxSensors) from a
// device address, so the same advertiser always maps to the same
// channel.
func IDFromMAC(mac string) uint8 {
	h := sha256.Sum256([]byte(mac))
	val := binary.BigEndian.Uint32(h[:4])
	return uint8(val % config.MaxSensors)
}
