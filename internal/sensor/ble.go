package sensor

import (
	"fmt"

	"tinygo.org/x/bluetooth"
)

// BLESource samples live BLE advertisements as sensor readings: each
// advertisement becomes one reading with the RSSI in dBm as the value
// and a sensor ID derived from the advertiser address.
type BLESource struct {
	adapter *bluetooth.Adapter
	program Program
	running bool
}

// NewBLESource creates a source backed by the default adapter.
func NewBLESource() *BLESource {
	return &BLESource{
		adapter: bluetooth.DefaultAdapter,
	}
}

// Start begins BLE scanning in a goroutine. Each advertisement is sent
// as a ReadingMsg via program.Send().
func (s *BLESource) Start(p Program) error {
	s.program = p

	if err := s.adapter.Enable(); err != nil {
		return fmt.Errorf("failed to enable BLE adapter: %w (try running with sudo or setcap cap_net_admin+ep)", err)
	}

	s.running = true
	go func() {
		_ = s.adapter.Scan(func(adapter *bluetooth.Adapter, result bluetooth.ScanResult) {
			if !s.running {
				return
			}

			mac := result.Address.String()
			msg := ReadingMsg{
				Reading: newReading(IDFromMAC(mac), float32(result.RSSI)),
				Origin:  mac,
			}
			if s.program != nil {
				s.program.Send(msg)
			}
		})
	}()

	return nil
}

// Stop halts the BLE source.
func (s *BLESource) Stop() {
	s.running = false
	_ = s.adapter.StopScan()
}
