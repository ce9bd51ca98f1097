package config

import "time"

const (
	// Buffer
	DefaultCapacity = 256 // Default number of reading slots
	MaxSensors      = 8   // Sensor IDs range over [0, MaxSensors)

	// Producer / consumer pacing. The producer deliberately outruns the
	// default drain so overflow behaviour is observable.
	DefaultProduceInterval = 150 * time.Millisecond
	DefaultDrainInterval   = 400 * time.Millisecond

	// UI
	TargetFPS       = 30  // Frames per second for the TUI refresh
	HistorySize     = 120 // Occupancy samples kept for the sparkline
	RecentReadings  = 64  // Drained readings kept for the readings panel
	SlotMapMaxWidth = 64  // Widest slot map before it is scaled down

	// App
	AppName    = "SENSOR-LOG"
	AppVersion = "1.0"
)
