package sensor

import (
	"context"
	"math"
	"math/rand"
	"time"

	"sensorlog.klederson.com/internal/config"
)

// mockChannelTemplates describe the synthetic sensor channels used in
// demo mode. One template per sensor ID slot.
var mockChannelTemplates = []struct {
	Name string
	Base float64 // Resting value
	Amp  float64 // Sinusoid amplitude
}{
	{"temp.ambient", 21.5, 3.0},
	{"temp.cpu", 48.0, 9.0},
	{"humidity", 55.0, 12.0},
	{"pressure", 1013.2, 4.5},
	{"light", 320.0, 180.0},
	{"vibration", 0.8, 0.6},
	{"co2", 640.0, 110.0},
	{"voltage", 3.31, 0.12},
}

type mockChannel struct {
	id    uint8
	name  string
	base  float64
	amp   float64
	phase float64
	noise float64
}

// MockSource synthesizes readings for demo mode: each channel follows
// a slow sinusoid with a little noise, so values look alive without
// hardware.
type MockSource struct {
	program  Program
	channels []mockChannel
	interval time.Duration
	running  bool
	cancel   context.CancelFunc
}

// NewMockSource creates a source emitting one reading per interval,
// cycling through config.MaxSensors synthetic channels.
func NewMockSource(interval time.Duration) *MockSource {
	channels := make([]mockChannel, 0, config.MaxSensors)
	for i := 0; i < config.MaxSensors && i < len(mockChannelTemplates); i++ {
		tmpl := mockChannelTemplates[i]
		channels = append(channels, mockChannel{
			id:    uint8(i),
			name:  tmpl.Name,
			base:  tmpl.Base,
			amp:   tmpl.Amp,
			phase: rand.Float64() * 2 * math.Pi,
			noise: tmpl.Amp * 0.1,
		})
	}
	return &MockSource{channels: channels, interval: interval}
}

// Start begins emitting readings in a goroutine.
func (s *MockSource) Start(p Program) error {
	s.program = p
	s.running = true

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	go s.loop(ctx)
	return nil
}

func (s *MockSource) loop(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	t := 0.0
	next := 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !s.running {
				return
			}
			t += s.interval.Seconds()
			s.emit(&s.channels[next], t)
			next = (next + 1) % len(s.channels)
		}
	}
}

func (s *MockSource) emit(ch *mockChannel, t float64) {
	value := ch.base + ch.amp*math.Sin(t*0.4+ch.phase) + (rand.Float64()-0.5)*2*ch.noise

	msg := ReadingMsg{
		Reading: newReading(ch.id, float32(value)),
		Origin:  ch.name,
	}
	if s.program != nil {
		s.program.Send(msg)
	}
}

// Stop halts the mock source.
func (s *MockSource) Stop() {
	s.running = false
	if s.cancel != nil {
		s.cancel()
	}
}
