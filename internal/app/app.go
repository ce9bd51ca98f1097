package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"sensorlog.klederson.com/internal/buffer"
	"sensorlog.klederson.com/internal/config"
	"sensorlog.klederson.com/internal/sensor"
	"sensorlog.klederson.com/internal/ui"
)

// Options configure the logger session.
type Options struct {
	Demo            bool
	Adapter         string
	Capacity        int
	ProduceInterval time.Duration
	DrainInterval   time.Duration
}

// Stats counts operation outcomes over the session.
type Stats struct {
	Written    uint64 // Successful writes
	Rejected   uint64 // Writes refused because the buffer was full
	Read       uint64 // Successful reads
	Underflows uint64 // Reads refused because the buffer was empty
	Peeks      uint64
}

// shared holds state shared between the Bubble Tea model copies and
// main.go. Because Bubble Tea uses value receivers, pointer fields
// ensure all copies see the same underlying data. All buffer access
// happens inside Update, so the single-owner contract of the buffer
// holds: sources only ever send messages.
type shared struct {
	buf     *buffer.RingBuffer
	history *OccupancyRing
	stats   *Stats
	drained []buffer.Reading
	peeked  *buffer.Reading
	source  sensor.Source
}

// AppModel is the root Bubble Tea model for SENSOR-LOG.
type AppModel struct {
	width  int
	height int

	producing bool
	draining  bool
	demoMode  bool
	adapter   string
	lastErr   string

	drainInterval time.Duration

	shared *shared

	// Cached per-frame view data
	state   buffer.State
	history []float64
}

// New creates a new AppModel with a freshly allocated buffer.
func New(opts Options) (AppModel, error) {
	buf, err := buffer.New(opts.Capacity)
	if err != nil {
		return AppModel{}, err
	}
	return AppModel{
		producing:     true,
		draining:      true,
		demoMode:      opts.Demo,
		adapter:       opts.Adapter,
		drainInterval: opts.DrainInterval,
		state:         buf.State(),
		shared: &shared{
			buf:     buf,
			history: NewOccupancyRing(config.HistorySize),
			stats:   &Stats{},
		},
	}, nil
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		drainCmd(m.drainInterval),
	)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		st := m.shared.buf.State()
		if st.Capacity > 0 {
			m.shared.history.Push(float64(st.Count) / float64(st.Capacity))
		}
		m.state = st
		m.history = m.shared.history.Values()
		return m, tickCmd()

	case DrainMsg:
		if m.draining {
			m.readOne()
		}
		return m, drainCmd(m.drainInterval)

	case sensor.ReadingMsg:
		if m.producing {
			if err := m.shared.buf.Write(msg.Reading); err != nil {
				m.shared.stats.Rejected++
			} else {
				m.shared.stats.Written++
			}
		}
		return m, nil

	case sensor.SourceErrorMsg:
		m.lastErr = msg.Err.Error()
		return m, nil
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q", "ctrl+c":
		m.stopSources()
		m.shared.buf.Close()
		return m, tea.Quit

	case "p", "P":
		m.producing = !m.producing

	case "d", "D":
		m.draining = !m.draining

	case "r", "R":
		m.readOne()

	case "e", "E":
		if r, err := m.shared.buf.Peek(); err == nil {
			m.shared.peeked = &r
		} else {
			m.shared.peeked = nil
		}
		m.shared.stats.Peeks++

	case "c", "C":
		m.shared.buf.Clear()
		m.shared.peeked = nil
		m.shared.drained = nil
	}

	return m, nil
}

// readOne performs a single consumer read and records the outcome.
func (m AppModel) readOne() {
	r, err := m.shared.buf.Read()
	if err != nil {
		m.shared.stats.Underflows++
		return
	}
	m.shared.stats.Read++
	m.shared.peeked = nil

	m.shared.drained = append(m.shared.drained, r)
	if len(m.shared.drained) > config.RecentReadings {
		m.shared.drained = m.shared.drained[len(m.shared.drained)-config.RecentReadings:]
	}
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing SENSOR-LOG..."
	}

	menuH := 1
	statusH := 1
	bodyH := m.height - menuH - statusH
	if bodyH < 5 {
		bodyH = 5
	}

	bufferW := m.width * 3 / 5
	if bufferW < 30 {
		bufferW = 30
	}
	listW := m.width - bufferW
	if listW < 20 {
		listW = 20
		bufferW = m.width - listW
	}

	mode := "BLE " + m.adapter
	if m.demoMode {
		mode = "demo"
	}

	menuBar := ui.RenderMenuBar(m.width, mode, m.producing, m.draining)
	bufferPanel := ui.RenderBufferPanel(bufferW, bodyH, m.state, m.history)
	readingsPanel := ui.RenderReadingsPanel(listW, bodyH, m.shared.peeked, m.shared.drained)

	s := m.shared.stats
	statusBar := ui.RenderStatusBar(m.width, m.producing, m.draining,
		s.Written, s.Rejected, s.Read, s.Underflows,
		m.state.Count, m.state.Capacity, m.lastErr)

	return ui.ComposeLayout(menuBar, bufferPanel, readingsPanel, statusBar)
}

// StartSources initializes and starts the configured source. Must be
// called before p.Run().
func (m *AppModel) StartSources(p *tea.Program, produceInterval time.Duration) error {
	if m.demoMode {
		m.shared.source = sensor.NewMockSource(produceInterval)
	} else {
		m.shared.source = sensor.NewBLESource()
	}
	return m.shared.source.Start(p)
}

func (m *AppModel) stopSources() {
	if m.shared.source != nil {
		m.shared.source.Stop()
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(config.TargetFPS), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func drainCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return DrainMsg(t)
	})
}
