package engine

import (
	"fmt"
	"time"

	"github.com/lixenwraith/digital-rain/config"
	"github.com/lixenwraith/digital-rain/render"
	"github.com/lixenwraith/digital-rain/terminal"
)

// State is the scheduler lifecycle state
type State uint8

const (
	StateRunning State = iota
	StatePaused
	StateShuttingDown
	StateStopped
)

const (
	// baseTickInterval paces the animation at speed factors up to
	// baseSpeedFactor; higher factors shorten the interval down to
	// minTickInterval to avoid unbounded spin
	baseTickInterval = 33 * time.Millisecond
	minTickInterval  = 8 * time.Millisecond
	baseSpeedFactor  = 5.0

	// maxTickDelta caps the per-tick advancement. A late tick advances
	// proportionally up to this bound instead of firing catch-up ticks.
	maxTickDelta = 0.1

	// Live adjustment steps and bounds
	speedStep    = 1.0
	densityStep  = 0.1
	minLiveSpeed = 1.0

	eventQueueSize = 64
)

// Scheduler drives the animation: it multiplexes timer ticks, input, and
// resize events on a single goroutine, advancing the drop engine and
// flushing frames so no partially rendered frame ever reaches the
// terminal.
type Scheduler struct {
	term    terminal.Terminal
	drops   *DropEngine
	frame   *render.FrameBuffer
	palette *render.Palette
	clock   TimeProvider

	speedFactor   float64
	densityFactor float64

	// state is only touched from the run loop goroutine
	state    State
	lastTick time.Time
	events   chan terminal.Event
}

// NewScheduler wires the animation components together. The terminal must
// already be initialized; the scheduler only writes to it during render.
func NewScheduler(term terminal.Terminal, drops *DropEngine, frame *render.FrameBuffer, palette *render.Palette, speedFactor, densityFactor float64) *Scheduler {
	return &Scheduler{
		term:          term,
		drops:         drops,
		frame:         frame,
		palette:       palette,
		clock:         SystemTimeProvider{},
		speedFactor:   speedFactor,
		densityFactor: densityFactor,
		state:         StateRunning,
	}
}

// SetTimeProvider replaces the scheduler clock, for tests
func (s *Scheduler) SetTimeProvider(clock TimeProvider) {
	s.clock = clock
}

// State returns the scheduler state. Only meaningful from the run loop
// goroutine or after Run has returned.
func (s *Scheduler) State() State {
	return s.state
}

// Run executes the animation loop until a quit command, terminal closure,
// or render failure. On quit it completes exactly one more render before
// returning. The caller owns terminal setup and teardown.
func (s *Scheduler) Run() (err error) {
	defer func() { s.state = StateStopped }()

	s.state = StateRunning
	s.events = make(chan terminal.Event, eventQueueSize)
	go s.pollLoop()

	timer := time.NewTimer(s.tickInterval())
	defer timer.Stop()
	s.lastTick = s.clock.Now()

	for {
		select {
		case ev := <-s.events:
			s.handleEvent(ev)
			s.drainEvents()

		case <-timer.C:
			// Settle queued input and resizes before the tick decision
			s.drainEvents()
			if s.state == StateRunning {
				if err := s.tick(); err != nil {
					s.state = StateShuttingDown
					return fmt.Errorf("render failed: %w", err)
				}
			} else {
				// Paused: keep the clock current so resuming does not
				// advance drops by the paused duration
				s.lastTick = s.clock.Now()
			}
			timer.Reset(s.tickInterval())
		}

		if s.state == StateShuttingDown {
			// Drain one final render so the last frame is complete,
			// then let the caller release the terminal
			if err := s.tick(); err != nil {
				return fmt.Errorf("final render failed: %w", err)
			}
			return nil
		}
	}
}

// pollLoop pumps terminal events into the scheduler queue. Exits when the
// terminal is finalized. Events are dropped rather than blocking the
// pump if the loop has stopped draining.
func (s *Scheduler) pollLoop() {
	for {
		ev := s.term.PollEvent()
		select {
		case s.events <- ev:
		default:
		}
		if ev.Type == terminal.EventClosed {
			return
		}
	}
}

// drainEvents processes queued events without blocking, so a burst of
// input or resizes settles before the next tick decision
func (s *Scheduler) drainEvents() {
	for {
		select {
		case ev := <-s.events:
			s.handleEvent(ev)
			if s.state == StateShuttingDown {
				return
			}
		default:
			return
		}
	}
}

// handleEvent dispatches a single event
func (s *Scheduler) handleEvent(ev terminal.Event) {
	switch ev.Type {
	case terminal.EventResize:
		s.resize(ev.Width, ev.Height)

	case terminal.EventClosed, terminal.EventError:
		s.state = StateShuttingDown

	case terminal.EventKey:
		s.handleKey(ev)
	}
}

// handleKey maps input keys to commands
func (s *Scheduler) handleKey(ev terminal.Event) {
	switch ev.Key {
	case terminal.KeyEscape, terminal.KeyCtrlC:
		s.state = StateShuttingDown
		return
	case terminal.KeyRune:
	default:
		return
	}

	switch ev.Rune {
	case 'q', 'Q':
		s.state = StateShuttingDown
	case ' ':
		s.togglePause()
	case '+', '=':
		s.adjustSpeed(speedStep)
	case '-':
		s.adjustSpeed(-speedStep)
	case ']':
		s.adjustDensity(densityStep)
	case '[':
		s.adjustDensity(-densityStep)
	}
}

// togglePause flips between Running and Paused
func (s *Scheduler) togglePause() {
	switch s.state {
	case StateRunning:
		s.state = StatePaused
	case StatePaused:
		s.state = StateRunning
		s.lastTick = s.clock.Now()
	}
}

// adjustSpeed applies a live speed factor change
func (s *Scheduler) adjustSpeed(delta float64) {
	s.speedFactor += delta
	if s.speedFactor < minLiveSpeed {
		s.speedFactor = minLiveSpeed
	}
	if s.speedFactor > config.MaxSpeed {
		s.speedFactor = config.MaxSpeed
	}
	s.drops.SetSpeed(s.speedFactor)
}

// adjustDensity applies a live density factor change
func (s *Scheduler) adjustDensity(delta float64) {
	s.densityFactor += delta
	if s.densityFactor < 0 {
		s.densityFactor = 0
	}
	if s.densityFactor > config.MaxDensity {
		s.densityFactor = config.MaxDensity
	}
	s.drops.SetDensity(s.densityFactor)
}

// resize forwards new dimensions to engine and framebuffer before the
// next tick, so the two never render with mismatched grids
func (s *Scheduler) resize(width, height int) {
	s.drops.Resize(width, height)
	s.frame.Resize(width, height)
}

// tick advances the animation by the elapsed wall time and renders one
// complete frame
func (s *Scheduler) tick() error {
	now := s.clock.Now()
	dt := now.Sub(s.lastTick).Seconds()
	s.lastTick = now
	if dt < 0 {
		dt = 0
	}
	if dt > maxTickDelta {
		// Coalesce late ticks instead of bursting to catch up
		dt = maxTickDelta
	}

	ew, eh := s.drops.Size()
	fw, fh := s.frame.Size()
	if ew != fw || eh != fh {
		// Programming defect, not user-recoverable
		panic(fmt.Sprintf("grid dimensions diverged: engine %dx%d, framebuffer %dx%d", ew, eh, fw, fh))
	}

	updates := s.drops.Advance(dt)
	s.frame.Compose(updates, s.palette)
	if err := s.frame.Flush(s.term); err != nil {
		return err
	}
	s.frame.Swap()
	return nil
}

// tickInterval derives the frame cadence from the speed factor
func (s *Scheduler) tickInterval() time.Duration {
	scale := s.speedFactor / baseSpeedFactor
	if scale < 1 {
		scale = 1
	}
	interval := time.Duration(float64(baseTickInterval) / scale)
	if interval < minTickInterval {
		interval = minTickInterval
	}
	return interval
}
