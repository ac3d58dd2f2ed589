package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Terminal provides low-level terminal access.
// The animation engine only touches the terminal through this interface,
// from a single goroutine, during the render step.
type Terminal interface {
	// Init enters raw mode, alternate screen buffer, hides cursor
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// PollEvent blocks until the next input or resize event.
	// Returns EventClosed after Fini.
	PollEvent() Event

	// SetCell stages a single cell write (0-indexed)
	SetCell(x, y int, r rune, fg, bg RGB)

	// Show flushes staged cell writes to the terminal
	Show() error

	// Sync forces a full repaint on the next Show
	Sync()
}

// termImpl implements Terminal on top of a tcell.Screen
type termImpl struct {
	screen tcell.Screen

	mu          sync.Mutex
	initialized bool
	finiOnce    sync.Once
}

// New creates a Terminal bound to the process tty
func New() (Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	return &termImpl{screen: screen}, nil
}

// NewFromScreen wraps an existing tcell.Screen.
// Used in tests with tcell.NewSimulationScreen.
func NewFromScreen(screen tcell.Screen) Terminal {
	return &termImpl{screen: screen}
}

// Init enters raw mode and sets up the screen
func (t *termImpl) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	t.screen.HideCursor()
	t.screen.Clear()
	t.initialized = true
	return nil
}

// Fini restores terminal state exactly once
func (t *termImpl) Fini() {
	t.finiOnce.Do(func() {
		t.screen.Fini()
	})
}

// Size returns current terminal dimensions
func (t *termImpl) Size() (int, int) {
	return t.screen.Size()
}

// SetCell stages a cell write
func (t *termImpl) SetCell(x, y int, r rune, fg, bg RGB) {
	style := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B))).
		Background(tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B)))
	t.screen.SetContent(x, y, r, nil, style)
}

// Show flushes staged writes
func (t *termImpl) Show() error {
	t.screen.Show()
	return nil
}

// Sync forces full redraw
func (t *termImpl) Sync() {
	t.screen.Sync()
}

// PollEvent blocks until the next event, translating tcell events to the
// reduced Event type. Unknown event kinds are skipped.
func (t *termImpl) PollEvent() Event {
	for {
		ev := t.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			// Screen finalized, event stream ended
			return Event{Type: EventClosed}
		case *tcell.EventKey:
			return translateKey(ev)
		case *tcell.EventResize:
			w, h := ev.Size()
			return Event{Type: EventResize, Width: w, Height: h}
		case *tcell.EventError:
			return Event{Type: EventError}
		}
	}
}

// translateKey maps a tcell key event to the reduced key set
func translateKey(ev *tcell.EventKey) Event {
	switch ev.Key() {
	case tcell.KeyEscape:
		return Event{Type: EventKey, Key: KeyEscape}
	case tcell.KeyEnter:
		return Event{Type: EventKey, Key: KeyEnter}
	case tcell.KeyCtrlC:
		return Event{Type: EventKey, Key: KeyCtrlC}
	case tcell.KeyRune:
		return Event{Type: EventKey, Key: KeyRune, Rune: ev.Rune()}
	}
	return Event{Type: EventKey, Key: KeyNone}
}
