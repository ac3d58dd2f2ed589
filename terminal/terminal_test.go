package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func newSimTerminal(t *testing.T) (Terminal, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	term := NewFromScreen(sim)
	if err := term.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return term, sim
}

func TestSetCellReachesScreen(t *testing.T) {
	term, sim := newSimTerminal(t)
	defer term.Fini()

	green := RGB{R: 0, G: 255, B: 0}
	term.SetCell(2, 3, 'X', green, RGBBlack)
	if err := term.Show(); err != nil {
		t.Fatalf("Show: %v", err)
	}

	cells, w, _ := sim.GetContents()
	cell := cells[3*w+2]
	if len(cell.Runes) == 0 || cell.Runes[0] != 'X' {
		t.Errorf("cell (2,3) = %v, want 'X'", cell.Runes)
	}
	fg, _, _ := cell.Style.Decompose()
	r, g, b := fg.RGB()
	if r != 0 || g != 255 || b != 0 {
		t.Errorf("cell (2,3) fg = %d,%d,%d, want 0,255,0", r, g, b)
	}
}

func TestFiniIdempotent(t *testing.T) {
	term, _ := newSimTerminal(t)
	term.Fini()
	term.Fini() // must not panic
}

func pollWithTimeout(t *testing.T, term Terminal) Event {
	t.Helper()
	ch := make(chan Event, 1)
	go func() { ch <- term.PollEvent() }()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("PollEvent timed out")
		return Event{}
	}
}

func TestPollEventTranslatesKeys(t *testing.T) {
	term, sim := newSimTerminal(t)
	defer term.Fini()

	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	ev := pollWithTimeout(t, term)
	if ev.Type != EventKey || ev.Key != KeyRune || ev.Rune != 'q' {
		t.Errorf("rune event = %+v", ev)
	}

	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	ev = pollWithTimeout(t, term)
	if ev.Type != EventKey || ev.Key != KeyEscape {
		t.Errorf("escape event = %+v", ev)
	}

	sim.InjectKey(tcell.KeyCtrlC, 0, tcell.ModNone)
	ev = pollWithTimeout(t, term)
	if ev.Type != EventKey || ev.Key != KeyCtrlC {
		t.Errorf("ctrl-c event = %+v", ev)
	}
}

func TestPollEventTranslatesResize(t *testing.T) {
	term, sim := newSimTerminal(t)
	defer term.Fini()

	sim.SetSize(100, 40)
	ev := pollWithTimeout(t, term)
	if ev.Type != EventResize || ev.Width != 100 || ev.Height != 40 {
		t.Errorf("resize event = %+v, want 100x40", ev)
	}
	if w, h := term.Size(); w != 100 || h != 40 {
		t.Errorf("Size() = %dx%d after resize, want 100x40", w, h)
	}
}
