package render

import (
	"github.com/lixenwraith/digital-rain/terminal"
)

// FrameBuffer is a double-buffered cell grid. Each frame is composed into
// the current buffer, diffed against the previous one so only changed
// cells reach the terminal, then the buffers are swapped.
type FrameBuffer struct {
	current  []Cell
	previous []Cell
	width    int
	height   int

	background RGB

	// fullRepaint marks the previous buffer stale (after resize or
	// background change); the next diff emits every cell. Cleared on Swap.
	fullRepaint bool
}

// NewFrameBuffer creates a buffer pair with the specified dimensions
func NewFrameBuffer(width, height int, background RGB) *FrameBuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	b := &FrameBuffer{
		width:      width,
		height:     height,
		background: background,
	}
	b.current = b.newGrid()
	b.previous = b.newGrid()
	b.fullRepaint = true
	return b
}

// newGrid allocates a cleared cell grid
func (b *FrameBuffer) newGrid() []Cell {
	grid := make([]Cell, b.width*b.height)
	b.clearGrid(grid)
	return grid
}

// clearGrid resets all cells to blank using exponential copy
func (b *FrameBuffer) clearGrid(grid []Cell) {
	if len(grid) == 0 {
		return
	}
	grid[0] = Cell{Rune: ' ', Fg: b.background}
	for filled := 1; filled < len(grid); filled *= 2 {
		copy(grid[filled:], grid[:filled])
	}
}

// Size returns current buffer dimensions
func (b *FrameBuffer) Size() (width, height int) {
	return b.width, b.height
}

// Resize reallocates both buffers and forces a full repaint on the next
// diff. The previous frame's contents are treated as entirely stale.
func (b *FrameBuffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	b.width = width
	b.height = height

	size := width * height
	if cap(b.current) < size {
		b.current = make([]Cell, size)
		b.previous = make([]Cell, size)
	} else {
		b.current = b.current[:size]
		b.previous = b.previous[:size]
	}
	b.clearGrid(b.current)
	b.clearGrid(b.previous)
	b.fullRepaint = true
}

// SetBackground updates the blank-cell color and forces a full repaint
func (b *FrameBuffer) SetBackground(background RGB) {
	b.background = background
	b.fullRepaint = true
}

// Compose fills the current buffer from the engine's occupied cell set,
// resolving intensities through the palette. Out-of-bounds updates are
// dropped.
func (b *FrameBuffer) Compose(updates []CellUpdate, palette *Palette) {
	b.clearGrid(b.current)
	for _, u := range updates {
		if u.X < 0 || u.X >= b.width || u.Y < 0 || u.Y >= b.height {
			continue
		}
		b.current[u.Y*b.width+u.X] = Cell{
			Rune: u.Rune,
			Fg:   palette.Resolve(u.Intensity),
		}
	}
}

// Diff returns the writes needed to bring the terminal from the previous
// frame to the current one, in row-major order. Calling Diff repeatedly
// without an intervening Compose or Swap yields the same write set.
func (b *FrameBuffer) Diff() []Write {
	var writes []Write
	for y := 0; y < b.height; y++ {
		rowBase := y * b.width
		for x := 0; x < b.width; x++ {
			idx := rowBase + x
			cur := b.current[idx]
			if !b.fullRepaint {
				prev := b.previous[idx]
				if cur.Rune == prev.Rune && cur.Fg.Equal(prev.Fg) {
					continue
				}
			}
			writes = append(writes, Write{X: x, Y: y, Rune: cur.Rune, Fg: cur.Fg})
		}
	}
	return writes
}

// Flush emits the diff to the terminal and commits it in one Show call,
// keeping the frame atomic. A failed write aborts the remaining entries
// for this frame.
func (b *FrameBuffer) Flush(term terminal.Terminal) error {
	for _, w := range b.Diff() {
		term.SetCell(w.X, w.Y, w.Rune, w.Fg, b.background)
	}
	return term.Show()
}

// Swap makes the current frame the new previous frame
func (b *FrameBuffer) Swap() {
	b.current, b.previous = b.previous, b.current
	b.fullRepaint = false
}
