package engine

// ColumnState is the per-column drop state. At most one drop falls per
// column; inactive columns wait for a spawn roll.
type ColumnState struct {
	index int

	// head is the drop's head row as a float so sub-row movement
	// accumulates across ticks. Monotonically increasing while active.
	head float64

	// trailLength in rows beneath the head. Always >= 1 while active.
	trailLength int

	// baseSpeed in rows per second before the global speed factor
	baseSpeed float64

	active bool

	// glyphs holds one rune per occupied row, glyphs[0] at the head.
	// Re-randomized every tick for the shimmer effect.
	glyphs []rune
}

// HeadRow returns the drop head position
func (c *ColumnState) HeadRow() float64 {
	return c.head
}

// TrailLength returns the drop trail length in rows
func (c *ColumnState) TrailLength() int {
	return c.trailLength
}

// Active reports whether a drop is currently falling in this column
func (c *ColumnState) Active() bool {
	return c.active
}
