package render

// IntensityKind classifies a cell's logical brightness level
type IntensityKind uint8

const (
	IntensityBackground IntensityKind = iota
	IntensityTrail
	IntensityHead
)

// Intensity is a logical brightness level resolved to a color by Palette.
// Step is only meaningful for IntensityTrail and grows with distance from
// the drop head (farther = more faded).
type Intensity struct {
	Kind IntensityKind
	Step int
}

// Cell is a single rendered terminal cell
type Cell struct {
	Rune rune
	Fg   RGB
}

// CellUpdate is one occupied cell reported by the drop engine for a frame
type CellUpdate struct {
	X, Y      int
	Rune      rune
	Intensity Intensity
}

// Write is a single terminal write produced by the frame diff
type Write struct {
	X, Y int
	Rune rune
	Fg   RGB
}
