package engine

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/lixenwraith/digital-rain/config"
	"github.com/lixenwraith/digital-rain/render"
)

const (
	// Trail length range for freshly spawned drops
	minTrailLength = 8
	maxTrailLength = 20

	// Per-drop speed jitter around the global speed factor. At the
	// default speed factor of 5.0 this gives 3.75-6.25 rows/sec.
	minBaseSpeed = 0.75
	maxBaseSpeed = 1.25

	// meanSpawnInterval is the average idle time in seconds before a
	// column at density 1.0 spawns a drop. Calibrated against a
	// 0.005-per-frame activation chance at 30 fps.
	meanSpawnInterval = 6.67

	// Trail cells faded beyond this fraction render as blanks, giving
	// the tail a soft edge instead of a hard color cutoff
	blankFadeThreshold = 0.95
)

// DropEngine owns the grid of column states and advances them each tick
type DropEngine struct {
	width  int
	height int

	speedFactor   float64
	densityFactor float64
	charset       []rune

	rng     *rand.Rand
	columns []ColumnState

	// updates is reused across ticks to avoid per-frame allocation
	updates []render.CellUpdate
}

// NewDropEngine creates an engine for a width x height grid. All columns
// start inactive; drops appear through spawn rolls on subsequent ticks.
func NewDropEngine(width, height int, cfg config.Config, rng *rand.Rand) (*DropEngine, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("drop engine: invalid grid %dx%d", width, height)
	}
	e := &DropEngine{
		width:         width,
		height:        height,
		speedFactor:   cfg.SpeedFactor,
		densityFactor: cfg.DensityFactor,
		charset:       cfg.Charset,
		rng:           rng,
	}
	e.columns = make([]ColumnState, width)
	for i := range e.columns {
		e.columns[i].index = i
	}
	return e, nil
}

// Size returns current grid dimensions
func (e *DropEngine) Size() (width, height int) {
	return e.width, e.height
}

// SetSpeed updates the global speed factor for live reconfiguration
func (e *DropEngine) SetSpeed(factor float64) {
	if factor < 0 {
		factor = 0
	}
	if factor > config.MaxSpeed {
		factor = config.MaxSpeed
	}
	e.speedFactor = factor
}

// SetDensity updates the spawn density factor for live reconfiguration
func (e *DropEngine) SetDensity(factor float64) {
	if factor < 0 {
		factor = 0
	}
	if factor > config.MaxDensity {
		factor = config.MaxDensity
	}
	e.densityFactor = factor
}

// Resize reflows the grid. Columns still in range keep their drop state;
// new columns start inactive. Zero dimensions are valid and produce an
// empty occupied set.
func (e *DropEngine) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if width > len(e.columns) {
		for i := len(e.columns); i < width; i++ {
			e.columns = append(e.columns, ColumnState{index: i})
		}
	} else {
		e.columns = e.columns[:width]
	}
	e.width = width
	e.height = height
}

// Column exposes a column's state for inspection
func (e *DropEngine) Column(i int) *ColumnState {
	return &e.columns[i]
}

// ActiveColumns counts columns with a falling drop
func (e *DropEngine) ActiveColumns() int {
	n := 0
	for i := range e.columns {
		if e.columns[i].active {
			n++
		}
	}
	return n
}

// Advance moves every drop by dt seconds and returns the occupied cell
// set for the frame. The returned slice is reused on the next call.
func (e *DropEngine) Advance(dt float64) []render.CellUpdate {
	e.updates = e.updates[:0]
	if e.width == 0 || e.height == 0 {
		return e.updates
	}

	spawnChance := e.densityFactor * dt / meanSpawnInterval
	for i := range e.columns {
		c := &e.columns[i]
		if !c.active {
			if spawnChance > 0 && e.rng.Float64() < spawnChance {
				e.spawn(c)
			}
			if !c.active {
				continue
			}
			// Freshly spawned drops render at their spawn position
			// and start falling on the next tick
		} else {
			c.head += c.baseSpeed * e.speedFactor * dt
			if c.head-float64(c.trailLength) > float64(e.height) {
				c.active = false
				continue
			}
		}

		e.refreshGlyphs(c)
		e.appendCells(c)
	}
	return e.updates
}

// spawn activates a column with a randomized drop. The head may start
// above the top edge or partway down the screen, so fresh drops enter at
// staggered positions rather than marching in from row zero together.
func (e *DropEngine) spawn(c *ColumnState) {
	h := float64(e.height)
	c.head = e.rng.Float64()*h - e.rng.Float64()*h/2
	c.trailLength = minTrailLength + e.rng.Intn(maxTrailLength-minTrailLength)
	c.baseSpeed = minBaseSpeed + e.rng.Float64()*(maxBaseSpeed-minBaseSpeed)
	c.active = true
}

// refreshGlyphs re-randomizes the per-row glyph buffer
func (e *DropEngine) refreshGlyphs(c *ColumnState) {
	need := c.trailLength + 1
	if cap(c.glyphs) < need {
		c.glyphs = make([]rune, need)
	}
	c.glyphs = c.glyphs[:need]
	for i := range c.glyphs {
		c.glyphs[i] = e.charset[e.rng.Intn(len(e.charset))]
	}
}

// appendCells emits the drop's visible cells. The head gets full
// intensity; trail cells fade with distance, and cells past the blank
// threshold render as spaces.
func (e *DropEngine) appendCells(c *ColumnState) {
	headRow := int(math.Round(c.head))
	tailRow := headRow - c.trailLength

	top := tailRow
	if top < 0 {
		top = 0
	}
	bottom := headRow
	if bottom > e.height-1 {
		bottom = e.height - 1
	}

	for row := top; row <= bottom; row++ {
		dist := headRow - row
		r := c.glyphs[dist]

		var in render.Intensity
		if dist == 0 {
			in = render.Intensity{Kind: render.IntensityHead}
		} else {
			fade := float64(dist) / float64(c.trailLength)
			step := int(fade * render.TrailSteps)
			if step > render.TrailSteps-1 {
				step = render.TrailSteps - 1
			}
			in = render.Intensity{Kind: render.IntensityTrail, Step: step}
			if fade > blankFadeThreshold {
				r = ' '
			}
		}

		e.updates = append(e.updates, render.CellUpdate{
			X:         c.index,
			Y:         row,
			Rune:      r,
			Intensity: in,
		})
	}
}
