package render

// FadeCurve selects how trail intensity decays toward the background
type FadeCurve uint8

const (
	// FadeQuadratic fades slowly near the head and quickly at the tail
	FadeQuadratic FadeCurve = iota
	// FadeLinear fades evenly along the trail
	FadeLinear
)

// TrailSteps is the number of discrete fade levels between a drop's head
// and full background
const TrailSteps = 8

// headBrightenFactor lifts the head color above the theme base hue
const headBrightenFactor = 1.4

// Palette maps logical intensity levels to display colors for one theme.
// Resolve is pure: the fade table is computed up front and only rebuilt
// when the background changes after terminal detection.
type Palette struct {
	theme      Theme
	curve      FadeCurve
	background RGB
	trail      [TrailSteps]RGB
}

// NewPalette builds a palette for the theme blended against background
func NewPalette(theme Theme, background RGB, curve FadeCurve) *Palette {
	p := &Palette{
		theme:      theme,
		curve:      curve,
		background: background,
	}
	p.rebuild()
	return p
}

// rebuild recomputes the fade table.
// Step 0 is the brightened head color; later steps blend the base hue
// toward the background, reaching full blend at the last step.
func (p *Palette) rebuild() {
	base := p.theme.Base()
	for i := 0; i < TrailSteps; i++ {
		t := float64(i) / float64(TrailSteps-1)
		if p.curve == FadeQuadratic {
			t = t * t
		}
		p.trail[i] = Blend(base, p.background, t)
	}
	p.trail[0] = Scale(base, headBrightenFactor)
}

// SetBackground refreshes the background color and rebuilds the fade table.
// Called once after terminal background auto-detection completes.
func (p *Palette) SetBackground(background RGB) {
	p.background = background
	p.rebuild()
}

// Background returns the configured background color
func (p *Palette) Background() RGB {
	return p.background
}

// Theme returns the palette's theme
func (p *Palette) Theme() Theme {
	return p.theme
}

// Resolve maps an intensity level to its display color
func (p *Palette) Resolve(in Intensity) RGB {
	switch in.Kind {
	case IntensityHead:
		return p.trail[0]
	case IntensityTrail:
		step := in.Step
		if step < 0 {
			step = 0
		}
		if step > TrailSteps-1 {
			step = TrailSteps - 1
		}
		return p.trail[step]
	default:
		return p.background
	}
}
