package render

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/digital-rain/terminal"
)

// RGB is an alias to terminal.RGB, allowing render package to extend functionality
type RGB = terminal.RGB

// RGBBlack is the zero value black color
var RGBBlack = RGB{R: 0, G: 0, B: 0}

// clamp converts float to uint8 with saturation
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// Scale multiplies all channels by factor with clamping.
// Factors above 1.0 brighten, below 1.0 darken.
func Scale(c RGB, factor float64) RGB {
	return RGB{
		R: clamp(float64(c.R) * factor),
		G: clamp(float64(c.G) * factor),
		B: clamp(float64(c.B) * factor),
	}
}

// Blend interpolates from c toward target in RGB space.
// t=0 returns c, t=1 returns target.
func Blend(c, target RGB, t float64) RGB {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return target
	}
	blended := toColorful(c).BlendRgb(toColorful(target), t)
	return fromColorful(blended)
}

func toColorful(c RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

func fromColorful(c colorful.Color) RGB {
	return RGB{
		R: clamp(c.R*255.0 + 0.5),
		G: clamp(c.G*255.0 + 0.5),
		B: clamp(c.B*255.0 + 0.5),
	}
}
