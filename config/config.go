package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lixenwraith/digital-rain/render"
	"github.com/lixenwraith/digital-rain/terminal"
)

// Flag value bounds, matching the documented --list ranges plus the zero
// endpoints (speed 0 freezes drops, density 0 disables spawning)
const (
	MaxSpeed   = 50.0
	MaxDensity = 3.0
)

// Config is the validated, read-only snapshot handed to the engine at
// construction. Background may be refreshed once after terminal
// background auto-detection completes.
type Config struct {
	SpeedFactor   float64
	DensityFactor float64
	Charset       []rune
	Theme         render.Theme
	Background    terminal.RGB
	FadeCurve     render.FadeCurve
}

// ValidationError reports an invalid configuration value
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

// Validate range-checks the configuration before the engine is constructed
func (c Config) Validate() error {
	if c.SpeedFactor < 0 || c.SpeedFactor > MaxSpeed {
		return &ValidationError{
			Field: "speed",
			Msg:   fmt.Sprintf("%g out of range [0, %g]", c.SpeedFactor, MaxSpeed),
		}
	}
	if c.DensityFactor < 0 || c.DensityFactor > MaxDensity {
		return &ValidationError{
			Field: "density",
			Msg:   fmt.Sprintf("%g out of range [0, %g]", c.DensityFactor, MaxDensity),
		}
	}
	if len(c.Charset) == 0 {
		return &ValidationError{Field: "chars", Msg: "character set is empty"}
	}
	return nil
}

// ParseRGB parses an "r,g,b" color triple from the --background-color flag
func ParseRGB(s string) (terminal.RGB, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return terminal.RGB{}, fmt.Errorf("color must be in format R,G,B (e.g., 255,255,255)")
	}
	var channels [3]uint8
	names := [3]string{"R", "G", "B"}
	for i, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return terminal.RGB{}, fmt.Errorf("invalid %s component %q", names[i], part)
		}
		channels[i] = uint8(v)
	}
	return terminal.RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}
