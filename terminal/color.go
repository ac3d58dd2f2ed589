package terminal

import "fmt"

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// RGBBlack is the zero value black color
var RGBBlack = RGB{0, 0, 0}

// Equal returns true if colors match
func (c RGB) Equal(other RGB) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// String formats the color as "r,g,b", matching the --background-color flag syntax
func (c RGB) String() string {
	return fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)
}
