package terminal

import (
	"strconv"
	"strings"
)

// parseOSC11 extracts a background color from an OSC 11 reply.
// Expected shape: ESC ] 11 ; rgb:RRRR/GGGG/BBBB terminated by BEL or ESC \
// Component width varies by terminal (1-4 hex digits per channel);
// values are scaled down to 8 bits.
func parseOSC11(reply []byte) (RGB, bool) {
	s := string(reply)
	i := strings.Index(s, "\x1b]11;")
	if i < 0 {
		return RGB{}, false
	}
	s = s[i+len("\x1b]11;"):]

	end := strings.IndexAny(s, "\x07\x1b")
	if end < 0 {
		return RGB{}, false
	}
	s = s[:end]

	spec, ok := strings.CutPrefix(s, "rgb:")
	if !ok {
		return RGB{}, false
	}
	parts := strings.Split(spec, "/")
	if len(parts) != 3 {
		return RGB{}, false
	}

	var channels [3]uint8
	for i, part := range parts {
		digits := len(part)
		if digits < 1 || digits > 4 {
			return RGB{}, false
		}
		v, err := strconv.ParseUint(part, 16, 16)
		if err != nil {
			return RGB{}, false
		}
		channels[i] = scaleChannel(uint16(v), digits)
	}
	return RGB{R: channels[0], G: channels[1], B: channels[2]}, true
}

// scaleChannel reduces an n-hex-digit channel value to 8 bits
func scaleChannel(v uint16, digits int) uint8 {
	switch digits {
	case 1:
		return uint8(v * 0x11)
	case 2:
		return uint8(v)
	case 3:
		return uint8(v >> 4)
	default:
		return uint8(v >> 8)
	}
}
