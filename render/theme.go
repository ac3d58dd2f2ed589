package render

import (
	"fmt"
	"sort"
)

// Theme is a named color theme for the rain
type Theme uint8

const (
	ThemeGreen Theme = iota
	ThemeAmber
	ThemeRed
	ThemeOrange
	ThemeBlue
	ThemePurple
	ThemeCyan
	ThemePink
	ThemeWhite
)

// themeTable maps themes to name and base hue
var themeTable = map[Theme]struct {
	name string
	base RGB
}{
	ThemeGreen:  {"green", RGB{R: 0, G: 255, B: 0}},
	ThemeAmber:  {"amber", RGB{R: 255, G: 191, B: 0}},
	ThemeRed:    {"red", RGB{R: 255, G: 0, B: 0}},
	ThemeOrange: {"orange", RGB{R: 255, G: 165, B: 0}},
	ThemeBlue:   {"blue", RGB{R: 0, G: 150, B: 255}},
	ThemePurple: {"purple", RGB{R: 128, G: 0, B: 255}},
	ThemeCyan:   {"cyan", RGB{R: 0, G: 255, B: 255}},
	ThemePink:   {"pink", RGB{R: 255, G: 20, B: 147}},
	ThemeWhite:  {"white", RGB{R: 255, G: 255, B: 255}},
}

// Base returns the theme's base hue
func (t Theme) Base() RGB {
	return themeTable[t].base
}

// String returns the theme's flag name
func (t Theme) String() string {
	if entry, ok := themeTable[t]; ok {
		return entry.name
	}
	return "unknown"
}

// ParseTheme resolves a theme name from the --color flag
func ParseTheme(name string) (Theme, error) {
	for t, entry := range themeTable {
		if entry.name == name {
			return t, nil
		}
	}
	return ThemeGreen, fmt.Errorf("unknown color theme %q", name)
}

// ThemeNames returns all theme names in sorted order, for --list
func ThemeNames() []string {
	names := make([]string, 0, len(themeTable))
	for _, entry := range themeTable {
		names = append(names, entry.name)
	}
	sort.Strings(names)
	return names
}
