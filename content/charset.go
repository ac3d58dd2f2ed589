// Package content holds the static character set tables for the rain
package content

import "sort"

// DefaultSet is the charset used when --chars is not given
const DefaultSet = "matrix"

// charSets maps set names to their glyphs. Sets are kept to single-rune,
// single-cell glyphs; combining sequences and ZWJ emoji do not survive
// one-rune-per-cell rendering.
var charSets = map[string][]rune{
	"matrix":   []rune("λｱｲｳｴｵｶｷｸｹｺｻｼｽｾｿﾀﾁﾂﾃﾄﾅﾆﾇﾈﾉﾊﾋﾌﾍﾎﾏﾐﾑﾒﾓﾔﾕﾖﾗﾘﾙﾚﾛﾜﾝ"),
	"binary":   []rune("01"),
	"symbols":  []rune("!@#$%^&*()_+-=[]{}|;':\",./<>?"),
	"emojis":   []rune("😂😅😊🔥💯✨🚀🎉🌟🌈🍕🍔🍟🍦📚💡🏀🎾🏐🏈🏉🏸🏓🏒🏑🏏🏹🎣🥊🥋🎽🏅🏆🎫🎨🎬🎧🎤"),
	"kanji":    []rune("書道日本漢字文化侍"),
	"greek":    []rune("αβγδεζηθικλμνξοπρστυφχψω"),
	"cyrillic": []rune("абвгдежзийклмнопрстуфхцчшщъыьэюяАБВГДЕЖЗИЙКЛМНОПРСТУФХЦЧШЩЪЫЬЭЮЯ"),
	"math":     []rune("∀∁∂∃∄∅∆∇∈∉∊∋∌∍∎∏∐∑−∓∔∕∖∗∘∙√∛∜∝∞∟∠∡∢∣∤∥∦∧∨∩∪"),
	"braille":  []rune("⠁⠂⠃⠄⠅⠆⠇⠈⠉⠊⠋⠌⠍⠎⠏⠐⠑⠒⠓⠔⠕⠖⠗⠘⠙⠚⠛⠜⠝⠞⠟⠠⠡⠢⠣⠤⠥⠦⠧⠨⠩⠪⠫⠬⠭⠮⠯"),
	"dna":      []rune("ATCG"),
	"persian":  []rune("ابتثجحخدذرزسشصضطظعغفقكلمنهويپچڈگھژکںیےآأؤإئء"),
}

// CharSet resolves a set name from the --chars flag
func CharSet(name string) ([]rune, bool) {
	set, ok := charSets[name]
	return set, ok
}

// Names returns all set names in sorted order, for --list
func Names() []string {
	names := make([]string, 0, len(charSets))
	for name := range charSets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
