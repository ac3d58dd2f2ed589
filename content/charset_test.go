package content

import (
	"sort"
	"testing"
)

func TestCharSetLookup(t *testing.T) {
	for _, name := range Names() {
		set, ok := CharSet(name)
		if !ok {
			t.Errorf("CharSet(%q) not found despite being listed", name)
		}
		if len(set) == 0 {
			t.Errorf("charset %q is empty", name)
		}
	}
	if _, ok := CharSet("klingon"); ok {
		t.Error("CharSet accepted unknown set name")
	}
}

func TestDefaultSetExists(t *testing.T) {
	if _, ok := CharSet(DefaultSet); !ok {
		t.Fatalf("default set %q missing", DefaultSet)
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if !sort.StringsAreSorted(names) {
		t.Errorf("Names() not sorted: %v", names)
	}
	if len(names) != 11 {
		t.Errorf("expected 11 character sets, got %d", len(names))
	}
}

func TestNoZeroRunes(t *testing.T) {
	for _, name := range Names() {
		set, _ := CharSet(name)
		for i, r := range set {
			if r == 0 {
				t.Errorf("charset %q has zero rune at %d", name, i)
			}
		}
	}
}
