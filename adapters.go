package detone

import (
	"iter"
	"strings"
	"unicode/utf8"
)

// Seq returns an iterator yielding the runes of input with Vietnamese
// letters decomposed according to mode. The iterator may be ranged over
// as often as input can.
//
// Seq panics if mode is not a valid Mode.
func Seq(mode Mode, input iter.Seq[rune]) iter.Seq[rune] {
	assert(mode.valid(), "detone: invalid mode")
	t := letters()
	return func(yield func(rune) bool) {
		for c := range input {
			letter := t.lookup(c)
			if letter == nil {
				if !yield(c) {
					return
				}
				continue
			}
			for _, r := range letter.units[mode].runes() {
				if !yield(r) {
					return
				}
			}
		}
	}
}

// String decomposes the Vietnamese letters of s according to mode.
// Bytes which are not valid UTF-8 are copied unchanged. If nothing needs
// to be rewritten, s is returned as is.
//
// String panics if mode is not a valid Mode.
func String(mode Mode, s string) string {
	assert(mode.valid(), "detone: invalid mode")
	t := letters()
	start := firstSplit(t, mode, s)
	if start < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + len(s)/2)
	b.WriteString(s[:start])
	for i := start; i < len(s); {
		c, size := utf8.DecodeRuneInString(s[i:])
		letter := t.lookup(c)
		if letter == nil || letter.units[mode].n == 1 {
			b.WriteString(s[i : i+size])
		} else {
			for _, r := range letter.units[mode].runes() {
				b.WriteRune(r)
			}
		}
		i += size
	}
	return b.String()
}

// firstSplit returns the byte offset of the first rune of s rewritten in
// mode, or -1.
func firstSplit(t *letterTable, mode Mode, s string) int {
	for i, c := range s {
		if c < utf8.RuneSelf {
			continue
		}
		if letter := t.lookup(c); letter != nil && letter.units[mode].n > 1 {
			return i
		}
	}
	return -1
}
