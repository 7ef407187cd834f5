package detone

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// NewTransformer returns a transform.Transformer which decomposes the
// Vietnamese letters of UTF-8 text according to mode. It may be chained
// with other transformers, e.g.
//
//	t := transform.Chain(detone.NewTransformer(detone.ToneSplitting),
//	        charmap.Windows1258.NewEncoder())
//
// to encode NFC input into windows-1258. Bytes which are not valid UTF-8
// are copied unchanged.
//
// NewTransformer panics if mode is not a valid Mode.
func NewTransformer(mode Mode) transform.Transformer {
	assert(mode.valid(), "detone: invalid mode")
	return decomposeTransform{table: letters(), mode: mode}
}

// decomposeTransform keeps no state between calls: every letter is
// either written completely or not consumed at all.
type decomposeTransform struct {
	transform.NopResetter
	table *letterTable
	mode  Mode
}

func (t decomposeTransform) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c, size := rune(src[nSrc]), 1
		if c >= utf8.RuneSelf {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				return nDst, nSrc, transform.ErrShortSrc
			}
			c, size = utf8.DecodeRune(src[nSrc:])
		}
		var units *emission
		if letter := t.table.lookup(c); letter != nil && letter.units[t.mode].n > 1 {
			units = &letter.units[t.mode]
		}
		if units == nil {
			if nDst+size > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
			nSrc += size
			continue
		}
		if nDst+int(units.size) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		for _, r := range units.runes() {
			nDst += utf8.EncodeRune(dst[nDst:], r)
		}
		nSrc += size
	}
	return nDst, nSrc, nil
}
