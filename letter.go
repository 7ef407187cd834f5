package detone

import "unicode/utf8"

// Modifier is a Vietnamese vowel-shape diacritic.
type Modifier uint8

const (
	NoModifier Modifier = iota
	Circumflex
	Breve
	Horn
)

var modifierMarks = [...]rune{0, 0x0302, 0x0306, 0x031B}

// Mark returns the combining mark for m, or 0 for NoModifier.
func (m Modifier) Mark() rune {
	if int(m) >= len(modifierMarks) {
		return 0
	}
	return modifierMarks[m]
}

func (m Modifier) String() string {
	switch m {
	case NoModifier:
		return "none"
	case Circumflex:
		return "circumflex"
	case Breve:
		return "breve"
	case Horn:
		return "horn"
	}
	return "?"
}

// Tone is a Vietnamese tone mark. The level tone (thanh ngang) is written
// without a mark and is represented as NoTone.
type Tone uint8

const (
	NoTone Tone = iota
	Acute
	Grave
	HookAbove
	Tilde
	DotBelow
)

var toneMarks = [...]rune{0, 0x0301, 0x0300, 0x0309, 0x0303, 0x0323}

// Mark returns the combining mark for t, or 0 for NoTone.
func (t Tone) Mark() rune {
	if int(t) >= len(toneMarks) {
		return 0
	}
	return toneMarks[t]
}

func (t Tone) String() string {
	switch t {
	case NoTone:
		return "none"
	case Acute:
		return "acute"
	case Grave:
		return "grave"
	case HookAbove:
		return "hook-above"
	case Tilde:
		return "tilde"
	case DotBelow:
		return "dot-below"
	}
	return "?"
}

// Mode selects the output form of a decomposition.
type Mode uint8

const (
	// ToneSplitting detaches tone marks where windows-1258 has no single byte
	// for the precomposed letter.
	ToneSplitting Mode = iota
	// Orthographic decomposes into base letter, modifier mark and tone mark,
	// in keyboard typing order.
	Orthographic
	modeCount
)

func (m Mode) String() string {
	switch m {
	case ToneSplitting:
		return "tone-splitting"
	case Orthographic:
		return "orthographic"
	}
	return "?"
}

func (m Mode) valid() bool {
	return m < modeCount
}

// emission is the ordered list of runes to produce for one letter.
type emission struct {
	r    [3]rune
	n    uint8
	size uint8 // UTF-8 length of r[:n]
}

func (e *emission) runes() []rune {
	return e.r[:e.n]
}

func (e *emission) push(r rune) {
	e.r[e.n] = r
	e.n++
	e.size += uint8(utf8.RuneLen(r))
}

// Decomposition describes a precomposed Vietnamese letter.
//
// Letters with a modifier and a tone, e.g. 'ầ', have an Intermediate letter
// carrying the modifier only ('â'). Unicode canonical decomposition does not
// know about this intermediate form, but windows-1258 does: it has a single
// byte for 'â' and a combining grave accent, but none for 'ầ'.
type Decomposition struct {
	Letter       rune     // the precomposed letter
	Base         rune     // plain Latin letter, e.g. 'a'
	Modifier     Modifier // vowel modifier, if any
	Tone         Tone     // tone mark, if any
	Intermediate rune     // base+modifier as a single code point; 0 if no modifier
	Windows1258  bool     // Letter has a single-byte representation in windows-1258
	units        [modeCount]emission
}

// Units returns the runes a decomposer emits for d.Letter in mode m, in
// output order. If the letter is passed through unchanged in mode m, the
// result is just d.Letter.
func (d Decomposition) Units(m Mode) []rune {
	if !m.valid() {
		return nil
	}
	u := d.units[m]
	out := make([]rune, u.n)
	copy(out, u.runes())
	return out
}

// Splits reports whether d.Letter is rewritten in mode m.
func (d Decomposition) Splits(m Mode) bool {
	return m.valid() && d.units[m].n > 1
}
