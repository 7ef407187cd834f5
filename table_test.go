package detone

import (
	"reflect"
	"sort"
	"testing"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

func TestLookupRepresentativeLetters(t *testing.T) {
	tests := []struct {
		letter       rune
		base         rune
		modifier     Modifier
		tone         Tone
		intermediate rune
		win1258      bool
	}{
		{letter: 'ầ', base: 'a', modifier: Circumflex, tone: Grave, intermediate: 'â'},
		{letter: 'Ặ', base: 'A', modifier: Breve, tone: DotBelow, intermediate: 'Ă'},
		{letter: 'ữ', base: 'u', modifier: Horn, tone: Tilde, intermediate: 'ư'},
		{letter: 'Ở', base: 'O', modifier: Horn, tone: HookAbove, intermediate: 'Ơ'},
		{letter: 'ế', base: 'e', modifier: Circumflex, tone: Acute, intermediate: 'ê'},
		{letter: 'â', base: 'a', modifier: Circumflex, intermediate: 'â', win1258: true},
		{letter: 'Ư', base: 'U', modifier: Horn, intermediate: 'Ư', win1258: true},
		{letter: 'á', base: 'a', tone: Acute, win1258: true},
		{letter: 'Ì', base: 'I', tone: Grave},
		{letter: 'ý', base: 'y', tone: Acute},
		{letter: 'ỹ', base: 'y', tone: Tilde},
		{letter: 'ũ', base: 'u', tone: Tilde},
	}
	for _, tt := range tests {
		d, ok := Lookup(tt.letter)
		if !ok {
			t.Fatalf("Lookup(%c) found no entry", tt.letter)
		}
		if d.Letter != tt.letter || d.Base != tt.base || d.Modifier != tt.modifier || d.Tone != tt.tone {
			t.Fatalf("Lookup(%c) = %c+%s+%s, want %c+%s+%s", tt.letter,
				d.Base, d.Modifier, d.Tone, tt.base, tt.modifier, tt.tone)
		}
		if d.Intermediate != tt.intermediate {
			t.Fatalf("Lookup(%c).Intermediate = %U, want %U", tt.letter, d.Intermediate, tt.intermediate)
		}
		if d.Windows1258 != tt.win1258 {
			t.Fatalf("Lookup(%c).Windows1258 = %v, want %v", tt.letter, d.Windows1258, tt.win1258)
		}
	}
}

func TestLookupNoEntry(t *testing.T) {
	for _, r := range []rune{
		'a', 'Y', 'đ', 'Đ', 'ä', 'ñ', 'ç', ' ', '!', '\u0301', '\u0302', '中', '😀', 0xFFFD, -1, 0x10FFFF,
	} {
		if _, ok := Lookup(r); ok {
			t.Fatalf("Lookup(%U) should find no entry", r)
		}
		if IsLetter(r) {
			t.Fatalf("IsLetter(%U) should be false", r)
		}
	}
}

func TestLetters(t *testing.T) {
	letters := Letters()
	if len(letters) != 132 {
		t.Fatalf("expected 132 letters, got %d", len(letters))
	}
	if !sort.SliceIsSorted(letters, func(i, j int) bool { return letters[i] < letters[j] }) {
		t.Fatalf("letters are not in ascending order")
	}
	counts := make(map[[2]bool]int)
	for _, r := range letters {
		if !IsLetter(r) {
			t.Fatalf("IsLetter(%c) should be true", r)
		}
		d, _ := Lookup(r)
		counts[[2]bool{d.Modifier != NoModifier, d.Tone != NoTone}]++
	}
	if counts[[2]bool{true, false}] != 12 || counts[[2]bool{false, true}] != 60 || counts[[2]bool{true, true}] != 60 {
		t.Fatalf("unexpected letter classes: %v", counts)
	}
}

// Every decomposition must be canonically equivalent to its letter.
func TestUnitsComposeToLetter(t *testing.T) {
	for _, r := range Letters() {
		d, _ := Lookup(r)
		for _, mode := range []Mode{ToneSplitting, Orthographic} {
			units := string(d.Units(mode))
			if got := norm.NFC.String(units); got != string(r) {
				t.Fatalf("NFC of %s units %+q for %c is %+q", mode, units, r, got)
			}
		}
	}
}

func TestOrthographicUnitsMatchNFD(t *testing.T) {
	for _, r := range Letters() {
		d, _ := Lookup(r)
		units := d.Units(Orthographic)
		nfd := []rune(norm.NFD.String(string(r)))
		if units[0] != nfd[0] {
			t.Fatalf("base of %c is %c, NFD has %c", r, units[0], nfd[0])
		}
		marks := append([]rune(nil), units[1:]...)
		want := nfd[1:]
		sort.Slice(marks, func(i, j int) bool { return marks[i] < marks[j] })
		sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
		if !reflect.DeepEqual(marks, want) {
			t.Fatalf("marks of %c are %U, NFD has %U", r, marks, want)
		}
	}
}

func TestOrthographicUnitsInTypingOrder(t *testing.T) {
	tests := []struct {
		letter rune
		want   []rune
	}{
		{letter: 'ầ', want: []rune{'a', '\u0302', '\u0300'}},
		{letter: 'ậ', want: []rune{'a', '\u0302', '\u0323'}}, // NFD would put U+0323 first
		{letter: 'Ự', want: []rune{'U', '\u031B', '\u0323'}},
		{letter: 'ẵ', want: []rune{'a', '\u0306', '\u0303'}},
		{letter: 'ơ', want: []rune{'o', '\u031B'}},
		{letter: 'á', want: []rune{'a', '\u0301'}},
	}
	for _, tt := range tests {
		d, _ := Lookup(tt.letter)
		if got := d.Units(Orthographic); !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("orthographic units of %c = %U, want %U", tt.letter, got, tt.want)
		}
	}
}

func TestToneSplittingUnitsFitWindows1258(t *testing.T) {
	for _, r := range Letters() {
		d, _ := Lookup(r)
		units := d.Units(ToneSplitting)
		for _, u := range units {
			if _, ok := charmap.Windows1258.EncodeRune(u); !ok {
				t.Fatalf("tone-splitting unit %U of %c is not in windows-1258", u, r)
			}
		}
		if d.Windows1258 && (len(units) != 1 || d.Splits(ToneSplitting)) {
			t.Fatalf("single-byte letter %c should pass through, units are %U", r, units)
		}
		if !d.Windows1258 && len(units) != 2 {
			t.Fatalf("letter %c should split into 2 units, got %U", r, units)
		}
		if d.Modifier != NoModifier && d.Tone != NoTone && units[0] != d.Intermediate {
			t.Fatalf("letter %c should split off %c, got %c", r, d.Intermediate, units[0])
		}
	}
}

func TestUnitsInvalidMode(t *testing.T) {
	d, _ := Lookup('ầ')
	if units := d.Units(modeCount); units != nil {
		t.Fatalf("invalid mode should yield no units, got %U", units)
	}
	if d.Splits(Mode(42)) {
		t.Fatalf("invalid mode should never split")
	}
}

func TestUnitsAreCopies(t *testing.T) {
	d, _ := Lookup('ầ')
	units := d.Units(ToneSplitting)
	units[0] = 'x'
	again, _ := Lookup('ầ')
	if got := again.Units(ToneSplitting); got[0] != 'â' {
		t.Fatalf("table has been modified through Units: %U", got)
	}
}

func TestMarks(t *testing.T) {
	modifiers := map[Modifier]rune{NoModifier: 0, Circumflex: 0x0302, Breve: 0x0306, Horn: 0x031B, Modifier(9): 0}
	for m, want := range modifiers {
		if got := m.Mark(); got != want {
			t.Fatalf("%s.Mark() = %U, want %U", m, got, want)
		}
	}
	tones := map[Tone]rune{NoTone: 0, Acute: 0x0301, Grave: 0x0300, HookAbove: 0x0309,
		Tilde: 0x0303, DotBelow: 0x0323, Tone(9): 0}
	for tone, want := range tones {
		if got := tone.Mark(); got != want {
			t.Fatalf("%s.Mark() = %U, want %U", tone, got, want)
		}
	}
}
