package detone

import (
	"sort"
	"sync"
	"unicode"

	"github.com/npillmayer/detone/pagemap"
	"golang.org/x/text/encoding/charmap"
)

// vowelRows enumerates the precomposed Vietnamese vowel letters, upper case.
// Every row lists a vowel without tone (plain), which for modified vowels is
// the intermediate letter, followed by its five toned variants in the order
// Acute, Grave, HookAbove, Tilde, DotBelow. Lower case letters are derived by
// simple case mapping.
//
// The enumeration cannot be replaced by canonical decomposition: NFD of 'Ầ'
// is A + U+0302 + U+0300, losing the intermediate 'Â'.
var vowelRows = [...]struct {
	base     rune
	modifier Modifier
	plain    rune
	toned    [5]rune
}{
	{'A', NoModifier, 'A', [5]rune{'Á', 'À', 'Ả', 'Ã', 'Ạ'}},
	{'A', Circumflex, 'Â', [5]rune{'Ấ', 'Ầ', 'Ẩ', 'Ẫ', 'Ậ'}},
	{'A', Breve, 'Ă', [5]rune{'Ắ', 'Ằ', 'Ẳ', 'Ẵ', 'Ặ'}},
	{'E', NoModifier, 'E', [5]rune{'É', 'È', 'Ẻ', 'Ẽ', 'Ẹ'}},
	{'E', Circumflex, 'Ê', [5]rune{'Ế', 'Ề', 'Ể', 'Ễ', 'Ệ'}},
	{'I', NoModifier, 'I', [5]rune{'Í', 'Ì', 'Ỉ', 'Ĩ', 'Ị'}},
	{'O', NoModifier, 'O', [5]rune{'Ó', 'Ò', 'Ỏ', 'Õ', 'Ọ'}},
	{'O', Circumflex, 'Ô', [5]rune{'Ố', 'Ồ', 'Ổ', 'Ỗ', 'Ộ'}},
	{'O', Horn, 'Ơ', [5]rune{'Ớ', 'Ờ', 'Ở', 'Ỡ', 'Ợ'}},
	{'U', NoModifier, 'U', [5]rune{'Ú', 'Ù', 'Ủ', 'Ũ', 'Ụ'}},
	{'U', Horn, 'Ư', [5]rune{'Ứ', 'Ừ', 'Ử', 'Ữ', 'Ự'}},
	{'Y', NoModifier, 'Y', [5]rune{'Ý', 'Ỳ', 'Ỷ', 'Ỹ', 'Ỵ'}},
}

// letterTable is the process-wide, read-only letter table.
type letterTable struct {
	index   pagemap.Map     // letter => 1-based position in records
	records []Decomposition // sorted by Letter
}

var (
	tableOnce sync.Once
	table     *letterTable
)

func letters() *letterTable {
	tableOnce.Do(func() {
		table = buildLetterTable()
	})
	return table
}

func buildLetterTable() *letterTable {
	t := &letterTable{
		records: make([]Decomposition, 0, 2*len(vowelRows)*6),
	}
	for _, row := range vowelRows {
		for _, upper := range []bool{true, false} {
			base, plain := row.base, row.plain
			if !upper {
				base, plain = unicode.ToLower(base), unicode.ToLower(plain)
			}
			var intermediate rune
			if row.modifier != NoModifier {
				intermediate = plain
				t.records = append(t.records, newDecomposition(plain, base, row.modifier, NoTone, 0))
			}
			for i, letter := range row.toned {
				if !upper {
					letter = unicode.ToLower(letter)
				}
				tone := Tone(i + 1)
				t.records = append(t.records, newDecomposition(letter, base, row.modifier, tone, intermediate))
			}
		}
	}
	sort.Slice(t.records, func(i, j int) bool {
		return t.records[i].Letter < t.records[j].Letter
	})
	singleByte := 0
	for i := range t.records {
		d := &t.records[i]
		assert(t.index.Get(d.Letter) == 0, "detone: duplicate letter in table")
		assert(t.index.Set(d.Letter, uint16(i+1)), "detone: letter outside the BMP")
		if d.Windows1258 {
			singleByte++
		}
		tracer().Debugf("letter %c %U = %c + %s + %s, tone-splitting=%q orthographic=%q",
			d.Letter, d.Letter, d.Base, d.Modifier, d.Tone,
			string(d.units[ToneSplitting].runes()), string(d.units[Orthographic].runes()))
	}
	tracer().Infof("letter table: %d letters, %d single-byte in windows-1258, %d index pages",
		len(t.records), singleByte, t.index.NumPages())
	return t
}

func newDecomposition(letter, base rune, modifier Modifier, tone Tone, intermediate rune) Decomposition {
	assert(letter != base, "detone: letter without diacritics in table")
	if tone != NoTone {
		assert((modifier == NoModifier) == (intermediate == 0),
			"detone: modified, toned letter needs an intermediate letter")
	}
	d := Decomposition{
		Letter:       letter,
		Base:         base,
		Modifier:     modifier,
		Tone:         tone,
		Intermediate: intermediate,
		Windows1258:  inWindows1258(letter),
	}
	if modifier != NoModifier && tone == NoTone {
		d.Intermediate = letter
	}
	if d.Intermediate != 0 {
		assert(inWindows1258(d.Intermediate), "detone: intermediate letter not in windows-1258")
	}
	split := &d.units[ToneSplitting]
	switch {
	case tone == NoTone || (modifier == NoModifier && d.Windows1258):
		split.push(letter)
	case modifier != NoModifier:
		split.push(d.Intermediate)
		split.push(tone.Mark())
	default:
		split.push(base)
		split.push(tone.Mark())
	}
	ortho := &d.units[Orthographic]
	ortho.push(base)
	if modifier != NoModifier {
		ortho.push(modifier.Mark())
	}
	if tone != NoTone {
		ortho.push(tone.Mark())
	}
	return d
}

func inWindows1258(r rune) bool {
	_, ok := charmap.Windows1258.EncodeRune(r)
	return ok
}

// lookup returns the table record for r, or nil.
func (t *letterTable) lookup(r rune) *Decomposition {
	if !t.index.HasPage(r) {
		return nil
	}
	id := t.index.Get(r)
	if id == 0 {
		return nil
	}
	return &t.records[id-1]
}

// Lookup returns the decomposition of a precomposed Vietnamese letter.
// For any rune outside the closed set of Vietnamese vowel letters with
// diacritics, including plain 'a' and 'đ', it returns false.
func Lookup(r rune) (Decomposition, bool) {
	d := letters().lookup(r)
	if d == nil {
		return Decomposition{}, false
	}
	return *d, true
}

// IsLetter reports whether r is a precomposed Vietnamese letter which
// may be rewritten by a decomposer. All other runes pass through unchanged.
func IsLetter(r rune) bool {
	return letters().lookup(r) != nil
}

// Letters returns all precomposed Vietnamese letters known to the package,
// in ascending order.
func Letters() []rune {
	t := letters()
	rr := make([]rune, len(t.records))
	for i := range t.records {
		rr[i] = t.records[i].Letter
	}
	return rr
}
