/*
Package detone decomposes precomposed Vietnamese letters into less composed
forms.

Input is a stream of runes which the caller guarantees to be in Unicode
Normalization Form C. This precondition is not checked: text that is already
decomposed, or letters combined with marks the package does not know as a
unit, simply pass through unchanged. The output is not in any Unicode
normalization form.

Two modes are supported:

ToneSplitting detaches tone marks which do not fit into windows-1258. A letter
carrying both a vowel modifier (circumflex, breve, horn) and a tone, e.g. "ầ",
is emitted as the letter with the modifier ("â") followed by a combining tone
mark (U+0300). A letter carrying only a tone is left alone if windows-1258 has
a single byte for it ("á"), otherwise it is split into base letter and tone
mark ("ả" => "a" + U+0309). This is useful as a preprocessing step before
encoding Vietnamese text into windows-1258.

Orthographic decomposes every Vietnamese vowel letter into the units a person
would type on the (non-IME) Vietnamese keyboard layout: base letter first, then
the modifier mark, then the tone mark. "ầ" becomes "a" + U+0302 + U+0300. Note
that this is not canonical combining class order.

Encoding to windows-1258, normalization and language detection are left to
the caller. See golang.org/x/text/encoding/charmap and
golang.org/x/text/unicode/norm.

Further Reading

	https://en.wikipedia.org/wiki/Windows-1258
	https://en.wikipedia.org/wiki/Vietnamese_language_and_computers

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package detone

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'detone'
func tracer() tracing.Trace {
	return tracing.Select("detone")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
