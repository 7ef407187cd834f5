package detone

import (
	"io"
	"unicode/utf8"
)

type state uint8

const (
	fetching  state = iota // about to pull the next input rune
	draining               // emitting pending units of the last letter
	exhausted              // input has ended, terminal
)

// Decomposer reads runes from an input reader and yields them with
// Vietnamese letters decomposed according to its mode.
//
// Decomposer implements io.RuneReader, so it may be wrapped by other
// rune-level filters. It holds back at most two runes derived from the
// current input letter. It is not safe for concurrent use; decomposers on
// independent inputs may run concurrently.
type Decomposer struct {
	input   io.RuneReader
	table   *letterTable
	mode    Mode
	state   state
	pending [2]rune
	head    uint8
	count   uint8
	err     error // first non-EOF error of input
}

// New creates a decomposer for input. The input must be in Normalization
// Form C for the decomposition to be complete; this is not checked.
// New panics if mode is not a valid Mode.
func New(mode Mode, input io.RuneReader) *Decomposer {
	assert(mode.valid(), "detone: invalid mode")
	return &Decomposer{
		input: input,
		table: letters(),
		mode:  mode,
	}
}

// Mode returns the mode d has been created with.
func (d *Decomposer) Mode() Mode {
	return d.mode
}

// Err returns the first error of the input reader other than io.EOF, if any.
func (d *Decomposer) Err() error {
	return d.err
}

// ReadRune returns the next output rune. It returns io.EOF after the input
// has been exhausted and all pending units have been emitted. An error of
// the input reader ends the output stream and is returned unchanged, then
// and on every subsequent call.
//
// For runes passed through unchanged, size is the size reported by the
// input reader. For runes produced by a decomposition, size is their UTF-8
// length.
func (d *Decomposer) ReadRune() (r rune, size int, err error) {
	switch d.state {
	case draining:
		r = d.pending[d.head]
		d.head++
		if d.head == d.count {
			d.head, d.count = 0, 0
			d.state = fetching
		}
		return r, utf8.RuneLen(r), nil
	case exhausted:
		return 0, 0, d.endOfStream()
	}
	c, size, err := d.input.ReadRune()
	if err != nil {
		d.state = exhausted
		if err != io.EOF {
			tracer().Errorf("decomposer input failed: %v", err)
			d.err = err
		}
		return 0, 0, d.endOfStream()
	}
	letter := d.table.lookup(c)
	if letter == nil {
		return c, size, nil
	}
	units := letter.units[d.mode].runes()
	if len(units) == 1 {
		return c, size, nil
	}
	d.count = uint8(copy(d.pending[:], units[1:]))
	d.state = draining
	return units[0], utf8.RuneLen(units[0]), nil
}

// Next returns the next output rune, or false if the output is exhausted.
// Use Err to tell an input error from the regular end of input.
func (d *Decomposer) Next() (rune, bool) {
	r, _, err := d.ReadRune()
	return r, err == nil
}

func (d *Decomposer) endOfStream() error {
	if d.err != nil {
		return d.err
	}
	return io.EOF
}
