/*
Package pagemap maps runes of the Basic Multilingual Plane to small dense IDs.

A Map is a two-level page table:
  - top[hi] is a page index (1..NumPages) for high byte hi, or 0 meaning
    "page absent".
  - pages is a flat array of NumPages*256 entries, indexed by the low byte.

Lookup is O(1) with two array reads. Runes outside the BMP are never mapped.
For sparse, clustered key sets (e.g. the letters of one script) only a handful
of pages get allocated: each page costs 512 bytes.
*/
package pagemap

const pageSize = 256

// Map is a two-level page table from BMP code points to dense IDs.
// ID 0 means "not mapped". The zero value is an empty map, ready to use.
type Map struct {
	top   [256]uint16 // page index (1-based); 0 means none
	pages []uint16    // flat: NumPages*256
}

// Get returns the dense ID for r, or 0 if r is not mapped.
func (m *Map) Get(r rune) uint16 {
	if r < 0 || r > 0xFFFF {
		return 0
	}
	pi := m.top[r>>8]
	if pi == 0 {
		return 0
	}
	return m.pages[int(pi-1)*pageSize+int(r&0xFF)]
}

// HasPage reports whether the page containing r is allocated. If it is not,
// Get(r) is guaranteed to return 0.
func (m *Map) HasPage(r rune) bool {
	if r < 0 || r > 0xFFFF {
		return false
	}
	return m.top[r>>8] != 0
}

// NumPages returns the number of allocated pages.
func (m *Map) NumPages() int { return len(m.pages) / pageSize }

// Set maps r to id. An id of 0 clears the mapping. Set returns false if r
// lies outside the BMP.
func (m *Map) Set(r rune, id uint16) bool {
	if r < 0 || r > 0xFFFF {
		return false
	}
	hi := r >> 8
	pi := m.top[hi]
	if pi == 0 {
		if id == 0 {
			return true
		}
		m.pages = append(m.pages, make([]uint16, pageSize)...)
		pi = uint16(len(m.pages) / pageSize)
		m.top[hi] = pi
	}
	m.pages[int(pi-1)*pageSize+int(r&0xFF)] = id
	return true
}
