package linebreak

// MaxCodePoint is the largest Unicode code point.
const MaxCodePoint = 0x10FFFF

const (
	pageBits  = 8
	pageSize  = 1 << pageBits           // 256 code points per page
	pageCount = (MaxCodePoint + 1) >> 8 // 0x1100 pages over 17 planes

	// uniformPage flags an index entry which encodes the class of all 256
	// code points of its block directly instead of referencing a page.
	uniformPage = 0x8000
)

// pageTable maps code points (0..0x10FFFF) to line breaking classes.
// It's a two-level page table:
//   - Index[hi] is either uniformPage|class, for blocks where all 256 code
//     points share one class, or the 0-based number of a page in Pages.
//   - Pages is a flat array of NumPages*256 class entries. Identical pages
//     are stored once.
//
// Lookup is O(1) with at most two array reads and does not allocate.
//
// Memory:
//   - Index: 4352 * 2 = 8.5 KB
//   - Each stored page: 256 bytes
type pageTable struct {
	Index []uint16 // len == pageCount
	Pages []Class  // flat: NumPages*256
}

// Lookup returns the class for code point cp. Code points beyond the Unicode
// range are Unknown.
func (m *pageTable) Lookup(cp uint32) Class {
	hi := cp >> pageBits
	if int(hi) >= len(m.Index) {
		return Unknown
	}
	pi := m.Index[hi]
	if pi&uniformPage != 0 {
		c, _ := classFromIndex(pi &^ uniformPage)
		return c
	}
	base := int(pi) << pageBits // *256
	return m.Pages[base+int(cp&0xFF)]
}

// NumPages returns the number of stored (non-uniform) pages.
func (m *pageTable) NumPages() int { return len(m.Pages) >> pageBits }

// NumUniform returns the number of blocks encoded directly in the index.
func (m *pageTable) NumUniform() int {
	n := 0
	for _, pi := range m.Index {
		if pi&uniformPage != 0 {
			n++
		}
	}
	return n
}

// compilePages builds a page table from a dense class assignment for all code
// points. classes must have length MaxCodePoint+1.
func compilePages(classes []Class) *pageTable {
	assertThat(len(classes) == MaxCodePoint+1, "dense class table must cover all code points")
	m := &pageTable{Index: make([]uint16, pageCount)}
	seen := make(map[[pageSize]Class]uint16)
	for hi := range pageCount {
		var page [pageSize]Class
		copy(page[:], classes[hi<<pageBits:(hi+1)<<pageBits])
		if isUniform(&page) {
			m.Index[hi] = uniformPage | uint16(page[0])
			continue
		}
		pi, ok := seen[page]
		if !ok {
			pi = uint16(m.NumPages())
			assertThat(pi < uniformPage, "page index collides with uniform page flag")
			m.Pages = append(m.Pages, page[:]...)
			seen[page] = pi
		}
		m.Index[hi] = pi
	}
	return m
}

func isUniform(page *[pageSize]Class) bool {
	for _, c := range page[1:] {
		if c != page[0] {
			return false
		}
	}
	return true
}
