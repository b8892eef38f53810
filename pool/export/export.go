// Package export renders read-only snapshots of pool state in the
// pool's diagnostic formats: a uint16 free-region list, a word
// occupancy bitmap and a text memory map.
//
// All exporters work from an independent hole snapshot and never touch
// ledger state.
package export

import (
	"github.com/joshuapare/memkit/internal/buf"
	"github.com/joshuapare/memkit/pool/fit"
)

// FreeList encodes holes as a little-endian uint16 stream: a count
// followed by (pos, extent) pairs in position order. Word offsets and
// extents beyond 16 bits are out of scope for this format.
func FreeList(holes []fit.Hole) []byte {
	out := make([]byte, 0, 2+4*len(holes))
	out = buf.AppendU16LE(out, uint16(len(holes)))
	for _, h := range holes {
		out = buf.AppendU16LE(out, uint16(h.Pos))
		out = buf.AppendU16LE(out, uint16(h.Extent))
	}
	return out
}

// Bitmap packs one bit per word after a two-byte little-endian byte
// count. Bit k of byte b is word 8*b+k; a set bit means the word is
// allocated. Every word defaults to allocated and is cleared only when
// a hole covers it, so the free list is the single source of truth.
func Bitmap(words int, holes []fit.Hole) []byte {
	n := words / 8
	if words%8 != 0 {
		n++
	}
	out := make([]byte, 2+n)
	buf.PutU16LE(out, uint16(n))

	used := make([]bool, words)
	for i := range used {
		used[i] = true
	}
	for _, h := range holes {
		for i := 0; i < h.Extent; i++ {
			if w := h.Pos + i; w >= 0 && w < words {
				used[w] = false
			}
		}
	}
	for w, u := range used {
		if u {
			out[2+w/8] |= 1 << (w % 8)
		}
	}
	return out
}
