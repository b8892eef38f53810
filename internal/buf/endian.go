// Package buf contains helpers for endian-safe encoding of the pool's
// export records.
package buf

import "encoding/binary"

// U16LE reads a little-endian uint16 from b. Returns 0 when b is too short.
func U16LE(b []byte) uint16 {
	if len(b) < 2 {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

// PutU16LE writes v into the first two bytes of b as little-endian.
// No-op when b is too short.
func PutU16LE(b []byte, v uint16) {
	if len(b) < 2 {
		return
	}
	binary.LittleEndian.PutUint16(b, v)
}

// AppendU16LE appends v to b as little-endian and returns the extended
// slice.
func AppendU16LE(b []byte, v uint16) []byte {
	return binary.LittleEndian.AppendUint16(b, v)
}
