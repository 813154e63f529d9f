package devicepath

import (
	"encoding/binary"
	"unicode/utf16"
)

// Byte-wise little-endian accessors. Node payloads have 1-byte alignment,
// so multi-byte fields must never be read through natively-aligned loads.

func getU16(b []byte, off int) uint16 {
	return binary.LittleEndian.Uint16(b[off:])
}

func getU32(b []byte, off int) uint32 {
	return binary.LittleEndian.Uint32(b[off:])
}

func getU64(b []byte, off int) uint64 {
	return binary.LittleEndian.Uint64(b[off:])
}

func putU16(b []byte, off int, v uint16) {
	binary.LittleEndian.PutUint16(b[off:], v)
}

func putU32(b []byte, off int, v uint32) {
	binary.LittleEndian.PutUint32(b[off:], v)
}

func putU64(b []byte, off int, v uint64) {
	binary.LittleEndian.PutUint64(b[off:], v)
}

// Returns the full encoded size of a node kind with the given dynamic
// trailing byte count, or ErrNodeTooBig if it doesn't fit in the header's
// 16-bit length field. The static part comes from the layout table so the
// builder and decoder share one source of truth.
func nodeSize(ft FullType, dynamicSize int) (uint16, error) {
	layout, ok := nodeLayouts[ft]
	if !ok {
		// Known kinds only; the caller is one of our own node values
		return 0, ErrUnsupportedType
	}
	size := layout.StaticSize() + dynamicSize
	if size > 0xffff {
		return 0, ErrNodeTooBig
	}
	return uint16(size), nil
}

// UCS-2 helpers for the node kinds carrying 16-bit character strings.
// UCS-2 is the BMP subset of UTF-16, so the utf16 package round-trips it
// exactly; unpaired surrogates decode to the replacement character.

func ucs2FromBytes(b []byte) []uint16 {
	chars := make([]uint16, len(b)/2)
	for i := range chars {
		chars[i] = getU16(b, 2*i)
	}
	return chars
}

func ucs2ToString(chars []uint16) string {
	return string(utf16.Decode(chars))
}

func stringToUcs2(s string) []uint16 {
	return utf16.Encode([]rune(s))
}
