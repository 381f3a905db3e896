// Package bitset implements a dynamically growable bit container that
// packs bits at true single-bit density into byte cells, with append and
// removal at the tail, write-through bit references, forward iteration and
// extraction of typed values or raw byte ranges from arbitrary bit offsets.
package bitset

import (
	"fmt"
	"strings"

	"github.com/howeyc/crc16"
	"golang.org/x/exp/slices"
)

// DynamicBitset owns a sequence of completed byte cells plus one
// incomplete trailing cell collecting bits until it fills up and gets
// promoted. Not safe for concurrent use.
type DynamicBitset struct {
	data []Byte

	incomplete     Byte
	incompleteBits uint
}

func New() *DynamicBitset {
	return &DynamicBitset{}
}

// PushBit appends a single bit at the logical end.
func (s *DynamicBitset) PushBit(bit bool) {
	s.incomplete.Set(s.incompleteBits, bit)
	s.incompleteBits++

	if s.incompleteBits == BitsPerByte {
		s.data = append(s.data, s.incomplete)
		s.incomplete = Byte{}
		s.incompleteBits = 0
	}
}

// PushByte appends all 8 bits of the given cell, most significant first.
func (s *DynamicBitset) PushByte(b Byte) {
	for i := uint(0); i < BitsPerByte; i++ {
		s.PushBit(b.Get(i))
	}
}

// PopBack removes the last bit. The vacated bit keeps its old value until
// the next append overwrites it. The set must not be empty.
func (s *DynamicBitset) PopBack() {
	if s.incompleteBits > 0 {
		s.incompleteBits--
		return
	}

	assertf(len(s.data) > 0, "pop from empty set")

	s.incomplete = s.data[len(s.data)-1]
	s.incompleteBits = BitsPerByte - 1
	s.data = s.data[:len(s.data)-1]
}

// Clear drops all bits, keeping the allocated capacity for reuse.
func (s *DynamicBitset) Clear() {
	s.data = s.data[:0]
	s.incompleteBits = 0
}

// Get returns the bit at the given position. A byteIndex equal to the
// completed count addresses the incomplete tail.
func (s *DynamicBitset) Get(byteIndex int, bitIndex uint) bool {
	s.assertValidPos(byteIndex, bitIndex)

	if byteIndex < len(s.data) {
		return s.data[byteIndex].Get(bitIndex)
	}
	return s.incomplete.Get(bitIndex)
}

// Ref returns a mutable handle to the bit at the given position. The
// position is resolved on every access, so the handle stays valid across
// growth of the backing storage.
func (s *DynamicBitset) Ref(byteIndex int, bitIndex uint) BitRef {
	s.assertValidPos(byteIndex, bitIndex)

	return BitRef{set: s, byteIndex: byteIndex, bitIndex: bitIndex}
}

func (s *DynamicBitset) set(byteIndex int, bitIndex uint, bit bool) {
	s.assertValidPos(byteIndex, bitIndex)

	if byteIndex < len(s.data) {
		s.data[byteIndex].Set(bitIndex, bit)
		return
	}
	s.incomplete.Set(bitIndex, bit)
}

func (s *DynamicBitset) assertValidPos(byteIndex int, bitIndex uint) {
	assertf(byteIndex < len(s.data) ||
		(byteIndex == len(s.data) && bitIndex < s.incompleteBits),
		"position (%d,%d) out of range", byteIndex, bitIndex)
}

// HasIncompleteByte reports whether the trailing cell holds any bits.
func (s *DynamicBitset) HasIncompleteByte() bool {
	return s.incompleteBits > 0
}

// BitsSize returns the total logical bit count.
func (s *DynamicBitset) BitsSize() int {
	return len(s.data)*BitsPerByte + int(s.incompleteBits)
}

// Reserve grows the backing storage so at least n more complete bytes can
// be appended without reallocation.
func (s *DynamicBitset) Reserve(n int) {
	s.data = slices.Grow(s.data, n)
}

// Checksum returns CRC-16/CCITT-FALSE over the packed logical bytes. Tail
// bits beyond the valid count are masked out, so sets with equal logical
// content always produce an equal sum.
func (s *DynamicBitset) Checksum() uint16 {
	packed := make([]byte, 0, len(s.data)+1)
	for _, b := range s.data {
		packed = append(packed, b.Raw())
	}
	if s.incompleteBits > 0 {
		packed = append(packed, s.incomplete.Raw()&(0xFF<<(BitsPerByte-s.incompleteBits)))
	}

	return crc16.ChecksumCCITTFalse(packed)
}

// String renders the logical bit sequence with completed cells separated
// by spaces, e.g. "10110010 11".
func (s *DynamicBitset) String() string {
	var sb strings.Builder
	for i, b := range s.data {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%08b", b.Raw())
	}

	if s.incompleteBits > 0 {
		if len(s.data) > 0 {
			sb.WriteByte(' ')
		}
		for i := uint(0); i < s.incompleteBits; i++ {
			if s.incomplete.Get(i) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
	}

	return sb.String()
}

// BitRef is a mutable handle to one bit of a DynamicBitset, addressed by
// (byte index, bit index) and resolved through the owning set on every
// access. Reading yields the current bit value, assigning writes through
// immediately. It becomes invalid only when the addressed position is
// removed from the logical sequence.
type BitRef struct {
	set       *DynamicBitset
	byteIndex int
	bitIndex  uint
}

func (r BitRef) Get() bool {
	return r.set.Get(r.byteIndex, r.bitIndex)
}

func (r BitRef) Set(bit bool) {
	r.set.set(r.byteIndex, r.bitIndex, bit)
}
