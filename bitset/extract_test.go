package bitset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractUint32RoundTrip(t *testing.T) {
	s := New()
	Push(s, uint32(0x01020304))

	require.Equal(t, 32, s.BitsSize())
	require.Equal(t, uint32(0x01020304), ExtractAt[uint32](s, 0, 0))
}

func TestExtractAdvancesIterator(t *testing.T) {
	s := New()
	Push(s, uint16(0xBEEF))
	Push(s, uint16(0xCAFE))

	it := s.Begin()
	require.Equal(t, uint16(0xBEEF), Extract[uint16](&it))
	require.Equal(t, uint16(0xCAFE), Extract[uint16](&it))
	require.True(t, it.Equal(s.End()))
}

func TestExtractStructRoundTrip(t *testing.T) {
	type sample struct {
		A uint16
		B [3]byte
		C int8
	}
	v := sample{A: 0x1234, B: [3]byte{9, 8, 7}, C: -5}

	s := New()
	Push(s, v)

	it := s.Begin()
	require.Equal(t, v, Extract[sample](&it))
}

func TestExtractUnaligned(t *testing.T) {
	s := New()
	pushBits(s, 1, 1, 0, 1, 0) // filler shifting the value off alignment
	Push(s, uint32(0xDEADBEEF))

	require.Equal(t, uint32(0xDEADBEEF), ExtractAt[uint32](s, 0, 5))
}

func TestExtractBytes(t *testing.T) {
	s := New()
	for _, b := range []byte{0x10, 0x20, 0x30, 0x40} {
		s.PushByte(NewByte(b))
	}

	dst := make([]byte, 3)
	it := s.IteratorAt(1, 0)
	ExtractBytes(dst, &it)
	require.Equal(t, []byte{0x20, 0x30, 0x40}, dst)

	dst = make([]byte, 2)
	s.ExtractBytesAt(dst, 0, 0)
	require.Equal(t, []byte{0x10, 0x20}, dst)
}

func TestPushPopThenExtract(t *testing.T) {
	s := New()
	Push(s, uint8(0x42))
	s.PopBack()
	s.PushBit(false)

	require.Equal(t, uint8(0x42), ExtractAt[uint8](s, 0, 0))
}
