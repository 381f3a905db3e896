package bitset

import (
	"reflect"
	"unsafe"
)

// Push appends the raw in-memory representation of v byte by byte, in
// native order. v must be trivially copyable: its bytes alone must fully
// describe it, with no pointers, slices, maps, strings or other
// indirection anywhere inside (checked only in debug builds).
func Push[T any](s *DynamicBitset, v T) {
	assertTriviallyCopyable(reflect.TypeOf(v))

	raw := unsafe.Slice((*byte)(unsafe.Pointer(&v)), unsafe.Sizeof(v))
	for _, b := range raw {
		s.PushByte(NewByte(b))
	}
}

// Extract reconstructs a T from the next sizeof(T) logical bytes,
// advancing the iterator one logical byte per byte read. It is the
// byte-for-byte inverse of Push. Reading past the logical end is
// undefined.
func Extract[T any](it *Iterator) T {
	var v T
	assertTriviallyCopyable(reflect.TypeOf(v))

	raw := unsafe.Slice((*byte)(unsafe.Pointer(&v)), unsafe.Sizeof(v))
	extractInto(raw, it)
	return v
}

// ExtractAt is Extract starting from a fresh iterator at the given
// position.
func ExtractAt[T any](s *DynamicBitset, byteIndex int, bitIndex uint) T {
	it := s.IteratorAt(byteIndex, bitIndex)
	return Extract[T](&it)
}

// ExtractBytes fills dst with len(dst) logical bytes read at the iterator,
// advancing it. Meant for callers extracting data of non-fixed size.
func ExtractBytes(dst []byte, it *Iterator) {
	extractInto(dst, it)
}

// ExtractBytesAt is ExtractBytes starting at the given position.
func (s *DynamicBitset) ExtractBytesAt(dst []byte, byteIndex int, bitIndex uint) {
	it := s.IteratorAt(byteIndex, bitIndex)
	extractInto(dst, &it)
}

func extractInto(dst []byte, it *Iterator) {
	for i := range dst {
		dst[i] = it.NextByte().Raw()
	}
}
