package bitset

// Iterator walks the logical bit sequence one bit at a time. It is the
// mutable variant: dereferencing can hand out a write-through BitRef.
// Positions compare lexicographically as (byte index, bit index) pairs.
type Iterator struct {
	set       *DynamicBitset
	byteIndex int
	bitIndex  uint
}

// Begin returns an iterator at the first logical bit.
func (s *DynamicBitset) Begin() Iterator {
	return Iterator{set: s}
}

// End returns the position one past the last logical bit.
func (s *DynamicBitset) End() Iterator {
	return Iterator{set: s, byteIndex: len(s.data), bitIndex: s.incompleteBits}
}

// IteratorAt returns an iterator at an arbitrary position.
func (s *DynamicBitset) IteratorAt(byteIndex int, bitIndex uint) Iterator {
	return Iterator{set: s, byteIndex: byteIndex, bitIndex: bitIndex}
}

// Next advances one bit, carrying into the next byte cell after bit 7.
func (it *Iterator) Next() {
	it.bitIndex++
	if it.bitIndex == BitsPerByte {
		it.bitIndex = 0
		it.byteIndex++
	}
}

// Bit returns the bit at the current position.
func (it Iterator) Bit() bool {
	return it.set.Get(it.byteIndex, it.bitIndex)
}

// Ref returns a write-through handle to the current position.
func (it Iterator) Ref() BitRef {
	return it.set.Ref(it.byteIndex, it.bitIndex)
}

// TakeBit returns the current bit and advances the iterator.
func (it *Iterator) TakeBit() bool {
	bit := it.Bit()
	it.Next()
	return bit
}

// TakeRef returns a handle to the current position and advances the
// iterator.
func (it *Iterator) TakeRef() BitRef {
	ref := it.Ref()
	it.Next()
	return ref
}

func (it Iterator) Equal(other Iterator) bool {
	return it.byteIndex == other.byteIndex && it.bitIndex == other.bitIndex
}

func (it Iterator) Less(other Iterator) bool {
	return it.byteIndex < other.byteIndex ||
		(it.byteIndex == other.byteIndex && it.bitIndex < other.bitIndex)
}

// NextByte assembles one logical byte starting at the current position and
// advances past the 8 bits read. A byte-aligned position reads the backing
// completed cell directly; an unaligned one rebuilds the byte bit by bit,
// possibly straddling two cells.
func (it *Iterator) NextByte() Byte {
	if it.bitIndex == 0 {
		assertf(it.byteIndex < len(it.set.data),
			"byte read at (%d,0) past completed data", it.byteIndex)

		b := it.set.data[it.byteIndex]
		it.byteIndex++
		return b
	}

	var b Byte
	for i := uint(0); i < BitsPerByte; i++ {
		b.Set(i, it.TakeBit())
	}
	return b
}

// ConstIterator is the read-only variant: dereferencing yields bit values
// only, never references. Position mechanics match Iterator.
type ConstIterator struct {
	set       *DynamicBitset
	byteIndex int
	bitIndex  uint
}

// ConstBegin returns a read-only iterator at the first logical bit.
func (s *DynamicBitset) ConstBegin() ConstIterator {
	return ConstIterator{set: s}
}

// ConstEnd returns the read-only position one past the last logical bit.
func (s *DynamicBitset) ConstEnd() ConstIterator {
	return ConstIterator{set: s, byteIndex: len(s.data), bitIndex: s.incompleteBits}
}

func (it *ConstIterator) Next() {
	it.bitIndex++
	if it.bitIndex == BitsPerByte {
		it.bitIndex = 0
		it.byteIndex++
	}
}

func (it ConstIterator) Bit() bool {
	return it.set.Get(it.byteIndex, it.bitIndex)
}

// TakeBit returns the current bit and advances the iterator.
func (it *ConstIterator) TakeBit() bool {
	bit := it.Bit()
	it.Next()
	return bit
}

func (it ConstIterator) Equal(other ConstIterator) bool {
	return it.byteIndex == other.byteIndex && it.bitIndex == other.bitIndex
}

func (it ConstIterator) Less(other ConstIterator) bool {
	return it.byteIndex < other.byteIndex ||
		(it.byteIndex == other.byteIndex && it.bitIndex < other.bitIndex)
}
