package bitset

// BitsPerByte is the number of addressable bit positions in a Byte cell.
const BitsPerByte = 8

// Byte is a single packed octet holding up to 8 individually addressable
// bits. Position 0 is the most significant bit.
type Byte struct {
	data uint8
}

func NewByte(data uint8) Byte {
	return Byte{data: data}
}

// Raw returns the underlying octet for bulk byte operations.
func (b Byte) Raw() uint8 {
	return b.data
}

func (b *Byte) Set(pos uint, bit bool) {
	assertf(pos < BitsPerByte, "bit position %d out of range", pos)

	shift := BitsPerByte - pos - 1
	b.data &^= 1 << shift
	if bit {
		b.data |= 1 << shift
	}
}

func (b *Byte) Get(pos uint) bool {
	assertf(pos < BitsPerByte, "bit position %d out of range", pos)

	return b.data&(1<<(BitsPerByte-pos-1)) != 0
}

// Ref returns a mutable handle to the bit at pos. The handle is valid only
// while the cell's storage location is stable; for cells owned by a
// DynamicBitset use DynamicBitset.Ref instead, which survives growth of
// the backing storage.
func (b *Byte) Ref(pos uint) Ref {
	assertf(pos < BitsPerByte, "bit position %d out of range", pos)

	return Ref{owner: b, pos: pos}
}

// Ref is a mutable handle to one bit of a Byte. Reading forwards to the
// cell's Get, assigning writes through to the cell immediately.
type Ref struct {
	owner *Byte
	pos   uint
}

func (r Ref) Get() bool {
	return r.owner.Get(r.pos)
}

func (r Ref) Set(bit bool) {
	r.owner.Set(r.pos, bit)
}
