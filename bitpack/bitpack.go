// Package bitpack reads and writes 8 bit fields inside a 32 bit word.
package bitpack

const int32ToUint32Offset = 1 << 32

// Cast returns the unsigned interpretation of a signed 32 bit value.
func Cast(n int32) uint32 {
	v := int64(n)
	if v < 0 {
		v += int32ToUint32Offset
	}
	return uint32(v)
}

// Get returns the byte at bit offset within n.
func Get(n uint32, offset uint) uint8 {
	return uint8((n >> offset) & 0xff)
}

// Set returns n with the byte at bit offset replaced by b. Only the low 8
// bits of b are used.
func Set(n uint32, offset uint, b uint32) uint32 {
	return n ^ ((n ^ (b << offset)) & (0xff << offset))
}
