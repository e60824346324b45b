package argon2

import "encoding/binary"

const (
	// blockSize is the size in bytes of one Argon2 memory block.
	blockSize = 1024

	// qwords is the number of little-endian 64-bit words per block.
	qwords = blockSize / 8
)

// block is a single 1024-byte cell of the memory matrix, addressed as 128
// little-endian 64-bit words.
type block [qwords]uint64

// fromBytes decodes exactly blockSize little-endian bytes into a block.
func (b *block) fromBytes(p []byte) {
	for i := 0; i < qwords; i++ {
		b[i] = binary.LittleEndian.Uint64(p[i*8:])
	}
}

// toBytes encodes the block as blockSize little-endian bytes.
func (b *block) toBytes(out []byte) {
	for i, v := range b {
		binary.LittleEndian.PutUint64(out[i*8:], v)
	}
}

// xorWith XORs other into b in place.
func (b *block) xorWith(other *block) {
	for i := range b {
		b[i] ^= other[i]
	}
}

// xorOf sets b = x ^ y.
func (b *block) xorOf(x, y *block) {
	for i := range b {
		b[i] = x[i] ^ y[i]
	}
}

// zero clears the block's contents in place. Used to scrub sensitive
// intermediate state before the backing array is released.
func (b *block) zero() {
	for i := range b {
		b[i] = 0
	}
}
