package blake2b

import "encoding/binary"

// LongHash implements Argon2's H' variable-length hash extension (RFC 9106
// §3.3). For outlen <= 64 it is a single BLAKE2b call over the length
// prefix and input. For longer outputs it chains 32-byte halves of
// successive BLAKE2b-512 digests, truncating the final block to whatever
// remains.
func LongHash(outlen int, input []byte) []byte {
	var lenPrefix [4]byte
	binary.LittleEndian.PutUint32(lenPrefix[:], uint32(outlen))

	if outlen <= Size {
		d, _ := New(outlen)
		d.Write(lenPrefix[:])
		d.Write(input)
		return d.Sum(nil)
	}

	out := make([]byte, outlen)

	d := New512()
	d.Write(lenPrefix[:])
	d.Write(input)
	v := d.Sum(nil)

	copy(out, v[:32])
	pos := 32

	for outlen-pos > Size {
		d := New512()
		d.Write(v)
		v = d.Sum(nil)
		copy(out[pos:], v[:32])
		pos += 32
	}

	remaining := outlen - pos
	d2, _ := New(remaining)
	d2.Write(v)
	copy(out[pos:], d2.Sum(nil))

	return out
}
