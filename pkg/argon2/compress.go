package argon2

// compress implements the Argon2 block compression function G(X, Y) -> Z,
// per RFC 9106 §3.6: R = X^Y; apply the permutation P to each row of R to
// get Q; apply P to each column of Q; Z = result ^ R.
//
// dst receives the output; x and y are the operands. dst may alias x or y.
func compress(dst, x, y *block) {
	var r, q block
	r.xorOf(x, y)
	q = r

	for i := 0; i < 8; i++ {
		row := q[i*16 : i*16+16]
		permute(
			&row[0], &row[1], &row[2], &row[3],
			&row[4], &row[5], &row[6], &row[7],
			&row[8], &row[9], &row[10], &row[11],
			&row[12], &row[13], &row[14], &row[15],
		)
	}

	// Columns group the 128-bit (two-word) entries at the same column
	// pair across all 8 rows: for column pair i, row r contributes
	// words q[16r+2i] and q[16r+2i+1].
	var col [16]uint64
	for i := 0; i < 8; i++ {
		for row := 0; row < 8; row++ {
			col[2*row] = q[16*row+2*i]
			col[2*row+1] = q[16*row+2*i+1]
		}
		permute(
			&col[0], &col[1], &col[2], &col[3],
			&col[4], &col[5], &col[6], &col[7],
			&col[8], &col[9], &col[10], &col[11],
			&col[12], &col[13], &col[14], &col[15],
		)
		for row := 0; row < 8; row++ {
			q[16*row+2*i] = col[2*row]
			q[16*row+2*i+1] = col[2*row+1]
		}
	}

	dst.xorOf(&q, &r)
}

// permute is the Argon2 round function P over 16 64-bit words laid out as
// an 8x2 register file (per RFC 9106 §3.6/§3.7): it applies the mixing
// function GB to the four "columns" then the four "diagonals" of the
// treated-as-4x4-of-uint64-pairs layout.
func permute(v0, v1, v2, v3, v4, v5, v6, v7, v8, v9, v10, v11, v12, v13, v14, v15 *uint64) {
	mix(v0, v4, v8, v12)
	mix(v1, v5, v9, v13)
	mix(v2, v6, v10, v14)
	mix(v3, v7, v11, v15)

	mix(v0, v5, v10, v15)
	mix(v1, v6, v11, v12)
	mix(v2, v7, v8, v13)
	mix(v3, v4, v9, v14)
}

// mix is Argon2's GB mixing function (RFC 9106 §3.5), a BLAKE2b-derived
// round in which every addition step (the updates of a and of c in each
// half-round) also adds the fBlaMka term 2·lo32(x)·lo32(y).
func mix(a, b, c, d *uint64) {
	*a = *a + *b + 2*uint64(uint32(*a))*uint64(uint32(*b))
	*d = rotr64(*d^*a, 32)
	*c = *c + *d + 2*uint64(uint32(*c))*uint64(uint32(*d))
	*b = rotr64(*b^*c, 24)
	*a = *a + *b + 2*uint64(uint32(*a))*uint64(uint32(*b))
	*d = rotr64(*d^*a, 16)
	*c = *c + *d + 2*uint64(uint32(*c))*uint64(uint32(*d))
	*b = rotr64(*b^*c, 63)
}

func rotr64(x uint64, n uint) uint64 {
	return (x >> n) | (x << (64 - n))
}
