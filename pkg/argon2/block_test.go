package argon2

import "testing"

func TestBlockRoundTrip(t *testing.T) {
	raw := make([]byte, blockSize)
	for i := range raw {
		raw[i] = byte(i * 7)
	}

	var b block
	b.fromBytes(raw)

	out := make([]byte, blockSize)
	b.toBytes(out)

	for i := range raw {
		if raw[i] != out[i] {
			t.Fatalf("byte %d: got %d, want %d", i, out[i], raw[i])
		}
	}
}

func TestBlockXorOf(t *testing.T) {
	var x, y, z block
	for i := range x {
		x[i] = uint64(i)
		y[i] = uint64(i) * 3
	}
	z.xorOf(&x, &y)
	for i := range z {
		want := uint64(i) ^ (uint64(i) * 3)
		if z[i] != want {
			t.Fatalf("word %d: got %d, want %d", i, z[i], want)
		}
	}
}

func TestBlockXorWithIsSelfInverse(t *testing.T) {
	var a, b block
	for i := range a {
		a[i] = uint64(i) * 11
		b[i] = uint64(i) * 13
	}
	orig := a
	a.xorWith(&b)
	a.xorWith(&b)
	if a != orig {
		t.Error("xorWith twice with the same operand should be a no-op")
	}
}

func TestBlockZero(t *testing.T) {
	var b block
	for i := range b {
		b[i] = ^uint64(0)
	}
	b.zero()
	for i, v := range b {
		if v != 0 {
			t.Fatalf("word %d not zeroed: %d", i, v)
		}
	}
}
