package blake2b

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{"valid size 32", 32, false},
		{"valid size 64", 64, false},
		{"valid size 1", 1, false},
		{"invalid size 0", 0, true},
		{"invalid size 65", 65, true},
		{"invalid size negative", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := New(tt.size)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && d.size != tt.size {
				t.Errorf("New() size = %d, want %d", d.size, tt.size)
			}
		})
	}
}

func TestEmptyStringVector(t *testing.T) {
	// RFC 7693 test vector: BLAKE2b-512 of the empty string.
	want := "786a02f742015903c6c6fd852552d272912f4740e15847618a86e217f71f5419d25e1031afee585313896444934eb04b903a685b1448b755d56f701afe9be2ce"
	sum := Sum512(nil)
	if got := hex.EncodeToString(sum[:]); got != want {
		t.Errorf("Sum512(\"\") = %s, want %s", got, want)
	}
}

func TestAbcVector(t *testing.T) {
	// RFC 7693 Appendix E test vector: BLAKE2b-512("abc").
	want := "ba80a53f981c4d0d6a2797b69f12f6e94c212f14685ac4b74b12bb6fdbffa2d17d87c5392aab792dc252d5de4533cc9518d38aa8dbf1925ab92386edd4009923"
	sum := Sum512([]byte("abc"))
	if got := hex.EncodeToString(sum[:]); got != want {
		t.Errorf("Sum512(\"abc\") = %s, want %s", got, want)
	}
}

func TestDeterministic(t *testing.T) {
	data := []byte("test data for deterministic check")
	a := Sum512(data)
	b := Sum512(data)
	if a != b {
		t.Error("Sum512 should be deterministic")
	}
}

func TestDifferentData(t *testing.T) {
	a := Sum512([]byte("test data 1"))
	b := Sum512([]byte("test data 2"))
	if a == b {
		t.Error("Sum512 should differ for different inputs")
	}
}

func TestMultipleWrites(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog, repeated enough to span blocks")

	d1 := New512()
	d1.Write(data)
	sum1 := d1.Sum(nil)

	d2 := New512()
	d2.Write(data[:10])
	d2.Write(data[10:40])
	d2.Write(data[40:])
	sum2 := d2.Sum(nil)

	if !bytes.Equal(sum1, sum2) {
		t.Error("Sum should not depend on Write chunking")
	}
}

func TestSumAppendsToPrefix(t *testing.T) {
	d := New512()
	d.Write([]byte("test"))

	prefix := []byte("prefix-")
	sum := d.Sum(prefix)

	if len(sum) != len(prefix)+Size {
		t.Fatalf("Sum length = %d, want %d", len(sum), len(prefix)+Size)
	}
	if !bytes.Equal(sum[:len(prefix)], prefix) {
		t.Error("Sum did not preserve the prefix")
	}
}

func TestBlockBoundary(t *testing.T) {
	// Exercise inputs that land exactly on, just under, and just over a
	// 128-byte compression block to catch off-by-one buffering bugs.
	for _, n := range []int{0, 1, 127, 128, 129, 255, 256, 257, 1000} {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i)
		}
		d := New512()
		d.Write(data)
		sum := d.Sum(nil)
		if len(sum) != Size {
			t.Errorf("len=%d: Sum length = %d, want %d", n, len(sum), Size)
		}
	}
}
