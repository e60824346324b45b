package argon2

import (
	"bytes"
	"errors"
	"testing"
)

func TestNewRejectsInvalidParameters(t *testing.T) {
	salt := bytes.Repeat([]byte{1}, 8)

	tests := []struct {
		name                                     string
		variant                                  Variant
		version                                  Version
		memKB, time, lanes, tagLen               uint32
		salt                                     []byte
		wantErr                                  error
	}{
		{"bad variant", Variant(9), V13, 64, 1, 1, 32, salt, ErrInvalidVariant},
		{"bad version", Argon2id, Version(0x99), 64, 1, 1, 32, salt, ErrInvalidVariant},
		{"zero lanes", Argon2id, V13, 64, 1, 0, 32, salt, ErrInvalidParameters},
		{"too many lanes", Argon2id, V13, 64, 1, 1 << 24, 32, salt, ErrInvalidParameters},
		{"zero time", Argon2id, V13, 64, 0, 1, 32, salt, ErrInvalidParameters},
		{"tag too short", Argon2id, V13, 64, 1, 1, 3, salt, ErrInvalidParameters},
		{"memory below 8p", Argon2id, V13, 4, 1, 1, 32, salt, ErrInvalidParameters},
		{"salt too short", Argon2id, V13, 64, 1, 1, 32, []byte{1, 2, 3}, ErrInvalidParameters},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.variant, tt.version, tt.memKB, tt.time, tt.lanes, tt.tagLen, tt.salt, nil, nil)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("New() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewRoundsMemoryToFourTimesLanes(t *testing.T) {
	salt := bytes.Repeat([]byte{1}, 8)

	p, err := New(Argon2id, V13, 35, 1, 4, 32, salt, nil, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	// laneLen = floor(35/4) = 8, rounded down to multiple of 4 = 8; memKB = 8*4 = 32.
	if p.MemoryKB() != 32 {
		t.Errorf("MemoryKB() = %d, want 32", p.MemoryKB())
	}
	if p.laneLen != 8 || p.segmentLen != 2 {
		t.Errorf("laneLen=%d segmentLen=%d, want 8 and 2", p.laneLen, p.segmentLen)
	}
}

func TestMinimumValidParameters(t *testing.T) {
	// S4: minimum valid parameters must be accepted.
	salt := make([]byte, 8)
	_, err := New(Argon2id, V13, 8, 1, 1, 4, salt, nil, nil)
	if err != nil {
		t.Fatalf("New() with minimum parameters failed: %v", err)
	}
}

func TestParamsEqualIgnoresSecretAndAD(t *testing.T) {
	salt := bytes.Repeat([]byte{1}, 8)
	a, err := New(Argon2id, V13, 64, 1, 1, 32, salt, []byte("secret1"), []byte("ad1"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(Argon2id, V13, 64, 1, 1, 32, salt, []byte("secret2"), []byte("ad2"))
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Error("Equal() should ignore secret and associated data")
	}
}

func TestParamsEqualDetectsDifference(t *testing.T) {
	salt := bytes.Repeat([]byte{1}, 8)
	a, _ := New(Argon2id, V13, 64, 1, 1, 32, salt, nil, nil)
	b, _ := New(Argon2id, V13, 64, 2, 1, 32, salt, nil, nil)
	if a.Equal(b) {
		t.Error("Equal() should detect differing time cost")
	}
}

func TestWithSaltRevalidates(t *testing.T) {
	salt := bytes.Repeat([]byte{1}, 8)
	p, err := New(Argon2id, V13, 64, 1, 1, 32, salt, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.WithSalt([]byte{1, 2}); !errors.Is(err, ErrInvalidParameters) {
		t.Errorf("WithSalt() with short salt error = %v, want ErrInvalidParameters", err)
	}
}
