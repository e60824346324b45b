// Package argon2 implements the Argon2 memory-hard password-hashing
// function (RFC 9106): all three variants (Argon2d, Argon2i, Argon2id) at
// both wire versions (0x10, 0x13), plus the PHC string encoding used to
// serialize a hash alongside its parameters.
package argon2

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"

	"github.com/vaultforge/argon2/pkg/blake2b"
	"github.com/vaultforge/argon2/pkg/securemem"
)

// Hash computes the Argon2 tag for password under params, returning a
// freshly allocated buffer of params.TagLen() bytes.
func Hash(params *Params, password []byte) ([]byte, error) {
	out := make([]byte, params.tagLen)
	if err := HashInto(params, password, out); err != nil {
		return nil, err
	}
	return out, nil
}

// HashInto computes the Argon2 tag for password under params and writes it
// into out, which must be exactly params.TagLen() bytes.
func HashInto(params *Params, password []byte, out []byte) error {
	if params == nil {
		return fmt.Errorf("%w: nil parameters", ErrInvalidParameters)
	}
	if uint32(len(out)) != params.tagLen {
		return fmt.Errorf("%w: output buffer is %d bytes, want %d", ErrInvalidLength, len(out), params.tagLen)
	}

	e := newEngine(params)
	defer e.release()

	final := e.run(password)
	defer securemem.WipeMemory(final[:])

	tag := blake2b.LongHash(int(params.tagLen), final[:])
	copy(out, tag)
	securemem.WipeMemory(tag)
	return nil
}

// Verify computes the Argon2 tag for password under params and compares it
// against expectedTag in constant time with respect to the tag contents.
// It returns false (never an error) on a simple mismatch; it returns an
// error only if params themselves are unusable.
func Verify(params *Params, password, expectedTag []byte) (bool, error) {
	if params == nil {
		return false, fmt.Errorf("%w: nil parameters", ErrInvalidParameters)
	}

	computed, err := Hash(params, password)
	if err != nil {
		return false, err
	}
	defer securemem.WipeMemory(computed)

	if len(computed) != len(expectedTag) {
		return false, nil
	}
	return subtle.ConstantTimeCompare(computed, expectedTag) == 1, nil
}

// GenerateSalt returns n cryptographically random bytes, suitable for use
// as an Argon2 salt. n must be at least 8.
func GenerateSalt(n int) ([]byte, error) {
	if n < minSaltLen {
		return nil, fmt.Errorf("%w: salt length %d must be >= %d", ErrInvalidLength, n, minSaltLen)
	}
	salt := make([]byte, n)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("argon2: generating salt: %w", err)
	}
	return salt, nil
}
