package argon2

import "errors"

// Sentinel errors distinguishable via errors.Is, returned by the public
// hasher and PHC codec.
var (
	// ErrInvalidParameters is returned when memory, time, parallelism, or
	// tag length fall outside the bounds RFC 9106 §3.1 requires.
	ErrInvalidParameters = errors.New("argon2: invalid parameters")

	// ErrInvalidLength is returned when HashInto's output buffer is not
	// exactly TagLen bytes, or when GenerateSalt is asked for fewer than 8
	// bytes.
	ErrInvalidLength = errors.New("argon2: invalid input length")

	// ErrMalformed is returned when a PHC-encoded string cannot be parsed.
	ErrMalformed = errors.New("argon2: malformed encoded hash")

	// ErrInvalidVariant is returned for an unrecognized $argon2<x>$ tag or
	// an unsupported version number.
	ErrInvalidVariant = errors.New("argon2: invalid variant or version")

	// ErrVerificationFailed is not returned by any function in this
	// package: Verify reports a tag mismatch as (false, nil).
	ErrVerificationFailed = errors.New("argon2: verification failed")
)
