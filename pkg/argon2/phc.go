package argon2

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strconv"
)

var (
	tagArgon2 = []byte("$argon2")
	tagV      = []byte("v=")
	tagM      = []byte("$m=")
	tagT      = []byte(",t=")
	tagP      = []byte(",p=")
)

var b64 = base64.RawStdEncoding

// Encode serializes params and tag as a PHC string:
//
//	$argon2<d|i|id>$v=<dec>$m=<dec>,t=<dec>,p=<dec>$<b64-salt>$<b64-tag>
//
// Secret and associated data are never serialized. Encode fails if params
// carries no salt.
func Encode(params *Params, tag []byte) (string, error) {
	if params == nil {
		return "", fmt.Errorf("%w: nil parameters", ErrInvalidParameters)
	}
	if len(params.salt) == 0 {
		return "", fmt.Errorf("%w: salt is required to encode", ErrInvalidParameters)
	}

	var buf bytes.Buffer
	buf.Write(tagArgon2)
	switch params.variant {
	case Argon2d:
		buf.WriteString("d")
	case Argon2i:
		buf.WriteString("i")
	case Argon2id:
		buf.WriteString("id")
	default:
		return "", fmt.Errorf("%w: unknown variant %d", ErrInvalidVariant, params.variant)
	}
	buf.WriteByte('$')
	buf.Write(tagV)
	buf.WriteString(strconv.FormatUint(uint64(params.version), 10))
	buf.Write(tagM)
	buf.WriteString(strconv.FormatUint(uint64(params.memKB), 10))
	buf.Write(tagT)
	buf.WriteString(strconv.FormatUint(uint64(params.time), 10))
	buf.Write(tagP)
	buf.WriteString(strconv.FormatUint(uint64(params.lanes), 10))
	buf.WriteByte('$')
	buf.WriteString(b64.EncodeToString(params.salt))
	buf.WriteByte('$')
	buf.WriteString(b64.EncodeToString(tag))

	return buf.String(), nil
}

// phcParser walks a PHC string left to right; every method advances off.
type phcParser struct {
	buf []byte
	off int
}

func (p *phcParser) expect(tok []byte) bool {
	i, j := p.off, p.off+len(tok)
	if j > len(p.buf) || !bytes.Equal(tok, p.buf[i:j]) {
		return false
	}
	p.off = j
	return true
}

func (p *phcParser) readByte() (byte, bool) {
	if p.off >= len(p.buf) {
		return 0, false
	}
	b := p.buf[p.off]
	p.off++
	return b, true
}

// parseUint32 reads decimal digits up to the next non-digit. It reports
// failure on an empty run or on overflow past uint32.
func (p *phcParser) parseUint32() (uint32, bool) {
	start := p.off
	var v uint64
	for p.off < len(p.buf) {
		d := p.buf[p.off]
		if d < '0' || d > '9' {
			break
		}
		v = v*10 + uint64(d-'0')
		if v > 1<<32-1 {
			return 0, false
		}
		p.off++
	}
	return uint32(v), p.off > start
}

// readSlice returns the bytes up to (not including) the next delim,
// advancing past delim. It fails if delim is absent or the slice is empty.
func (p *phcParser) readSlice(delim byte) ([]byte, bool) {
	idx := bytes.IndexByte(p.buf[p.off:], delim)
	if idx <= 0 {
		return nil, false
	}
	s := p.buf[p.off : p.off+idx]
	p.off += idx + 1
	return s, true
}

func (p *phcParser) readRest() ([]byte, bool) {
	if p.off >= len(p.buf) {
		return nil, false
	}
	s := p.buf[p.off:]
	p.off = len(p.buf)
	return s, true
}

// Decode parses a PHC string into params (without secret/ad) and the raw
// tag. It never panics on malformed or adversarial input; every structural
// failure maps to ErrMalformed, and an unrecognized $argon2<x>$ tag maps to
// ErrInvalidVariant.
func Decode(s string) (*Params, []byte, error) {
	p := &phcParser{buf: []byte(s)}

	if !p.expect(tagArgon2) {
		return nil, nil, fmt.Errorf("%w: missing $argon2 prefix", ErrMalformed)
	}

	t1, ok := p.readByte()
	if !ok {
		return nil, nil, fmt.Errorf("%w: truncated after $argon2", ErrMalformed)
	}

	var variant Variant
	switch t1 {
	case 'd':
		variant = Argon2d
	case 'i':
		t2, ok := p.readByte()
		if !ok {
			return nil, nil, fmt.Errorf("%w: truncated variant tag", ErrMalformed)
		}
		if t2 == 'd' {
			variant = Argon2id
		} else if t2 == '$' {
			variant = Argon2i
			p.off--
		} else {
			return nil, nil, fmt.Errorf("%w: %w: unrecognized variant tag", ErrMalformed, ErrInvalidVariant)
		}
	default:
		return nil, nil, fmt.Errorf("%w: %w: unrecognized variant tag %q", ErrMalformed, ErrInvalidVariant, t1)
	}

	if !p.expect([]byte("$")) {
		return nil, nil, fmt.Errorf("%w: missing separator after variant", ErrMalformed)
	}
	if !p.expect(tagV) {
		return nil, nil, fmt.Errorf("%w: missing version field", ErrMalformed)
	}
	version, ok := p.parseUint32()
	if !ok {
		return nil, nil, fmt.Errorf("%w: invalid version", ErrMalformed)
	}
	if !p.expect(tagM) {
		return nil, nil, fmt.Errorf("%w: missing or out-of-order m= field", ErrMalformed)
	}
	memKB, ok := p.parseUint32()
	if !ok {
		return nil, nil, fmt.Errorf("%w: invalid memory cost", ErrMalformed)
	}
	if !p.expect(tagT) {
		return nil, nil, fmt.Errorf("%w: missing or out-of-order t= field", ErrMalformed)
	}
	timeCost, ok := p.parseUint32()
	if !ok {
		return nil, nil, fmt.Errorf("%w: invalid time cost", ErrMalformed)
	}
	if !p.expect(tagP) {
		return nil, nil, fmt.Errorf("%w: missing or out-of-order p= field", ErrMalformed)
	}
	lanes, ok := p.parseUint32()
	if !ok {
		return nil, nil, fmt.Errorf("%w: invalid parallelism", ErrMalformed)
	}
	if !p.expect([]byte("$")) {
		return nil, nil, fmt.Errorf("%w: missing separator before salt", ErrMalformed)
	}

	saltB64, ok := p.readSlice('$')
	if !ok {
		return nil, nil, fmt.Errorf("%w: missing salt field", ErrMalformed)
	}
	tagB64, ok := p.readRest()
	if !ok {
		return nil, nil, fmt.Errorf("%w: missing tag field", ErrMalformed)
	}

	salt, err := decodeB64(saltB64)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: invalid salt encoding: %v", ErrMalformed, err)
	}
	tag, err := decodeB64(tagB64)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: invalid tag encoding: %v", ErrMalformed, err)
	}

	if version != uint32(V10) && version != uint32(V13) {
		return nil, nil, fmt.Errorf("%w: %w: unsupported version %d", ErrMalformed, ErrInvalidVariant, version)
	}
	if memKB == 0 || timeCost == 0 || lanes == 0 || len(salt) == 0 {
		return nil, nil, fmt.Errorf("%w: zero-valued field", ErrMalformed)
	}

	params, err := New(variant, Version(version), memKB, timeCost, lanes, uint32(len(tag)), salt, nil, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: decoded parameters rejected: %v", ErrMalformed, err)
	}

	return params, tag, nil
}

// decodeB64 decodes RFC 4648 base64 without padding, tolerating input that
// omits padding as required and rejecting input that includes it.
func decodeB64(s []byte) ([]byte, error) {
	out := make([]byte, b64.DecodedLen(len(s)))
	n, err := b64.Decode(out, s)
	if err != nil {
		return nil, err
	}
	return out[:n], nil
}
