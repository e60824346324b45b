package argon2

import "fmt"

// Variant selects the Argon2 addressing mode.
type Variant uint32

const (
	// Argon2d uses data-dependent addressing throughout. Fastest, but not
	// resistant to side-channel timing attacks.
	Argon2d Variant = 0
	// Argon2i uses data-independent addressing throughout. Resistant to
	// side-channel timing attacks at the cost of more passes for equal
	// GPU-cracking resistance.
	Argon2i Variant = 1
	// Argon2id is the recommended hybrid: data-independent addressing for
	// the first half of the first pass, data-dependent afterward.
	Argon2id Variant = 2
)

// String returns the PHC tag for the variant ("argon2d", "argon2i",
// "argon2id").
func (v Variant) String() string {
	switch v {
	case Argon2d:
		return "argon2d"
	case Argon2i:
		return "argon2i"
	case Argon2id:
		return "argon2id"
	default:
		return fmt.Sprintf("argon2?(%d)", uint32(v))
	}
}

// Version selects the wire version. V13 is the recommended default.
type Version uint32

const (
	// V10 is the original Argon2 version (0x10): passes beyond the first
	// overwrite blocks instead of XOR-ing into them.
	V10 Version = 0x10
	// V13 is RFC 9106's version (0x13): passes beyond the first XOR the
	// newly computed block into the existing one.
	V13 Version = 0x13
)

const (
	minSaltLen   = 8
	minTagLen    = 4
	minLanes     = 1
	maxLanes     = 1<<24 - 1
	minTime      = 1
	syncPoints   = 4
	minBlocksPer = 8 // m_kb must be >= 8*p, per RFC 9106 §3.1
)

// Params is the immutable, validated configuration for one hash operation.
// Construct with New; there is no exported way to mutate a Params in place
// — producing a different configuration means calling New again.
type Params struct {
	variant Variant
	version Version
	memKB   uint32
	time    uint32
	lanes   uint32
	tagLen  uint32
	salt    []byte
	secret  []byte
	ad      []byte

	laneLen    uint32
	segmentLen uint32
}

// New validates and constructs a Params. memKB is rounded down internally
// to a multiple of 4*lanes so that each lane divides evenly into four
// slices; callers that need the effective memory cost after rounding
// should read it back from MemoryKB.
func New(variant Variant, version Version, memKB, time, lanes, tagLen uint32, salt, secret, ad []byte) (*Params, error) {
	if variant != Argon2d && variant != Argon2i && variant != Argon2id {
		return nil, fmt.Errorf("%w: unknown variant %d", ErrInvalidVariant, variant)
	}
	if version != V10 && version != V13 {
		return nil, fmt.Errorf("%w: unknown version 0x%x", ErrInvalidVariant, uint32(version))
	}
	if lanes < minLanes || lanes > maxLanes {
		return nil, fmt.Errorf("%w: parallelism %d out of range [%d, %d]", ErrInvalidParameters, lanes, minLanes, maxLanes)
	}
	if time < minTime {
		return nil, fmt.Errorf("%w: time cost %d must be >= %d", ErrInvalidParameters, time, minTime)
	}
	if tagLen < minTagLen {
		return nil, fmt.Errorf("%w: tag length %d must be >= %d", ErrInvalidParameters, tagLen, minTagLen)
	}
	if memKB < minBlocksPer*lanes {
		return nil, fmt.Errorf("%w: memory %dKiB must be >= %d*parallelism (%d)", ErrInvalidParameters, memKB, minBlocksPer, minBlocksPer*lanes)
	}
	if len(salt) < minSaltLen {
		return nil, fmt.Errorf("%w: salt length %d must be >= %d", ErrInvalidParameters, len(salt), minSaltLen)
	}

	// Round memKB down to 4*lanes so lane_len is an exact multiple of 4.
	blocks := memKB / lanes
	blocks -= blocks % syncPoints
	laneLen := blocks
	segmentLen := laneLen / syncPoints
	effectiveMemKB := laneLen * lanes

	p := &Params{
		variant:    variant,
		version:    version,
		memKB:      effectiveMemKB,
		time:       time,
		lanes:      lanes,
		tagLen:     tagLen,
		salt:       append([]byte(nil), salt...),
		laneLen:    laneLen,
		segmentLen: segmentLen,
	}
	if len(secret) > 0 {
		p.secret = append([]byte(nil), secret...)
	}
	if len(ad) > 0 {
		p.ad = append([]byte(nil), ad...)
	}
	return p, nil
}

// Variant returns the addressing mode.
func (p *Params) Variant() Variant { return p.variant }

// Version returns the wire version.
func (p *Params) Version() Version { return p.version }

// MemoryKB returns the memory cost after internal rounding.
func (p *Params) MemoryKB() uint32 { return p.memKB }

// Time returns the number of passes.
func (p *Params) Time() uint32 { return p.time }

// Lanes returns the degree of parallelism.
func (p *Params) Lanes() uint32 { return p.lanes }

// TagLen returns the configured output length in bytes.
func (p *Params) TagLen() uint32 { return p.tagLen }

// Salt returns a copy of the configured salt.
func (p *Params) Salt() []byte { return append([]byte(nil), p.salt...) }

// WithSalt returns a new Params identical to p but with salt replaced,
// re-validating the result.
func (p *Params) WithSalt(salt []byte) (*Params, error) {
	return New(p.variant, p.version, p.memKB, p.time, p.lanes, p.tagLen, salt, p.secret, p.ad)
}

// WithTagLen returns a new Params identical to p but with tagLen replaced,
// re-validating the result.
func (p *Params) WithTagLen(tagLen uint32) (*Params, error) {
	return New(p.variant, p.version, p.memKB, p.time, p.lanes, tagLen, p.salt, p.secret, p.ad)
}

// Equal reports whether p and other agree on every field the PHC string
// serializes (variant, version, memory, time, lanes, salt). Secret and
// associated data — never serialized — are excluded, per spec.
func (p *Params) Equal(other *Params) bool {
	if p == nil || other == nil {
		return p == other
	}
	if p.variant != other.variant || p.version != other.version {
		return false
	}
	if p.memKB != other.memKB || p.time != other.time || p.lanes != other.lanes {
		return false
	}
	if len(p.salt) != len(other.salt) {
		return false
	}
	for i := range p.salt {
		if p.salt[i] != other.salt[i] {
			return false
		}
	}
	return true
}
