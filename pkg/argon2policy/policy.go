// Package argon2policy decides whether an already-computed Argon2 hash is
// weaker than a target configuration and should be recomputed at the next
// opportunity. It is an external collaborator over pkg/argon2 — spec.md
// explicitly keeps this decision out of the core's own surface.
package argon2policy

import "github.com/vaultforge/argon2/pkg/argon2"

// Named profiles matching the strength tiers most Argon2-backed
// applications ship as presets (RFC 9106 §4 recommendations).
const (
	ProfileInteractive = "interactive"
	ProfileModerate    = "moderate"
	ProfileSensitive   = "sensitive"
)

// Policy is the target configuration new hashes should be computed at. A
// decoded hash is considered stale if it falls short of the target on any
// cost dimension.
type Policy struct {
	target *argon2.Params
}

// New builds a Policy from the given target parameters. The salt carried
// by target is ignored for comparison purposes — only the cost dimensions
// and variant/version matter for staleness decisions.
func New(target *argon2.Params) *Policy {
	return &Policy{target: target}
}

// NeedsRehash reports whether decoded falls short of the policy's target
// on variant, version, memory cost, time cost, or parallelism. A decoded
// hash that exceeds the target on every dimension is never flagged, even
// if it differs from the target (stronger-than-required is not stale).
func (p *Policy) NeedsRehash(decoded *argon2.Params) bool {
	if p == nil || p.target == nil || decoded == nil {
		return false
	}
	t := p.target
	if decoded.Variant() != t.Variant() {
		return true
	}
	if decoded.Version() < t.Version() {
		return true
	}
	if decoded.MemoryKB() < t.MemoryKB() {
		return true
	}
	if decoded.Time() < t.Time() {
		return true
	}
	if decoded.Lanes() < t.Lanes() {
		return true
	}
	return false
}

// Target returns the policy's target parameters.
func (p *Policy) Target() *argon2.Params { return p.target }

// Profile returns the recommended target Params for one of the named
// profiles, with the given salt and tag length. moderate mirrors RFC
// 9106 §4's second recommended option (m=1 GiB is the first; moderate
// machines rarely have that much memory to dedicate to one hash).
func Profile(name string, salt []byte, tagLen uint32) (*argon2.Params, error) {
	switch name {
	case ProfileInteractive:
		return argon2.New(argon2.Argon2id, argon2.V13, 19*1024, 2, 1, tagLen, salt, nil, nil)
	case ProfileModerate:
		return argon2.New(argon2.Argon2id, argon2.V13, 64*1024, 3, 4, tagLen, salt, nil, nil)
	case ProfileSensitive:
		return argon2.New(argon2.Argon2id, argon2.V13, 256*1024, 4, 8, tagLen, salt, nil, nil)
	default:
		return argon2.New(argon2.Argon2id, argon2.V13, 64*1024, 3, 4, tagLen, salt, nil, nil)
	}
}
