package argon2

// addressesPerBlock is the number of (J1, J2) pseudo-random pairs one
// 1024-byte address block yields — one pair per 64-bit word.
const addressesPerBlock = qwords

// addressGenerator produces the J1/J2 stream for data-independent
// addressing (RFC 9106 §3.3): the stream is the output of
// G(0, G(0, Z)) where Z encodes (pass, lane, slice, total_blocks, t,
// variant, counter), regenerated every addressesPerBlock consumed values.
type addressGenerator struct {
	template block // Z with counter left at index 6, rest fixed
	current  block // latest G(0, G(0, Z))
	pos      int
	counter  uint64
}

func newAddressGenerator(pass, lane, slice, totalBlocks, timeCost uint32, variant Variant) *addressGenerator {
	g := &addressGenerator{pos: addressesPerBlock}
	g.template[0] = uint64(pass)
	g.template[1] = uint64(lane)
	g.template[2] = uint64(slice)
	g.template[3] = uint64(totalBlocks)
	g.template[4] = uint64(timeCost)
	g.template[5] = uint64(variant)
	return g
}

func (g *addressGenerator) regenerate() {
	g.counter++
	g.template[6] = g.counter

	var zero, tmp block
	compress(&tmp, &zero, &g.template)
	compress(&g.current, &zero, &tmp)
	g.pos = 0
}

// next returns the next (J1, J2) pair in the data-independent stream.
func (g *addressGenerator) next() (j1, j2 uint32) {
	if g.pos >= addressesPerBlock {
		g.regenerate()
	}
	w := g.current[g.pos]
	g.pos++
	return uint32(w), uint32(w >> 32)
}

// wipe clears the address-block buffer, which — like the memory matrix and
// H0 — holds material derived from the password (spec.md §9).
func (g *addressGenerator) wipe() {
	g.template.zero()
	g.current.zero()
}

// referenceBlock implements RFC 9106 §3.4/§3.4.1.1's index_alpha: given the
// pseudo-random pair (j1, j2) for the block at (pass, lane, slice,
// segIndex) — segIndex counted from the start of the current segment —
// it returns the absolute (lane, index) of the block to reference.
func referenceBlock(pass, lane, slice, segIndex, lanes, laneLen, segmentLen uint32, j1, j2 uint32) (refLane, refIdx uint32) {
	sameLane := pass == 0 && slice == 0
	if sameLane {
		refLane = lane
	} else {
		refLane = j2 % lanes
	}
	sameLane = refLane == lane

	area := referenceAreaSize(pass, slice, segIndex, laneLen, segmentLen, sameLane)

	x := uint64(j1) * uint64(j1) >> 32
	y := area * x >> 32
	relative := area - 1 - y

	var start uint64
	if pass != 0 {
		if slice != syncPoints-1 {
			start = uint64(slice+1) * uint64(segmentLen)
		}
	}

	refIdx = uint32((start + relative) % uint64(laneLen))
	return refLane, refIdx
}

// referenceAreaSize computes W, the number of candidate blocks, following
// the reference algorithm's int64 arithmetic rather than mirroring its
// unsigned underflow: any negative intermediate result is clamped to 1
// before use (see DESIGN.md's resolution of spec.md's open question).
func referenceAreaSize(pass, slice, segIndex, laneLen, segmentLen uint32, sameLane bool) uint64 {
	var size int64

	if pass == 0 {
		if slice == 0 {
			size = int64(segIndex) - 1
		} else if sameLane {
			size = int64(slice)*int64(segmentLen) + int64(segIndex) - 1
		} else {
			size = int64(slice) * int64(segmentLen)
			if segIndex == 0 {
				size--
			}
		}
	} else if sameLane {
		size = int64(laneLen) - int64(segmentLen) + int64(segIndex) - 1
	} else {
		size = int64(laneLen) - int64(segmentLen)
		if segIndex == 0 {
			size--
		}
	}

	if size < 1 {
		size = 1
	}
	return uint64(size)
}
