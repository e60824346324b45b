package argon2

import (
	"encoding/binary"
	"sync"

	"github.com/vaultforge/argon2/pkg/blake2b"
	"github.com/vaultforge/argon2/pkg/securemem"
)

// engine holds the memory matrix and parameters for one hash invocation.
// An engine is used once: construct with newEngine, call run, then discard
// — release zeroizes the matrix before the backing array is dropped.
type engine struct {
	params *Params
	memory []block
}

func newEngine(params *Params) *engine {
	return &engine{
		params: params,
		memory: make([]block, uint64(params.lanes)*uint64(params.laneLen)),
	}
}

func (e *engine) at(lane, idx uint32) *block {
	return &e.memory[uint64(lane)*uint64(e.params.laneLen)+uint64(idx)]
}

// release zeroizes every block of the matrix. Callers must invoke this on
// every exit path before the engine is discarded (spec.md §4.4, §9).
func (e *engine) release() {
	for i := range e.memory {
		e.memory[i].zero()
	}
}

// run executes H0 construction, lane initialization, the full pass/slice/
// segment schedule, and finalization, returning the XOR of the last block
// of every lane (ready for the H' tag extension).
func (e *engine) run(password []byte) [blockSize]byte {
	h0 := computeH0(e.params, password)
	defer securemem.WipeMemory(h0[:])

	e.initLanes(h0[:])

	for pass := uint32(0); pass < e.params.time; pass++ {
		for slice := uint32(0); slice < syncPoints; slice++ {
			e.fillSlice(pass, slice)
		}
	}

	return e.finalize()
}

// computeH0 builds the initial hash per spec.md §4.3.1 / RFC 9106 §3.2.
func computeH0(p *Params, password []byte) [64]byte {
	h := blake2b.New512()

	var le [4]byte
	writeLE := func(x uint32) {
		binary.LittleEndian.PutUint32(le[:], x)
		h.Write(le[:])
	}
	writeField := func(b []byte) {
		writeLE(uint32(len(b)))
		h.Write(b)
	}

	writeLE(p.lanes)
	writeLE(p.tagLen)
	writeLE(p.memKB)
	writeLE(p.time)
	writeLE(uint32(p.version))
	writeLE(uint32(p.variant))
	writeField(password)
	writeField(p.salt)
	writeField(p.secret)
	writeField(p.ad)

	var out [64]byte
	copy(out[:], h.Sum(nil))
	return out
}

func (e *engine) initLanes(h0 []byte) {
	var preimage [64 + 4 + 4]byte
	copy(preimage[:64], h0)
	defer securemem.WipeMemory(preimage[:])

	for lane := uint32(0); lane < e.params.lanes; lane++ {
		binary.LittleEndian.PutUint32(preimage[68:], lane)

		binary.LittleEndian.PutUint32(preimage[64:68], 0)
		b0 := blake2b.LongHash(blockSize, preimage[:])
		e.at(lane, 0).fromBytes(b0)

		binary.LittleEndian.PutUint32(preimage[64:68], 1)
		b1 := blake2b.LongHash(blockSize, preimage[:])
		e.at(lane, 1).fromBytes(b1)
	}
}

func (e *engine) fillSlice(pass, slice uint32) {
	if e.params.lanes == 1 {
		e.fillSegment(pass, 0, slice)
		return
	}

	var wg sync.WaitGroup
	wg.Add(int(e.params.lanes))
	for lane := uint32(0); lane < e.params.lanes; lane++ {
		go func(lane uint32) {
			defer wg.Done()
			e.fillSegment(pass, lane, slice)
		}(lane)
	}
	wg.Wait()
}

func (e *engine) dataIndependent(pass, slice uint32) bool {
	switch e.params.variant {
	case Argon2i:
		return true
	case Argon2id:
		return pass == 0 && slice < syncPoints/2
	default: // Argon2d
		return false
	}
}

func (e *engine) fillSegment(pass, lane, slice uint32) {
	p := e.params
	var addrGen *addressGenerator
	if e.dataIndependent(pass, slice) {
		totalBlocks := p.lanes * p.laneLen
		addrGen = newAddressGenerator(pass, lane, slice, totalBlocks, p.time, p.variant)
	}

	start := slice * p.segmentLen
	if pass == 0 && slice == 0 {
		start = 2
		// Positions 0 and 1 are the seed blocks; skip their two address
		// words so that position i always reads word i of the address block.
		if addrGen != nil {
			addrGen.next()
			addrGen.next()
		}
	}
	end := (slice + 1) * p.segmentLen

	for abs := start; abs < end; abs++ {
		segIndex := abs - slice*p.segmentLen
		prevIdx := (abs - 1 + p.laneLen) % p.laneLen

		var j1, j2 uint32
		if addrGen != nil {
			j1, j2 = addrGen.next()
		} else {
			w := e.at(lane, prevIdx)[0]
			j1, j2 = uint32(w), uint32(w>>32)
		}

		refLane, refIdx := referenceBlock(pass, lane, slice, segIndex, p.lanes, p.laneLen, p.segmentLen, j1, j2)

		var computed block
		compress(&computed, e.at(lane, prevIdx), e.at(refLane, refIdx))

		dst := e.at(lane, abs)
		if pass == 0 || p.version == V10 {
			*dst = computed
		} else {
			dst.xorWith(&computed)
		}
	}

	if addrGen != nil {
		addrGen.wipe()
	}
}

func (e *engine) finalize() [blockSize]byte {
	final := *e.at(0, e.params.laneLen-1)
	for lane := uint32(1); lane < e.params.lanes; lane++ {
		final.xorWith(e.at(lane, e.params.laneLen-1))
	}

	var out [blockSize]byte
	final.toBytes(out[:])
	final.zero()
	return out
}
