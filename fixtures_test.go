package hfstol

import (
	"bytes"
	"encoding/binary"
	"math"
)

// fixtureBuilder assembles a binary transducer file byte-by-byte for use
// in tests, the same layout ReadTransducer parses. There is no writer in
// the production package — construction/serialization is explicitly out
// of scope for this engine (spec Non-goals) — so tests build fixtures
// directly rather than going through any public API.
type fixtureBuilder struct {
	buf bytes.Buffer
}

func (b *fixtureBuilder) u16(v uint16) { binary.Write(&b.buf, binary.LittleEndian, v) }
func (b *fixtureBuilder) u32(v uint32) { binary.Write(&b.buf, binary.LittleEndian, v) }
func (b *fixtureBuilder) f32(v float32) {
	binary.Write(&b.buf, binary.LittleEndian, math.Float32bits(v))
}

func (b *fixtureBuilder) boolean(v bool) {
	if v {
		b.u32(1)
	} else {
		b.u32(0)
	}
}

func (b *fixtureBuilder) cstring(s string) {
	b.buf.WriteString(s)
	b.buf.WriteByte(0)
}

func (b *fixtureBuilder) bytes() []byte { return b.buf.Bytes() }

// header writes the fixed header fields (no HFST3 preamble) and the nine
// boolean flags, all false except weighted.
func (b *fixtureBuilder) header(numInput, numSymbols uint16, indexLen, targetLen uint32, weighted bool) {
	b.u16(numInput)
	b.u16(numSymbols)
	b.u32(indexLen)
	b.u32(targetLen)
	b.u32(0) // number_of_states, unused by the engine
	b.u32(0) // number_of_transitions, unused by the engine
	b.boolean(weighted)
	for i := 0; i < 8; i++ {
		b.boolean(false)
	}
}

// indexEntry writes one (symbol, target) index-table slot.
func (b *fixtureBuilder) indexEntry(symbol Symbol, target TableIndex) {
	b.u16(uint16(symbol))
	b.u32(uint32(target))
}

// finalIndexEntry writes a finality slot with the given final weight
// bit-cast into the target field.
func (b *fixtureBuilder) finalIndexEntry(weight float32) {
	b.u16(uint16(NoSymbol))
	b.u32(math.Float32bits(weight))
}

// notFinalIndexEntry writes a finality slot that never matches.
func (b *fixtureBuilder) notFinalIndexEntry() {
	b.u16(uint16(NoSymbol))
	b.u32(uint32(NoIndex))
}

// targetEntry writes one ordinary target-table transition.
func (b *fixtureBuilder) targetEntry(input, output Symbol, target TableIndex, weight float32) {
	b.u16(uint16(input))
	b.u16(uint16(output))
	b.u32(uint32(target))
	b.f32(weight)
}

// finalTargetEntry writes a target-table final-state marker with weight 0.
func (b *fixtureBuilder) finalTargetEntry() {
	b.finalTargetEntryWeighted(0)
}

// finalTargetEntryWeighted writes a target-table final-state marker
// carrying the given final weight in its own weight field (unlike the
// index table, the target table does not alias the weight onto target).
func (b *fixtureBuilder) finalTargetEntryWeighted(weight float32) {
	b.u16(uint16(NoSymbol))
	b.u16(uint16(NoSymbol))
	b.u32(1)
	b.f32(weight)
}
