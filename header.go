package hfstol

import "bytes"

var hfst3Magic = []byte("HFST\x00")

// header holds every field the on-disk format defines. The traversal
// engine only ever consults numInputSymbols, numSymbols, the two table
// lengths, and weighted; the rest are parsed purely to keep the cursor
// aligned for what follows.
type header struct {
	numInputSymbols Symbol
	numSymbols      Symbol
	indexTableLen   uint32
	targetTableLen  uint32
	numStates       uint32
	numTransitions  uint32

	weighted                        bool
	deterministic                   bool
	inputDeterministic              bool
	minimized                       bool
	cyclic                          bool
	hasEpsilonEpsilon               bool
	hasInputEpsilon                 bool
	hasInputEpsilonCycles           bool
	hasUnweightedInputEpsilonCycles bool
}

// parseHeader consumes the optional HFST3 preamble, if present, followed by
// the fixed header fields and nine boolean flags.
func parseHeader(r *byteReader) (h header, err error) {
	if bytes.HasPrefix(r.remaining(), hfst3Magic) {
		if err = skipHFST3Preamble(r); err != nil {
			return
		}
	}

	var v16 uint16
	if v16, err = r.u16(); err != nil {
		return
	}
	h.numInputSymbols = Symbol(v16)
	if v16, err = r.u16(); err != nil {
		return
	}
	h.numSymbols = Symbol(v16)
	if h.indexTableLen, err = r.u32(); err != nil {
		return
	}
	if h.targetTableLen, err = r.u32(); err != nil {
		return
	}
	if h.numStates, err = r.u32(); err != nil {
		return
	}
	if h.numTransitions, err = r.u32(); err != nil {
		return
	}
	if h.weighted, err = r.boolean(); err != nil {
		return
	}
	if h.deterministic, err = r.boolean(); err != nil {
		return
	}
	if h.inputDeterministic, err = r.boolean(); err != nil {
		return
	}
	if h.minimized, err = r.boolean(); err != nil {
		return
	}
	if h.cyclic, err = r.boolean(); err != nil {
		return
	}
	if h.hasEpsilonEpsilon, err = r.boolean(); err != nil {
		return
	}
	if h.hasInputEpsilon, err = r.boolean(); err != nil {
		return
	}
	if h.hasInputEpsilonCycles, err = r.boolean(); err != nil {
		return
	}
	if h.hasUnweightedInputEpsilonCycles, err = r.boolean(); err != nil {
		return
	}
	return
}

// skipHFST3Preamble consumes "HFST\0", a u16 length L, a NUL, L-1 content
// bytes, and a trailing NUL. Its content is discarded.
func skipHFST3Preamble(r *byteReader) error {
	if _, err := r.take(len(hfst3Magic)); err != nil {
		return err
	}
	length, err := r.u16()
	if err != nil {
		return err
	}
	if _, err := r.take(1); err != nil { // separating NUL
		return err
	}
	if length == 0 {
		return errShortInput
	}
	if _, err := r.take(int(length) - 1); err != nil {
		return err
	}
	if _, err := r.take(1); err != nil { // trailing NUL
		return err
	}
	return nil
}
