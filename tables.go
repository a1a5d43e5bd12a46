package hfstol

import "math"

// transitionIndex is one entry of the index table. States in the index
// table occupy a contiguous dispatch window of numInputSymbols+1 slots: slot i is the
// finality slot, slot i+1 is the epsilon dispatch, and slot i+1+s is the
// dispatch for input symbol s >= 1. See transducer.go for how these slots
// are addressed.
type transitionIndex struct {
	symbol Symbol
	target TableIndex
}

// isFinal reports whether this slot marks an accepting state, per the
// symbol==NoSymbol && target!=NoIndex convention.
func (t transitionIndex) isFinal() bool {
	return t.symbol == NoSymbol && t.target != NoIndex
}

// weight reinterprets a final slot's target field as an IEEE-754 float.
// This must be a bit-cast, not a numeric conversion: the on-disk format
// reuses the 32-bit target field to carry the final weight's bit pattern.
func (t transitionIndex) weight() Weight {
	return Weight(math.Float32frombits(uint32(t.target)))
}

func parseTransitionIndex(r *byteReader) (t transitionIndex, err error) {
	var sym uint16
	if sym, err = r.u16(); err != nil {
		return
	}
	t.symbol = Symbol(sym)
	var tgt uint32
	if tgt, err = r.u32(); err != nil {
		return
	}
	t.target = TableIndex(tgt)
	return
}

// weightedTransition is one entry of the target table: a labeled
// transition with its own weight, or, when input==output==NoSymbol and
// target==1, a final-state marker.
type weightedTransition struct {
	input  Symbol
	output Symbol
	target TableIndex
	weight Weight
}

func (t weightedTransition) isFinal() bool {
	return t.input == NoSymbol && t.output == NoSymbol && t.target == 1
}

func parseWeightedTransition(r *byteReader) (t weightedTransition, err error) {
	var v16 uint16
	if v16, err = r.u16(); err != nil {
		return
	}
	t.input = Symbol(v16)
	if v16, err = r.u16(); err != nil {
		return
	}
	t.output = Symbol(v16)
	var v32 uint32
	if v32, err = r.u32(); err != nil {
		return
	}
	t.target = TableIndex(v32)
	var wf float32
	if wf, err = r.f32(); err != nil {
		return
	}
	t.weight = Weight(wf)
	return
}

// parseTransitionIndexTable parses exactly n index-table entries, retained
// verbatim for random access by the traversal engine.
func parseTransitionIndexTable(r *byteReader, n uint32) ([]transitionIndex, error) {
	out := make([]transitionIndex, n)
	for i := range out {
		t, err := parseTransitionIndex(r)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}

// parseTransitionTargetTable parses exactly n target-table entries.
func parseTransitionTargetTable(r *byteReader, n uint32) ([]weightedTransition, error) {
	out := make([]weightedTransition, n)
	for i := range out {
		t, err := parseWeightedTransition(r)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}
