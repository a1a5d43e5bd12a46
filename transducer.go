package hfstol

import "strings"

// Analysis is one accepting path through a transducer: its decoded output
// string and the total weight accumulated along the path, including the
// terminating final weight.
type Analysis struct {
	Output string
	Weight Weight
}

// EncodedAnalysis is one accepting path before symbol-to-string decoding.
type EncodedAnalysis struct {
	Symbols []Symbol
	Weight  Weight
}

// Transducer is an immutable, loaded weighted transducer, safe to share
// read-only across goroutines; each call to Lookup or LookupEncoded uses
// its own cursor and result slice, so concurrent lookups against the same
// Transducer never share mutable state. SetMaxAnalyses is the one field
// that can be changed after construction.
//
// The zero value is not usable; construct with ReadTransducer.
type Transducer struct {
	keyTable        keyTable
	numInputSymbols Symbol
	inputTrie       *trie
	index           []transitionIndex
	target          []weightedTransition
	maxAnalyses     int
}

// ReadTransducer parses a compiled transducer from its binary
// representation. Only weighted transducers whose alphabet carries no
// flag-diacritic state are supported; anything else is reported as
// UnsupportedTransducer rather than analyzed incorrectly.
func ReadTransducer(data []byte) (*Transducer, error) {
	r := newByteReader(data)

	h, err := parseHeader(r)
	if err != nil {
		return nil, errf(HeaderParsing, "%v", err)
	}

	kt, flagCount, err := parseAlphabet(r, h.numSymbols)
	if err != nil {
		return nil, errf(SymbolTableParsing, "%v", err)
	}

	if !h.weighted || flagCount > 0 {
		return nil, errf(UnsupportedTransducer,
			"weighted=%v flag diacritics=%d", h.weighted, flagCount)
	}

	index, err := parseTransitionIndexTable(r, h.indexTableLen)
	if err != nil {
		return nil, errf(TableParsing, "%v", err)
	}
	target, err := parseTransitionTargetTable(r, h.targetTableLen)
	if err != nil {
		return nil, errf(TableParsing, "%v", err)
	}

	return &Transducer{
		keyTable:        kt,
		numInputSymbols: h.numInputSymbols,
		inputTrie:       buildInputTrie(kt, h.numInputSymbols),
		index:           index,
		target:          target,
	}, nil
}

// SetMaxAnalyses bounds the number of accepting paths a single lookup will
// return; count == 0 disables the cap (the default). Because the cap is
// only checked on entry to the traversal's recursive step, the final count
// returned by a lookup may exceed count by a small, bounded amount — this
// is documented behavior, not a bug.
func (t *Transducer) SetMaxAnalyses(count int) {
	t.maxAnalyses = count
}

// Tokenize splits text into the symbol sequence recognized by the input
// trie, via repeated longest-prefix match. It fails with a Tokenization
// error at the first byte sequence with no prefix in the input alphabet.
func (t *Transducer) Tokenize(text string) ([]Symbol, error) {
	var out []Symbol
	rest := []byte(text)
	for len(rest) > 0 {
		sym, r, ok := t.inputTrie.get(rest)
		if !ok {
			return nil, errf(Tokenization, "no alphabet entry is a prefix of %q", rest)
		}
		out = append(out, sym)
		rest = r
	}
	return out, nil
}

// Decode maps a symbol sequence back to its concatenated string form. It
// fails with a Decoding error if any symbol has no key-table entry, which
// should not occur for a well-formed transducer and its own encoded
// analyses.
func (t *Transducer) Decode(symbols []Symbol) (string, error) {
	var b strings.Builder
	for _, s := range symbols {
		if int(s) >= len(t.keyTable) {
			return "", errf(Decoding, "symbol %d has no key-table entry", s)
		}
		b.WriteString(t.keyTable[s])
	}
	return b.String(), nil
}

// Lookup tokenizes text, runs the traversal engine, and decodes every
// accepting analysis back to a string, returning each alongside its total
// weight.
func (t *Transducer) Lookup(text string) ([]Analysis, error) {
	symbols, err := t.Tokenize(text)
	if err != nil {
		return nil, err
	}
	encoded, err := t.LookupEncoded(symbols)
	if err != nil {
		return nil, err
	}
	out := make([]Analysis, 0, len(encoded))
	for _, e := range encoded {
		s, err := t.Decode(e.Symbols)
		if err != nil {
			return nil, err
		}
		out = append(out, Analysis{Output: s, Weight: e.Weight})
	}
	return out, nil
}

// LookupEncoded runs the non-deterministic traversal engine directly on a
// pre-tokenized symbol sequence, returning every accepting path as its raw
// output symbols plus total weight, in DFS visit order: epsilon branches
// before symbol branches at every state, and transitions within one run in
// ascending table order. Callers needing a canonical order must sort.
func (t *Transducer) LookupEncoded(input []Symbol) ([]EncodedAnalysis, error) {
	c := newCursor()
	var results []EncodedAnalysis
	t.analyze(input, c, &results, 0)
	return results, nil
}

// analyze is the DFS step. index names either an index-table state (high
// bit clear) or a target-table state (high bit set, TargetTableStart); see
// basic.go and tables.go for the address-space convention.
func (t *Transducer) analyze(input []Symbol, c *cursor, results *[]EncodedAnalysis, index TableIndex) {
	// Overflow guard: the only defense against epsilon-cycle divergence.
	if c.overflowed() {
		return
	}
	// Max-analyses guard: checked only on entry, so the final count may
	// exceed the cap by a small, bounded amount.
	if t.maxAnalyses > 0 && len(*results) >= t.maxAnalyses {
		return
	}

	if index&TargetTableStart != 0 {
		j := index &^ TargetTableStart

		t.tryTransitions(input, c, results, j+1, EPSILON)

		if len(input) == 0 {
			if int(j) < len(t.target) {
				if tr := t.target[j]; tr.isFinal() {
					c.addWeight(tr.weight)
					sym, w := c.dump()
					*results = append(*results, EncodedAnalysis{Symbols: sym, Weight: w})
					c.takeWeight(tr.weight)
				}
			}
			return
		}

		t.tryTransitions(input, c, results, j+1, input[0])
		return
	}

	j := index
	if int(j)+1 < len(t.index) && t.index[j+1].symbol == EPSILON {
		tgt := t.index[j+1].target &^ TargetTableStart
		t.tryTransitions(input, c, results, tgt, EPSILON)
	}

	if len(input) == 0 {
		if int(j) < len(t.index) {
			if tr := t.index[j]; tr.isFinal() {
				c.addWeight(tr.weight())
				sym, w := c.dump()
				*results = append(*results, EncodedAnalysis{Symbols: sym, Weight: w})
				c.takeWeight(tr.weight())
			}
		}
		return
	}

	slot := int(j) + 1 + int(input[0])
	if slot < len(t.index) && t.index[slot].symbol == input[0] {
		tgt := t.index[slot].target &^ TargetTableStart
		t.tryTransitions(input, c, results, tgt, input[0])
	}
}

// tryTransitions walks the contiguous run of target-table entries starting
// at j whose input matches expect, recursing into analyze for each and
// restoring the cursor to its entry state before advancing to the next
// sibling transition.
func (t *Transducer) tryTransitions(input []Symbol, c *cursor, results *[]EncodedAnalysis, j TableIndex, expect Symbol) {
	for int(j) < len(t.target) && t.target[j].input == expect {
		tr := t.target[j]

		c.addWeight(tr.weight)
		c.push(tr.output)

		next := input
		if expect != EPSILON {
			next = input[1:]
		}
		t.analyze(next, c, results, tr.target)

		c.takeWeight(tr.weight)
		c.retract(1)
		j++
	}
}
