package hfstol

// keyTable maps a Symbol to its string; the key-table index equals the
// Symbol value. keyTable[0] is always the empty string: the binary format
// stores a sentinel there, which is overwritten post-parse so EPSILON
// decodes to nothing, per the original Vocab-style id2str table this is
// descended from (see DESIGN.md).
type keyTable []string

// isFlagDiacritic recognizes alphabet entries of the form "@X.NAME...@"
// well enough to exclude them from the input alphabet. It does not
// attempt to parse the flag's fields; constraint semantics are
// unimplemented (see package doc).
func isFlagDiacritic(s []byte) bool {
	return len(s) > 4 && s[0] == '@' && s[len(s)-1] == '@' && s[2] == '.'
}

// parseAlphabet consumes exactly numSymbols NUL-terminated strings. Flag
// diacritic entries are counted but not added to the key table, so the key
// table ends up with numSymbols-flagCount entries. In every transducer this
// format is used for, flag diacritics are appended after the ordinary
// alphabet, so skipping them here never disturbs the invariant that a key
// table index equals the Symbol value of a real, input- or output-visible
// symbol.
func parseAlphabet(r *byteReader, numSymbols Symbol) (kt keyTable, flagCount int, err error) {
	kt = make(keyTable, 0, numSymbols)
	for i := Symbol(0); i < numSymbols; i++ {
		var s []byte
		if s, err = r.cstring(); err != nil {
			return
		}
		if isFlagDiacritic(s) {
			flagCount++
			continue
		}
		kt = append(kt, string(s))
	}
	if len(kt) > 0 {
		kt[0] = ""
	}
	return
}

// buildInputTrie indexes key table entries 1..numInputSymbols-1 — the
// non-epsilon, input-visible symbols — by their raw bytes, for longest-
// prefix tokenization.
func buildInputTrie(kt keyTable, numInputSymbols Symbol) *trie {
	t := newTrie()
	for i := Symbol(1); i < numInputSymbols; i++ {
		t.insert([]byte(kt[i]), i)
	}
	return t
}
