// Package hfstol reads compiled HFST "optimized lookup" transducers and
// performs weighted morphological analysis over them.
//
// # Overview
//
// A transducer file is a binary-encoded finite-state transducer: an
// alphabet, an index table, and a target table (see README-level spec for
// the exact layout). ReadTransducer parses all three into an immutable
// *Transducer. Transducer.Lookup then tokenizes a UTF-8 string against the
// transducer's input alphabet, runs a non-deterministic depth-first
// traversal over the two tables, and returns every accepting analysis as an
// (output string, weight) pair.
//
// # When to use
//
//   - Morphological analysis/generation for languages with a compiled
//     HFST transducer (analyser-gt-desc.hfstol and similar files).
//   - Any lookup task where the transducer is weighted and does not rely on
//     flag-diacritic state; see Non-goals below.
//
// # Non-goals
//
// This package only reads and runs transducers; it does not build, compose,
// or minimize them. Unweighted transducers and transducers whose alphabet
// contains flag diacritics the engine would need to track as state are
// rejected with an Error of Kind UnsupportedTransducer — flag diacritics
// are recognized only well enough to exclude them from the input alphabet.
//
// # Basic usage
//
//	data, err := os.ReadFile("analyser-gt-desc.hfstol")
//	if err != nil {
//		log.Fatal(err)
//	}
//	t, err := hfstol.ReadTransducer(data)
//	if err != nil {
//		log.Fatal(err)
//	}
//	analyses, err := t.Lookup("лэсьтӥськонъёс")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, a := range analyses {
//		fmt.Println(a.Output, a.Weight)
//	}
//	// лэсьтӥськыны+V+Der/Он+Pl+Nom 0
//	// лэсьтӥськон+N+Pl+Nom 0
//
// # Performance characteristics
//
// Parsing is a single pass over the input bytes. Lookup is recursive DFS
// bounded by a 1000-symbol output buffer per accepting path, so pathological
// epsilon cycles terminate in bounded work rather than looping forever; see
// Transducer.SetMaxAnalyses to additionally bound the number of accepted
// paths for very ambiguous inputs.
package hfstol
