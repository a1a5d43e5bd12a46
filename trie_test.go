package hfstol

import "testing"

func TestTrieInsertGetExactMatch(t *testing.T) {
	tr := newTrie()
	tr.insert([]byte("hello"), 5)

	sym, rest, ok := tr.get([]byte("hello"))
	if !ok {
		t.Fatalf("get(\"hello\") returned ok=false")
	}
	if sym != 5 {
		t.Errorf("get(\"hello\") symbol = %v; want 5", sym)
	}
	if len(rest) != 0 {
		t.Errorf("get(\"hello\") rest = %q; want empty", rest)
	}
}

func TestTrieLongestPrefixMatch(t *testing.T) {
	tr := newTrie()
	tr.insert([]byte("he"), 2)
	tr.insert([]byte("hello"), 5)

	sym, rest, ok := tr.get([]byte("hello world"))
	if !ok {
		t.Fatalf("get returned ok=false")
	}
	if sym != 5 {
		t.Errorf("symbol = %v; want 5 (longest prefix \"hello\")", sym)
	}
	if string(rest) != " world" {
		t.Errorf("rest = %q; want %q", rest, " world")
	}
}

func TestTrieFallsBackToShorterPrefix(t *testing.T) {
	tr := newTrie()
	tr.insert([]byte("he"), 2)
	tr.insert([]byte("hello"), 5)

	// "help" shares a prefix with "hello" up to "hel" but diverges, so the
	// longest matching stored prefix is "he".
	sym, rest, ok := tr.get([]byte("help"))
	if !ok {
		t.Fatalf("get returned ok=false")
	}
	if sym != 2 {
		t.Errorf("symbol = %v; want 2 (fallback to \"he\")", sym)
	}
	if string(rest) != "lp" {
		t.Errorf("rest = %q; want %q", rest, "lp")
	}
}

func TestTrieRootValueNoDescendants(t *testing.T) {
	tr := newTrie()
	tr.insert([]byte(""), 1)

	sym, rest, ok := tr.get([]byte("anything"))
	if !ok {
		t.Fatalf("get returned ok=false")
	}
	if sym != 1 {
		t.Errorf("symbol = %v; want 1 (root value)", sym)
	}
	if string(rest) != "anything" {
		t.Errorf("rest = %q; want %q (nothing consumed)", rest, "anything")
	}
}

func TestTrieNoMatch(t *testing.T) {
	tr := newTrie()
	tr.insert([]byte("a"), 1)

	_, _, ok := tr.get([]byte("b"))
	if ok {
		t.Errorf("get(\"b\") returned ok=true; want false")
	}
}

func TestTrieInsertOverwrites(t *testing.T) {
	tr := newTrie()
	tr.insert([]byte("a"), 1)
	tr.insert([]byte("a"), 2)

	sym, _, ok := tr.get([]byte("a"))
	if !ok || sym != 2 {
		t.Errorf("get(\"a\") = %v, %v; want 2, true", sym, ok)
	}
}
