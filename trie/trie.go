package trie

import "strings"

// Trie stores a set of dot separated keys, label by label,
// starting with the rightmost one.
//
// The walk always goes from the rightmost label to the left,
// so a key like ".co.uk" is stored as "uk" -> "co". A leading
// dot is ignored, it only marks the key as a suffix.
//
// Unlike a plain map, a single walk over the labels of a
// domain finds every stored suffix of that domain.
type Trie struct {
	root node
	size int
}

type node struct {
	children map[string]*node
	terminal bool
}

func NewTrie() *Trie {
	return &Trie{}
}

// Labels splits a key into its labels, ignoring a single leading dot.
// Empty labels inside the key are kept.
func Labels(key string) []string {
	return strings.Split(strings.TrimPrefix(key, "."), ".")
}

func (t *Trie) IsEmpty() bool {
	return t.size == 0
}

// Len returns the number of distinct keys.
func (t *Trie) Len() int {
	return t.size
}

// Insert adds key to the set. Empty keys are ignored.
func (t *Trie) Insert(key string) {
	if len(strings.TrimPrefix(key, ".")) == 0 {
		return
	}

	labels := Labels(key)
	n := &t.root

	for i := len(labels) - 1; i >= 0; i-- {
		if n.children == nil {
			n.children = make(map[string]*node, 1)
		}

		child, ok := n.children[labels[i]]
		if !ok {
			child = &node{}
			n.children[labels[i]] = child
		}

		n = child
	}

	if !n.terminal {
		n.terminal = true
		t.size++
	}
}

// Contains reports whether key itself was inserted.
func (t *Trie) Contains(key string) bool {
	if len(strings.TrimPrefix(key, ".")) == 0 {
		return false
	}

	labels := Labels(key)

	found := false

	t.Walk(labels, func(depth int) {
		if depth == len(labels) {
			found = true
		}
	})

	return found
}

// Walk visits labels from right to left and calls fn with the number of
// labels consumed each time the labels seen so far form a stored key.
// Depths are reported in increasing order.
func (t *Trie) Walk(labels []string, fn func(depth int)) {
	n := &t.root

	for depth := 1; depth <= len(labels); depth++ {
		child, ok := n.children[labels[len(labels)-depth]]
		if !ok {
			return
		}

		if child.terminal {
			fn(depth)
		}

		n = child
	}
}
