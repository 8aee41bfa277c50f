package bptree

import "cmp"

// Iterator is a cursor over a specific leaf slot: a linear cursor
// across leaves that steps in O(1) amortized time via the leaf sibling
// chain, needing an O(height) descent only to position it initially.
type Iterator[K cmp.Ordered, V any] struct {
	leaf   *node[K, V]
	index  int
	exists bool
}

// Exists reports whether the cursor currently references a valid
// key/value pair.
func (it *Iterator[K, V]) Exists() bool {
	return it != nil && it.exists
}

// Key returns the key at the cursor. Only valid when Exists() is true.
func (it *Iterator[K, V]) Key() K {
	return it.leaf.keys[it.index]
}

// Value returns the value at the cursor. Only valid when Exists() is
// true.
func (it *Iterator[K, V]) Value() V {
	return it.leaf.values[it.index]
}

// Next advances the cursor to the next key in ascending order, and
// reports whether the advanced position exists. Stepping past the last
// leaf's last entry yields a cursor with Exists() == false.
func (it *Iterator[K, V]) Next() bool {
	if it.leaf == nil {
		it.exists = false
		return false
	}
	it.index++
	if it.index >= it.leaf.count() {
		it.leaf = it.leaf.next
		it.index = 0
	}
	it.exists = it.leaf != nil && it.index < it.leaf.count()
	return it.exists
}

// First returns a cursor at the smallest key, or a cursor with
// Exists() == false if the tree is empty.
func (t *Tree[K, V]) First() *Iterator[K, V] {
	n := t.root
	for !n.isLeaf {
		n = n.children[0]
	}
	if n.count() == 0 {
		return &Iterator[K, V]{}
	}
	return &Iterator[K, V]{leaf: n, index: 0, exists: true}
}

// Find returns a cursor for key. If key is present, Exists() is true
// and Key()/Value() reference it. If key is absent, the cursor still
// references the leaf and slot where key would be inserted, with
// Exists() == false.
func (t *Tree[K, V]) Find(key K) *Iterator[K, V] {
	leaf := t.descend(key)
	idx, found := indexOfFound(leaf.keys, key)
	return &Iterator[K, V]{leaf: leaf, index: idx, exists: found}
}
