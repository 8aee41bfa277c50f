// Package bptree implements an in-memory ordered dictionary backed by a
// B+ tree with a fixed, construction-time branching factor N.
//
// Keys are drawn from any type satisfying cmp.Ordered; values are opaque
// and never dereferenced by the tree. All values live in leaves, which
// are threaded together in ascending key order so that ordered traversal
// (via Iterator, Range, or All) runs in O(1) amortized time per step
// after an O(height) positioning descent.
//
// A tree with branching factor N keeps every non-root leaf at least
// half full (HN = ceil(N/2) keys), every non-root internal node at
// ceil((N+1)/2)-1 keys or more (HN for even N, HN-1 for odd N), and
// every leaf at the same depth.
// Insert and delete both descend once to the target leaf and then walk
// back up the parent chain only as far as a split, merge, or
// redistribution is required to restore those invariants.
//
// Example usage:
//
//	tree := bptree.New[int, string](4)
//	tree.Set(10, "ten")
//	tree.Set(20, "twenty")
//
//	if value, found := tree.Get(10); found {
//	    fmt.Println(value)
//	}
//
//	for it := tree.First(); it.Exists(); it.Next() {
//	    fmt.Println(it.Key(), it.Value())
//	}
//
// The tree is single-threaded and non-reentrant: no operation may be
// interleaved with another on the same tree, including mutation during
// iteration. There is no persistence, bulk loading, or range deletion.
package bptree
