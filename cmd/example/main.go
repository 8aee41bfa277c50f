package main

import (
	"fmt"

	"github.com/l00pss/bptreedict"
)

func main() {
	tree := bptree.New[int, string](3)

	fmt.Println("=== B+ Tree Dictionary Example ===")
	fmt.Println("\nInserting values...")

	tree.Set(10, "Value-10")
	tree.Set(20, "Value-20")
	tree.Set(5, "Value-5")
	tree.Set(15, "Value-15")
	tree.Set(25, "Value-25")
	tree.Set(1, "Value-1")
	tree.Set(30, "Value-30")
	tree.Set(12, "Value-12")
	tree.Set(18, "Value-18")

	fmt.Printf("Total entries: %d, height: %d, nodes: %d\n", tree.Len(), tree.Height(), tree.NodeCount())

	fmt.Println("\n--- Get ---")
	if value, found := tree.Get(15); found {
		fmt.Printf("Key 15: %s\n", value)
	}
	if _, found := tree.Get(99); !found {
		fmt.Println("Key 99: not found")
	}

	fmt.Println("\n--- MaybeAdd (no overwrite) ---")
	tree.MaybeAdd(10, "Should-Not-Stick")
	if value, _ := tree.Get(10); true {
		fmt.Printf("Key 10 still: %s\n", value)
	}

	fmt.Println("\n--- Range Query [10, 25] ---")
	for k, v := range tree.Range(10, 25) {
		fmt.Printf("  Key: %d, Value: %s\n", k, v)
	}

	fmt.Println("\n--- Set overwrites ---")
	tree.Set(10, "Updated-10")
	if value, found := tree.Get(10); found {
		fmt.Printf("Key 10 updated: %s\n", value)
	}

	fmt.Println("\n--- Remove ---")
	tree.Remove(5)
	fmt.Printf("After removing key 5, total entries: %d\n", tree.Len())

	fmt.Println("\n--- Iterator from Find(12) ---")
	for it := tree.Find(12); it.Exists(); it.Next() {
		fmt.Printf("  Key: %d, Value: %s\n", it.Key(), it.Value())
	}

	fmt.Println("\n--- All Entries (Sorted) ---")
	for _, e := range tree.All() {
		fmt.Printf("  Key: %d, Value: %s\n", e.Key, e.Value)
	}

	fmt.Println("\n--- Clear ---")
	tree.Clear()
	fmt.Printf("After Clear, total entries: %d, nodes: %d\n", tree.Len(), tree.NodeCount())
}
