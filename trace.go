package bptree

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key "bptree". Diagnostic only: split, merge,
// redistribute, and root-collapse log through it, but nothing in the
// tree's control flow depends on trace level.
func tracer() tracing.Trace {
	return tracing.Select("bptree")
}
