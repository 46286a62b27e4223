// Package resource provides composable, exception-safe acquire/release
// descriptions over the effects package.
//
// # What is a Resource?
//
// A Resource[A] describes how to acquire a value of type A and how to release
// it afterwards — a database handle, a transaction, a connection. It is pure
// data: composing resources runs nothing, and one Resource value can be
// invoked any number of times. Use runs one full cycle, delegating every leaf
// to effects.BracketCase, so release is guaranteed whatever way the use phase
// ends: normal return, error, or cancellation.
//
// # Composition
//
// Resources compose without manual bookkeeping:
//
//   - FlatMap sequences a resource with a dependent one (the dependent's
//     acquisition may use the first's value)
//   - Map transforms the yielded value, keeping release behavior intact
//   - Combine merges two resources of a combinable value type
//   - Ap applies a resource-held function to a resource-held value
//   - ParZip acquires two independent resources in parallel
//
// Release order across any composition is the exact reverse of acquisition
// order. That guarantee comes from the nesting structure alone — each
// dependent cycle runs inside its predecessor's use phase — with no locks,
// counters, or shared state.
//
// # Example
//
//	db := resource.Of(openDB, closeDB)
//	txn := resource.FlatMap(db, func(h *Handle) resource.Resource[*Txn] {
//		return resource.CaseOf(beginTxn(h), commitOrAbort)
//	})
//	n, err := resource.Use(txn, countRows)(ctx)
//
// The transaction is committed or aborted (release, in reverse order: txn
// before db) before err is observed, even if countRows fails or ctx is
// cancelled mid-query.
package resource
