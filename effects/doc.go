// Package effects provides a minimal fallible-effect type for Go, just large
// enough to support bracketed resource safety.
//
// # What is an Effect?
//
// An Effect[A] is a deferred computation: a function from a context to a
// value and an error. Nothing runs until the effect is applied to a context,
// and the same effect value can be run any number of times. Cancellation
// travels through the context, errors travel through the return value —
// there is no other channel.
//
// # Bracketing
//
// The heart of the package is BracketCase: acquire a value, use it, release
// it — with release guaranteed to run exactly once after use whenever
// acquisition succeeded, whatever way use ended. Release functions receive an
// ExitCase (ExitCompleted, ExitErrored, ExitCancelled) so cleanup can branch
// on the outcome, e.g. commit versus roll back a transaction.
//
// When both use and release fail, both errors surface (use error first,
// aggregated via multierr); a failing release never silently replaces a
// failing use.
//
// This package exports:
//   - Effect, Pure, Raise, UnitEffect — construction
//   - Map, FlatMap, Then — sequencing
//   - BracketCase, Bracket, GuaranteeCase, Guarantee — resource safety
//   - ExitCase and its variants — outcome-aware cleanup
//
// The resource subpackage builds composable acquire/release descriptions on
// top of these primitives.
package effects
