// Package sim provides the core round-based simulation engine for the
// monkey keep-away puzzle.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - spec.go: the immutable per-monkey configuration (operation, test, throw targets)
//   - relief.go: the two worry-bounding policies and the modulus soundness argument
//   - simulator.go: the round loop, the take-batch turn discipline, and the entry points
//
// # Architecture
//
// The engine is strictly single-threaded and performs no I/O. Text input
// lives in a sub-package:
//   - sim/parse: loader for the textual monkey grammar
//
// A run is driven through RunShort (20 rounds, divide relief) or RunLong
// (10000 rounds, modulus relief); both return the product of the two
// highest inspection counts. Every failure (overflow, bad routing, missing
// state, insufficient data) aborts the run with no partial result; the
// sentinel errors in errors.go support errors.Is matching.
package sim
