// Package sbjbuilder provides deterministic constructors for subject
// graphs used by tests and benchmarks throughout the mapping pipeline:
// small hand-shaped circuits for end-to-end test scenarios, and
// seeded random AIGs for MCT/SA benchmark-style tests.
//
// Grounded on a functional-options builder package: functional options
// (Option), validate-and-panic constructors for meaningless parameters,
// and WithSeed for reproducible stochastic construction.
package sbjbuilder
