// Package mapgen implements MapGenerator and MapEstimator: turning a
// completed MapRecord into either a concrete mapped network with a
// synthesized truth table per LUT, or just its LUT count and depth
//
//
// What:
//
//   - Generator.Generate back-traces from every primary output through
//     the chosen cuts in a maprec.Record, computes which polarities of
//     every reached node the network actually demands, and synthesizes
//     one truth table per required (node, polarity) pair by batched
//     64-bit-word Boolean simulation over its cut's leaves treated as
//     free variables. A node demanded in both polarities gets two LUTs
//     with complementary tables; an output inverting a primary input
//     gets a 1-input NOT LUT; a constant-driven output gets a 0-input
//     constant LUT, so the mapped network's only logic elements are LUTs.
//   - TruthTableFor serves the caller-requested-polarity query: since a
//     LUT's output is a single-bit function, the complementary polarity
//     costs nothing beyond flipping the already-computed table.
//   - Estimator.Estimate is the count-only sibling: per-polarity LUT
//     counts and mapped depth without ever materializing a truth table,
//     the inner-loop scorer of mctsearch/sasearch rollouts.
//
// Why:
//
//   - Grounded on the batched-uint64 truth-table simulation convention
//     and the explicit-stack cone traversal established in bnio's
//     convert.go.
package mapgen
