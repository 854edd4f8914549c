// Package sasearch implements a simulated-annealing meta-driver over the
// same fan-out boundary selection space mctsearch explores: which shared
// (fanout > 1) nodes get pinned as forced LUT outputs before AreaCover
// re-covers the graph. As in mctsearch, fanout > 1 nodes that also drive
// a primary output are pulled into a forced prefix included in every
// evaluated boundary, never part of the searched decision vector.
//
// What:
//
//   - Search.Run starts from an empty boundary selection, repeatedly
//     flips one randomly chosen candidate's inclusion bit, evaluates
//     the flipped selection with AreaCover plus a resubstitution pass,
//     and accepts the move under the Metropolis criterion: always if it
//     does not decrease the LowerBoundCalc-normalized reward (the same
//     reward function mctsearch uses), otherwise with probability
//     exp(-delta/temperature). Temperature decays geometrically each
//     iteration.
//
// Why:
//
//   - Grounded on a seeded, derived *rand.Rand discipline and on the
//     accept/reject move loop shape of local-search passes elsewhere in
//     the mapper.
package sasearch
