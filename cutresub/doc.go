// Package cutresub implements CutResub: a local-search pass over an
// already-covered MapRecord that re-selects a node's cut whenever doing
// so strictly reduces area without pushing the node's depth past its
// available required-time slack.
//
// What:
//
//   - Resub.Run walks every realized logic node and, for each, scans
//     its non-trivial cut list for the alternative with the best
//     strictly positive gain: the number of LUTs used only by the
//     node's current cut (and falling out of the cover when it is
//     released) minus the number its replacement newly pulls in,
//     tracked through live per-node reference counts. The depth of the
//     replacement must not exceed the node's required-time budget. The
//     budget for
//     every node is computed once, up front, from the pre-pass required
//     times (the DESIGN.md decision: a node's slack is measured against
//     the depth distribution the incoming cover already committed to,
//     not recomputed mid-pass), so one node's swap cannot retroactively
//     tighten or loosen a sibling's already-computed budget within the
//     same pass.
//   - The pass iterates to a local optimum: it repeats the node sweep
//     until a full sweep makes no further swap, matching the two-opt /
//     three-opt "repeat until no improving move" discipline.
//
// Why:
//
//   - Grounded on tsp's two_opt.go/three_opt.go local-search sweep
//     structure: repeat-until-no-improvement over one ordered pass.
package cutresub
