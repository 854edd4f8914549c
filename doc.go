// Package lutmap is the top-level facade tying together subject-graph
// construction, cut enumeration, area/delay covering, resubstitution,
// and the MCT/SA meta-searches into one end-to-end K-input LUT
// technology mapper.
//
// A caller builds or converts a sbjgraph.Graph (directly via sbjgraph,
// or from an external Boolean network via bnio), configures a Manager,
// and calls Map to get back a mapped mapgen.Network plus its LUT count
// and depth.
//
//	m := lutmap.New(lutmap.WithK(4), lutmap.WithAlgorithm(lutmap.AlgorithmArea))
//	result, err := m.Map(g)
//
// Manager.Configure additionally accepts a comma/colon-separated
// key[=value] options string, for callers driving the mapper from a
// command-line-style flag rather than Go call sites directly.
package lutmap
