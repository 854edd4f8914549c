package lutmap_test

// These examples walk through the six end-to-end scenarios named in
// spec.md §8, using sbjbuilder's deterministic fixtures so the expected
// output is pinned exactly as the spec describes it.

import (
	"fmt"

	lutmap "github.com/katalvlaran/lutmap"
	"github.com/katalvlaran/lutmap/areacover"
	"github.com/katalvlaran/lutmap/sbjbuilder"
)

// ExampleManager_Map_tinyAnd maps a 3-input AND chain under K=3 area
// covering: the whole cone collapses into a single LUT.
func ExampleManager_Map_tinyAnd() {
	g := sbjbuilder.TinyAnd()

	m := lutmap.New(lutmap.WithK(3))
	res, err := m.Map(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("luts:", res.LUTCount, "depth:", res.Depth)
	// Output:
	// luts: 1 depth: 1
}

// ExampleManager_Map_inverterChain maps a ten-deep inverter chain under
// K=4: fanout-policy area covering folds the whole chain into one LUT.
func ExampleManager_Map_inverterChain() {
	g := sbjbuilder.InverterChain(10)

	m := lutmap.New(lutmap.WithK(4), lutmap.WithPolicy(areacover.Fanout))
	res, err := m.Map(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("luts:", res.LUTCount, "depth:", res.Depth)
	// Output:
	// luts: 1 depth: 1
}

// ExampleManager_Map_reconvergentXor maps f = (a AND b) XOR (a AND c)
// under K=3: one 3-input LUT whose truth table is 0x28 over (a,b,c).
func ExampleManager_Map_reconvergentXor() {
	g := sbjbuilder.ReconvergentXor()

	m := lutmap.New(lutmap.WithK(3))
	res, err := m.Map(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("luts: %d truth: 0x%x\n", res.LUTCount, res.Network.LUTs[0].TruthTable[0]&0xFF)
	// Output:
	// luts: 1 truth: 0x28
}

// ExampleManager_Map_balancedTree maps an 8-input balanced AND-tree
// under K=2 with depth-oriented covering: depth 3, 7 LUTs, the
// structurally minimal result for a binary tree over 8 leaves.
func ExampleManager_Map_balancedTree() {
	g := sbjbuilder.BalancedAndTree(3)

	m := lutmap.New(lutmap.WithK(2), lutmap.WithAlgorithm(lutmap.AlgorithmDelay))
	res, err := m.Map(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("luts:", res.LUTCount, "depth:", res.Depth)
	// Output:
	// luts: 7 depth: 3
}

// ExampleManager_Map_balancedTreeWithSlack maps the same 8-input
// balanced AND-tree as ExampleManager_Map_balancedTree, but with
// slack=1: DelayCover may budget every output one level deeper than the
// slack-0 minimum, so the chosen cover still reaches the already-optimal
// 7 LUTs while its required-depth budget, not its realized depth, is
// what actually widened.
func ExampleManager_Map_balancedTreeWithSlack() {
	g := sbjbuilder.BalancedAndTree(3)

	m := lutmap.New(lutmap.WithK(2), lutmap.WithAlgorithm(lutmap.AlgorithmDelay), lutmap.WithSlack(1))
	res, err := m.Map(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("luts:", res.LUTCount)
	// Output:
	// luts: 7
}

// ExampleManager_Map_multiOutputSharing maps y1 = a AND b AND c and
// y2 = a AND b AND d under K=2, where the a-AND-b sub-cut is the only
// feasible leaf for either output's cut: fanout-policy area covering
// shares it across both outputs, for 3 LUTs total rather than 4.
func ExampleManager_Map_multiOutputSharing() {
	g := sbjbuilder.MultiOutputSharing()

	m := lutmap.New(lutmap.WithK(2), lutmap.WithPolicy(areacover.Fanout))
	res, err := m.Map(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("luts:", res.LUTCount)
	// Output:
	// luts: 3
}

// ExampleManager_Map_metaSearchImprovesOrMatchesGreedy runs MCT
// boundary-selection search after a greedy area cover: the adopted
// result never has more LUTs than the greedy baseline, since Map only
// adopts a meta-search candidate that strictly improves on it.
func ExampleManager_Map_metaSearchImprovesOrMatchesGreedy() {
	g := sbjbuilder.MultiOutputSharing()

	greedy := lutmap.New(lutmap.WithK(3))
	baseline, err := greedy.Map(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	withMCT := lutmap.New(lutmap.WithK(3), lutmap.WithMeta(lutmap.MetaMCT), lutmap.WithTrials(200), lutmap.WithSeed(7))
	improved, err := withMCT.Map(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(improved.LUTCount <= baseline.LUTCount)
	// Output:
	// true
}
