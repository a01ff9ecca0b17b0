package planner

// Enumerate runs DPsub over every connected subset of g's data sources,
// updating pt with the cheapest bipartition found for each one. Singleton
// subsets must already be seeded into pt; Enumerate never calls Update for
// |S| < 2.
//
// The outer loop walks planSize from 2..=n and, for each planSize,
// re-scans *every* subset with size >= planSize (not only == planSize),
// re-enumerating its bipartitions each time. This repeats work for larger
// subsets across planSize iterations, but PlanTable.Update is idempotent
// (it only keeps the cheapest entry), so correctness does not depend on
// visiting each subset exactly once — only on visiting every connected
// bipartition of every connected subset at least once, which this loop
// shape guarantees.
func Enumerate(pt PlanTable, g *QueryGraph, ce CardinalityEstimator, cf CostFunction, opts ...Option) {
	o := newOptions(opts)
	n := g.N
	if n < 2 {
		o.log().Debug("enumerate: no-op", "num_sources", n)
		return
	}
	updates := 0
	for planSize := 2; planSize <= n; planSize++ {
		for _, subset := range connectedSubsetsOfSize(planSize, n, g.M) {
			seen := make(map[Subproblem]bool)
			for _, left := range connectedSubpartitions(subset, g.M) {
				if seen[left] {
					continue
				}
				right := subset.Intersect(^left)
				if g.M.IsConnected(right) {
					seen[right] = true
					pt.Update(g, ce, cf, left, right, TrivialCondition)
					updates++
				}
			}
		}
	}
	o.log().Debug("enumerate: done", "num_sources", n, "plan_table_updates", updates)
}

// connectedSubsetsOfSize returns every connected subset of {0..n-1} with
// size >= planSize, in increasing bit-pattern order.
func connectedSubsetsOfSize(planSize, n int, m AdjacencyMatrix) []Subproblem {
	full := FullSubproblem(n)
	var subsets []Subproblem
	for bit := uint64(1); bit < uint64(full)+1; bit++ {
		s := SubproblemFromUint64(bit)
		if s.Size() >= planSize && m.IsConnected(s) {
			subsets = append(subsets, s)
		}
	}
	return subsets
}

// connectedSubpartitions returns every non-empty proper subset of subset
// that is itself connected, in increasing bit-pattern order. The caller
// pairs each with its complement within subset to form a bipartition.
func connectedSubpartitions(subset Subproblem, m AdjacencyMatrix) []Subproblem {
	maxValue := subset.AsUint64()
	var subsetsO []Subproblem
	for bit := uint64(1); bit < maxValue; bit++ {
		l := SubproblemFromUint64(bit)
		if l.IsSubset(subset) && m.IsConnected(l) {
			subsetsO = append(subsetsO, l)
		}
	}
	return subsetsO
}
