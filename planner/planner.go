package planner

// JoinCondition is the predicate passed to PlanTable.Update. The
// enumerator only ever supplies TrivialCondition, an empty join
// predicate — correctness of join semantics is delegated to the host
// because cardinalities are injected directly — but the type exists so a
// host implementation can distinguish it from a real predicate if it
// wants to.
type JoinCondition struct {
	// Trivial is true for the unconditional predicate the enumerator uses.
	Trivial bool
}

// TrivialCondition is the empty join predicate the enumerator always
// passes to PlanTable.Update.
var TrivialCondition = JoinCondition{Trivial: true}

// CardinalityModel is an opaque value threaded through PlanTable and
// CardinalityEstimator; the enumerator never inspects it.
type CardinalityModel any

// CardinalityEstimator is the host-owned contract for estimating result
// sizes; the enumerator never calls it directly but PlanTable.Update is
// expected to.
type CardinalityEstimator interface {
	EstimateScan(source int) CardinalityModel
	EstimateJoin(left, right CardinalityModel, cond JoinCondition) CardinalityModel
	PredictCardinality(model CardinalityModel) float64
}

// CostFunction is an opaque cost functor invoked by PlanTable.Update.
type CostFunction interface {
	Cost(left, right PlanEntry) float64
}

// PlanEntry is the best plan recorded so far for a subset: its cost, its
// cardinality model, and the bipartition that produced it.
type PlanEntry struct {
	Left, Right Subproblem
	Cost        float64
	Model       CardinalityModel
}

// PlanTable stores, per non-empty subset, the best bipartition found so
// far. Singleton subsets must be pre-seeded by the caller before
// Enumerate runs; the enumerator exclusively mutates it in place via
// Update.
type PlanTable interface {
	// Update recomputes the model and cost for L ∪ R using g, ce, and cf,
	// and keeps the entry if it is cheaper than whatever is already
	// recorded for that union (or if nothing is recorded yet).
	Update(g *QueryGraph, ce CardinalityEstimator, cf CostFunction, left, right Subproblem, cond JoinCondition)
	// GetFinal returns the best entry for the full set of sources.
	GetFinal() PlanEntry
}
