// Command dbcore-demo exercises all three dbcore cores end to end: it
// derives a physical layout from a struct-tagged schema, bulkloads a
// B+-tree and runs a few lookups, then enumerates join plans over a
// three-table chain graph.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"code.tczkiot.com/wlw/dbcore/btree"
	"code.tczkiot.com/wlw/dbcore/layout"
	"code.tczkiot.com/wlw/dbcore/planner"
	"code.tczkiot.com/wlw/dbcore/schema"
)

// User is the example struct whose fields seed a Schema, the way
// struct_schema's demo seeds an srdb.Schema from struct tags.
type User struct {
	ID       int64   `dbcore:"id;comment:primary identifier"`
	Name     string  `dbcore:"name;len:20;comment:display name"`
	Score    float64 `dbcore:"score;comment:ranking score"`
	IsActive bool    `dbcore:"is_active"`
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	runLayoutDemo(logger)
	runBTreeDemo(logger)
	runPlannerDemo(logger)
}

func runLayoutDemo(logger *slog.Logger) {
	fields, err := schema.StructToFields(User{})
	if err != nil {
		logger.Error("struct to fields", "error", err)
		os.Exit(1)
	}
	s, err := schema.NewSchema("users", fields)
	if err != nil {
		logger.Error("new schema", "error", err)
		os.Exit(1)
	}
	types, err := s.ToPhysicalTypes()
	if err != nil {
		logger.Error("to physical types", "error", err)
		os.Exit(1)
	}

	for name, build := range map[string]func() (*layout.DataLayout, error){
		"naive":     func() (*layout.DataLayout, error) { return layout.NaiveRow(types, 1) },
		"optimized": func() (*layout.DataLayout, error) { return layout.OptimizedRow(types, 1) },
		"pax":       func() (*layout.DataLayout, error) { return layout.PAX(types, 1) },
	} {
		dl, err := build()
		if err != nil {
			logger.Error("build layout", "variant", name, "error", err)
			continue
		}
		if err := dl.Validate(); err != nil {
			logger.Error("validate layout", "variant", name, "error", err)
			continue
		}
		fmt.Printf("%s layout: stride=%d bits, num_tuples=%d, leaves=%d\n",
			name, dl.Root.StrideInBits, dl.Root.NumTuples, len(dl.Root.Children))
	}
}

func runBTreeDemo(logger *slog.Logger) {
	geom, err := btree.New4096[int64, string]()
	if err != nil {
		logger.Error("compute geometry", "error", err)
		os.Exit(1)
	}

	pairs := []btree.Pair[int64, string]{
		{Key: 1, Value: "alice"},
		{Key: 2, Value: "bob-first"},
		{Key: 2, Value: "bob-second"},
		{Key: 5, Value: "carol"},
	}
	tr, err := btree.Bulkload(pairs, geom)
	if err != nil {
		logger.Error("bulkload", "error", err)
		os.Exit(1)
	}

	fmt.Printf("btree: size=%d height=%d\n", tr.Size(), tr.Height())
	if it := tr.Find(5); !it.Done() {
		fmt.Printf("find(5) -> %s\n", it.Value())
	}
	first, last := tr.EqualRange(2)
	for it := first; !it.Equal(last); it = it.Next() {
		fmt.Printf("equal_range(2): %s\n", it.Value())
	}
}

func runPlannerDemo(logger *slog.Logger) {
	const n = 3
	m := planner.NewDenseAdjacencyMatrix(n)
	m.AddEdge(0, 1)
	m.AddEdge(1, 2)
	g := &planner.QueryGraph{N: n, M: m}

	ce := demoCardinalityEstimator{}
	pt := newDemoPlanTable(n)
	planner.Enumerate(pt, g, ce, demoCostFunction{})

	final := pt.GetFinal()
	fmt.Printf("best plan cost=%v left=%v right=%v\n", final.Cost, final.Left, final.Right)
}

// demoCardinalityEstimator is a stand-in CardinalityEstimator: real
// callers supply one backed by actual table/catalog statistics, which
// lives outside this package entirely.
type demoCardinalityEstimator struct{}

func (demoCardinalityEstimator) EstimateScan(source int) planner.CardinalityModel { return 0.0 }
func (demoCardinalityEstimator) EstimateJoin(left, right planner.CardinalityModel, cond planner.JoinCondition) planner.CardinalityModel {
	return 0.0
}
func (demoCardinalityEstimator) PredictCardinality(model planner.CardinalityModel) float64 {
	return model.(float64)
}

type demoCostFunction struct{}

func (demoCostFunction) Cost(left, right planner.PlanEntry) float64 {
	return left.Cost + right.Cost + 1
}

type demoPlanTable struct {
	entries map[planner.Subproblem]planner.PlanEntry
	full    planner.Subproblem
}

func newDemoPlanTable(n int) *demoPlanTable {
	pt := &demoPlanTable{entries: map[planner.Subproblem]planner.PlanEntry{}, full: planner.FullSubproblem(n)}
	for i := 0; i < n; i++ {
		pt.entries[planner.SingletonSubproblem(i)] = planner.PlanEntry{Cost: 0}
	}
	return pt
}

func (pt *demoPlanTable) Update(g *planner.QueryGraph, ce planner.CardinalityEstimator, cf planner.CostFunction, left, right planner.Subproblem, cond planner.JoinCondition) {
	union := left.Union(right)
	cost := cf.Cost(pt.entries[left], pt.entries[right])
	if existing, ok := pt.entries[union]; !ok || cost < existing.Cost {
		pt.entries[union] = planner.PlanEntry{Left: left, Right: right, Cost: cost}
	}
}

func (pt *demoPlanTable) GetFinal() planner.PlanEntry {
	return pt.entries[pt.full]
}
