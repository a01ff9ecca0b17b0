package planner

// QueryGraph describes the join graph being planned: n data sources,
// numbered 0..n-1, and an AdjacencyMatrix answering connectivity queries
// over arbitrary subsets.
type QueryGraph struct {
	N int
	M AdjacencyMatrix
}

// AdjacencyMatrix answers whether a subset of data sources induces a
// connected subgraph of the join graph. The enumerator treats this as an
// opaque host-owned contract; it never inspects edges
// directly.
type AdjacencyMatrix interface {
	IsConnected(s Subproblem) bool
}

// DenseAdjacencyMatrix is a reference AdjacencyMatrix backed by an n x n
// boolean edge matrix, answering IsConnected via a depth-first
// reachability walk restricted to the subset's members. It exists so the
// enumerator has something concrete to run against outside of host code
// and tests; production callers typically supply their own
// AdjacencyMatrix backed by precomputed connectivity data.
type DenseAdjacencyMatrix struct {
	n     int
	edges [][]bool
}

// NewDenseAdjacencyMatrix builds an empty n x n adjacency matrix.
func NewDenseAdjacencyMatrix(n int) *DenseAdjacencyMatrix {
	edges := make([][]bool, n)
	for i := range edges {
		edges[i] = make([]bool, n)
	}
	return &DenseAdjacencyMatrix{n: n, edges: edges}
}

// AddEdge marks an undirected join edge between sources a and b.
func (m *DenseAdjacencyMatrix) AddEdge(a, b int) {
	m.edges[a][b] = true
	m.edges[b][a] = true
}

// IsConnected reports whether s induces a connected subgraph. The empty
// set and singletons are trivially connected.
func (m *DenseAdjacencyMatrix) IsConnected(s Subproblem) bool {
	if s.Size() <= 1 {
		return true
	}
	start := -1
	for i := 0; i < m.n; i++ {
		if s.Contains(i) {
			start = i
			break
		}
	}
	if start == -1 {
		return true
	}

	visited := Subproblem(0)
	stack := []int{start}
	visited = visited.Union(SingletonSubproblem(start))
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for j := 0; j < m.n; j++ {
			if !s.Contains(j) || visited.Contains(j) || !m.edges[cur][j] {
				continue
			}
			visited = visited.Union(SingletonSubproblem(j))
			stack = append(stack, j)
		}
	}
	return visited == s
}
