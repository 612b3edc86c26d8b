package maxgap

import (
	"fmt"
	"sort"
)

// EdgeKey canonically identifies an undirected edge between two node
// names: U <= V lexicographically, so {u,v} and {v,u} always hash to
// the same key. Mirrors katalvlaran/lvlath/core's canonical-edge-key
// convention for undirected graphs.
type EdgeKey struct {
	U, V string
}

// NewEdgeKey builds the canonical key for the unordered pair {a, b}.
func NewEdgeKey(a, b string) EdgeKey {
	if a <= b {
		return EdgeKey{U: a, V: b}
	}
	return EdgeKey{U: b, V: a}
}

func (k EdgeKey) String() string { return fmt.Sprintf("{%s,%s}", k.U, k.V) }

// Graph is the interaction graph fixed before generation: an
// undirected, loop-free graph whose nodes are the problem's spin
// variables and whose edges are the only pairs allowed to carry a
// quadratic coupling. Grounded on katalvlaran/lvlath/core's Graph: a
// symmetric adjacency-set representation with insertion-ordered
// iteration for deterministic output, and sentinel errors prefixed with
// this package's name rather than core's.
type Graph struct {
	order []string
	nodes map[string]struct{}
	adj   map[string]map[string]struct{}
	edges []EdgeKey
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[string]struct{}),
		adj:   make(map[string]map[string]struct{}),
	}
}

// ErrSelfLoop is returned by AddEdge when u == v: the interaction graph
// has no self-loops (a node's own linear bias already covers the
// single-variable term).
var ErrSelfLoop = fmt.Errorf("maxgap: graph: self-loops are not permitted")

// ErrUnknownNode identifies a reference to a node never added to the
// graph via AddNode or AddEdge. No Graph method returns it: HasEdge
// reports false and Neighbors returns nil for an unknown node.
var ErrUnknownNode = fmt.Errorf("maxgap: graph: unknown node")

// AddNode registers id as a graph node if it is not already present.
// Idempotent.
func (g *Graph) AddNode(id string) {
	if _, ok := g.nodes[id]; ok {
		return
	}
	g.nodes[id] = struct{}{}
	g.order = append(g.order, id)
	g.adj[id] = make(map[string]struct{})
}

// AddEdge adds an undirected edge between u and v, adding either node
// first if necessary. Returns ErrSelfLoop if u == v. Adding the same
// edge twice is a no-op.
func (g *Graph) AddEdge(u, v string) error {
	if u == v {
		return ErrSelfLoop
	}
	g.AddNode(u)
	g.AddNode(v)
	if _, ok := g.adj[u][v]; ok {
		return nil
	}
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
	g.edges = append(g.edges, NewEdgeKey(u, v))
	return nil
}

// HasNode reports whether id was added to the graph.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// HasEdge reports whether u and v are adjacent.
func (g *Graph) HasEdge(u, v string) bool {
	if _, ok := g.adj[u]; !ok {
		return false
	}
	_, ok := g.adj[u][v]
	return ok
}

// Nodes returns the graph's nodes in insertion order.
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Edges returns the graph's edges, canonicalized, in insertion order.
func (g *Graph) Edges() []EdgeKey {
	out := make([]EdgeKey, len(g.edges))
	copy(out, g.edges)
	return out
}

// Neighbors returns id's adjacent nodes in sorted order, or nil if id
// is not a graph node.
func (g *Graph) Neighbors(id string) []string {
	nbrs, ok := g.adj[id]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(nbrs))
	for n := range nbrs {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// NumNodes returns the number of nodes in the graph.
func (g *Graph) NumNodes() int { return len(g.order) }
