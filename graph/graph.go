package graph

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidWeight  = errors.New("graph: edge weight must be finite")
	ErrNegativeWeight = errors.New("graph: negative edge weight")
	ErrUnknownNode    = errors.New("graph: unknown node")
	ErrNoPath         = errors.New("graph: no path")
	ErrDirectedGraph  = errors.New("graph: graph is directed")
)

// Edge is a weighted edge. In an undirected graph From and To are
// interchangeable.
type Edge[N comparable] struct {
	From   N
	To     N
	Weight float64
}

// Graph is a weighted adjacency list. Nodes are reported in the order they
// were first seen.
type Graph[N comparable] struct {
	directed bool
	adj      map[N][]Edge[N]
	nodes    []N
}

// NewDirected creates an empty directed graph.
func NewDirected[N comparable]() *Graph[N] {
	return &Graph[N]{directed: true, adj: make(map[N][]Edge[N])}
}

// NewUndirected creates an empty undirected graph.
func NewUndirected[N comparable]() *Graph[N] {
	return &Graph[N]{adj: make(map[N][]Edge[N])}
}

// Directed reports whether edges only run from From to To.
func (g *Graph[N]) Directed() bool {
	return g.directed
}

// AddNode adds n without any edges. Adding a known node is a no-op.
func (g *Graph[N]) AddNode(n N) {
	if _, ok := g.adj[n]; ok {
		return
	}
	g.adj[n] = nil
	g.nodes = append(g.nodes, n)
}

// AddEdge adds an edge from from to to, adding either node if needed.
// Undirected graphs also get the reverse edge. Parallel edges are kept.
func (g *Graph[N]) AddEdge(from, to N, weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidWeight, weight)
	}

	g.AddNode(from)
	g.AddNode(to)
	g.adj[from] = append(g.adj[from], Edge[N]{From: from, To: to, Weight: weight})
	if !g.directed && from != to {
		g.adj[to] = append(g.adj[to], Edge[N]{From: to, To: from, Weight: weight})
	}
	return nil
}

// Has reports whether n is a node of g.
func (g *Graph[N]) Has(n N) bool {
	_, ok := g.adj[n]
	return ok
}

// Nodes returns every node of g.
func (g *Graph[N]) Nodes() []N {
	return append([]N(nil), g.nodes...)
}

// Neighbors returns the edges leaving n, each with From set to n.
func (g *Graph[N]) Neighbors(n N) []Edge[N] {
	return append([]Edge[N](nil), g.adj[n]...)
}
