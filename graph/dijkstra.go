package graph

import (
	"fmt"
	"math"
	"slices"

	"github.com/davidvella/fibheap"
	"github.com/davidvella/fibheap/priority"
)

// Paths holds single-source shortest paths.
type Paths[N comparable] struct {
	source N
	dist   map[N]float64
	prev   map[N]N
}

// ShortestPaths runs Dijkstra's algorithm from source. Every edge weight must
// be non-negative.
func ShortestPaths[N comparable](g *Graph[N], source N, opts ...fibheap.Option) (*Paths[N], error) {
	if !g.Has(source) {
		return nil, fmt.Errorf("%w: %v", ErrUnknownNode, source)
	}
	for _, n := range g.nodes {
		for _, e := range g.adj[n] {
			if e.Weight < 0 {
				return nil, fmt.Errorf("%w: %v -> %v (%v)", ErrNegativeWeight, e.From, e.To, e.Weight)
			}
		}
	}

	p := &Paths[N]{
		source: source,
		dist:   map[N]float64{source: 0},
		prev:   make(map[N]N),
	}
	settled := make(map[N]bool, len(g.nodes))

	pq := priority.NewQueue[N](opts...)
	if err := pq.Set(source, 0); err != nil {
		return nil, err
	}
	for pq.Len() > 0 {
		u, d, _ := pq.Pop()
		settled[u] = true

		for _, e := range g.adj[u] {
			if settled[e.To] {
				continue
			}
			alt := d + e.Weight
			if best, seen := p.dist[e.To]; seen && alt >= best {
				continue
			}
			p.dist[e.To] = alt
			p.prev[e.To] = u
			// Only ever lowers a queued priority.
			if err := pq.Set(e.To, alt); err != nil {
				return nil, err
			}
		}
	}
	return p, nil
}

// Source returns the node the paths start from.
func (p *Paths[N]) Source() N {
	return p.source
}

// DistanceTo returns the length of the shortest path to n, or +Inf and false
// when n is unreachable.
func (p *Paths[N]) DistanceTo(n N) (float64, bool) {
	d, ok := p.dist[n]
	if !ok {
		return math.Inf(1), false
	}
	return d, true
}

// PathTo returns the nodes on the shortest path to n, both ends included.
func (p *Paths[N]) PathTo(n N) ([]N, error) {
	if _, ok := p.dist[n]; !ok {
		return nil, fmt.Errorf("%w: %v -> %v", ErrNoPath, p.source, n)
	}

	path := []N{n}
	for n != p.source {
		n = p.prev[n]
		path = append(path, n)
	}
	slices.Reverse(path)
	return path, nil
}
