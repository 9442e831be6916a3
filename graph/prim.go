package graph

import (
	"github.com/davidvella/fibheap"
	"github.com/davidvella/fibheap/priority"
)

// MinimumSpanningForest runs Prim's algorithm from every node not yet
// covered, so disconnected graphs yield one tree per component. It returns
// the chosen edges and their total weight.
func MinimumSpanningForest[N comparable](g *Graph[N], opts ...fibheap.Option) ([]Edge[N], float64, error) {
	if g.directed {
		return nil, 0, ErrDirectedGraph
	}

	var (
		forest []Edge[N]
		total  float64
	)
	inTree := make(map[N]bool, len(g.nodes))
	best := make(map[N]Edge[N])
	pq := priority.NewQueue[N](opts...)

	for _, root := range g.nodes {
		if inTree[root] {
			continue
		}
		if err := pq.Set(root, 0); err != nil {
			return nil, 0, err
		}

		for pq.Len() > 0 {
			u, _, _ := pq.Pop()
			inTree[u] = true
			if e, ok := best[u]; ok {
				forest = append(forest, e)
				total += e.Weight
				delete(best, u)
			}

			for _, e := range g.adj[u] {
				if inTree[e.To] {
					continue
				}
				if w, queued := pq.Get(e.To); queued && e.Weight >= w {
					continue
				}
				best[e.To] = e
				if err := pq.Set(e.To, e.Weight); err != nil {
					return nil, 0, err
				}
			}
		}
	}
	return forest, total, nil
}
