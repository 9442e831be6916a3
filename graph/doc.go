// Package graph provides weighted graph algorithms built on the keyed
// priority queue in the priority package.
//
// Supported algorithms:
//   - Dijkstra single-source shortest paths, O(E + V log V)
//   - Prim minimum spanning forest,          O(E + V log V)
//
// Both rely on decrease-key being O(1) amortized, which is where a Fibonacci
// heap beats a binary heap on dense graphs.
package graph
