package reactor

import "github.com/LegacyCodeHQ/reactor/project"

// CanonicalOrder computes the canonical build order: a permutation of every
// vertex such that for every precedence edge u -> v, u appears before v.
//
// The order is fully determined by the graph and the discovery order of its
// vertices: a depth-first traversal is seeded from each vertex in reverse
// discovery order, vertices are appended in postorder, and the completed list
// is reversed. Vertices with no precedence relationship to each other keep
// their relative discovery order; in particular an edgeless graph sorts to
// exactly the discovery order.
//
// The traversal uses an explicit work stack rather than recursion so that
// very large collections cannot exhaust the goroutine stack.
//
// The graph must already have been validated acyclic via CheckAcyclic;
// calling this on a cyclic graph is a programming error and yields an order
// that cannot satisfy every edge.
func (g *Graph) CanonicalOrder() []project.Coordinate {
	visited := make(map[project.Coordinate]bool, len(g.vertices))
	postorder := make([]project.Coordinate, 0, len(g.vertices))

	type frame struct {
		vertex project.Coordinate
		next   int
	}

	for i := len(g.vertices) - 1; i >= 0; i-- {
		seed := g.vertices[i]
		if visited[seed] {
			continue
		}
		visited[seed] = true
		stack := []frame{{vertex: seed}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			successors := g.Successors(top.vertex)

			if top.next < len(successors) {
				next := successors[top.next]
				top.next++
				if !visited[next] {
					visited[next] = true
					stack = append(stack, frame{vertex: next})
				}
				continue
			}

			postorder = append(postorder, top.vertex)
			stack = stack[:len(stack)-1]
		}
	}

	order := make([]project.Coordinate, len(postorder))
	for i, v := range postorder {
		order[len(postorder)-1-i] = v
	}
	return order
}
