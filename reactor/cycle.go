package reactor

import "github.com/LegacyCodeHQ/reactor/project"

// CheckAcyclic validates that the precedence graph contains no cycle. It runs
// a depth-first traversal with on-stack marking over every vertex in discovery
// order and returns a CyclicDependencyError carrying the full cycle path when
// a vertex on the current recursion stack is reached again.
func (g *Graph) CheckAcyclic() error {
	done := make(map[project.Coordinate]bool, len(g.vertices))
	onStack := make(map[project.Coordinate]bool)
	var stack []project.Coordinate

	var visit func(v project.Coordinate) *CyclicDependencyError
	visit = func(v project.Coordinate) *CyclicDependencyError {
		if done[v] {
			return nil
		}
		if onStack[v] {
			return &CyclicDependencyError{Cycle: cyclePath(stack, v)}
		}

		onStack[v] = true
		stack = append(stack, v)

		for _, next := range g.Successors(v) {
			if err := visit(next); err != nil {
				return err
			}
		}

		stack = stack[:len(stack)-1]
		delete(onStack, v)
		done[v] = true
		return nil
	}

	for _, v := range g.vertices {
		if done[v] {
			continue
		}
		if err := visit(v); err != nil {
			return err
		}
	}
	return nil
}

// cyclePath extracts the cycle from the recursion stack: the segment from the
// first occurrence of the repeated vertex to the top, closed by repeating the
// vertex itself (a -> b -> a).
func cyclePath(stack []project.Coordinate, repeated project.Coordinate) []project.Coordinate {
	start := 0
	for i, v := range stack {
		if v == repeated {
			start = i
			break
		}
	}
	path := make([]project.Coordinate, 0, len(stack)-start+1)
	path = append(path, stack[start:]...)
	path = append(path, repeated)
	return path
}
