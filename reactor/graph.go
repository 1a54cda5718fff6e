package reactor

import "github.com/LegacyCodeHQ/reactor/project"

type edge struct {
	from project.Coordinate
	to   project.Coordinate
}

// Graph is the precedence graph over a project collection. Vertices are the
// coordinates of every descriptor in the collection; a directed edge u -> v
// means u must occupy an earlier position than v in any valid build order.
//
// Adjacency is slice-backed in insertion order so that traversals are
// deterministic for a fixed input collection.
type Graph struct {
	collection   *project.Collection
	vertices     []project.Coordinate
	discovery    map[project.Coordinate]int
	successors   map[project.Coordinate][]project.Coordinate
	predecessors map[project.Coordinate][]project.Coordinate
	edges        map[edge]bool
}

// NewGraph constructs the precedence graph for a collection. Two relationships
// produce edges: parent -> child for every descriptor whose declared parent is
// in the collection, and dependency -> dependent for every in-collection
// dependency. Declared child modules produce no edges: aggregation does not
// imply build-order precedence. Dependencies on projects outside the
// collection are ignored. Construction never fails; cycles are diagnosed
// separately by CheckAcyclic.
func NewGraph(collection *project.Collection) *Graph {
	descriptors := collection.Descriptors()
	g := &Graph{
		collection:   collection,
		vertices:     make([]project.Coordinate, 0, len(descriptors)),
		discovery:    make(map[project.Coordinate]int, len(descriptors)),
		successors:   make(map[project.Coordinate][]project.Coordinate, len(descriptors)),
		predecessors: make(map[project.Coordinate][]project.Coordinate, len(descriptors)),
		edges:        make(map[edge]bool),
	}

	for _, d := range descriptors {
		g.discovery[d.Coordinate] = len(g.vertices)
		g.vertices = append(g.vertices, d.Coordinate)
	}

	for _, d := range descriptors {
		if d.Parent != nil {
			g.addEdge(*d.Parent, d.Coordinate)
		}
		for _, dep := range d.Dependencies {
			g.addEdge(dep, d.Coordinate)
		}
	}

	return g
}

// addEdge records from -> to, skipping edges whose endpoints are outside the
// collection, self-edges, and duplicates.
func (g *Graph) addEdge(from, to project.Coordinate) {
	if from == to {
		return
	}
	if _, ok := g.discovery[from]; !ok {
		return
	}
	if _, ok := g.discovery[to]; !ok {
		return
	}
	e := edge{from: from, to: to}
	if g.edges[e] {
		return
	}
	g.edges[e] = true
	g.successors[from] = append(g.successors[from], to)
	g.predecessors[to] = append(g.predecessors[to], from)
}

// Collection returns the project collection the graph was built from.
func (g *Graph) Collection() *project.Collection {
	return g.collection
}

// Vertices returns every coordinate in discovery order. The returned slice is
// shared and must not be modified.
func (g *Graph) Vertices() []project.Coordinate {
	return g.vertices
}

// Successors returns the direct successors of a vertex (projects that must be
// built after it), in edge insertion order.
func (g *Graph) Successors(c project.Coordinate) []project.Coordinate {
	return g.successors[c]
}

// Predecessors returns the direct predecessors of a vertex (projects that must
// be built before it), in edge insertion order.
func (g *Graph) Predecessors(c project.Coordinate) []project.Coordinate {
	return g.predecessors[c]
}

// HasEdge reports whether the precedence edge from -> to exists.
func (g *Graph) HasEdge(from, to project.Coordinate) bool {
	return g.edges[edge{from: from, to: to}]
}

// EdgeCount returns the number of precedence edges.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// transitivePredecessors returns every coordinate reachable by following edges
// backward from any member of base, excluding the base members themselves
// unless they are reachable from another member.
func (g *Graph) transitivePredecessors(base []project.Coordinate) map[project.Coordinate]bool {
	return g.reachable(base, g.Predecessors)
}

// transitiveSuccessors returns every coordinate reachable by following edges
// forward from any member of base.
func (g *Graph) transitiveSuccessors(base []project.Coordinate) map[project.Coordinate]bool {
	return g.reachable(base, g.Successors)
}

// reachable runs a breadth-first traversal from every seed over the given
// neighbor relation. Seeds themselves are not part of the result unless
// reached through an edge.
func (g *Graph) reachable(seeds []project.Coordinate, neighbors func(project.Coordinate) []project.Coordinate) map[project.Coordinate]bool {
	reached := make(map[project.Coordinate]bool)
	queue := make([]project.Coordinate, 0, len(seeds))
	queue = append(queue, seeds...)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, next := range neighbors(current) {
			if !reached[next] {
				reached[next] = true
				queue = append(queue, next)
			}
		}
	}

	return reached
}
