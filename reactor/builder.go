package reactor

import "github.com/LegacyCodeHQ/reactor/project"

// BuildOrder is the result of a build-order computation: the filtered,
// ordered projects to build, the full canonical order they were drawn from,
// and the precedence graph for callers that render or inspect edges.
// Descriptors are shared with the input collection, not copied.
type BuildOrder struct {
	Projects  []*project.Descriptor
	Canonical []project.Coordinate
	Graph     *Graph
}

// Coordinates returns the build-set coordinates in build order.
func (b *BuildOrder) Coordinates() []project.Coordinate {
	coords := make([]project.Coordinate, len(b.Projects))
	for i, d := range b.Projects {
		coords[i] = d.Coordinate
	}
	return coords
}

// ComputeBuildOrder runs the full pipeline over a descriptor collection:
// construct the precedence graph, validate it acyclic, compute the canonical
// order, then apply the scope. It short-circuits on the first failure and
// never returns a partial result. The computation is pure: identical inputs
// yield identical outputs, and the collection is only read.
func ComputeBuildOrder(collection *project.Collection, scope Scope) (*BuildOrder, error) {
	graph := NewGraph(collection)

	if err := graph.CheckAcyclic(); err != nil {
		return nil, err
	}

	canonical := graph.CanonicalOrder()

	projects, err := Filter(graph, canonical, scope)
	if err != nil {
		return nil, err
	}

	return &BuildOrder{
		Projects:  projects,
		Canonical: canonical,
		Graph:     graph,
	}, nil
}
