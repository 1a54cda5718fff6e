package reactor_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LegacyCodeHQ/reactor/project"
	"github.com/LegacyCodeHQ/reactor/reactor"
)

func TestCanonicalOrder_SatisfiesEveryEdge(t *testing.T) {
	g := reactor.NewGraph(fixtureCollection(t))
	order := g.CanonicalOrder()

	position := make(map[project.Coordinate]int, len(order))
	for i, c := range order {
		position[c] = i
	}

	for _, from := range g.Vertices() {
		for _, to := range g.Successors(from) {
			assert.Less(t, position[from], position[to], "edge %s -> %s violated", from, to)
		}
	}
}

func TestCanonicalOrder_IsPermutationOfVertices(t *testing.T) {
	g := reactor.NewGraph(fixtureCollection(t))
	order := g.CanonicalOrder()

	require.Len(t, order, len(g.Vertices()))
	assert.ElementsMatch(t, g.Vertices(), order)
}

func TestCanonicalOrder_FixtureOrder(t *testing.T) {
	g := reactor.NewGraph(fixtureCollection(t))
	assert.Equal(t, coords("root", "a", "b", "c", "c1", "c2", "solo"), g.CanonicalOrder())
}

func TestCanonicalOrder_EdgelessGraphKeepsDiscoveryOrder(t *testing.T) {
	collection, err := project.NewCollection([]*project.Descriptor{
		fixtureDescriptor("x", ""),
		fixtureDescriptor("y", ""),
		fixtureDescriptor("z", ""),
	})
	require.NoError(t, err)

	g := reactor.NewGraph(collection)
	assert.Equal(t, coords("x", "y", "z"), g.CanonicalOrder())
}

func TestCanonicalOrder_IsDeterministic(t *testing.T) {
	first := reactor.NewGraph(fixtureCollection(t)).CanonicalOrder()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, reactor.NewGraph(fixtureCollection(t)).CanonicalOrder())
	}
}

func TestCanonicalOrder_IsolatedProjectDiscoveredLastSortsLast(t *testing.T) {
	g := reactor.NewGraph(fixtureCollection(t))
	order := g.CanonicalOrder()
	assert.Equal(t, coord("solo"), order[len(order)-1])
}

func TestCanonicalOrder_DependencyDeclaredBeforeDependent(t *testing.T) {
	// Discovery order deliberately lists the dependent before its
	// dependency; the sorter must still put the dependency first.
	collection, err := project.NewCollection([]*project.Descriptor{
		fixtureDescriptor("app", "", "lib"),
		fixtureDescriptor("lib", ""),
	})
	require.NoError(t, err)

	g := reactor.NewGraph(collection)
	assert.Equal(t, coords("lib", "app"), g.CanonicalOrder())
}

func TestCanonicalOrder_DeepChainUsesBoundedStack(t *testing.T) {
	// A chain long enough to blow a recursive implementation's stack if the
	// traversal were not iterative.
	const depth = 200000
	descriptors := make([]*project.Descriptor, depth)
	prev := ""
	for i := 0; i < depth; i++ {
		name := nodeName(i)
		if prev == "" {
			descriptors[i] = fixtureDescriptor(name, "")
		} else {
			descriptors[i] = fixtureDescriptor(name, "", prev)
		}
		prev = name
	}

	collection, err := project.NewCollection(descriptors)
	require.NoError(t, err)

	g := reactor.NewGraph(collection)
	order := g.CanonicalOrder()
	require.Len(t, order, depth)
	assert.Equal(t, coord(nodeName(0)), order[0])
	assert.Equal(t, coord(nodeName(depth-1)), order[depth-1])
}

func nodeName(i int) string {
	return "m" + strconv.Itoa(i)
}
