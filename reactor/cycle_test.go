package reactor_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LegacyCodeHQ/reactor/project"
	"github.com/LegacyCodeHQ/reactor/reactor"
)

func TestCheckAcyclic_ValidGraph(t *testing.T) {
	g := reactor.NewGraph(fixtureCollection(t))
	assert.NoError(t, g.CheckAcyclic())
}

func TestCheckAcyclic_DirectCycle(t *testing.T) {
	collection, err := project.NewCollection([]*project.Descriptor{
		fixtureDescriptor("a", "", "b"),
		fixtureDescriptor("b", "", "a"),
	})
	require.NoError(t, err)

	err = reactor.NewGraph(collection).CheckAcyclic()
	require.Error(t, err)

	var cyclic *reactor.CyclicDependencyError
	require.True(t, errors.As(err, &cyclic))
	assert.Equal(t, coords("a", "b", "a"), cyclic.Cycle)
	assert.Equal(t, "the projects form a cyclic dependency: build:a -> build:b -> build:a", err.Error())
}

func TestCheckAcyclic_IndirectCycle(t *testing.T) {
	collection, err := project.NewCollection([]*project.Descriptor{
		fixtureDescriptor("a", "", "c"),
		fixtureDescriptor("b", "", "a"),
		fixtureDescriptor("c", "", "b"),
	})
	require.NoError(t, err)

	err = reactor.NewGraph(collection).CheckAcyclic()
	require.Error(t, err)

	var cyclic *reactor.CyclicDependencyError
	require.True(t, errors.As(err, &cyclic))

	// The path closes on its entry vertex and contains all three projects.
	require.Len(t, cyclic.Cycle, 4)
	assert.Equal(t, cyclic.Cycle[0], cyclic.Cycle[len(cyclic.Cycle)-1])
	assert.ElementsMatch(t, coords("a", "b", "c"), cyclic.Cycle[:3])
}

func TestCheckAcyclic_CycleThroughParentLink(t *testing.T) {
	// A project inheriting from a parent that depends on it is a cycle too:
	// the constructor treats both relationships as the same edge kind.
	collection, err := project.NewCollection([]*project.Descriptor{
		fixtureDescriptor("parent", "", "child"),
		fixtureDescriptor("child", "parent"),
	})
	require.NoError(t, err)

	err = reactor.NewGraph(collection).CheckAcyclic()
	require.Error(t, err)

	var cyclic *reactor.CyclicDependencyError
	assert.True(t, errors.As(err, &cyclic))
}
