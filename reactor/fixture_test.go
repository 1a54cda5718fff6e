package reactor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LegacyCodeHQ/reactor/project"
)

// The test reactor used throughout this package:
//
//	root
//	├── a
//	├── b        (depends on a)
//	└── c
//	    ├── c1
//	    └── c2   (depends on b)
//	solo         (no parent, no dependencies)
const fixtureNamespace = "build"

func coord(name string) project.Coordinate {
	return project.NewCoordinate(fixtureNamespace, name)
}

func coords(names ...string) []project.Coordinate {
	out := make([]project.Coordinate, len(names))
	for i, n := range names {
		out[i] = coord(n)
	}
	return out
}

func fixtureDescriptor(name string, parent string, deps ...string) *project.Descriptor {
	d := &project.Descriptor{Coordinate: coord(name)}
	if parent != "" {
		p := coord(parent)
		d.Parent = &p
	}
	for _, dep := range deps {
		d.Dependencies = append(d.Dependencies, coord(dep))
	}
	return d
}

func fixtureCollection(t *testing.T) *project.Collection {
	t.Helper()

	root := fixtureDescriptor("root", "")
	root.Modules = coords("a", "b", "c")
	c := fixtureDescriptor("c", "root")
	c.Modules = coords("c1", "c2")

	collection, err := project.NewCollection([]*project.Descriptor{
		root,
		fixtureDescriptor("a", "root"),
		fixtureDescriptor("b", "root", "a"),
		c,
		fixtureDescriptor("c1", "c"),
		fixtureDescriptor("c2", "c", "b"),
		fixtureDescriptor("solo", ""),
	})
	require.NoError(t, err)
	return collection
}
