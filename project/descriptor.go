package project

import "fmt"

// Descriptor is the in-memory record of one project: its coordinate, an
// optional parent link, the child modules it declares, and its dependency
// coordinates. Descriptors are created once during collection materialization
// and treated as read-only for the lifetime of a build-order computation.
//
// The parent link is a lookup-only reference into the owning collection: the
// parent is itself a descriptor owned by the collection, never by its children.
// Module declarations are informational; they do not imply build-order
// precedence. Dependencies may name projects outside the collection; only
// in-collection ones participate in graph construction.
type Descriptor struct {
	Coordinate   Coordinate
	Version      string
	Parent       *Coordinate
	Modules      []Coordinate
	Dependencies []Coordinate
}

// Collection is an ordered, indexed set of descriptors. The slice order is the
// discovery order used for deterministic tie-breaking downstream.
type Collection struct {
	ordered      []*Descriptor
	byCoordinate map[Coordinate]*Descriptor
	byName       map[string][]*Descriptor
}

// NewCollection builds a collection from descriptors in discovery order.
// Coordinates must be unique across the collection.
func NewCollection(descriptors []*Descriptor) (*Collection, error) {
	c := &Collection{
		ordered:      make([]*Descriptor, 0, len(descriptors)),
		byCoordinate: make(map[Coordinate]*Descriptor, len(descriptors)),
		byName:       make(map[string][]*Descriptor),
	}
	for _, d := range descriptors {
		if _, exists := c.byCoordinate[d.Coordinate]; exists {
			return nil, fmt.Errorf("duplicate project coordinate %s in collection", d.Coordinate)
		}
		c.ordered = append(c.ordered, d)
		c.byCoordinate[d.Coordinate] = d
		c.byName[d.Coordinate.Name] = append(c.byName[d.Coordinate.Name], d)
	}
	return c, nil
}

// Descriptors returns all descriptors in discovery order. The returned slice
// is shared and must not be modified.
func (c *Collection) Descriptors() []*Descriptor {
	return c.ordered
}

// Len returns the number of descriptors in the collection.
func (c *Collection) Len() int {
	return len(c.ordered)
}

// ByCoordinate looks up a descriptor by its full coordinate.
func (c *Collection) ByCoordinate(coord Coordinate) (*Descriptor, bool) {
	d, ok := c.byCoordinate[coord]
	return d, ok
}

// ByName returns all descriptors sharing a project name, in discovery order.
func (c *Collection) ByName(name string) []*Descriptor {
	return c.byName[name]
}
