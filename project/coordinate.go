package project

import (
	"fmt"
	"strings"
)

// Coordinate uniquely identifies a project within a reactor collection as a
// namespace/name pair. Coordinates are plain values and never mutated.
type Coordinate struct {
	Namespace string
	Name      string
}

// NewCoordinate creates a coordinate from a namespace and a name.
func NewCoordinate(namespace, name string) Coordinate {
	return Coordinate{Namespace: namespace, Name: name}
}

// ParseCoordinate parses a fully qualified "namespace:name" coordinate.
// Both parts are required; use ParseSelector for the looser forms accepted
// on the command line.
func ParseCoordinate(s string) (Coordinate, error) {
	namespace, name, ok := strings.Cut(s, ":")
	if !ok || namespace == "" || name == "" {
		return Coordinate{}, fmt.Errorf("invalid project coordinate %q: expected namespace:name", s)
	}
	return Coordinate{Namespace: namespace, Name: name}, nil
}

// String returns the canonical "namespace:name" form.
func (c Coordinate) String() string {
	return c.Namespace + ":" + c.Name
}

// IsZero reports whether the coordinate is the empty value.
func (c Coordinate) IsZero() bool {
	return c.Namespace == "" && c.Name == ""
}

// Selector is a user-supplied project reference. It accepts three forms:
// "namespace:name" (fully qualified), ":name" and bare "name" (name-only,
// resolvable only when the name is unambiguous within the collection).
type Selector struct {
	Namespace string
	Name      string

	raw string
}

// ParseSelector parses a selector in any of its accepted forms.
func ParseSelector(s string) (Selector, error) {
	if s == "" {
		return Selector{}, fmt.Errorf("empty project selector")
	}
	namespace, name, qualified := strings.Cut(s, ":")
	if !qualified {
		return Selector{Name: s, raw: s}, nil
	}
	if name == "" {
		return Selector{}, fmt.Errorf("invalid project selector %q: missing project name", s)
	}
	return Selector{Namespace: namespace, Name: name, raw: s}, nil
}

// Matches reports whether the selector refers to the given coordinate.
// A selector without a namespace matches on name alone.
func (s Selector) Matches(c Coordinate) bool {
	if s.Namespace != "" && s.Namespace != c.Namespace {
		return false
	}
	return s.Name == c.Name
}

// Qualified reports whether the selector carries a namespace.
func (s Selector) Qualified() bool {
	return s.Namespace != ""
}

// String returns the selector as originally written.
func (s Selector) String() string {
	if s.raw != "" {
		return s.raw
	}
	if s.Namespace == "" {
		return s.Name
	}
	return s.Namespace + ":" + s.Name
}
