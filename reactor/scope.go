package reactor

import (
	"fmt"
	"strings"

	"github.com/LegacyCodeHQ/reactor/project"
)

// ClosureMode controls how the base set is expanded along precedence edges
// before exclusion is applied.
type ClosureMode int

const (
	// ClosureNone leaves the base set as-is.
	ClosureNone ClosureMode = iota
	// ClosureUpstream adds every transitive prerequisite of the base set.
	ClosureUpstream
	// ClosureDownstream adds every transitive dependent of the base set.
	ClosureDownstream
	// ClosureBoth adds both prerequisites and dependents.
	ClosureBoth
)

// ParseClosureMode parses the command-line closure selector. The empty string
// means no closure.
func ParseClosureMode(s string) (ClosureMode, error) {
	switch s {
	case "", "none":
		return ClosureNone, nil
	case "upstream":
		return ClosureUpstream, nil
	case "downstream":
		return ClosureDownstream, nil
	case "both":
		return ClosureBoth, nil
	default:
		return ClosureNone, fmt.Errorf("unknown closure mode %q (valid options: none, upstream, downstream, both)", s)
	}
}

func (m ClosureMode) String() string {
	switch m {
	case ClosureUpstream:
		return "upstream"
	case ClosureDownstream:
		return "downstream"
	case ClosureBoth:
		return "both"
	default:
		return "none"
	}
}

// Scope carries the user-supplied build-scoping options. Selected, Excluded
// and ResumeFrom hold raw selectors ("namespace:name", ":name" or "name");
// resolution against the collection happens during filtering.
type Scope struct {
	Selected   []string
	Excluded   []string
	ResumeFrom string
	Closure    ClosureMode
}

// IsZero reports whether no scoping option is set.
func (s Scope) IsZero() bool {
	return len(s.Selected) == 0 && len(s.Excluded) == 0 && s.ResumeFrom == "" && s.Closure == ClosureNone
}

func (s Scope) String() string {
	var parts []string
	if len(s.Selected) > 0 {
		parts = append(parts, "selected: "+strings.Join(s.Selected, ","))
	}
	if len(s.Excluded) > 0 {
		parts = append(parts, "excluded: "+strings.Join(s.Excluded, ","))
	}
	if s.ResumeFrom != "" {
		parts = append(parts, "resume-from: "+s.ResumeFrom)
	}
	if s.Closure != ClosureNone {
		parts = append(parts, "make: "+s.Closure.String())
	}
	if len(parts) == 0 {
		return "no scope options"
	}
	return strings.Join(parts, ", ")
}

// Filter applies the scope to the canonical order and returns the build set:
// the selected (or all) projects, restricted by the resume point, expanded by
// closure over the full precedence graph, minus the exclusions, emitted as a
// subsequence of the canonical order.
//
// Exclusion is a plain set difference applied last: an excluded project is
// removed even when a retained project requires it. That is deliberate,
// user-driven behavior and not re-validated.
func Filter(g *Graph, order []project.Coordinate, scope Scope) ([]*project.Descriptor, error) {
	selected, err := resolveSelectors(g.Collection(), scope.Selected)
	if err != nil {
		return nil, err
	}
	excluded, err := resolveSelectors(g.Collection(), scope.Excluded)
	if err != nil {
		return nil, err
	}
	var resume project.Coordinate
	if scope.ResumeFrom != "" {
		resume, err = resolveSelector(g.Collection(), scope.ResumeFrom)
		if err != nil {
			return nil, err
		}
	}

	position := make(map[project.Coordinate]int, len(order))
	for i, c := range order {
		position[c] = i
	}

	base := make(map[project.Coordinate]bool, len(order))
	if len(selected) > 0 {
		for _, c := range selected {
			base[c] = true
		}
	} else {
		for _, c := range order {
			base[c] = true
		}
	}

	if scope.ResumeFrom != "" {
		for c := range base {
			if position[c] < position[resume] {
				delete(base, c)
			}
		}
		// Resuming is always anchored at the named project, even when the
		// position filter just emptied the set.
		base[resume] = true
	}

	closed := expandClosure(g, base, scope.Closure)

	for _, c := range excluded {
		delete(closed, c)
	}

	if len(closed) == 0 {
		return nil, &EmptyBuildSetError{Scope: scope}
	}

	result := make([]*project.Descriptor, 0, len(closed))
	for _, c := range order {
		if closed[c] {
			d, _ := g.Collection().ByCoordinate(c)
			result = append(result, d)
		}
	}
	return result, nil
}

// expandClosure grows the base set along the full, unfiltered precedence
// graph. Closure is computed before exclusion and is never restricted by the
// resume filter.
func expandClosure(g *Graph, base map[project.Coordinate]bool, mode ClosureMode) map[project.Coordinate]bool {
	if mode == ClosureNone {
		return base
	}

	seeds := make([]project.Coordinate, 0, len(base))
	for _, c := range g.Vertices() {
		if base[c] {
			seeds = append(seeds, c)
		}
	}

	closed := make(map[project.Coordinate]bool, len(base))
	for c := range base {
		closed[c] = true
	}
	if mode == ClosureUpstream || mode == ClosureBoth {
		for c := range g.transitivePredecessors(seeds) {
			closed[c] = true
		}
	}
	if mode == ClosureDownstream || mode == ClosureBoth {
		for c := range g.transitiveSuccessors(seeds) {
			closed[c] = true
		}
	}
	return closed
}

// resolveSelectors resolves raw selectors to coordinates, deduplicating while
// preserving first-mention order.
func resolveSelectors(collection *project.Collection, raw []string) ([]project.Coordinate, error) {
	seen := make(map[project.Coordinate]bool, len(raw))
	resolved := make([]project.Coordinate, 0, len(raw))
	for _, s := range raw {
		c, err := resolveSelector(collection, s)
		if err != nil {
			return nil, err
		}
		if seen[c] {
			continue
		}
		seen[c] = true
		resolved = append(resolved, c)
	}
	return resolved, nil
}

// resolveSelector resolves one raw selector against the collection. A
// qualified selector must match a descriptor exactly; a name-only selector
// must match exactly one descriptor across all namespaces.
func resolveSelector(collection *project.Collection, raw string) (project.Coordinate, error) {
	sel, err := project.ParseSelector(raw)
	if err != nil {
		return project.Coordinate{}, err
	}

	if sel.Qualified() {
		coord := project.NewCoordinate(sel.Namespace, sel.Name)
		if _, ok := collection.ByCoordinate(coord); !ok {
			return project.Coordinate{}, &UnknownProjectError{Selector: sel}
		}
		return coord, nil
	}

	matches := collection.ByName(sel.Name)
	switch len(matches) {
	case 1:
		return matches[0].Coordinate, nil
	case 0:
		return project.Coordinate{}, &UnknownProjectError{Selector: sel}
	default:
		candidates := make([]project.Coordinate, len(matches))
		for i, d := range matches {
			candidates[i] = d.Coordinate
		}
		return project.Coordinate{}, &UnknownProjectError{Selector: sel, Candidates: candidates}
	}
}
