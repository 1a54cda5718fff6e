package reactor

import (
	"fmt"
	"strings"

	"github.com/LegacyCodeHQ/reactor/project"
)

// CyclicDependencyError reports that the precedence graph contains a cycle.
// Cycle holds the offending path with the entry vertex repeated at the end
// (a -> b -> a).
type CyclicDependencyError struct {
	Cycle []project.Coordinate
}

func (e *CyclicDependencyError) Error() string {
	parts := make([]string, len(e.Cycle))
	for i, c := range e.Cycle {
		parts[i] = c.String()
	}
	return fmt.Sprintf("the projects form a cyclic dependency: %s", strings.Join(parts, " -> "))
}

// UnknownProjectError reports a selection, exclusion or resume selector that
// matched no project, or a name-only selector that matched more than one.
type UnknownProjectError struct {
	Selector   project.Selector
	Candidates []project.Coordinate
}

func (e *UnknownProjectError) Error() string {
	if len(e.Candidates) > 1 {
		parts := make([]string, len(e.Candidates))
		for i, c := range e.Candidates {
			parts[i] = c.String()
		}
		return fmt.Sprintf("project selector %s is ambiguous in the reactor: matches %s",
			e.Selector, strings.Join(parts, ", "))
	}
	return fmt.Sprintf("could not find project %s in the reactor", e.Selector)
}

// EmptyBuildSetError reports that scope filtering removed every project.
type EmptyBuildSetError struct {
	Scope Scope
}

func (e *EmptyBuildSetError) Error() string {
	return fmt.Sprintf("the build set is empty after applying the scope options (%s)", e.Scope)
}
