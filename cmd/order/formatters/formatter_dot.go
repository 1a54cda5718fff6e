package formatters

import (
	"fmt"
	"strings"

	graphlib "github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"

	"github.com/LegacyCodeHQ/reactor/project"
	"github.com/LegacyCodeHQ/reactor/reactor"
)

func init() {
	Register(OutputFormatDOT, func() Formatter { return &DOTFormatter{} })
}

// DOTFormatter formats build orders as Graphviz DOT, showing the precedence
// edges between the projects that made it into the build set.
type DOTFormatter struct{}

// Format converts the build order to Graphviz DOT.
func (f *DOTFormatter) Format(order *reactor.BuildOrder, opts FormatOptions) (string, error) {
	g := graphlib.New(graphlib.StringHash, graphlib.Directed())

	included := make(map[project.Coordinate]bool, len(order.Projects))
	for _, d := range order.Projects {
		included[d.Coordinate] = true
	}

	for i, d := range order.Projects {
		label := d.Coordinate.String()
		if opts.ShowVersions && d.Version != "" {
			label = fmt.Sprintf("%s\\n%s", label, d.Version)
		}
		attrs := []func(*graphlib.VertexProperties){
			graphlib.VertexAttribute("label", fmt.Sprintf("%d. %s", i+1, label)),
			graphlib.VertexAttribute("shape", "box"),
		}
		if err := g.AddVertex(d.Coordinate.String(), attrs...); err != nil {
			return "", fmt.Errorf("failed to add vertex %s: %w", d.Coordinate, err)
		}
	}

	for _, d := range order.Projects {
		for _, pred := range order.Graph.Predecessors(d.Coordinate) {
			if !included[pred] {
				continue
			}
			if err := g.AddEdge(pred.String(), d.Coordinate.String()); err != nil {
				return "", fmt.Errorf("failed to add edge %s -> %s: %w", pred, d.Coordinate, err)
			}
		}
	}

	var sb strings.Builder
	if err := draw.DOT(g, &sb); err != nil {
		return "", fmt.Errorf("failed to render DOT output: %w", err)
	}
	return sb.String(), nil
}
