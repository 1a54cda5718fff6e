package formatters

import (
	"encoding/json"

	"github.com/LegacyCodeHQ/reactor/project"
	"github.com/LegacyCodeHQ/reactor/reactor"
)

func init() {
	Register(OutputFormatJSON, func() Formatter { return &JSONFormatter{} })
}

// JSONFormatter formats build orders as JSON.
type JSONFormatter struct{}

type jsonProject struct {
	Position      int      `json:"position"`
	Coordinate    string   `json:"coordinate"`
	Version       string   `json:"version,omitempty"`
	Prerequisites []string `json:"prerequisites,omitempty"`
}

// Format converts the build order to JSON. Prerequisites list each project's
// direct predecessors that are themselves part of the build set.
func (f *JSONFormatter) Format(order *reactor.BuildOrder, opts FormatOptions) (string, error) {
	included := make(map[project.Coordinate]bool, len(order.Projects))
	for _, d := range order.Projects {
		included[d.Coordinate] = true
	}

	out := make([]jsonProject, 0, len(order.Projects))
	for i, d := range order.Projects {
		entry := jsonProject{
			Position:   i + 1,
			Coordinate: d.Coordinate.String(),
		}
		if opts.ShowVersions {
			entry.Version = d.Version
		}
		for _, pred := range order.Graph.Predecessors(d.Coordinate) {
			if included[pred] {
				entry.Prerequisites = append(entry.Prerequisites, pred.String())
			}
		}
		out = append(out, entry)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
