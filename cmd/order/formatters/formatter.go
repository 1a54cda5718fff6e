package formatters

import (
	"fmt"
	"sort"
	"strings"

	"github.com/LegacyCodeHQ/reactor/reactor"
)

// FormatOptions contains optional parameters for formatting build orders.
type FormatOptions struct {
	// Label is an optional title rendered above or inside the output.
	Label string
	// ShowVersions includes project versions where the format supports it.
	ShowVersions bool
}

// Formatter is the interface that all build-order formatters must implement.
type Formatter interface {
	// Format converts a computed build order to its string representation.
	Format(order *reactor.BuildOrder, opts FormatOptions) (string, error)
}

var registry = map[OutputFormat]func() Formatter{}

// Register makes a formatter constructor available under a format name.
func Register(format OutputFormat, constructor func() Formatter) {
	registry[format] = constructor
}

// NewFormatter creates a Formatter for the specified format type.
// Supported formats: "text", "json", "dot".
func NewFormatter(format string) (Formatter, error) {
	constructor, ok := registry[OutputFormat(format)]
	if !ok {
		return nil, fmt.Errorf("unknown format: %s (valid options: %s)", format, strings.Join(supportedFormats(), ", "))
	}
	return constructor(), nil
}

func supportedFormats() []string {
	names := make([]string, 0, len(registry))
	for f := range registry {
		names = append(names, f.String())
	}
	sort.Strings(names)
	return names
}
