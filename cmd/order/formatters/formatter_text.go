package formatters

import (
	"fmt"
	"strings"

	"github.com/LegacyCodeHQ/reactor/reactor"
)

func init() {
	Register(OutputFormatText, func() Formatter { return &TextFormatter{} })
}

// TextFormatter renders the build order as one coordinate per line.
type TextFormatter struct{}

// Format converts the build order to plain text.
func (f *TextFormatter) Format(order *reactor.BuildOrder, opts FormatOptions) (string, error) {
	var sb strings.Builder

	if opts.Label != "" {
		sb.WriteString(opts.Label)
		sb.WriteString("\n")
	}

	for _, d := range order.Projects {
		sb.WriteString(d.Coordinate.String())
		if opts.ShowVersions && d.Version != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", d.Version))
		}
		sb.WriteString("\n")
	}

	return sb.String(), nil
}
