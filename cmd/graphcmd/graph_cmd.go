package graphcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LegacyCodeHQ/reactor/cmd/order/formatters"
	"github.com/LegacyCodeHQ/reactor/manifest"
	"github.com/LegacyCodeHQ/reactor/reactor"
)

type graphOptions struct {
	outputFormat string
	showVersions bool
}

// NewCommand returns a new graph command instance.
func NewCommand() *cobra.Command {
	opts := &graphOptions{
		outputFormat: formatters.OutputFormatDOT.String(),
	}

	cmd := &cobra.Command{
		Use:   "graph [dir]",
		Short: "Render the full precedence graph of a multi-module project",
		Long: `Render the full precedence graph of a multi-module project.

Unlike 'order', no scoping is applied: every project in the collection appears,
with an edge for every parent and dependency relationship. The default DOT
output pipes straight into Graphviz.

Example usage:
  reactor graph
  reactor graph ./services | dot -Tsvg -o graph.svg
  reactor graph -f json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runGraph(cmd, dir, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outputFormat, "format", "f", opts.outputFormat, "Output format: text, json, or dot")
	cmd.Flags().BoolVar(&opts.showVersions, "versions", false, "Show project versions in the output")

	return cmd
}

func runGraph(cmd *cobra.Command, dir string, opts *graphOptions) error {
	formatter, err := formatters.NewFormatter(opts.outputFormat)
	if err != nil {
		return err
	}

	collection, err := manifest.LoadCollection(dir)
	if err != nil {
		return fmt.Errorf("failed to load project descriptors: %w", err)
	}

	// An empty scope keeps every project, so the build order doubles as the
	// full graph in canonical order.
	result, err := reactor.ComputeBuildOrder(collection, reactor.Scope{})
	if err != nil {
		return err
	}

	output, err := formatter.Format(result, formatters.FormatOptions{ShowVersions: opts.showVersions})
	if err != nil {
		return fmt.Errorf("failed to format graph: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), output)
	return nil
}
