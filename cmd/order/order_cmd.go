package order

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/LegacyCodeHQ/reactor/cmd/order/formatters"
	"github.com/LegacyCodeHQ/reactor/manifest"
	"github.com/LegacyCodeHQ/reactor/reactor"
)

type orderOptions struct {
	outputFormat string
	selected     []string
	excluded     []string
	resumeFrom   string
	makeBehavior string
	showVersions bool
}

// NewCommand returns a new order command instance.
func NewCommand() *cobra.Command {
	opts := &orderOptions{
		outputFormat: formatters.OutputFormatText.String(),
	}

	cmd := &cobra.Command{
		Use:   "order [dir]",
		Short: "Compute the build order for a multi-module project",
		Long: `Compute the build order for a multi-module project.

Reads the reactor.yaml descriptor in the given directory (default: current
directory), walks its declared modules, and prints the projects in the order
they have to be built.

Scoping options combine the way a build orchestrator combines them: explicit
selection restricts, exclusion removes after everything else, resume-from
drops projects ordered before the named one, and --make expands the set along
the dependency graph.

Example usage:
  reactor order
  reactor order ./services
  reactor order -p platform:api,platform:worker
  reactor order -p :api -m upstream
  reactor order -r :billing -x :legacy-adapter
  reactor order -f dot | dot -Tsvg -o order.svg`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runOrder(cmd, dir, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outputFormat, "format", "f", opts.outputFormat, "Output format: text, json, or dot")
	cmd.Flags().StringSliceVarP(&opts.selected, "projects", "p", nil, "Build only the specified projects (comma-separated selectors)")
	cmd.Flags().StringSliceVarP(&opts.excluded, "exclude", "x", nil, "Exclude the specified projects (comma-separated selectors)")
	cmd.Flags().StringVarP(&opts.resumeFrom, "resume-from", "r", "", "Resume the build from the specified project")
	cmd.Flags().StringVarP(&opts.makeBehavior, "make", "m", "none", "Also build related projects: none, upstream, downstream, or both")
	cmd.Flags().BoolVar(&opts.showVersions, "versions", false, "Show project versions in the output")

	return cmd
}

func runOrder(cmd *cobra.Command, dir string, opts *orderOptions) error {
	scope, err := buildScope(opts)
	if err != nil {
		return err
	}

	formatter, err := formatters.NewFormatter(opts.outputFormat)
	if err != nil {
		return err
	}

	collection, err := manifest.LoadCollection(dir)
	if err != nil {
		return fmt.Errorf("failed to load project descriptors: %w", err)
	}
	log.Debug("loaded project collection", "dir", dir, "projects", collection.Len())

	result, err := reactor.ComputeBuildOrder(collection, scope)
	if err != nil {
		return err
	}
	log.Debug("computed build order", "scope", scope.String(), "projects", len(result.Projects))

	output, err := formatter.Format(result, formatters.FormatOptions{ShowVersions: opts.showVersions})
	if err != nil {
		return fmt.Errorf("failed to format build order: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), output)
	return nil
}

func buildScope(opts *orderOptions) (reactor.Scope, error) {
	closure, err := reactor.ParseClosureMode(opts.makeBehavior)
	if err != nil {
		return reactor.Scope{}, err
	}
	return reactor.Scope{
		Selected:   opts.selected,
		Excluded:   opts.excluded,
		ResumeFrom: opts.resumeFrom,
		Closure:    closure,
	}, nil
}
