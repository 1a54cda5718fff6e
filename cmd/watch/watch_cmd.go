package watch

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/LegacyCodeHQ/reactor/cmd/order/formatters"
	"github.com/LegacyCodeHQ/reactor/manifest"
	"github.com/LegacyCodeHQ/reactor/reactor"
)

type watchOptions struct {
	outputFormat string
	selected     []string
	excluded     []string
	resumeFrom   string
	makeBehavior string
}

// NewCommand returns a new watch command instance.
func NewCommand() *cobra.Command {
	opts := &watchOptions{
		outputFormat: formatters.OutputFormatText.String(),
	}

	cmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "Watch project descriptors and reprint the build order on change",
		Long: `Watch a multi-module project tree for descriptor changes, recompute the
build order, and reprint it. Accepts the same scoping options as 'order'.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runWatch(cmd, dir, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outputFormat, "format", "f", opts.outputFormat, "Output format: text, json, or dot")
	cmd.Flags().StringSliceVarP(&opts.selected, "projects", "p", nil, "Build only the specified projects (comma-separated selectors)")
	cmd.Flags().StringSliceVarP(&opts.excluded, "exclude", "x", nil, "Exclude the specified projects (comma-separated selectors)")
	cmd.Flags().StringVarP(&opts.resumeFrom, "resume-from", "r", "", "Resume the build from the specified project")
	cmd.Flags().StringVarP(&opts.makeBehavior, "make", "m", "none", "Also build related projects: none, upstream, downstream, or both")

	return cmd
}

func runWatch(cmd *cobra.Command, dir string, opts *watchOptions) error {
	closure, err := reactor.ParseClosureMode(opts.makeBehavior)
	if err != nil {
		return err
	}
	scope := reactor.Scope{
		Selected:   opts.selected,
		Excluded:   opts.excluded,
		ResumeFrom: opts.resumeFrom,
		Closure:    closure,
	}

	formatter, err := formatters.NewFormatter(opts.outputFormat)
	if err != nil {
		return err
	}

	recompute := func() error {
		collection, err := manifest.LoadCollection(dir)
		if err != nil {
			return fmt.Errorf("failed to load project descriptors: %w", err)
		}
		result, err := reactor.ComputeBuildOrder(collection, scope)
		if err != nil {
			return err
		}
		output, err := formatter.Format(result, formatters.FormatOptions{})
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), output)
		return nil
	}

	// Print once before watching so the terminal always shows a current order.
	if err := recompute(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watchAndRecompute(ctx, dir, recompute, cmd.ErrOrStderr())
}
