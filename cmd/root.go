package cmd

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/LegacyCodeHQ/reactor/cmd/graphcmd"
	"github.com/LegacyCodeHQ/reactor/cmd/order"
	"github.com/LegacyCodeHQ/reactor/cmd/watch"
	"github.com/LegacyCodeHQ/reactor/reactor"
)

// version is set via build-time ldflags
var version = "dev"

// buildDate is set via build-time ldflags
var buildDate = "unknown"

// commit is set via build-time ldflags
var commit = "unknown"

// verbose is a persistent flag enabling debug logging
var verbose bool

// Process exit codes. Each engine failure kind gets its own code so that
// surrounding tooling can tell a misconfigured scope from a broken project
// graph without parsing messages.
const (
	exitFailure        = 1
	exitCycle          = 2
	exitUnknownProject = 3
	exitEmptyBuildSet  = 4
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "reactor",
	Short: "Compute deterministic build orders for multi-module projects",
	Long: `Reactor computes the ordered, filtered set of modules a multi-module
build has to process. It reads reactor.yaml descriptors, derives a precedence
graph from parent and dependency links, and applies selection, exclusion,
resume-from and also-make scoping on top of the canonical order.

Use 'reactor --help' to see all available commands, or 'reactor <command> --help'
for detailed information about a specific command.`,
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode maps engine error kinds to their process exit codes.
func exitCode(err error) int {
	var cyclic *reactor.CyclicDependencyError
	if errors.As(err, &cyclic) {
		return exitCycle
	}
	var unknown *reactor.UnknownProjectError
	if errors.As(err, &unknown) {
		return exitUnknownProject
	}
	var empty *reactor.EmptyBuildSetError
	if errors.As(err, &empty) {
		return exitEmptyBuildSet
	}
	return exitFailure
}

func init() {
	// Register subcommands
	rootCmd.AddCommand(order.NewCommand())
	rootCmd.AddCommand(graphcmd.NewCommand())
	rootCmd.AddCommand(watch.NewCommand())

	// Initialize annotations for version template
	if rootCmd.Annotations == nil {
		rootCmd.Annotations = make(map[string]string)
	}
	rootCmd.Annotations["buildDate"] = buildDate
	rootCmd.Annotations["commit"] = commit

	// Update version field dynamically (in case it was set via ldflags)
	rootCmd.Version = version

	// Customize version template to show additional build info
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
Build date: {{printf "%s" (index .Annotations "buildDate")}}
Commit: {{printf "%s" (index .Annotations "commit")}}
`)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
