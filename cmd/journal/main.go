// Package main is the journal command: the HTTP server plus the
// maintenance commands that share its configuration.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the binary.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// rootOptions holds the flags every subcommand shares.
type rootOptions struct {
	profile    string
	configDir  string
	configFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "journal",
		Short:         "A personal learning journal with tags, search and streaks",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildTime),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.profile, "profile", defaultProfile(), "configuration profile (configs/<profile>.yaml)")
	flags.StringVar(&opts.configDir, "config-dir", "configs", "directory holding base.yaml and profile files")
	flags.StringVarP(&opts.configFile, "config", "c", "", "extra YAML file layered over the profile")

	cmd.AddCommand(
		newServeCmd(opts),
		newMigrateCmd(opts),
		newStatsCmd(opts),
		newExportCmd(opts),
		newImportCmd(opts),
		newShowCmd(opts),
	)

	return cmd
}

func defaultProfile() string {
	if p := os.Getenv("APP_ENVIRONMENT"); p != "" {
		return p
	}

	return "local"
}
